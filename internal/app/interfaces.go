package app

import (
	"gorm.io/gorm"

	"github.com/nanwallalit20/home-task-payment-providers/config"
	"github.com/nanwallalit20/home-task-payment-providers/internal/payment"
)

// DBProvider provides database access
type DBProvider interface {
	DB() *gorm.DB
}

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// PaymentProvider provides the payment orchestration service
type PaymentProvider interface {
	PaymentService() *payment.Service
	Registry() *payment.Registry
}
