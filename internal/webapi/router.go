package webapi

import (
	"github.com/nanwallalit20/home-task-payment-providers/config"
	"github.com/nanwallalit20/home-task-payment-providers/internal/payment"
)

var (
	appConfig      *config.AppConfig
	paymentService *payment.Service
)

// InitRouter wires the handlers to the web server. Must run after
// webserver.Init.
func InitRouter(cfg *config.AppConfig, paySvc *payment.Service) {
	appConfig = cfg
	paymentService = paySvc

	registerAuthRoutes()
	registerProductRoutes()
	registerPaymentRoutes()
}
