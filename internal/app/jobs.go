package app

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
	"github.com/nanwallalit20/home-task-payment-providers/pkg/metrics"
)

// initJob starts the scheduler that keeps the payment and stock gauges
// fresh. Counters move with each attempt; the gauges reflect the
// persisted totals.
func (a *Application) initJob() {
	a.sched = cron.New()
	_, err := a.sched.AddFunc("@every 60s", a.refreshStatGauges)
	if err != nil {
		zap.L().Error("failed to schedule stats job", zap.Error(err))
		return
	}
	a.sched.Start()
}

func (a *Application) refreshStatGauges() {
	type statusCount struct {
		Status domain.PaymentStatus
		Total  int64
	}
	var counts []statusCount
	if err := a.gormDB.Model(&domain.Payment{}).
		Select("status, count(*) as total").
		Group("status").
		Scan(&counts).Error; err != nil {
		zap.L().Error("failed to count payments by status", zap.Error(err))
		return
	}
	for _, s := range []domain.PaymentStatus{
		domain.PaymentStatusPending,
		domain.PaymentStatusPaid,
		domain.PaymentStatusFailed,
	} {
		metrics.PaymentsByStatus.WithLabelValues(s.Label()).Set(0)
	}
	for _, c := range counts {
		metrics.PaymentsByStatus.WithLabelValues(c.Status.Label()).Set(float64(c.Total))
	}

	var stock int64
	if err := a.gormDB.Model(&domain.Product{}).
		Select("coalesce(sum(quantity), 0)").
		Scan(&stock).Error; err != nil {
		zap.L().Error("failed to sum product stock", zap.Error(err))
		return
	}
	metrics.ProductStockTotal.Set(float64(stock))
}
