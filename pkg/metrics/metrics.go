package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Payment counters are incremented by the orchestrator; the gauges are
// refreshed periodically by the application's stats job.
var (
	PaymentAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopd",
		Name:      "payment_attempts_total",
		Help:      "Payment initiations by method and final status",
	}, []string{"method", "status"})

	PaymentAmountPaid = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shopd",
		Name:      "payment_amount_paid_total",
		Help:      "Cumulative amount of successfully paid payments",
	})

	PaymentsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "shopd",
		Name:      "payments_by_status",
		Help:      "Number of payment records per status",
	}, []string{"status"})

	ProductStockTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "shopd",
		Name:      "product_stock_total",
		Help:      "Sum of quantity across all products",
	})
)
