package payment

import (
	"context"
	"time"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
)

// Request carries the payment data a provider needs for one attempt.
// Providers never touch persistent state; everything they need is here.
type Request struct {
	PaymentID int64
	ProductID int64
	UserID    int64
	Method    string
	Amount    float64
}

// Outcome is the result of a single provider attempt. Success carries a
// transaction id that always begins with the provider's prefix and is
// unique per call; failure carries the provider's error message.
type Outcome struct {
	Success        bool          `json:"success"`
	TransactionID  string        `json:"transaction_id,omitempty"`
	Provider       string        `json:"provider"`
	ProcessingTime time.Duration `json:"processing_time,omitempty"`
	Err            string        `json:"error,omitempty"`
}

// Provider is one payment channel. A provider claims a fixed set of
// method identifiers and turns one attempt into a pass/fail outcome.
type Provider interface {
	// Name is the stable human-readable identifier used in logs and
	// responses.
	Name() string
	// Process produces the outcome for one attempt. It must be free of
	// side effects on the data model.
	Process(ctx context.Context, req Request) Outcome
	// Supports reports whether method is in SupportedMethods.
	Supports(method string) bool
	// SupportedMethods returns the fixed method identifiers this
	// provider claims.
	SupportedMethods() []string
}

// RequestForPayment builds a provider request from a payment record.
func RequestForPayment(p *domain.Payment) Request {
	return Request{
		PaymentID: p.ID,
		ProductID: p.ProductID,
		UserID:    p.UserID,
		Method:    p.PaymentMethod,
		Amount:    p.Amount,
	}
}
