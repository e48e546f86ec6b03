package payment

import (
	"errors"
	"fmt"
)

// Reservation-stage errors leave no payment row behind; the enclosing
// transaction is rolled back entirely. Post-reservation errors commit a
// FAILED payment together with the restored stock.
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrForbidden            = errors.New("unauthorized access to product")
	ErrNotAvailable         = errors.New("product is not available")
	ErrInsufficientQuantity = errors.New("insufficient quantity available")
	ErrMethodNotSupported   = errors.New("payment method not supported")
)

// ProviderError is a provider-reported decline.
type ProviderError struct {
	Provider string
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("payment failed: %s: %s", e.Provider, e.Message)
}
