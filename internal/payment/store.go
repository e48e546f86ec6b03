package payment

import (
	"context"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
)

// Tx is one unit of work against the relational store. All mutations
// made through a Tx commit or roll back together.
type Tx interface {
	// ProductForUpdate loads a product under an exclusive row lock held
	// until the transaction ends. Returns ErrProductNotFound when the
	// id does not exist.
	ProductForUpdate(ctx context.Context, id int64) (*domain.Product, error)
	// AdjustProductQuantity adds delta (which may be negative) to the
	// product's quantity counter.
	AdjustProductQuantity(ctx context.Context, id int64, delta int) error
	CreatePayment(ctx context.Context, p *domain.Payment) error
	SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

// Store runs units of work. fn returning an error aborts the
// transaction; returning nil commits it.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}
