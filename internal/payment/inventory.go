package payment

import (
	"context"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
)

// InventoryGuard performs the reservation protocol against a product
// row that the caller has already locked for update. Because the row
// lock serializes concurrent attempts per product, re-checking the
// quantity read under the lock is enough to keep it from ever going
// negative.
type InventoryGuard struct{}

// Reserve consumes amount units from the locked product, mutating the
// in-memory copy to match. ErrNotAvailable when the product is out of
// stock, ErrInsufficientQuantity when amount exceeds what is left.
func (InventoryGuard) Reserve(ctx context.Context, tx Tx, product *domain.Product, amount int) error {
	if !product.Available() {
		return ErrNotAvailable
	}
	if product.Quantity < amount {
		return ErrInsufficientQuantity
	}
	if err := tx.AdjustProductQuantity(ctx, product.ID, -amount); err != nil {
		return err
	}
	product.Quantity -= amount
	return nil
}

// Restore undoes a reservation of the same magnitude. It must be called
// at most once per attempt, within the same transaction that reserved.
func (InventoryGuard) Restore(ctx context.Context, tx Tx, product *domain.Product, amount int) error {
	if err := tx.AdjustProductQuantity(ctx, product.ID, amount); err != nil {
		return err
	}
	product.Quantity += amount
	return nil
}
