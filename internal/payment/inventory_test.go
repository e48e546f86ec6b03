package payment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
	"github.com/nanwallalit20/home-task-payment-providers/internal/payment"
	"github.com/nanwallalit20/home-task-payment-providers/internal/store"
)

func TestInventoryGuardReserve(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		amount   int
		wantErr  error
		wantLeft int
	}{
		{"consumes stock", 3, 1, nil, 2},
		{"consumes multiple units", 3, 3, nil, 0},
		{"out of stock", 0, 1, payment.ErrNotAvailable, 0},
		{"not enough stock", 1, 2, payment.ErrInsufficientQuantity, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mem := store.NewMemoryStore()
			mem.AddProduct(&domain.Product{ID: 1, UserID: 1, Quantity: tc.quantity})

			var guard payment.InventoryGuard
			err := mem.InTx(context.Background(), func(tx payment.Tx) error {
				p, err := tx.ProductForUpdate(context.Background(), 1)
				require.NoError(t, err)
				if err := guard.Reserve(context.Background(), tx, p, tc.amount); err != nil {
					return err
				}
				// the in-memory copy tracks the decrement
				assert.Equal(t, tc.wantLeft, p.Quantity)
				return nil
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantLeft, mem.Product(1).Quantity)
		})
	}
}

func TestInventoryGuardRestoreMatchesReservation(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.AddProduct(&domain.Product{ID: 1, UserID: 1, Quantity: 5})

	var guard payment.InventoryGuard
	err := mem.InTx(context.Background(), func(tx payment.Tx) error {
		p, err := tx.ProductForUpdate(context.Background(), 1)
		require.NoError(t, err)
		require.NoError(t, guard.Reserve(context.Background(), tx, p, 2))
		require.NoError(t, guard.Restore(context.Background(), tx, p, 2))
		assert.Equal(t, 5, p.Quantity)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, mem.Product(1).Quantity)
}
