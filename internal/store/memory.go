package store

import (
	"context"
	"sync"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
	"github.com/nanwallalit20/home-task-payment-providers/internal/payment"
)

// MemoryStore keeps products and payments in maps guarded by one
// mutex, so transactions are fully serialized. That over-serializes
// compared with per-row locks but preserves the invariant the guard
// relies on. Rollback restores a snapshot taken at transaction start.
// Used by unit tests in place of Postgres.
type MemoryStore struct {
	mu       sync.Mutex
	products map[int64]*domain.Product
	payments map[int64]*domain.Payment
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]*domain.Product),
		payments: make(map[int64]*domain.Payment),
	}
}

var _ payment.Store = (*MemoryStore)(nil)

func (s *MemoryStore) InTx(ctx context.Context, fn func(tx payment.Tx) error) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	products, payments := snapshot(s.products), snapshot(s.payments)
	if err := fn(&memTx{store: s}); err != nil {
		s.products, s.payments = products, payments
		return err
	}
	return nil
}

// AddProduct seeds a product outside any transaction.
func (s *MemoryStore) AddProduct(p *domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ID] = &cp
}

// Product returns a copy of the stored product, or nil.
func (s *MemoryStore) Product(id int64) *domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// PaymentsForProduct returns copies of all payments recorded against a
// product.
func (s *MemoryStore) PaymentsForProduct(productID int64) []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Payment
	for _, p := range s.payments {
		if p.ProductID == productID {
			out = append(out, *p)
		}
	}
	return out
}

func snapshot[T domain.Product | domain.Payment](m map[int64]*T) map[int64]*T {
	out := make(map[int64]*T, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

type memTx struct {
	store *MemoryStore
}

func (t *memTx) ProductForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	_ = ctx
	p, ok := t.store.products[id]
	if !ok {
		return nil, payment.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (t *memTx) AdjustProductQuantity(ctx context.Context, id int64, delta int) error {
	_ = ctx
	p, ok := t.store.products[id]
	if !ok {
		return payment.ErrProductNotFound
	}
	p.Quantity += delta
	return nil
}

func (t *memTx) CreatePayment(ctx context.Context, p *domain.Payment) error {
	_ = ctx
	cp := *p
	t.store.payments[p.ID] = &cp
	return nil
}

func (t *memTx) SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	_ = ctx
	if p, ok := t.store.payments[id]; ok {
		p.Status = status
	}
	return nil
}
