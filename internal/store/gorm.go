package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
	"github.com/nanwallalit20/home-task-payment-providers/internal/payment"
)

// GormStore runs payment units of work on the relational database. The
// exclusive product-row lock maps to SELECT ... FOR UPDATE, held until
// the surrounding transaction commits or rolls back.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ payment.Store = (*GormStore)(nil)

func (s *GormStore) InTx(ctx context.Context, fn func(tx payment.Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) ProductForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payment.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "lock product for update")
	}
	return &p, nil
}

func (t *gormTx) AdjustProductQuantity(ctx context.Context, id int64, delta int) error {
	err := t.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": time.Now(),
		}).Error
	return errors.Wrap(err, "adjust product quantity")
}

func (t *gormTx) CreatePayment(ctx context.Context, p *domain.Payment) error {
	return errors.Wrap(t.db.WithContext(ctx).Create(p).Error, "create payment")
}

func (t *gormTx) SetPaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	err := t.db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
	return errors.Wrap(err, "set payment status")
}
