package store_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
	"github.com/nanwallalit20/home-task-payment-providers/internal/payment"
	"github.com/nanwallalit20/home-task-payment-providers/internal/store"
	"github.com/nanwallalit20/home-task-payment-providers/pkg/common"
)

// Integration tests against a real Postgres. Gated behind
// SHOPD_TEST_PG_DSN, e.g.
// "host=127.0.0.1 user=postgres password=postgres dbname=shopd_test port=5432 sslmode=disable".
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("SHOPD_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("SHOPD_TEST_PG_DSN not set, skipping postgres integration test")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(domain.Tables...))
	require.NoError(t, db.Migrator().AutoMigrate(domain.Tables...))
	return db
}

func TestGormStoreRowLockSerializesReservations(t *testing.T) {
	db := testDB(t)

	const quantity = 3
	const attempts = 10
	ownerID := common.UUIDint64()
	product := &domain.Product{
		ID:       common.UUIDint64(),
		UserID:   ownerID,
		Name:     "locked product",
		Quantity: quantity,
	}
	require.NoError(t, db.Create(product).Error)

	registry := payment.NewRegistry()
	registry.Register(payment.NewSimulatedProvider(
		"Credit Card Provider", "CC", []string{"credit_card"}, 1, 0, "declined"))
	svc := payment.NewService(store.NewGormStore(db), registry, payment.FixedPricer(99.99))

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Initiate(context.Background(), product.ID, ownerID, "credit_card")
			errs[i] = err
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, quantity, succeeded)

	var fresh domain.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 0, fresh.Quantity)

	var paid int64
	require.NoError(t, db.Model(&domain.Payment{}).
		Where("product_id = ? AND status = ?", product.ID, domain.PaymentStatusPaid).
		Count(&paid).Error)
	assert.EqualValues(t, quantity, paid)
}

func TestGormStoreFailedAttemptIsNetZero(t *testing.T) {
	db := testDB(t)

	ownerID := common.UUIDint64()
	product := &domain.Product{
		ID:       common.UUIDint64(),
		UserID:   ownerID,
		Name:     "declined product",
		Quantity: 4,
	}
	require.NoError(t, db.Create(product).Error)

	registry := payment.NewRegistry()
	registry.Register(payment.NewSimulatedProvider(
		"Credit Card Provider", "CC", []string{"credit_card"}, 0, 0,
		"Credit card payment processing failed"))
	svc := payment.NewService(store.NewGormStore(db), registry, payment.FixedPricer(99.99))

	_, err := svc.Initiate(context.Background(), product.ID, ownerID, "credit_card")
	var pe *payment.ProviderError
	require.ErrorAs(t, err, &pe)

	var fresh domain.Product
	require.NoError(t, db.First(&fresh, product.ID).Error)
	assert.Equal(t, 4, fresh.Quantity)

	var failed int64
	require.NoError(t, db.Model(&domain.Payment{}).
		Where("product_id = ? AND status = ?", product.ID, domain.PaymentStatusFailed).
		Count(&failed).Error)
	assert.EqualValues(t, 1, failed)
}
