package payment

import (
	"context"

	"go.uber.org/zap"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
	"github.com/nanwallalit20/home-task-payment-providers/pkg/common"
	"github.com/nanwallalit20/home-task-payment-providers/pkg/metrics"
)

// reservedAmount is fixed at one unit per payment attempt. Restore
// calls track this value so a future variable-amount reservation keeps
// compensation symmetric.
const reservedAmount = 1

// Pricer computes the amount to charge for a product. Real pricing
// lives outside this subsystem.
type Pricer func(p *domain.Product) float64

// FixedPricer charges the same amount for every product.
func FixedPricer(amount float64) Pricer {
	return func(*domain.Product) float64 { return amount }
}

// Result is the success shape of an initiated payment.
type Result struct {
	Payment       *domain.Payment `json:"payment"`
	TransactionID string          `json:"transaction_id"`
	Provider      string          `json:"provider"`
}

// Service orchestrates one payment attempt as a single unit of work:
// lock the product row, reserve stock, create the payment record,
// dispatch to a provider and finalize, compensating the reservation on
// any post-reservation failure.
type Service struct {
	store    Store
	registry *Registry
	pricer   Pricer
	guard    InventoryGuard
}

func NewService(store Store, registry *Registry, pricer Pricer) *Service {
	return &Service{store: store, registry: registry, pricer: pricer}
}

// Methods returns every payment method some provider claims.
func (s *Service) Methods() []string {
	return s.registry.SupportedMethods()
}

// Initiate runs the full payment attempt for one unit of the product.
//
// Reservation-stage failures (not found, forbidden, out of stock,
// insufficient quantity) abort the transaction: no payment row exists
// afterwards. Once stock is reserved and the PENDING payment created, a
// missing provider or a declined attempt restores the reservation and
// commits the payment as FAILED; only then is the error returned.
func (s *Service) Initiate(ctx context.Context, productID, userID int64, method string) (*Result, error) {
	var (
		result *Result
		bizErr error
	)

	txErr := s.store.InTx(ctx, func(tx Tx) error {
		product, err := tx.ProductForUpdate(ctx, productID)
		if err != nil {
			return err
		}
		if product.UserID != userID {
			return ErrForbidden
		}
		if err := s.guard.Reserve(ctx, tx, product, reservedAmount); err != nil {
			return err
		}

		pay := &domain.Payment{
			ID:            common.UUIDint64(),
			ProductID:     product.ID,
			UserID:        userID,
			PaymentMethod: method,
			Amount:        s.pricer(product),
			Status:        domain.PaymentStatusPending,
		}
		if err := tx.CreatePayment(ctx, pay); err != nil {
			return err
		}

		provider := s.registry.Resolve(method)
		if provider == nil {
			if err := s.fail(ctx, tx, product, pay); err != nil {
				return err
			}
			bizErr = ErrMethodNotSupported
			zap.L().Error("payment method not supported",
				zap.Int64("payment_id", pay.ID),
				zap.String("payment_method", method))
			return nil
		}

		outcome := provider.Process(ctx, RequestForPayment(pay))
		if !outcome.Success {
			if err := s.fail(ctx, tx, product, pay); err != nil {
				return err
			}
			bizErr = &ProviderError{Provider: outcome.Provider, Message: outcome.Err}
			zap.L().Error("payment failed",
				zap.Int64("payment_id", pay.ID),
				zap.String("provider", outcome.Provider),
				zap.String("error", outcome.Err))
			return nil
		}

		if err := tx.SetPaymentStatus(ctx, pay.ID, domain.PaymentStatusPaid); err != nil {
			return err
		}
		pay.Status = domain.PaymentStatusPaid

		zap.L().Info("payment completed successfully",
			zap.Int64("payment_id", pay.ID),
			zap.Int64("product_id", product.ID),
			zap.Int64("user_id", userID),
			zap.Float64("amount", pay.Amount),
			zap.String("payment_method", method),
			zap.String("provider", outcome.Provider),
			zap.String("transaction_id", outcome.TransactionID))

		result = &Result{
			Payment:       pay,
			TransactionID: outcome.TransactionID,
			Provider:      outcome.Provider,
		}
		return nil
	})

	switch {
	case txErr != nil:
		metrics.PaymentAttempts.WithLabelValues(method, "rejected").Inc()
		return nil, txErr
	case bizErr != nil:
		metrics.PaymentAttempts.WithLabelValues(method, "failed").Inc()
		return nil, bizErr
	}

	metrics.PaymentAttempts.WithLabelValues(method, "paid").Inc()
	metrics.PaymentAmountPaid.Add(result.Payment.Amount)
	return result, nil
}

// fail compensates a reserved attempt: restore the stock and mark the
// payment FAILED so both commit together with the rest of the
// transaction.
func (s *Service) fail(ctx context.Context, tx Tx, product *domain.Product, pay *domain.Payment) error {
	if err := s.guard.Restore(ctx, tx, product, reservedAmount); err != nil {
		return err
	}
	if err := tx.SetPaymentStatus(ctx, pay.ID, domain.PaymentStatusFailed); err != nil {
		return err
	}
	pay.Status = domain.PaymentStatusFailed
	return nil
}
