package payment_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanwallalit20/home-task-payment-providers/internal/payment"
)

func TestSimulatedProviderSupports(t *testing.T) {
	p := payment.NewSimulatedProvider("Stripe Provider", "STRIPE",
		[]string{"stripe", "stripe_card"}, 1, time.Second, "declined")

	assert.True(t, p.Supports("stripe"))
	assert.True(t, p.Supports("stripe_card"))
	assert.False(t, p.Supports("credit_card"))
	assert.ElementsMatch(t, []string{"stripe", "stripe_card"}, p.SupportedMethods())
}

func TestSimulatedProviderSuccessOutcome(t *testing.T) {
	p := payment.NewSimulatedProvider("Credit Card Provider", "CC",
		[]string{"credit_card"}, 1, 2*time.Second, "declined")

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		out := p.Process(context.Background(), payment.Request{Method: "credit_card", Amount: 99.99})
		require.True(t, out.Success)
		assert.Equal(t, "Credit Card Provider", out.Provider)
		assert.Equal(t, 2*time.Second, out.ProcessingTime)
		assert.Empty(t, out.Err)

		// transaction ids are prefixed and unique per call
		assert.True(t, strings.HasPrefix(out.TransactionID, "CC_TXN_"),
			"unexpected transaction id %q", out.TransactionID)
		assert.False(t, seen[out.TransactionID], "duplicate transaction id %q", out.TransactionID)
		seen[out.TransactionID] = true
	}
}

func TestSimulatedProviderFailureOutcome(t *testing.T) {
	p := payment.NewSimulatedProvider("Bank Transfer Provider", "BT",
		[]string{"bank_transfer"}, 0, time.Second, "Bank transfer processing failed")

	out := p.Process(context.Background(), payment.Request{Method: "bank_transfer"})
	require.False(t, out.Success)
	assert.Equal(t, "Bank Transfer Provider", out.Provider)
	assert.Equal(t, "Bank transfer processing failed", out.Err)
	assert.Empty(t, out.TransactionID)
}

func TestSimulatedProviderClampsRate(t *testing.T) {
	always := payment.NewSimulatedProvider("P", "P", []string{"m"}, 2.5, 0, "declined")
	never := payment.NewSimulatedProvider("P", "P", []string{"m"}, -1, 0, "declined")

	for i := 0; i < 20; i++ {
		assert.True(t, always.Process(context.Background(), payment.Request{}).Success)
		assert.False(t, never.Process(context.Background(), payment.Request{}).Success)
	}
}
