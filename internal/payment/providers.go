package payment

import "time"

// The default providers mirror real channel characteristics only in
// shape: fixed method sets, fixed acceptance rates, prefixed
// transaction ids and a nominal processing time.

func NewCreditCardProvider() *SimulatedProvider {
	return NewSimulatedProvider(
		"Credit Card Provider", "CC",
		[]string{"credit_card"},
		0.95, 2*time.Second,
		"Credit card payment processing failed",
	)
}

func NewPayPalProvider() *SimulatedProvider {
	return NewSimulatedProvider(
		"PayPal Provider", "PP",
		[]string{"paypal"},
		0.98, 1*time.Second,
		"PayPal payment processing failed",
	)
}

func NewBankTransferProvider() *SimulatedProvider {
	return NewSimulatedProvider(
		"Bank Transfer Provider", "BT",
		[]string{"bank_transfer"},
		0.99, 3*time.Second,
		"Bank transfer processing failed",
	)
}

func NewStripeProvider() *SimulatedProvider {
	return NewSimulatedProvider(
		"Stripe Provider", "STRIPE",
		[]string{"stripe", "stripe_card"},
		0.97, 1500*time.Millisecond,
		"Stripe payment processing failed",
	)
}
