package ports

import "context"

// PaymentProvider abstracts the external payment processor. Amounts are in
// minor units (cents).
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (clientSecret string, err error)
}

// PaymentService defines the use-case operation for starting a payment.
type PaymentService interface {
	// CreateIntent converts a major-unit price into minor units and creates
	// a payment intent, returning the client secret the frontend confirms
	// the payment with.
	CreateIntent(ctx context.Context, price float64) (string, error)
}
