package ports

import "context"

// PaymentInput is a payment initiation request. SourceID is the nonce
// produced by the provider's client-side SDK; Amount is in the smallest
// currency unit (cents).
type PaymentInput struct {
	SourceID string
	Amount   int64
	Currency string
}

type PaymentResult struct {
	PaymentID string
	Status    string
	Amount    int64
	Currency  string
}

// PaymentGateway abstracts the external payment provider. The API only
// initiates payments; everything else (capture, refunds, webhooks) is
// the provider's problem.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, in PaymentInput) (*PaymentResult, error)
}
