package interfaces

import (
	"context"

	"smartride/internal/domain/entities"
)

// PaymentInitRequest is the input for PaymentGateway initialization.
// Amount is in whole currency units; Currency is fixed to NGN by the caller.
type PaymentInitRequest struct {
	Amount      int64
	Currency    string
	Email       string
	CallbackURL string
	DeliveryID  string
}

// IPaymentGateway abstracts the external card payment provider.
//
// Initialize opens a transaction and yields a hosted-checkout authorization
// URL and/or a reference for the embedded widget. Verify resolves the final
// outcome for a reference after the redirect round trip.
type IPaymentGateway interface {
	Initialize(ctx context.Context, req PaymentInitRequest) (entities.PaymentInit, error)
	Verify(ctx context.Context, paymentID string) (entities.PaymentVerification, error)
}
