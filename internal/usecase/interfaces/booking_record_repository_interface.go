package interfaces

import (
	"context"

	"smartride/internal/domain/entities"
)

// IBookingRecordRepository abstracts DynamoDB persistence for BookingRecord.
//
// The funnel must be able to:
//   - write an audit row when a delivery is created for a session
//   - look the row up again after the payment redirect round trip
//   - record the verified payment outcome
type IBookingRecordRepository interface {
	Create(ctx context.Context, r entities.BookingRecord) (entities.BookingRecord, error)
	GetByDeliveryID(ctx context.Context, deliveryID string) (entities.BookingRecord, error)
	UpdatePaymentOutcome(ctx context.Context, deliveryID string, status entities.PaymentStatus, reference string) (entities.BookingRecord, error)
}
