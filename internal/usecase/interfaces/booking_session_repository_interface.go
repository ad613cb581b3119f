package interfaces

import (
	"context"

	"smartride/internal/domain/entities"
)

// IBookingSessionRepository abstracts Redis persistence for in-flight wizard
// sessions. Sessions expire on their own; Delete exists for the explicit
// teardown after a confirmed payment.
type IBookingSessionRepository interface {
	Save(ctx context.Context, s entities.BookingSession) error
	GetByID(ctx context.Context, id string) (entities.BookingSession, error)
	Delete(ctx context.Context, id string) error
}
