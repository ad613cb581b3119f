package interfaces

import (
	"context"

	"smartride/internal/domain/entities"
)

// DeliveryCreateRequest is the payload posted to the remote delivery API.
// Address city/state/zip carry placeholders when the lookup never resolved
// them; coordinates default to (0,0) when absent.
type DeliveryCreateRequest struct {
	SenderName     string
	SenderPhone    string
	RecipientName  string
	RecipientPhone string
	RecipientEmail string

	PickupAddress   entities.Address
	DeliveryAddress entities.Address

	PackageDescription string
	Dimensions         string
	WeightCategory     entities.WeightCategory
	DeclaredValue      float64

	Image *entities.PackageImage

	// AuthToken is the bearer token read from cookies; may be empty.
	AuthToken string
}

// IDeliveryAPI abstracts the remote delivery-creation service.
//
// Create submits the delivery (multipart when an image is attached, JSON
// otherwise) and returns the delivery identifier extracted from the loosely
// shaped response. Cancel is a passthrough for explicit user cancellation.
type IDeliveryAPI interface {
	Create(ctx context.Context, req DeliveryCreateRequest) (deliveryID string, err error)
	Cancel(ctx context.Context, authToken, deliveryID string) error
}
