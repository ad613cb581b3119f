package response

import (
	"time"

	"smartride/internal/domain/entities"
)

type RiderResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	VehicleType string  `json:"vehicle_type"`
	PlateNumber string  `json:"plate_number,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

type BookingSessionResponse struct {
	SessionID         string                `json:"session_id"`
	Step              string                `json:"step"`
	Draft             entities.BookingDraft `json:"draft"`
	Dimensions        string                `json:"dimensions"`
	Rider             *RiderResponse        `json:"rider,omitempty"`
	ProcessingPayment bool                  `json:"processing_payment"`
	DeliveryID        string                `json:"delivery_id,omitempty"`
	Quote             *QuoteResponse        `json:"quote,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

func FromBookingSession(s entities.BookingSession, dimensions string, quote *entities.PricingResult) BookingSessionResponse {
	resp := BookingSessionResponse{
		SessionID:         s.ID,
		Step:              string(s.Step),
		Draft:             s.Draft,
		Dimensions:        dimensions,
		ProcessingPayment: s.ProcessingPayment,
		DeliveryID:        s.DeliveryID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	// The attachment travels one way; snapshots never echo the bytes back.
	if s.Draft.Image != nil {
		resp.Draft.Image = &entities.PackageImage{
			FileName:    s.Draft.Image.FileName,
			ContentType: s.Draft.Image.ContentType,
		}
	}
	if s.Rider != nil {
		resp.Rider = &RiderResponse{
			ID:          s.Rider.ID,
			Name:        s.Rider.Name,
			Phone:       s.Rider.Phone,
			VehicleType: s.Rider.VehicleType,
			PlateNumber: s.Rider.PlateNumber,
			Rating:      s.Rider.Rating,
		}
	}
	if quote != nil {
		q := FromPricingResult(*quote)
		resp.Quote = &q
	}
	return resp
}
