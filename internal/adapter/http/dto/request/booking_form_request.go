package request

import (
	"smartride/internal/domain/entities"
	"smartride/internal/usecase"
)

type AddressRequest struct {
	Line       string  `json:"line"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// BookingFormRequest is the wizard form step payload. Field-level required
// validation mirrors the form's required inputs; there is no cross-field
// validation (phone format etc.) on purpose.
type BookingFormRequest struct {
	SenderName     string `json:"sender_name" binding:"required"`
	SenderPhone    string `json:"sender_phone" binding:"required"`
	RecipientName  string `json:"recipient_name" binding:"required"`
	RecipientPhone string `json:"recipient_phone" binding:"required"`
	RecipientEmail string `json:"recipient_email" binding:"required"`

	PickupAddress   AddressRequest `json:"pickup_address"`
	DeliveryAddress AddressRequest `json:"delivery_address"`

	SizeCategory       string  `json:"size_category"`
	WeightCategory     string  `json:"weight_category"`
	SizeScale          int     `json:"size_scale"`
	ExplicitWeight     string  `json:"explicit_weight"`
	PackageDescription string  `json:"package_description"`
	DeclaredValue      float64 `json:"declared_value"`
}

func (r BookingFormRequest) ToFormInput() usecase.FormInput {
	return usecase.FormInput{
		SenderName:         r.SenderName,
		SenderPhone:        r.SenderPhone,
		RecipientName:      r.RecipientName,
		RecipientPhone:     r.RecipientPhone,
		RecipientEmail:     r.RecipientEmail,
		PickupAddress:      r.PickupAddress.toAddress(),
		DeliveryAddress:    r.DeliveryAddress.toAddress(),
		SizeCategory:       entities.SizeCategory(r.SizeCategory),
		WeightCategory:     entities.WeightCategory(r.WeightCategory),
		SizeScale:          r.SizeScale,
		ExplicitWeight:     r.ExplicitWeight,
		PackageDescription: r.PackageDescription,
		DeclaredValue:      r.DeclaredValue,
	}
}

func (a AddressRequest) toAddress() entities.Address {
	return entities.Address{
		Line:       a.Line,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Latitude:   a.Latitude,
		Longitude:  a.Longitude,
	}
}
