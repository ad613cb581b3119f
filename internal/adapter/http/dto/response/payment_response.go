package response

import (
	"smartride/internal/domain/entities"
	"smartride/internal/usecase"
)

// PaymentStartResponse tells the client how to hand control to the gateway:
// navigate to AuthorizationURL when present, otherwise mount the embedded
// widget with Reference.
type PaymentStartResponse struct {
	DeliveryID       string `json:"delivery_id"`
	Reference        string `json:"reference,omitempty"`
	AuthorizationURL string `json:"authorization_url,omitempty"`
	AccessCode       string `json:"access_code,omitempty"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
}

func FromPaymentStart(p usecase.PaymentStart) PaymentStartResponse {
	return PaymentStartResponse{
		DeliveryID:       p.DeliveryID,
		Reference:        p.Reference,
		AuthorizationURL: p.AuthorizationURL,
		AccessCode:       p.AccessCode,
		Amount:           p.Amount,
		Currency:         p.Currency,
	}
}

// PaymentCallbackResponse mirrors the redirect target for popup callers that
// read the body instead of following the 302.
type PaymentCallbackResponse struct {
	Reference  string `json:"reference,omitempty"`
	DeliveryID string `json:"delivery_id,omitempty"`
	RedirectTo string `json:"redirect_to"`
}

type PaymentSuccessResponse struct {
	Success           bool   `json:"success"`
	PaymentID         string `json:"payment_id,omitempty"`
	DeliveryID        string `json:"delivery_id,omitempty"`
	Message           string `json:"message"`
	RedirectCountdown int    `json:"redirect_countdown_seconds,omitempty"`
	RedirectTo        string `json:"redirect_to,omitempty"`
}

func FromSuccessOutcome(o usecase.SuccessOutcome, countdown int, redirectTo string) PaymentSuccessResponse {
	resp := PaymentSuccessResponse{
		Success:    o.Success,
		PaymentID:  o.PaymentID,
		DeliveryID: o.DeliveryID,
		Message:    o.Message,
	}
	if o.Success {
		resp.RedirectCountdown = countdown
		resp.RedirectTo = redirectTo
	}
	return resp
}

type PlaceSuggestionResponse struct {
	Label   string           `json:"label"`
	Address entities.Address `json:"address"`
}

func FromPlaceSuggestions(suggestions []entities.PlaceSuggestion) []PlaceSuggestionResponse {
	out := make([]PlaceSuggestionResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, PlaceSuggestionResponse{Label: s.Label, Address: s.Address})
	}
	return out
}
