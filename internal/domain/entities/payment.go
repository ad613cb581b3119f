package entities

import "time"

// PaymentStatus tracks the payment leg of a booking record.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentInit is the normalized result of PaymentGateway.initialize.
// The gateway response is loosely shaped; normalization happens at the
// gateway boundary and the rest of the code only sees this.
type PaymentInit struct {
	AuthorizationURL string `json:"authorization_url,omitempty"`
	Reference        string `json:"reference,omitempty"`
	AccessCode       string `json:"access_code,omitempty"`
}

// PaymentVerification is the normalized result of PaymentGateway.verify.
type PaymentVerification struct {
	Success    bool   `json:"success"`
	DeliveryID string `json:"delivery_id,omitempty"`
	Message    string `json:"message,omitempty"`
	RawStatus  string `json:"raw_status,omitempty"`
}

// BookingRecord is the audit row persisted once a delivery has been created
// for a session. The delivery itself is owned by the remote delivery API; we
// keep the identifier, the quoted amounts and the payment outcome.
//
// Storage model (DynamoDB):
//   - PK: delivery_id (string)
//   - GSI: session_id-index (PK: session_id)

type BookingRecord struct {
	DeliveryID       string        `json:"delivery_id"`
	SessionID        string        `json:"session_id"`
	AmountTotal      int64         `json:"amount_total"`
	Currency         string        `json:"currency"`
	PaymentReference string        `json:"payment_reference,omitempty"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
