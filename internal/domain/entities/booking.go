package entities

import "time"

// WizardStep represents the booking wizard's primary step.
//
// Domain notes:
//   - The wizard only moves forward except for summary -> form.
//   - StepRiderDetails is declared and renderable but no transition enters it;
//     kept to stay shape-compatible with the tracking UI.

type WizardStep string

const (
	StepForm         WizardStep = "form"
	StepSummary      WizardStep = "summary"
	StepFindingRider WizardStep = "finding-rider"
	StepRiderFound   WizardStep = "rider-found"
	StepRiderDetails WizardStep = "rider-details"
)

type SizeCategory string

const (
	SizeSmall   SizeCategory = "small"
	SizeBig     SizeCategory = "big"
	SizeVeryBig SizeCategory = "very_big"
)

type WeightCategory string

const (
	WeightLight     WeightCategory = "light"
	WeightHeavy     WeightCategory = "heavy"
	WeightVeryHeavy WeightCategory = "very_heavy"
)

// DefaultWeightFor maps a size category to its default weight category.
// The mapping is a default applied when size changes; the user can override
// weight independently afterward.
func DefaultWeightFor(size SizeCategory) WeightCategory {
	switch size {
	case SizeBig:
		return WeightHeavy
	case SizeVeryBig:
		return WeightVeryHeavy
	default:
		return WeightLight
	}
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Address carries the structured result of an address lookup. All fields are
// optional; free-text entry populates only the Line field.
type Address struct {
	Line       string  `json:"line"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	PostalCode string  `json:"postal_code,omitempty"`
	Country    string  `json:"country,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

// MaxPackageImageBytes caps a package image attachment at 10 MB.
const MaxPackageImageBytes = 10 << 20

type PackageImage struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// BookingDraft is the wizard's working copy of the delivery being booked.
// It lives only inside a BookingSession and is discarded with it.
type BookingDraft struct {
	SenderName     string `json:"sender_name"`
	SenderPhone    string `json:"sender_phone"`
	RecipientName  string `json:"recipient_name"`
	RecipientPhone string `json:"recipient_phone"`
	RecipientEmail string `json:"recipient_email"`

	PickupAddress   Address `json:"pickup_address"`
	DeliveryAddress Address `json:"delivery_address"`

	SizeCategory       SizeCategory   `json:"size_category"`
	WeightCategory     WeightCategory `json:"weight_category"`
	SizeScale          int            `json:"size_scale"`
	ExplicitWeight     string         `json:"explicit_weight,omitempty"`
	PackageDescription string         `json:"package_description,omitempty"`
	DeclaredValue      float64        `json:"declared_value,omitempty"`
	Image              *PackageImage  `json:"image,omitempty"`

	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	PaymentNotes  string        `json:"payment_notes,omitempty"`
}

// BookingSession is one in-flight booking wizard, keyed by a session cookie.
// Stored in Redis with a short TTL; never outlives the funnel.
type BookingSession struct {
	ID                string       `json:"id"`
	Step              WizardStep   `json:"step"`
	Draft             BookingDraft `json:"draft"`
	Rider             *Rider       `json:"rider,omitempty"`
	ProcessingPayment bool         `json:"processing_payment"`
	DeliveryID        string       `json:"delivery_id,omitempty"`
	PaymentReference  string       `json:"payment_reference,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// Rider is the matched courier shown on the rider-found step.
type Rider struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	VehicleType string  `json:"vehicle_type"`
	PlateNumber string  `json:"plate_number,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}
