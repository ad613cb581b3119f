package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"smartride/internal/domain/entities"
	"smartride/internal/usecase/interfaces"

	"github.com/goccy/go-json"
)

var (
	ErrPaymentMethodRequired    = errors.New("payment method not selected")
	ErrPaymentMethodUnsupported = errors.New("payment method not supported for online checkout")
	ErrDeliveryCreateFailed     = errors.New("delivery creation failed")
	ErrPaymentInitFailed        = errors.New("payment initialization failed")
	ErrPaymentReferenceMissing  = errors.New("payment reference missing")
	ErrNoDeliveryToCancel       = errors.New("no delivery created for this session")
)

// Query parameter names tolerated when resolving a payment reference after
// the gateway redirect. Order matters: first non-empty wins.
var (
	callbackReferenceParams = []string{"reference", "trxref", "trx_ref", "trx", "paymentId"}
	successReferenceParams  = []string{"paymentId", "reference", "trx", "payment_id"}
	deliveryIDParams        = []string{"deliveryId", "delivery_id"}
)

// Placeholder address parts sent to the delivery API when the lookup never
// resolved a structured address.
const (
	placeholderCity  = "Unknown"
	placeholderState = "Unknown"
	placeholderZip   = "00000"

	paymentCurrency = "NGN"
)

// PaymentStart is what the client needs to hand control to the gateway:
// either navigate to AuthorizationURL (hosted flow) or mount the embedded
// widget with Reference.
type PaymentStart struct {
	DeliveryID       string
	Reference        string
	AuthorizationURL string
	AccessCode       string
	Amount           int64
	Currency         string
}

// CallbackResult is the resolution of the gateway's redirect back to us.
type CallbackResult struct {
	Found      bool
	Reference  string
	DeliveryID string
	SuccessURL string
}

// SuccessOutcome is the final verification result shown on the success page.
type SuccessOutcome struct {
	Success    bool
	DeliveryID string
	PaymentID  string
	Message    string
}

// IPaymentUseCase orchestrates delivery creation, payment initialization and
// the post-redirect resolution pages.

type IPaymentUseCase interface {
	Pay(ctx context.Context, sessionID, authToken string) (PaymentStart, error)
	ResolveCallback(query url.Values, cookieDeliveryID string) CallbackResult
	ResolveSuccess(ctx context.Context, query url.Values, cookiePaymentID, cookieDeliveryID string) (SuccessOutcome, error)
	CancelDelivery(ctx context.Context, sessionID, authToken string) error
}

type PaymentUseCase struct {
	sessions interfaces.IBookingSessionRepository
	records  interfaces.IBookingRecordRepository
	delivery interfaces.IDeliveryAPI
	gateway  interfaces.IPaymentGateway
	pricing  IPricingUseCase
	events   interfaces.IEventPublisher

	callbackURL string
	successPath string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	sessions interfaces.IBookingSessionRepository,
	records interfaces.IBookingRecordRepository,
	delivery interfaces.IDeliveryAPI,
	gateway interfaces.IPaymentGateway,
	pricing IPricingUseCase,
	events interfaces.IEventPublisher,
	callbackURL, successPath string,
) *PaymentUseCase {
	return &PaymentUseCase{
		sessions:    sessions,
		records:     records,
		delivery:    delivery,
		gateway:     gateway,
		pricing:     pricing,
		events:      events,
		callbackURL: callbackURL,
		successPath: successPath,
	}
}

// Pay runs the card checkout orchestration for a rider-found session:
// create the delivery, then initialize the payment. A failure after delivery
// creation does not cancel the delivery; the record persists regardless of
// payment outcome.
func (u *PaymentUseCase) Pay(ctx context.Context, sessionID, authToken string) (PaymentStart, error) {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return PaymentStart{}, err
	}
	if s.Step != entities.StepRiderFound {
		log.Printf("[payment][usecase] pay rejected session_id=%s step=%s", s.ID, s.Step)
		return PaymentStart{}, ErrInvalidTransition
	}
	if s.ProcessingPayment {
		return PaymentStart{}, ErrPaymentAlreadyInFlight
	}
	if s.Draft.PaymentMethod == "" {
		return PaymentStart{}, ErrPaymentMethodRequired
	}
	if s.Draft.PaymentMethod != entities.PaymentMethodCard {
		log.Printf("[payment][usecase] unsupported method session_id=%s method=%s", s.ID, s.Draft.PaymentMethod)
		return PaymentStart{}, ErrPaymentMethodUnsupported
	}
	if u.gateway == nil {
		return PaymentStart{}, errors.New("payment gateway not configured")
	}
	if u.delivery == nil {
		return PaymentStart{}, errors.New("delivery api not configured")
	}

	s.ProcessingPayment = true
	if err := u.saveSession(ctx, &s); err != nil {
		return PaymentStart{}, err
	}

	quote := u.pricing.Quote(s.Draft)
	log.Printf("[payment][usecase] orchestration start session_id=%s total=%d", s.ID, quote.Total)

	deliveryID, err := u.delivery.Create(ctx, u.buildDeliveryRequest(s, authToken))
	if err != nil {
		log.Printf("[payment][usecase] delivery create failed session_id=%s err=%v", s.ID, err)
		u.clearProcessing(ctx, &s)
		return PaymentStart{}, fmt.Errorf("%w: %v", ErrDeliveryCreateFailed, err)
	}
	log.Printf("[payment][usecase] delivery created session_id=%s delivery_id=%s", s.ID, deliveryID)

	s.DeliveryID = deliveryID
	if err := u.saveSession(ctx, &s); err != nil {
		return PaymentStart{}, err
	}

	now := time.Now().UTC()
	record := entities.BookingRecord{
		DeliveryID:    deliveryID,
		SessionID:     s.ID,
		AmountTotal:   quote.Total,
		Currency:      paymentCurrency,
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if u.records != nil {
		if _, err := u.records.Create(ctx, record); err != nil {
			// Audit is best-effort; the booking proceeds without it.
			log.Printf("[payment][usecase] record create failed delivery_id=%s err=%v", deliveryID, err)
		}
	}

	init, err := u.gateway.Initialize(ctx, interfaces.PaymentInitRequest{
		Amount:      quote.Total,
		Currency:    paymentCurrency,
		Email:       s.Draft.RecipientEmail,
		CallbackURL: u.callbackURL,
		DeliveryID:  deliveryID,
	})
	if err != nil {
		log.Printf("[payment][usecase] initialize failed session_id=%s delivery_id=%s err=%v", s.ID, deliveryID, err)
		u.clearProcessing(ctx, &s)
		return PaymentStart{}, fmt.Errorf("%w: %v", ErrPaymentInitFailed, err)
	}
	if init.AuthorizationURL == "" && init.Reference == "" {
		u.clearProcessing(ctx, &s)
		return PaymentStart{}, fmt.Errorf("%w: response carried neither authorization url nor reference", ErrPaymentInitFailed)
	}
	log.Printf("[payment][usecase] initialize success session_id=%s delivery_id=%s reference=%s", s.ID, deliveryID, init.Reference)

	s.PaymentReference = init.Reference
	if err := u.saveSession(ctx, &s); err != nil {
		return PaymentStart{}, err
	}
	if u.records != nil && init.Reference != "" {
		if _, err := u.records.UpdatePaymentOutcome(ctx, deliveryID, entities.PaymentStatusPending, init.Reference); err != nil {
			log.Printf("[payment][usecase] record update failed delivery_id=%s err=%v", deliveryID, err)
		}
	}

	u.publish(ctx, "booking.created", map[string]any{
		"session_id":  s.ID,
		"delivery_id": deliveryID,
		"amount":      quote.Total,
		"currency":    paymentCurrency,
		"reference":   init.Reference,
	})

	return PaymentStart{
		DeliveryID:       deliveryID,
		Reference:        init.Reference,
		AuthorizationURL: init.AuthorizationURL,
		AccessCode:       init.AccessCode,
		Amount:           quote.Total,
		Currency:         paymentCurrency,
	}, nil
}

// ResolveCallback maps the gateway's redirect query back onto a canonical
// success URL. No reference means the round trip lost its correlation and
// the caller should fall back to the deliveries list.
func (u *PaymentUseCase) ResolveCallback(query url.Values, cookieDeliveryID string) CallbackResult {
	reference := firstNonEmpty(query, callbackReferenceParams)
	if reference == "" {
		log.Printf("[payment][usecase] callback without reference")
		return CallbackResult{}
	}

	deliveryID := strings.TrimSpace(cookieDeliveryID)
	if deliveryID == "" {
		deliveryID = firstNonEmpty(query, deliveryIDParams)
	}

	target := url.Values{}
	target.Set("reference", reference)
	if deliveryID != "" {
		target.Set("deliveryId", deliveryID)
	}

	return CallbackResult{
		Found:      true,
		Reference:  reference,
		DeliveryID: deliveryID,
		SuccessURL: u.successPath + "?" + target.Encode(),
	}
}

// ResolveSuccess verifies the payment identified by query or cookie. A
// delivery-shaped query value (DEL- / DEL_ prefix) loses to the cookie,
// which holds the actual gateway reference.
func (u *PaymentUseCase) ResolveSuccess(ctx context.Context, query url.Values, cookiePaymentID, cookieDeliveryID string) (SuccessOutcome, error) {
	paymentID := firstNonEmpty(query, successReferenceParams)
	cookiePaymentID = strings.TrimSpace(cookiePaymentID)
	if looksLikeDeliveryID(paymentID) && cookiePaymentID != "" {
		log.Printf("[payment][usecase] delivery-shaped payment id in query; preferring cookie reference")
		paymentID = cookiePaymentID
	}
	if paymentID == "" {
		paymentID = cookiePaymentID
	}
	if paymentID == "" {
		return SuccessOutcome{}, ErrPaymentReferenceMissing
	}
	if u.gateway == nil {
		return SuccessOutcome{}, errors.New("payment gateway not configured")
	}

	verification, err := u.gateway.Verify(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] verify failed payment_id=%s err=%v", paymentID, err)
		// Verify failure is not fatal to the booking; the delivery exists.
		return SuccessOutcome{PaymentID: paymentID, Message: "Payment verification failed"}, err
	}

	deliveryID := verification.DeliveryID
	if deliveryID == "" {
		deliveryID = strings.TrimSpace(cookieDeliveryID)
	}
	if deliveryID == "" {
		deliveryID = firstNonEmpty(query, deliveryIDParams)
	}

	if !verification.Success {
		msg := verification.Message
		if msg == "" {
			msg = "Payment was not successful"
		}
		log.Printf("[payment][usecase] verify negative payment_id=%s status=%s", paymentID, verification.RawStatus)
		return SuccessOutcome{PaymentID: paymentID, DeliveryID: deliveryID, Message: msg}, nil
	}

	if u.records != nil && deliveryID != "" {
		if _, err := u.records.UpdatePaymentOutcome(ctx, deliveryID, entities.PaymentStatusConfirmed, paymentID); err != nil {
			log.Printf("[payment][usecase] record outcome update failed delivery_id=%s err=%v", deliveryID, err)
		}
	}

	u.publish(ctx, "payment.confirmed", map[string]any{
		"delivery_id": deliveryID,
		"payment_id":  paymentID,
	})

	log.Printf("[payment][usecase] payment confirmed payment_id=%s delivery_id=%s", paymentID, deliveryID)
	return SuccessOutcome{Success: true, PaymentID: paymentID, DeliveryID: deliveryID, Message: "Payment confirmed"}, nil
}

func (u *PaymentUseCase) CancelDelivery(ctx context.Context, sessionID, authToken string) error {
	s, err := u.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if s.DeliveryID == "" {
		return ErrNoDeliveryToCancel
	}
	if err := u.delivery.Cancel(ctx, authToken, s.DeliveryID); err != nil {
		log.Printf("[payment][usecase] delivery cancel failed delivery_id=%s err=%v", s.DeliveryID, err)
		return err
	}
	log.Printf("[payment][usecase] delivery cancelled delivery_id=%s", s.DeliveryID)
	return nil
}

func (u *PaymentUseCase) buildDeliveryRequest(s entities.BookingSession, authToken string) interfaces.DeliveryCreateRequest {
	return interfaces.DeliveryCreateRequest{
		SenderName:         s.Draft.SenderName,
		SenderPhone:        s.Draft.SenderPhone,
		RecipientName:      s.Draft.RecipientName,
		RecipientPhone:     s.Draft.RecipientPhone,
		RecipientEmail:     s.Draft.RecipientEmail,
		PickupAddress:      withPlaceholders(s.Draft.PickupAddress),
		DeliveryAddress:    withPlaceholders(s.Draft.DeliveryAddress),
		PackageDescription: s.Draft.PackageDescription,
		Dimensions:         u.pricing.Dimensions(s.Draft),
		WeightCategory:     s.Draft.WeightCategory,
		DeclaredValue:      s.Draft.DeclaredValue,
		Image:              s.Draft.Image,
		AuthToken:          authToken,
	}
}

func (u *PaymentUseCase) clearProcessing(ctx context.Context, s *entities.BookingSession) {
	s.ProcessingPayment = false
	if err := u.saveSession(ctx, s); err != nil {
		log.Printf("[payment][usecase] clear processing failed session_id=%s err=%v", s.ID, err)
	}
}

func (u *PaymentUseCase) loadSession(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.BookingSession{}, ErrInvalidSessionID
	}
	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if s.ID == "" {
		return entities.BookingSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *PaymentUseCase) saveSession(ctx context.Context, s *entities.BookingSession) error {
	s.UpdatedAt = time.Now().UTC()
	return u.sessions.Save(ctx, *s)
}

func (u *PaymentUseCase) publish(ctx context.Context, eventType string, payload map[string]any) {
	if u.events == nil {
		return
	}
	payload["event"] = eventType
	payload["at"] = time.Now().UTC().Format(time.RFC3339)
	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[payment][usecase] event marshal failed event=%s err=%v", eventType, err)
		return
	}
	if err := u.events.Publish(ctx, eventType, b); err != nil {
		log.Printf("[payment][usecase] event publish failed event=%s err=%v", eventType, err)
	}
}

func withPlaceholders(a entities.Address) entities.Address {
	if strings.TrimSpace(a.City) == "" {
		a.City = placeholderCity
	}
	if strings.TrimSpace(a.State) == "" {
		a.State = placeholderState
	}
	if strings.TrimSpace(a.PostalCode) == "" {
		a.PostalCode = placeholderZip
	}
	return a
}

func firstNonEmpty(query url.Values, keys []string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(query.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

func looksLikeDeliveryID(v string) bool {
	return strings.HasPrefix(v, "DEL-") || strings.HasPrefix(v, "DEL_")
}
