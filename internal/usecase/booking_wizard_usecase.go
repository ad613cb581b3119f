package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"smartride/internal/domain/entities"
	"smartride/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID       = errors.New("invalid session id")
	ErrSessionNotFound        = errors.New("booking session not found")
	ErrInvalidTransition      = errors.New("invalid wizard step transition")
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrInvalidSizeScale       = errors.New("size scale out of range")
	ErrInvalidDeclaredValue   = errors.New("declared value must not be negative")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrImageTooLarge          = errors.New("package image exceeds size limit")
	ErrRiderMatcherNotReady   = errors.New("rider matcher not configured")
	ErrPaymentAlreadyInFlight = errors.New("payment already in flight")
)

// FormInput is the wizard form step payload. Identity fields are required
// non-empty; everything else is optional.
type FormInput struct {
	SenderName     string
	SenderPhone    string
	RecipientName  string
	RecipientPhone string
	RecipientEmail string

	PickupAddress   entities.Address
	DeliveryAddress entities.Address

	SizeCategory       entities.SizeCategory
	WeightCategory     entities.WeightCategory
	SizeScale          int
	ExplicitWeight     string
	PackageDescription string
	DeclaredValue      float64
}

// IBookingWizardUseCase owns the wizard session lifecycle and its step
// transitions. Every transition is guarded server-side; an out-of-order
// request gets ErrInvalidTransition instead of a silent skip.

type IBookingWizardUseCase interface {
	Start(ctx context.Context) (entities.BookingSession, error)
	Get(ctx context.Context, sessionID string) (entities.BookingSession, error)
	SubmitForm(ctx context.Context, sessionID string, form FormInput) (entities.BookingSession, error)
	Back(ctx context.Context, sessionID string) (entities.BookingSession, error)
	AttachImage(ctx context.Context, sessionID string, img entities.PackageImage) (entities.BookingSession, error)
	FindRider(ctx context.Context, sessionID string) (entities.BookingSession, error)
	SelectPaymentMethod(ctx context.Context, sessionID string, method entities.PaymentMethod, notes string) (entities.BookingSession, error)
	CancelProcessing(ctx context.Context, sessionID string) (entities.BookingSession, error)
}

type BookingWizardUseCase struct {
	sessions interfaces.IBookingSessionRepository
	matcher  interfaces.IRiderMatcher
}

var _ IBookingWizardUseCase = (*BookingWizardUseCase)(nil)

func NewBookingWizardUseCase(sessions interfaces.IBookingSessionRepository, matcher interfaces.IRiderMatcher) *BookingWizardUseCase {
	return &BookingWizardUseCase{sessions: sessions, matcher: matcher}
}

func (u *BookingWizardUseCase) Start(ctx context.Context) (entities.BookingSession, error) {
	now := time.Now().UTC()
	s := entities.BookingSession{
		ID:   uuid.NewString(),
		Step: entities.StepForm,
		Draft: entities.BookingDraft{
			SizeCategory:   entities.SizeSmall,
			WeightCategory: entities.DefaultWeightFor(entities.SizeSmall),
			SizeScale:      defaultSizeScale,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		log.Printf("[wizard][usecase] start failed err=%v", err)
		return entities.BookingSession{}, err
	}
	log.Printf("[wizard][usecase] session started session_id=%s", s.ID)
	return s, nil
}

func (u *BookingWizardUseCase) Get(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	return u.load(ctx, sessionID)
}

func (u *BookingWizardUseCase) SubmitForm(ctx context.Context, sessionID string, form FormInput) (entities.BookingSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if s.Step != entities.StepForm {
		log.Printf("[wizard][usecase] form submit rejected session_id=%s step=%s", s.ID, s.Step)
		return entities.BookingSession{}, ErrInvalidTransition
	}

	if err := validateForm(form); err != nil {
		log.Printf("[wizard][usecase] form invalid session_id=%s err=%v", s.ID, err)
		return entities.BookingSession{}, err
	}

	size := form.SizeCategory
	if size == "" {
		size = entities.SizeSmall
	}
	weight := form.WeightCategory
	if weight == "" {
		// Default mapping on size change; an explicit weight category in the
		// form is a user override and wins.
		weight = entities.DefaultWeightFor(size)
	}
	scale := form.SizeScale
	if scale == 0 {
		scale = defaultSizeScale
	}

	image := s.Draft.Image
	s.Draft = entities.BookingDraft{
		SenderName:         strings.TrimSpace(form.SenderName),
		SenderPhone:        strings.TrimSpace(form.SenderPhone),
		RecipientName:      strings.TrimSpace(form.RecipientName),
		RecipientPhone:     strings.TrimSpace(form.RecipientPhone),
		RecipientEmail:     strings.TrimSpace(form.RecipientEmail),
		PickupAddress:      form.PickupAddress,
		DeliveryAddress:    form.DeliveryAddress,
		SizeCategory:       size,
		WeightCategory:     weight,
		SizeScale:          scale,
		ExplicitWeight:     strings.TrimSpace(form.ExplicitWeight),
		PackageDescription: form.PackageDescription,
		DeclaredValue:      form.DeclaredValue,
		Image:              image,
		PaymentMethod:      s.Draft.PaymentMethod,
		PaymentNotes:       s.Draft.PaymentNotes,
	}
	s.Step = entities.StepSummary

	if err := u.save(ctx, &s); err != nil {
		return entities.BookingSession{}, err
	}
	log.Printf("[wizard][usecase] form accepted session_id=%s step=%s", s.ID, s.Step)
	return s, nil
}

func (u *BookingWizardUseCase) Back(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	// summary -> form is the only backward edge.
	if s.Step != entities.StepSummary {
		return entities.BookingSession{}, ErrInvalidTransition
	}
	s.Step = entities.StepForm
	if err := u.save(ctx, &s); err != nil {
		return entities.BookingSession{}, err
	}
	return s, nil
}

func (u *BookingWizardUseCase) AttachImage(ctx context.Context, sessionID string, img entities.PackageImage) (entities.BookingSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if s.Step != entities.StepForm && s.Step != entities.StepSummary {
		return entities.BookingSession{}, ErrInvalidTransition
	}
	if len(img.Data) == 0 {
		return entities.BookingSession{}, fmt.Errorf("%w: image", ErrMissingRequiredField)
	}
	if len(img.Data) > entities.MaxPackageImageBytes {
		log.Printf("[wizard][usecase] image rejected session_id=%s size=%d", s.ID, len(img.Data))
		return entities.BookingSession{}, ErrImageTooLarge
	}
	s.Draft.Image = &img
	if err := u.save(ctx, &s); err != nil {
		return entities.BookingSession{}, err
	}
	log.Printf("[wizard][usecase] image attached session_id=%s bytes=%d", s.ID, len(img.Data))
	return s, nil
}

func (u *BookingWizardUseCase) FindRider(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if s.Step != entities.StepSummary {
		log.Printf("[wizard][usecase] find-rider rejected session_id=%s step=%s", s.ID, s.Step)
		return entities.BookingSession{}, ErrInvalidTransition
	}
	if u.matcher == nil {
		return entities.BookingSession{}, ErrRiderMatcherNotReady
	}

	// Persist the intermediate step so a concurrent snapshot read sees the
	// wizard searching while the matcher runs.
	s.Step = entities.StepFindingRider
	if err := u.save(ctx, &s); err != nil {
		return entities.BookingSession{}, err
	}
	log.Printf("[wizard][usecase] finding rider session_id=%s", s.ID)

	rider, err := u.matcher.Match(ctx, s.Draft)
	if err != nil {
		log.Printf("[wizard][usecase] rider match failed session_id=%s err=%v", s.ID, err)
		// Return the wizard to an interactive screen; no retry is automatic.
		s.Step = entities.StepSummary
		if saveErr := u.save(ctx, &s); saveErr != nil {
			return entities.BookingSession{}, saveErr
		}
		return entities.BookingSession{}, err
	}

	s.Rider = &rider
	s.Step = entities.StepRiderFound
	if err := u.save(ctx, &s); err != nil {
		return entities.BookingSession{}, err
	}
	log.Printf("[wizard][usecase] rider found session_id=%s rider_id=%s", s.ID, rider.ID)
	return s, nil
}

func (u *BookingWizardUseCase) SelectPaymentMethod(ctx context.Context, sessionID string, method entities.PaymentMethod, notes string) (entities.BookingSession, error) {
	switch method {
	case entities.PaymentMethodCash, entities.PaymentMethodCard, entities.PaymentMethodTransfer:
	default:
		return entities.BookingSession{}, ErrInvalidPaymentMethod
	}

	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	if s.Step != entities.StepRiderFound {
		return entities.BookingSession{}, ErrInvalidTransition
	}
	s.Draft.PaymentMethod = method
	s.Draft.PaymentNotes = notes
	if err := u.save(ctx, &s); err != nil {
		return entities.BookingSession{}, err
	}
	return s, nil
}

func (u *BookingWizardUseCase) CancelProcessing(ctx context.Context, sessionID string) (entities.BookingSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.BookingSession{}, err
	}
	s.ProcessingPayment = false
	if err := u.save(ctx, &s); err != nil {
		return entities.BookingSession{}, err
	}
	return s, nil
}

func (u *BookingWizardUseCase) load(ctx context.Context, sessionID string) (entities.BookingSession, error) {
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

func (u *BookingWizardUseCase) save(ctx context.Context, s *entities.BookingSession) error {
	s.UpdatedAt = time.Now().UTC()
	if err := u.sessions.Save(ctx, *s); err != nil {
		log.Printf("[wizard][usecase] save failed session_id=%s err=%v", s.ID, err)
		return err
	}
	return nil
}

func validateForm(form FormInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"sender_name", form.SenderName},
		{"sender_phone", form.SenderPhone},
		{"recipient_name", form.RecipientName},
		{"recipient_phone", form.RecipientPhone},
		{"recipient_email", form.RecipientEmail},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, f.name)
		}
	}

	if form.SizeScale != 0 && (form.SizeScale < minSizeScale || form.SizeScale > maxSizeScale) {
		return ErrInvalidSizeScale
	}
	if form.DeclaredValue < 0 {
		return ErrInvalidDeclaredValue
	}
	return nil
}
