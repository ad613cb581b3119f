package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"smartride/internal/domain/entities"
	"smartride/internal/usecase/interfaces"
	mock_interfaces "smartride/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func riderFoundSession(method entities.PaymentMethod) entities.BookingSession {
	return entities.BookingSession{
		ID:   "sess-1",
		Step: entities.StepRiderFound,
		Draft: entities.BookingDraft{
			SenderName:     "Ada Obi",
			SenderPhone:    "08030000001",
			RecipientName:  "Bola Ade",
			RecipientPhone: "08030000002",
			RecipientEmail: "bola@example.com",
			SizeCategory:   entities.SizeSmall,
			WeightCategory: entities.WeightLight,
			SizeScale:      100,
			PaymentMethod:  method,
		},
		Rider: &entities.Rider{ID: "rider-9"},
	}
}

func newPaymentUseCaseForTest(
	sessions interfaces.IBookingSessionRepository,
	records interfaces.IBookingRecordRepository,
	delivery interfaces.IDeliveryAPI,
	gateway interfaces.IPaymentGateway,
	events interfaces.IEventPublisher,
) *PaymentUseCase {
	return NewPaymentUseCase(sessions, records, delivery, gateway, NewPricingUseCase(), events, "https://app.test/payments/callback", "/payments/success")
}

func TestPaymentUseCase_Pay_Guards(t *testing.T) {
	t.Run("empty session id", func(t *testing.T) {
		uc := newPaymentUseCaseForTest(nil, nil, nil, nil, nil)
		_, err := uc.Pay(context.Background(), " ", "")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("rejected before rider found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := newPaymentUseCaseForTest(sessions, nil, nil, nil, nil)

		s := riderFoundSession(entities.PaymentMethodCard)
		s.Step = entities.StepSummary
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.Pay(context.Background(), "sess-1", "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("payment already in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := newPaymentUseCaseForTest(sessions, nil, nil, nil, nil)

		s := riderFoundSession(entities.PaymentMethodCard)
		s.ProcessingPayment = true
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.Pay(context.Background(), "sess-1", "")
		if !errors.Is(err, ErrPaymentAlreadyInFlight) {
			t.Fatalf("expected ErrPaymentAlreadyInFlight, got %v", err)
		}
	})

	t.Run("no method selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := newPaymentUseCaseForTest(sessions, nil, nil, nil, nil)

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(riderFoundSession(""), nil)

		_, err := uc.Pay(context.Background(), "sess-1", "")
		if !errors.Is(err, ErrPaymentMethodRequired) {
			t.Fatalf("expected ErrPaymentMethodRequired, got %v", err)
		}
	})

	t.Run("cash and transfer are not online methods", func(t *testing.T) {
		for _, method := range []entities.PaymentMethod{entities.PaymentMethodCash, entities.PaymentMethodTransfer} {
			ctrl := gomock.NewController(t)
			sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
			uc := newPaymentUseCaseForTest(sessions, nil, nil, nil, nil)

			sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(riderFoundSession(method), nil)

			_, err := uc.Pay(context.Background(), "sess-1", "")
			if !errors.Is(err, ErrPaymentMethodUnsupported) {
				t.Fatalf("method %s: expected ErrPaymentMethodUnsupported, got %v", method, err)
			}
			ctrl.Finish()
		}
	})
}

func TestPaymentUseCase_Pay_Orchestration(t *testing.T) {
	t.Run("delivery create failure skips payment init and clears processing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		delivery := mock_interfaces.NewMockIDeliveryAPI(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(sessions, nil, delivery, gateway, nil)

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(riderFoundSession(entities.PaymentMethodCard), nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.BookingSession) error {
				if !s.ProcessingPayment {
					t.Fatalf("expected processing flag set before delivery create")
				}
				return nil
			},
		)
		delivery.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", errors.New("upstream 500"))
		// No gateway expectation: initialization must not run after a create failure.
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.BookingSession) error {
				if s.ProcessingPayment {
					t.Fatalf("expected processing flag cleared after failure")
				}
				return nil
			},
		)

		_, err := uc.Pay(context.Background(), "sess-1", "tok")
		if !errors.Is(err, ErrDeliveryCreateFailed) {
			t.Fatalf("expected ErrDeliveryCreateFailed, got %v", err)
		}
	})

	t.Run("initialize failure clears processing but keeps the delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		records := mock_interfaces.NewMockIBookingRecordRepository(ctrl)
		delivery := mock_interfaces.NewMockIDeliveryAPI(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(sessions, records, delivery, gateway, nil)

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(riderFoundSession(entities.PaymentMethodCard), nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		delivery.EXPECT().Create(gomock.Any(), gomock.Any()).Return("DEL-42", nil)
		records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BookingRecord{}, nil)
		gateway.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(entities.PaymentInit{}, errors.New("gateway 502"))
		// No Cancel expectation: the created delivery survives a failed init.

		_, err := uc.Pay(context.Background(), "sess-1", "tok")
		if !errors.Is(err, ErrPaymentInitFailed) {
			t.Fatalf("expected ErrPaymentInitFailed, got %v", err)
		}
	})

	t.Run("empty init response is a failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		delivery := mock_interfaces.NewMockIDeliveryAPI(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(sessions, nil, delivery, gateway, nil)

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(riderFoundSession(entities.PaymentMethodCard), nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)
		delivery.EXPECT().Create(gomock.Any(), gomock.Any()).Return("DEL-42", nil)
		gateway.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(entities.PaymentInit{}, nil)

		_, err := uc.Pay(context.Background(), "sess-1", "tok")
		if !errors.Is(err, ErrPaymentInitFailed) {
			t.Fatalf("expected ErrPaymentInitFailed, got %v", err)
		}
	})

	t.Run("record create failure does not block the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		records := mock_interfaces.NewMockIBookingRecordRepository(ctrl)
		delivery := mock_interfaces.NewMockIDeliveryAPI(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(sessions, records, delivery, gateway, nil)

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(riderFoundSession(entities.PaymentMethodCard), nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		delivery.EXPECT().Create(gomock.Any(), gomock.Any()).Return("DEL-42", nil)
		records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BookingRecord{}, errors.New("dynamo down"))
		gateway.EXPECT().Initialize(gomock.Any(), gomock.Any()).Return(entities.PaymentInit{AuthorizationURL: "https://pay.test/x", Reference: "ref-1"}, nil)
		records.EXPECT().UpdatePaymentOutcome(gomock.Any(), "DEL-42", entities.PaymentStatusPending, "ref-1").Return(entities.BookingRecord{}, nil)

		start, err := uc.Pay(context.Background(), "sess-1", "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start.Reference != "ref-1" {
			t.Fatalf("unexpected start: %+v", start)
		}
	})

	t.Run("happy path wires quote and addresses into the delivery request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		records := mock_interfaces.NewMockIBookingRecordRepository(ctrl)
		delivery := mock_interfaces.NewMockIDeliveryAPI(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := newPaymentUseCaseForTest(sessions, records, delivery, gateway, events)

		s := riderFoundSession(entities.PaymentMethodCard)
		s.Draft.DeclaredValue = 50000
		s.Draft.PickupAddress = entities.Address{Line: "12 Marina Rd"}
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		delivery.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.DeliveryCreateRequest) (string, error) {
				if req.AuthToken != "tok" {
					t.Fatalf("expected auth token forwarded")
				}
				if req.PickupAddress.City != "Unknown" || req.PickupAddress.PostalCode != "00000" {
					t.Fatalf("expected placeholder address parts, got %+v", req.PickupAddress)
				}
				if req.Dimensions != "30×30×30 cm" {
					t.Fatalf("unexpected dimensions %q", req.Dimensions)
				}
				return "DEL-42", nil
			},
		)
		records.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BookingRecord{})).DoAndReturn(
			func(_ context.Context, r entities.BookingRecord) (entities.BookingRecord, error) {
				if r.DeliveryID != "DEL-42" || r.SessionID != "sess-1" {
					t.Fatalf("unexpected record: %+v", r)
				}
				if r.AmountTotal != 1600 { // 1100 base + 500 insurance
					t.Fatalf("unexpected amount: %d", r.AmountTotal)
				}
				if r.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("expected pending status, got %s", r.PaymentStatus)
				}
				return r, nil
			},
		)
		gateway.EXPECT().Initialize(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.PaymentInitRequest) (entities.PaymentInit, error) {
				if req.Amount != 1600 || req.Currency != "NGN" {
					t.Fatalf("unexpected init request: %+v", req)
				}
				if req.Email != "bola@example.com" {
					t.Fatalf("expected recipient email, got %q", req.Email)
				}
				if req.CallbackURL != "https://app.test/payments/callback" {
					t.Fatalf("unexpected callback url %q", req.CallbackURL)
				}
				return entities.PaymentInit{AuthorizationURL: "https://pay.test/x", Reference: "ref-1", AccessCode: "ac-1"}, nil
			},
		)
		records.EXPECT().UpdatePaymentOutcome(gomock.Any(), "DEL-42", entities.PaymentStatusPending, "ref-1").Return(entities.BookingRecord{}, nil)
		events.EXPECT().Publish(gomock.Any(), "booking.created", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value []byte) error {
				if !strings.Contains(string(value), `"delivery_id":"DEL-42"`) {
					t.Fatalf("expected delivery id in event payload: %s", value)
				}
				return nil
			},
		)

		start, err := uc.Pay(context.Background(), "sess-1", "tok")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start.DeliveryID != "DEL-42" || start.AuthorizationURL != "https://pay.test/x" || start.AccessCode != "ac-1" {
			t.Fatalf("unexpected start: %+v", start)
		}
		if start.Amount != 1600 || start.Currency != "NGN" {
			t.Fatalf("unexpected amount: %+v", start)
		}
	})
}

func TestPaymentUseCase_ResolveCallback(t *testing.T) {
	uc := newPaymentUseCaseForTest(nil, nil, nil, nil, nil)

	t.Run("no reference anywhere", func(t *testing.T) {
		res := uc.ResolveCallback(url.Values{"foo": {"bar"}}, "")
		if res.Found {
			t.Fatalf("expected not found, got %+v", res)
		}
	})

	t.Run("reference param aliases", func(t *testing.T) {
		for _, key := range []string{"reference", "trxref", "trx_ref", "trx", "paymentId"} {
			res := uc.ResolveCallback(url.Values{key: {"ref-1"}}, "")
			if !res.Found || res.Reference != "ref-1" {
				t.Fatalf("key %s: unexpected result %+v", key, res)
			}
		}
	})

	t.Run("cookie delivery id wins over query", func(t *testing.T) {
		res := uc.ResolveCallback(url.Values{"reference": {"ref-1"}, "deliveryId": {"DEL-query"}}, "DEL-cookie")
		if res.DeliveryID != "DEL-cookie" {
			t.Fatalf("expected cookie delivery id, got %q", res.DeliveryID)
		}
	})

	t.Run("query delivery id used when cookie empty", func(t *testing.T) {
		res := uc.ResolveCallback(url.Values{"reference": {"ref-1"}, "delivery_id": {"DEL-q"}}, "")
		if res.DeliveryID != "DEL-q" {
			t.Fatalf("expected query delivery id, got %q", res.DeliveryID)
		}
		if res.SuccessURL != "/payments/success?deliveryId=DEL-q&reference=ref-1" {
			t.Fatalf("unexpected success url %q", res.SuccessURL)
		}
	})

	t.Run("success url without delivery id", func(t *testing.T) {
		res := uc.ResolveCallback(url.Values{"trxref": {"ref-2"}}, "")
		if res.SuccessURL != "/payments/success?reference=ref-2" {
			t.Fatalf("unexpected success url %q", res.SuccessURL)
		}
	})
}

func TestPaymentUseCase_ResolveSuccess(t *testing.T) {
	t.Run("no reference at all", func(t *testing.T) {
		uc := newPaymentUseCaseForTest(nil, nil, nil, nil, nil)
		_, err := uc.ResolveSuccess(context.Background(), url.Values{}, "", "")
		if !errors.Is(err, ErrPaymentReferenceMissing) {
			t.Fatalf("expected ErrPaymentReferenceMissing, got %v", err)
		}
	})

	t.Run("delivery-shaped query reference loses to the cookie", func(t *testing.T) {
		for _, shaped := range []string{"DEL-99", "DEL_99"} {
			ctrl := gomock.NewController(t)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := newPaymentUseCaseForTest(nil, nil, nil, gateway, nil)

			gateway.EXPECT().Verify(gomock.Any(), "ref-cookie").Return(entities.PaymentVerification{Success: true, DeliveryID: "DEL-99"}, nil)

			out, err := uc.ResolveSuccess(context.Background(), url.Values{"paymentId": {shaped}}, "ref-cookie", "")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.PaymentID != "ref-cookie" {
				t.Fatalf("expected cookie reference used, got %q", out.PaymentID)
			}
			ctrl.Finish()
		}
	})

	t.Run("cookie fallback when query empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, nil, nil, gateway, nil)

		gateway.EXPECT().Verify(gomock.Any(), "ref-cookie").Return(entities.PaymentVerification{Success: true}, nil)

		out, err := uc.ResolveSuccess(context.Background(), url.Values{}, "ref-cookie", "DEL-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.DeliveryID != "DEL-7" {
			t.Fatalf("expected cookie delivery id fallback, got %q", out.DeliveryID)
		}
	})

	t.Run("verify error keeps the outcome non-fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, nil, nil, gateway, nil)

		gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(entities.PaymentVerification{}, errors.New("timeout"))

		out, err := uc.ResolveSuccess(context.Background(), url.Values{"reference": {"ref-1"}}, "", "")
		if err == nil {
			t.Fatalf("expected verify error surfaced")
		}
		if out.Success || out.PaymentID != "ref-1" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})

	t.Run("negative verification returns a message without confirming", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mock_interfaces.NewMockIBookingRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, records, nil, gateway, nil)

		gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(entities.PaymentVerification{Success: false, RawStatus: "abandoned"}, nil)
		// No UpdatePaymentOutcome expectation: a failed payment never confirms a record.

		out, err := uc.ResolveSuccess(context.Background(), url.Values{"reference": {"ref-1"}}, "", "DEL-7")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Success {
			t.Fatalf("expected unsuccessful outcome")
		}
		if out.Message == "" {
			t.Fatalf("expected a user-facing message")
		}
	})

	t.Run("confirmed payment updates the record and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mock_interfaces.NewMockIBookingRecordRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		events := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := newPaymentUseCaseForTest(nil, records, nil, gateway, events)

		gateway.EXPECT().Verify(gomock.Any(), "ref-1").Return(entities.PaymentVerification{Success: true, DeliveryID: "DEL-7"}, nil)
		records.EXPECT().UpdatePaymentOutcome(gomock.Any(), "DEL-7", entities.PaymentStatusConfirmed, "ref-1").Return(entities.BookingRecord{}, nil)
		events.EXPECT().Publish(gomock.Any(), "payment.confirmed", gomock.Any()).Return(nil)

		out, err := uc.ResolveSuccess(context.Background(), url.Values{"reference": {"ref-1"}}, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success || out.DeliveryID != "DEL-7" {
			t.Fatalf("unexpected outcome: %+v", out)
		}
	})
}

func TestPaymentUseCase_CancelDelivery(t *testing.T) {
	t.Run("nothing to cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		uc := newPaymentUseCaseForTest(sessions, nil, nil, nil, nil)

		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(riderFoundSession(entities.PaymentMethodCard), nil)

		err := uc.CancelDelivery(context.Background(), "sess-1", "tok")
		if !errors.Is(err, ErrNoDeliveryToCancel) {
			t.Fatalf("expected ErrNoDeliveryToCancel, got %v", err)
		}
	})

	t.Run("cancel forwarded to the delivery api", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockIBookingSessionRepository(ctrl)
		delivery := mock_interfaces.NewMockIDeliveryAPI(ctrl)
		uc := newPaymentUseCaseForTest(sessions, nil, delivery, nil, nil)

		s := riderFoundSession(entities.PaymentMethodCard)
		s.DeliveryID = "DEL-42"
		sessions.EXPECT().GetByID(gomock.Any(), "sess-1").Return(s, nil)
		delivery.EXPECT().Cancel(gomock.Any(), "tok", "DEL-42").Return(nil)

		if err := uc.CancelDelivery(context.Background(), "sess-1", "tok"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_Helpers(t *testing.T) {
	t.Run("firstNonEmpty respects order", func(t *testing.T) {
		q := url.Values{"trxref": {"second"}, "reference": {"first"}}
		if got := firstNonEmpty(q, callbackReferenceParams); got != "first" {
			t.Fatalf("expected first, got %q", got)
		}
	})

	t.Run("firstNonEmpty skips blanks", func(t *testing.T) {
		q := url.Values{"reference": {"  "}, "trx": {"ref-x"}}
		if got := firstNonEmpty(q, callbackReferenceParams); got != "ref-x" {
			t.Fatalf("expected ref-x, got %q", got)
		}
	})

	t.Run("looksLikeDeliveryID", func(t *testing.T) {
		if !looksLikeDeliveryID("DEL-1") || !looksLikeDeliveryID("DEL_1") {
			t.Fatalf("expected DEL prefixes recognized")
		}
		if looksLikeDeliveryID("ref-1") || looksLikeDeliveryID("") {
			t.Fatalf("expected non-delivery values rejected")
		}
	})

	t.Run("withPlaceholders keeps provided parts", func(t *testing.T) {
		a := withPlaceholders(entities.Address{Line: "12 Marina Rd", City: "Lagos"})
		if a.City != "Lagos" {
			t.Fatalf("expected city kept, got %q", a.City)
		}
		if a.State != "Unknown" || a.PostalCode != "00000" {
			t.Fatalf("expected placeholders, got %+v", a)
		}
	})
}
