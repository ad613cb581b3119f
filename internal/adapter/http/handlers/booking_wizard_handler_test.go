package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartride/internal/adapter/http/handlers/mocks"
	"smartride/internal/domain/entities"
	"smartride/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func wizardRouter(h *BookingWizardHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/bookings", h.StartSession)
	r.GET("/v1/bookings/:id", h.GetSession)
	r.PUT("/v1/bookings/:id/form", h.SubmitForm)
	r.POST("/v1/bookings/:id/back", h.Back)
	r.GET("/v1/bookings/:id/quote", h.GetQuote)
	r.POST("/v1/bookings/:id/package/image", h.AttachImage)
	r.POST("/v1/bookings/:id/find-rider", h.FindRider)
	r.POST("/v1/bookings/:id/payment-method", h.SelectPaymentMethod)
	return r
}

func formSession() entities.BookingSession {
	return entities.BookingSession{
		ID:   "sess-1",
		Step: entities.StepForm,
		Draft: entities.BookingDraft{
			SizeCategory:   entities.SizeSmall,
			WeightCategory: entities.WeightLight,
			SizeScale:      100,
		},
	}
}

func expectSessionRender(pricing *mocks.MockIPricingUseCase) {
	pricing.EXPECT().Quote(gomock.Any()).Return(entities.PricingResult{BaseRate: 1100, Total: 1100, EffectiveWeight: 2.5}).AnyTimes()
	pricing.EXPECT().Dimensions(gomock.Any()).Return("30×30×30 cm").AnyTimes()
}

func TestBookingWizardHandler_StartSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sets the session cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		wizard.EXPECT().Start(gomock.Any()).Return(formSession(), nil)
		expectSessionRender(pricing)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		cookie := w.Header().Get("Set-Cookie")
		if !strings.Contains(cookie, SessionCookieName+"=sess-1") {
			t.Fatalf("expected session cookie, got %q", cookie)
		}
	})

	t.Run("start failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		wizard.EXPECT().Start(gomock.Any()).Return(entities.BookingSession{}, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestBookingWizardHandler_SubmitForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		req := httptest.NewRequest(http.MethodPut, "/v1/bookings/sess-1/form", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing identity field fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		body := `{"sender_name":"Ada","recipient_name":"Bola","recipient_phone":"0803","recipient_email":"b@x.com"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/bookings/sess-1/form", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong step maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		wizard.EXPECT().SubmitForm(gomock.Any(), "sess-1", gomock.Any()).Return(entities.BookingSession{}, usecase.ErrInvalidTransition)

		body := `{"sender_name":"Ada","sender_phone":"0803","recipient_name":"Bola","recipient_phone":"0804","recipient_email":"b@x.com"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/bookings/sess-1/form", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns the summary snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		s := formSession()
		s.Step = entities.StepSummary
		wizard.EXPECT().SubmitForm(gomock.Any(), "sess-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, form usecase.FormInput) (entities.BookingSession, error) {
				if form.SenderName != "Ada" || form.RecipientEmail != "b@x.com" {
					t.Fatalf("unexpected form input: %+v", form)
				}
				return s, nil
			},
		)
		expectSessionRender(pricing)

		body := `{"sender_name":"Ada","sender_phone":"0803","recipient_name":"Bola","recipient_phone":"0804","recipient_email":"b@x.com","size_category":"small"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/bookings/sess-1/form", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["step"] != "summary" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBookingWizardHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown session maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		wizard.EXPECT().Get(gomock.Any(), "nope").Return(entities.BookingSession{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/nope/quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("quote body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		wizard.EXPECT().Get(gomock.Any(), "sess-1").Return(formSession(), nil)
		pricing.EXPECT().Quote(gomock.Any()).Return(entities.PricingResult{BaseRate: 1100, Insurance: 500, Total: 1600, EffectiveWeight: 2.5})

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/sess-1/quote", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["total"] != float64(1600) || resp["currency"] != "NGN" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBookingWizardHandler_AttachImage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buildMultipart := func(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
		_ = mw.Close()
		return &buf, mw.FormDataContentType()
	}

	t.Run("missing file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/sess-1/package/image", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("image stored on the draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		wizard.EXPECT().AttachImage(gomock.Any(), "sess-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, img entities.PackageImage) (entities.BookingSession, error) {
				if img.FileName != "box.jpg" || string(img.Data) != "jpeg-bytes" {
					t.Fatalf("unexpected image: %+v", img)
				}
				s := formSession()
				s.Draft.Image = &img
				return s, nil
			},
		)
		expectSessionRender(pricing)

		body, contentType := buildMultipart(t, "image", "box.jpg", []byte("jpeg-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/sess-1/package/image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBookingWizardHandler_FindRider(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rider returned in the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		s := formSession()
		s.Step = entities.StepRiderFound
		s.Rider = &entities.Rider{ID: "rider-9", Name: "Musa", VehicleType: "bike"}
		wizard.EXPECT().FindRider(gomock.Any(), "sess-1").Return(s, nil)
		expectSessionRender(pricing)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/sess-1/find-rider", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		rider, ok := resp["rider"].(map[string]any)
		if !ok || rider["name"] != "Musa" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("skip from form maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wizard := mocks.NewMockIBookingWizardUseCase(ctrl)
		pricing := mocks.NewMockIPricingUseCase(ctrl)
		h := NewBookingWizardHandler(wizard, pricing)
		r := wizardRouter(h)

		wizard.EXPECT().FindRider(gomock.Any(), "sess-1").Return(entities.BookingSession{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/sess-1/find-rider", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapWizardError(t *testing.T) {
	if got := mapWizardError(usecase.ErrInvalidSessionID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWizardError(usecase.ErrMissingRequiredField); got.HTTPStatus != http.StatusBadRequest || got.Code != "MISSING_REQUIRED_FIELD" {
		t.Fatalf("expected 400 MISSING_REQUIRED_FIELD")
	}
	if got := mapWizardError(usecase.ErrSessionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWizardError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapWizardError(usecase.ErrImageTooLarge); got.HTTPStatus != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413")
	}
	if got := mapWizardError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
