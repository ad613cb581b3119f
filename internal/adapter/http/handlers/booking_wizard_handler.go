package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "smartride/internal/adapter/http/dto/request"
	response "smartride/internal/adapter/http/dto/response"
	"smartride/internal/domain/entities"
	"smartride/internal/usecase"
	"smartride/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// BookingWizardHandler drives the wizard session over HTTP. Each endpoint is
// one user action; the usecase guards the step transitions.

type BookingWizardHandler struct {
	wizard  usecase.IBookingWizardUseCase
	pricing usecase.IPricingUseCase
}

func NewBookingWizardHandler(wizard usecase.IBookingWizardUseCase, pricing usecase.IPricingUseCase) *BookingWizardHandler {
	return &BookingWizardHandler{wizard: wizard, pricing: pricing}
}

// StartSession opens a fresh wizard session and hands its id back in a cookie.
//
// @Summary  Start a booking wizard session
// @Tags     bookings
// @Produce  json
// @Success  201 {object} response.BookingSessionResponse
// @Router   /bookings [post]
func (h *BookingWizardHandler) StartSession(c *gin.Context) {
	s, err := h.wizard.Start(c.Request.Context())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.SetCookie(SessionCookieName, s.ID, pendingCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusCreated, h.sessionResponse(s))
}

// GetSession returns the wizard snapshot: step, draft, rider and quote.
//
// @Summary  Wizard session snapshot
// @Tags     bookings
// @Produce  json
// @Param    id path string true "session id"
// @Success  200 {object} response.BookingSessionResponse
// @Router   /bookings/{id} [get]
func (h *BookingWizardHandler) GetSession(c *gin.Context) {
	s, err := h.wizard.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(s))
}

// SubmitForm validates the form step and advances to summary.
//
// @Summary  Submit the booking form
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    id path string true "session id"
// @Param    payload body request.BookingFormRequest true "form fields"
// @Success  200 {object} response.BookingSessionResponse
// @Router   /bookings/{id}/form [put]
func (h *BookingWizardHandler) SubmitForm(c *gin.Context) {
	var payload request.BookingFormRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	s, err := h.wizard.SubmitForm(c.Request.Context(), c.Param("id"), payload.ToFormInput())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(s))
}

// Back walks summary back to the form step.
//
// @Summary  Return from summary to the form
// @Tags     bookings
// @Produce  json
// @Param    id path string true "session id"
// @Success  200 {object} response.BookingSessionResponse
// @Router   /bookings/{id}/back [post]
func (h *BookingWizardHandler) Back(c *gin.Context) {
	s, err := h.wizard.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(s))
}

// GetQuote prices the current draft.
//
// @Summary  Quote the current draft
// @Tags     bookings
// @Produce  json
// @Param    id path string true "session id"
// @Success  200 {object} response.QuoteResponse
// @Router   /bookings/{id}/quote [get]
func (h *BookingWizardHandler) GetQuote(c *gin.Context) {
	s, err := h.wizard.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPricingResult(h.pricing.Quote(s.Draft)))
}

// AttachImage stores a package photo on the draft, capped at 10 MB.
//
// @Summary  Attach a package image
// @Tags     bookings
// @Accept   multipart/form-data
// @Produce  json
// @Param    id path string true "session id"
// @Param    image formData file true "package image"
// @Success  200 {object} response.BookingSessionResponse
// @Router   /bookings/{id}/package/image [post]
func (h *BookingWizardHandler) AttachImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	if file.Size > entities.MaxPackageImageBytes {
		appErr := pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Package image exceeds the 10 MB limit", http.StatusRequestEntityTooLarge)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, entities.MaxPackageImageBytes+1))
	if err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	s, err := h.wizard.AttachImage(c.Request.Context(), c.Param("id"), entities.PackageImage{
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(s))
}

// FindRider runs the matching strategy and advances to rider-found.
//
// @Summary  Find a rider for the booking
// @Tags     bookings
// @Produce  json
// @Param    id path string true "session id"
// @Success  200 {object} response.BookingSessionResponse
// @Router   /bookings/{id}/find-rider [post]
func (h *BookingWizardHandler) FindRider(c *gin.Context) {
	s, err := h.wizard.FindRider(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(s))
}

// SelectPaymentMethod records the chosen payment method on the draft.
//
// @Summary  Select a payment method
// @Tags     bookings
// @Accept   json
// @Produce  json
// @Param    id path string true "session id"
// @Param    payload body request.PaymentMethodRequest true "method selection"
// @Success  200 {object} response.BookingSessionResponse
// @Router   /bookings/{id}/payment-method [post]
func (h *BookingWizardHandler) SelectPaymentMethod(c *gin.Context) {
	var payload request.PaymentMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	s, err := h.wizard.SelectPaymentMethod(c.Request.Context(), c.Param("id"), entities.PaymentMethod(payload.Method), payload.Notes)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, h.sessionResponse(s))
}

func (h *BookingWizardHandler) sessionResponse(s entities.BookingSession) response.BookingSessionResponse {
	quote := h.pricing.Quote(s.Draft)
	return response.FromBookingSession(s, h.pricing.Dimensions(s.Draft), &quote)
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidSizeScale),
		errors.Is(err, usecase.ErrInvalidDeclaredValue),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRequiredField):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELD", "A required field is missing", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Booking session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STEP", "Action not allowed from the current step", http.StatusConflict)
	case errors.Is(err, usecase.ErrImageTooLarge):
		return pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Package image exceeds the 10 MB limit", http.StatusRequestEntityTooLarge)
	default:
		log.Printf("[wizard][handler] unmapped error err=%v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
