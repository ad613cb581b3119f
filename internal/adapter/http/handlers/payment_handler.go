package handlers

import (
	"errors"
	"log"
	"net/http"

	response "smartride/internal/adapter/http/dto/response"
	"smartride/internal/usecase"
	"smartride/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler drives the checkout orchestration for a wizard session.

type PaymentHandler struct {
	payments usecase.IPaymentUseCase
	wizard   usecase.IBookingWizardUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, wizard usecase.IBookingWizardUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, wizard: wizard}
}

// Pay creates the delivery, initializes the payment and writes the two
// pending-payment cookies that survive the redirect round trip.
//
// @Summary  Start card checkout for a booking
// @Tags     payments
// @Produce  json
// @Param    id path string true "session id"
// @Success  200 {object} response.PaymentStartResponse
// @Router   /bookings/{id}/pay [post]
func (h *PaymentHandler) Pay(c *gin.Context) {
	sessionID := c.Param("id")
	log.Printf("[payment][handler] pay start session_id=%s", sessionID)

	start, err := h.payments.Pay(c.Request.Context(), sessionID, authTokenFromCookies(c))
	if err != nil {
		log.Printf("[payment][handler] pay failed session_id=%s err=%v", sessionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	WritePendingPayment(c, PendingPayment{DeliveryID: start.DeliveryID, PaymentID: start.Reference})
	log.Printf("[payment][handler] pay success session_id=%s delivery_id=%s reference=%s", sessionID, start.DeliveryID, start.Reference)

	c.JSON(http.StatusOK, response.FromPaymentStart(start))
}

// CancelPay resets the processing flag after the embedded widget is closed.
//
// @Summary  Abort an in-flight checkout attempt
// @Tags     payments
// @Produce  json
// @Param    id path string true "session id"
// @Success  200 {object} response.BookingSessionResponse
// @Router   /bookings/{id}/pay/cancel [post]
func (h *PaymentHandler) CancelPay(c *gin.Context) {
	s, err := h.wizard.CancelProcessing(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookingSession(s, "", nil))
}

// CancelDelivery passes an explicit user cancellation through to the
// delivery API.
//
// @Summary  Cancel the created delivery
// @Tags     payments
// @Produce  json
// @Param    id path string true "session id"
// @Success  204
// @Router   /bookings/{id}/cancel-delivery [post]
func (h *PaymentHandler) CancelDelivery(c *gin.Context) {
	if err := h.payments.CancelDelivery(c.Request.Context(), c.Param("id"), authTokenFromCookies(c)); err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentMethodRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_REQUIRED", "Select a payment method before paying", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentMethodUnsupported):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_UNSUPPORTED", "Only card payment is supported for online checkout", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Booking session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_STEP", "Action not allowed from the current step", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentAlreadyInFlight):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_FLIGHT", "A payment is already being processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrDeliveryCreateFailed):
		// Upstream status and body ride along so the user alert can show them.
		return pkg.NewDomainError("DELIVERY_CREATE_FAILED", err.Error(), err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentInitFailed):
		return pkg.NewDomainError("PAYMENT_INIT_FAILED", err.Error(), err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNoDeliveryToCancel):
		return pkg.NewDomainErrorSimple("NO_DELIVERY", "No delivery was created for this session", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
