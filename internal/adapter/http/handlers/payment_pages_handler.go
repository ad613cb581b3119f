package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	response "smartride/internal/adapter/http/dto/response"
	"smartride/internal/usecase"
	"smartride/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentPagesHandler serves the two satellite pages of the checkout round
// trip: the gateway's redirect target and the final success page.

type PaymentPagesHandler struct {
	payments usecase.IPaymentUseCase

	deliveriesListPath string
	redirectCountdown  int
}

func NewPaymentPagesHandler(payments usecase.IPaymentUseCase, deliveriesListPath string, redirectCountdown int) *PaymentPagesHandler {
	return &PaymentPagesHandler{
		payments:           payments,
		deliveriesListPath: deliveriesListPath,
		redirectCountdown:  redirectCountdown,
	}
}

// Callback resolves the gateway's redirect into the canonical success URL.
// Popup callers ask for JSON and forward their opener; everyone else gets a
// plain 302.
//
// @Summary  Payment gateway redirect target
// @Tags     payments
// @Produce  json
// @Success  200 {object} response.PaymentCallbackResponse
// @Router   /payments/callback [get]
func (h *PaymentPagesHandler) Callback(c *gin.Context) {
	pending := ReadPendingPayment(c)
	result := h.payments.ResolveCallback(c.Request.URL.Query(), pending.DeliveryID)

	if !result.Found {
		log.Printf("[payment][pages] callback without reference; redirecting to deliveries list")
		if wantsJSON(c) {
			c.JSON(http.StatusOK, response.PaymentCallbackResponse{RedirectTo: h.deliveriesListPath})
			return
		}
		c.Redirect(http.StatusFound, h.deliveriesListPath)
		return
	}

	log.Printf("[payment][pages] callback resolved reference=%s delivery_id=%s", result.Reference, result.DeliveryID)
	if wantsJSON(c) {
		c.JSON(http.StatusOK, response.PaymentCallbackResponse{
			Reference:  result.Reference,
			DeliveryID: result.DeliveryID,
			RedirectTo: result.SuccessURL,
		})
		return
	}
	c.Redirect(http.StatusFound, result.SuccessURL)
}

// Success verifies the payment and clears the pending cookies on a
// confirmed outcome.
//
// @Summary  Payment success page
// @Tags     payments
// @Produce  json
// @Success  200 {object} response.PaymentSuccessResponse
// @Router   /payments/success [get]
func (h *PaymentPagesHandler) Success(c *gin.Context) {
	pending := ReadPendingPayment(c)

	outcome, err := h.payments.ResolveSuccess(c.Request.Context(), c.Request.URL.Query(), pending.PaymentID, pending.DeliveryID)
	if err != nil {
		if errors.Is(err, usecase.ErrPaymentReferenceMissing) {
			appErr := pkg.NewDomainErrorSimple("PAYMENT_REFERENCE_MISSING", "No payment reference to verify", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		// Verification errors are not fatal to the booking: show the message
		// and leave the cookies so the user can retry the page.
		log.Printf("[payment][pages] verify error err=%v", err)
		c.JSON(http.StatusOK, response.FromSuccessOutcome(outcome, 0, ""))
		return
	}

	if outcome.Success {
		ClearPendingPayment(c)
	}
	c.JSON(http.StatusOK, response.FromSuccessOutcome(outcome, h.redirectCountdown, "/"))
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
