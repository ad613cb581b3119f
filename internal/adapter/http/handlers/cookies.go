package handlers

import (
	"github.com/gin-gonic/gin"
)

// Cookie names are part of the funnel's backward-compatibility contract and
// must not change while older clients are still in the wild.
const (
	SessionCookieName           = "smart_ride_session"
	PendingDeliveryIDCookieName = "pending_payment_delivery_id"
	PendingPaymentIDCookieName  = "pending_payment_id"

	// One day, matching the session TTL.
	pendingCookieMaxAge = 24 * 60 * 60
)

// Bearer-token cookie names probed in priority order.
var authTokenCookieNames = []string{"customer_token", "auth_token", "rider_token", "admin_token"}

// PendingPayment is the typed accessor over the two cookies that correlate a
// payment redirect round trip back to its booking.
type PendingPayment struct {
	DeliveryID string
	PaymentID  string
}

func ReadPendingPayment(c *gin.Context) PendingPayment {
	var p PendingPayment
	if v, err := c.Cookie(PendingDeliveryIDCookieName); err == nil {
		p.DeliveryID = v
	}
	if v, err := c.Cookie(PendingPaymentIDCookieName); err == nil {
		p.PaymentID = v
	}
	return p
}

func WritePendingPayment(c *gin.Context, p PendingPayment) {
	c.SetCookie(PendingDeliveryIDCookieName, p.DeliveryID, pendingCookieMaxAge, "/", "", false, true)
	if p.PaymentID != "" {
		c.SetCookie(PendingPaymentIDCookieName, p.PaymentID, pendingCookieMaxAge, "/", "", false, true)
	}
}

func ClearPendingPayment(c *gin.Context) {
	c.SetCookie(PendingDeliveryIDCookieName, "", -1, "/", "", false, true)
	c.SetCookie(PendingPaymentIDCookieName, "", -1, "/", "", false, true)
}

// authTokenFromCookies reads the bearer token forwarded to the delivery API.
// This flow never writes these cookies; they are set elsewhere on the site.
func authTokenFromCookies(c *gin.Context) string {
	for _, name := range authTokenCookieNames {
		if v, err := c.Cookie(name); err == nil && v != "" {
			return v
		}
	}
	return ""
}
