package routes

import (
	"smartride/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathPlaces   = "/places"
)

func addBookingRoutes(rg *gin.RouterGroup, wizard *handlers.BookingWizardHandler, payment *handlers.PaymentHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", wizard.StartSession)
		bookings.GET("/:id", wizard.GetSession)
		bookings.PUT("/:id/form", wizard.SubmitForm)
		bookings.POST("/:id/back", wizard.Back)
		bookings.GET("/:id/quote", wizard.GetQuote)
		bookings.POST("/:id/package/image", wizard.AttachImage)
		bookings.POST("/:id/find-rider", wizard.FindRider)
		bookings.POST("/:id/payment-method", wizard.SelectPaymentMethod)

		bookings.POST("/:id/pay", payment.Pay)
		bookings.POST("/:id/pay/cancel", payment.CancelPay)
		bookings.POST("/:id/cancel-delivery", payment.CancelDelivery)
	}
}

func addPlacesRoutes(rg *gin.RouterGroup, places *handlers.PlacesHandler) {
	group := rg.Group(PathPlaces)
	{
		group.GET("/autocomplete", places.Autocomplete)
		group.GET("/reverse", places.Reverse)
	}
}

// Payment pages sit outside /v1: their paths are part of the redirect
// contract registered with the gateway.
func addPaymentPageRoutes(r *gin.Engine, pages *handlers.PaymentPagesHandler) {
	r.GET("/payments/callback", pages.Callback)
	r.GET("/payments/success", pages.Success)
}
