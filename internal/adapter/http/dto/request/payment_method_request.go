package request

// PaymentMethodRequest selects the payment method on the rider-found step.
// Only "card" survives into the online checkout flow.
type PaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
	Notes  string `json:"notes"`
}
