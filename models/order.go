package models

import "time"

type CheckoutStep string

const (
	// Checkout wizard steps, in order. The only backward transitions are
	// payment_info -> shipping_info and review -> payment_info.
	StepShippingInfo CheckoutStep = "shipping_info"
	StepPaymentInfo  CheckoutStep = "payment_info"
	StepReview       CheckoutStep = "review"
	StepConfirmed    CheckoutStep = "confirmed"
)

// Payment methods offered at checkout. Only credit_card carries extra
// required fields; none of them are charged for real.
const (
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodPaypal       = "paypal"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCOD          = "cod"
)

// OrderTotals is the derived pricing breakdown for the current cart
// contents. Never stored independently of the cart it was computed from.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Order is the confirmation payload produced when checkout completes. It is
// handed back to the client and not persisted server-side.
type Order struct {
	OrderNumber   string      `json:"orderNumber"`
	Items         []CartItem  `json:"items"`
	Totals        OrderTotals `json:"totals"`
	PaymentMethod string      `json:"paymentMethod"`
	PlacedAt      time.Time   `json:"placedAt"`
}
