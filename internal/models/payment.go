// internal/models/payment.go
package models

// CreateGatewayOrderRequest carries the amount in minor currency units
// (paise); the cart total is converted client-side before checkout opens.
type CreateGatewayOrderRequest struct {
	Amount    int64  `json:"amount" validate:"required,min=1"`
	SessionID string `json:"sessionId" validate:"required"`
}

// VerifyPaymentRequest is the tuple the checkout widget hands back on
// success. The signature is an HMAC over "orderId|paymentId" keyed with the
// gateway secret.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpayOrderId" validate:"required"`
	PaymentID string `json:"razorpayPaymentId" validate:"required"`
	Signature string `json:"razorpaySignature" validate:"required"`
}
