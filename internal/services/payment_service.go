// internal/services/payment_service.go
package services

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	razorpayutils "github.com/razorpay/razorpay-go/utils"

	"github.com/himalayanharvest/storefront/internal/config"
)

// PaymentService wraps the Razorpay Orders API. The checkout widget runs
// client-side against the returned order; the server only creates orders
// and verifies the signature the widget hands back.
type PaymentService struct {
	client *razorpay.Client
	config *config.Config
}

func NewPaymentService(cfg *config.Config) *PaymentService {
	return &PaymentService{
		client: razorpay.NewClient(cfg.Payment.RazorpayKeyID, cfg.Payment.RazorpayKeySecret),
		config: cfg,
	}
}

// CreateOrder creates a gateway order for amount in minor currency units
// (paise) and returns the gateway's order object verbatim. The session id
// rides along as the receipt so a payment can be traced back to a cart.
func (s *PaymentService) CreateOrder(amount int64, sessionID string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": s.config.Payment.Currency,
		"receipt":  sessionID,
	}

	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	return order, nil
}

// VerifyPaymentSignature checks the HMAC the checkout widget returns on
// success. The client-side success handler is not trusted on its own.
func (s *PaymentService) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return razorpayutils.VerifyPaymentSignature(params, signature, s.config.Payment.RazorpayKeySecret)
}
