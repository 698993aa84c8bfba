// internal/handlers/payment.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/himalayanharvest/storefront/internal/models"
	"github.com/himalayanharvest/storefront/internal/services"
	"github.com/himalayanharvest/storefront/internal/utils"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// POST /api/razorpay/order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req models.CreateGatewayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid payment payload")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.paymentService.CreateOrder(req.Amount, req.SessionID)
	if err != nil {
		logrus.WithError(err).WithField("session_id", req.SessionID).Error("Razorpay order creation failed")
		utils.UpstreamErrorResponse(c, "Payment gateway error")
		return
	}

	utils.SuccessResponse(c, order)
}

// POST /api/razorpay/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid verification payload")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	verified := h.paymentService.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature)
	if !verified {
		logrus.WithField("order_id", req.OrderID).Warn("Payment signature verification failed")
	}

	utils.SuccessResponse(c, gin.H{"verified": verified})
}
