// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/himalayanharvest/storefront/internal/models"
	"github.com/himalayanharvest/storefront/internal/store"
	"github.com/himalayanharvest/storefront/internal/utils"
)

type OrderHandler struct {
	orders *store.OrderStore
}

func NewOrderHandler(orders *store.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	utils.SuccessResponse(c, h.orders.GetAllOrders())
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid order payload")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	utils.SuccessResponse(c, h.orders.CreateOrder(req))
}

// PATCH /api/orders/:id
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid status payload")
		return
	}

	if !req.Status.Valid() {
		utils.BadRequestResponse(c, "Invalid order status")
		return
	}

	order, err := h.orders.UpdateOrderStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.NotFoundResponse(c, "Order not found")
		return
	}

	utils.SuccessResponse(c, order)
}

// GET /api/analytics
func (h *OrderHandler) GetAnalytics(c *gin.Context) {
	utils.SuccessResponse(c, h.orders.Analytics())
}
