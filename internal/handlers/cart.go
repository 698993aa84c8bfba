// internal/handlers/cart.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/himalayanharvest/storefront/internal/models"
	"github.com/himalayanharvest/storefront/internal/store"
	"github.com/himalayanharvest/storefront/internal/utils"
)

type CartHandler struct {
	cart    *store.CartStore
	catalog *store.CatalogStore
}

func NewCartHandler(cart *store.CartStore, catalog *store.CatalogStore) *CartHandler {
	return &CartHandler{
		cart:    cart,
		catalog: catalog,
	}
}

// GET /api/cart/:sessionId
//
// Items are joined with their product at read time. The cart never verified
// the reference at write time, so a deleted product yields a null join.
func (h *CartHandler) GetCartItems(c *gin.Context) {
	items := h.cart.GetCartItems(c.Param("sessionId"))

	out := make([]models.CartItemWithProduct, 0, len(items))
	for _, item := range items {
		joined := models.CartItemWithProduct{CartItem: item}
		if product, err := h.catalog.GetProduct(item.ProductID); err == nil {
			joined.Product = &product
		}
		out = append(out, joined)
	}

	utils.SuccessResponse(c, out)
}

// POST /api/cart/add
func (h *CartHandler) AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid cart payload")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item := h.cart.AddCartItem(req.ProductID, req.SessionID, req.Quantity)
	utils.SuccessResponse(c, item)
}

// DELETE /api/cart/:id
//
// Removing an id that is already gone still succeeds.
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	h.cart.RemoveCartItem(c.Param("id"))
	utils.OKResponse(c)
}

// POST /api/cart/:sessionId/clear
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.ClearCart(c.Param("sessionId"))
	utils.OKResponse(c)
}
