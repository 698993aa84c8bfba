// internal/handlers/wishlist.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/himalayanharvest/storefront/internal/models"
	"github.com/himalayanharvest/storefront/internal/store"
	"github.com/himalayanharvest/storefront/internal/utils"
)

type WishlistHandler struct {
	wishlist *store.WishlistStore
	catalog  *store.CatalogStore
}

func NewWishlistHandler(wishlist *store.WishlistStore, catalog *store.CatalogStore) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		catalog:  catalog,
	}
}

// GET /api/wishlist/:sessionId
func (h *WishlistHandler) GetWishlistItems(c *gin.Context) {
	items := h.wishlist.GetWishlistItems(c.Param("sessionId"))

	out := make([]models.WishlistItemWithProduct, 0, len(items))
	for _, item := range items {
		joined := models.WishlistItemWithProduct{WishlistItem: item}
		if product, err := h.catalog.GetProduct(item.ProductID); err == nil {
			joined.Product = &product
		}
		out = append(out, joined)
	}

	utils.SuccessResponse(c, out)
}

// POST /api/wishlist
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req models.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid wishlist payload")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	utils.SuccessResponse(c, h.wishlist.AddToWishlist(req.ProductID, req.SessionID))
}

// DELETE /api/wishlist/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	h.wishlist.RemoveFromWishlist(c.Param("id"))
	utils.OKResponse(c)
}

// GET /api/wishlist/check/:productId/:sessionId
func (h *WishlistHandler) CheckWishlist(c *gin.Context) {
	inWishlist := h.wishlist.IsInWishlist(c.Param("productId"), c.Param("sessionId"))
	utils.SuccessResponse(c, gin.H{"inWishlist": inWishlist})
}
