// internal/handlers/review.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/himalayanharvest/storefront/internal/models"
	"github.com/himalayanharvest/storefront/internal/store"
	"github.com/himalayanharvest/storefront/internal/utils"
)

type ReviewHandler struct {
	reviews *store.ReviewStore
}

func NewReviewHandler(reviews *store.ReviewStore) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// GET /api/reviews/:productId
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	utils.SuccessResponse(c, h.reviews.GetReviews(c.Param("productId")))
}

// POST /api/reviews
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid review payload")
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	utils.SuccessResponse(c, h.reviews.AddReview(req))
}
