// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/himalayanharvest/storefront/internal/models"
	"github.com/himalayanharvest/storefront/internal/store"
	"github.com/himalayanharvest/storefront/internal/utils"
)

type ProductHandler struct {
	catalog *store.CatalogStore
}

func NewProductHandler(catalog *store.CatalogStore) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	utils.SuccessResponse(c, h.catalog.GetAllProducts())
}

// GET /api/products/:slug
func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	product, err := h.catalog.GetProductBySlug(c.Param("slug"))
	if err != nil {
		utils.NotFoundResponse(c, "Product not found")
		return
	}
	utils.SuccessResponse(c, product)
}

// POST /api/products
//
// The admin dashboard sends a full product; no schema validation is applied
// here, matching the storefront's create path. A missing id gets minted.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.BadRequestResponse(c, "Invalid product payload")
		return
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	utils.SuccessResponse(c, h.catalog.AddProduct(product))
}

// PATCH /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, "Invalid patch payload")
		return
	}

	product, err := h.catalog.UpdateProduct(c.Param("id"), patch)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product not found")
			return
		}
		utils.BadRequestResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, product)
}

// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Param("id")); err != nil {
		utils.NotFoundResponse(c, "Product not found")
		return
	}
	utils.OKResponse(c)
}
