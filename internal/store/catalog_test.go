package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himalayanharvest/storefront/internal/models"
)

func testProduct(id, slug, price string) models.Product {
	return models.Product{
		ID:          id,
		Name:        "Test " + id,
		Slug:        slug,
		Tagline:     "tagline",
		Description: "description",
		Price:       price,
		Weight:      "500g",
		Image:       "/img/" + id,
		Category:    "Honey",
		InStock:     5,
		Benefits:    []string{"one", "two"},
		Ingredients: "stuff",
		Usage:       "daily",
	}
}

func TestCatalogSeed(t *testing.T) {
	s := NewCatalogStore()

	products := s.GetAllProducts()
	require.Len(t, products, 3)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "himalayan-raw-honey", products[0].Slug)
	assert.Equal(t, "599.00", products[0].Price)
}

func TestGetProductBySlug(t *testing.T) {
	s := NewCatalogStore()

	p, err := s.GetProductBySlug("organic-ghee")
	require.NoError(t, err)
	assert.Equal(t, "2", p.ID)

	// exact, case-sensitive match only
	_, err = s.GetProductBySlug("Organic-Ghee")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = s.GetProductBySlug("no-such-slug")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddProductUpsertsByID(t *testing.T) {
	s := NewEmptyCatalogStore()

	s.AddProduct(testProduct("a", "slug-a", "100.00"))
	s.AddProduct(testProduct("b", "slug-b", "200.00"))

	// re-adding id "a" overwrites in place and keeps its position
	replacement := testProduct("a", "slug-a2", "150.00")
	s.AddProduct(replacement)

	products := s.GetAllProducts()
	require.Len(t, products, 2)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "slug-a2", products[0].Slug)
	assert.Equal(t, "150.00", products[0].Price)
}

func TestUpdateProductMergesOnlyPatchedFields(t *testing.T) {
	s := NewCatalogStore()

	price := "649.00"
	updated, err := s.UpdateProduct("1", models.ProductPatch{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "649.00", updated.Price)
	assert.Equal(t, "Himalayan Raw Honey", updated.Name)
	assert.Equal(t, "himalayan-raw-honey", updated.Slug)
	assert.Equal(t, 1, updated.InStock)

	// zero values still apply when explicitly sent
	zero := 0
	updated, err = s.UpdateProduct("1", models.ProductPatch{InStock: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.InStock)
	assert.Equal(t, "649.00", updated.Price)
}

func TestUpdateProductNotFound(t *testing.T) {
	s := NewCatalogStore()

	price := "1.00"
	_, err := s.UpdateProduct("missing", models.ProductPatch{Price: &price})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	s := NewCatalogStore()

	require.NoError(t, s.DeleteProduct("2"))
	assert.Len(t, s.GetAllProducts(), 2)

	_, err := s.GetProduct("2")
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, s.DeleteProduct("2"), ErrProductNotFound)
}
