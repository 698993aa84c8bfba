// internal/store/catalog.go
package store

import (
	"errors"
	"sync"

	"github.com/himalayanharvest/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// CatalogStore holds the authoritative product set. Records keep insertion
// order; all state is rebuilt from the seed list on process start.
type CatalogStore struct {
	mtx      sync.Mutex
	products map[string]*models.Product
	order    []string
}

func NewCatalogStore() *CatalogStore {
	s := &CatalogStore{
		products: make(map[string]*models.Product),
	}
	for _, p := range seedProducts() {
		s.AddProduct(p)
	}
	return s
}

// NewEmptyCatalogStore skips the seed. Used by tests.
func NewEmptyCatalogStore() *CatalogStore {
	return &CatalogStore{
		products: make(map[string]*models.Product),
	}
}

func (s *CatalogStore) GetProduct(id string) (models.Product, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return *p, nil
}

// GetProductBySlug returns the first product whose slug matches exactly
// (case-sensitive linear scan, insertion order).
func (s *CatalogStore) GetProductBySlug(slug string) (models.Product, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, id := range s.order {
		if p := s.products[id]; p.Slug == slug {
			return *p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (s *CatalogStore) GetAllProducts() []models.Product {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.products[id])
	}
	return out
}

// AddProduct stores under product.ID with upsert semantics: re-adding an
// existing id overwrites in place and keeps its original position.
func (s *CatalogStore) AddProduct(p models.Product) models.Product {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.products[p.ID] = &p
	return p
}

// UpdateProduct applies the non-nil fields of patch onto the stored record
// and returns the merged result. Identity fields cannot be patched.
func (s *CatalogStore) UpdateProduct(id string, patch models.ProductPatch) (models.Product, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Tagline != nil {
		p.Tagline = *patch.Tagline
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Weight != nil {
		p.Weight = *patch.Weight
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.Benefits != nil {
		p.Benefits = *patch.Benefits
	}
	if patch.Ingredients != nil {
		p.Ingredients = *patch.Ingredients
	}
	if patch.Usage != nil {
		p.Usage = *patch.Usage
	}
	if patch.Variants != nil {
		p.Variants = *patch.Variants
	}

	return *p, nil
}

func (s *CatalogStore) DeleteProduct(id string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
