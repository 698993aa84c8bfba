// internal/store/wishlist.go
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/himalayanharvest/storefront/internal/models"
)

// WishlistStore holds (product, session) membership records.
type WishlistStore struct {
	mtx   sync.Mutex
	items map[string]*models.WishlistItem
	order []string
}

func NewWishlistStore() *WishlistStore {
	return &WishlistStore{
		items: make(map[string]*models.WishlistItem),
	}
}

func (s *WishlistStore) GetWishlistItems(sessionID string) []models.WishlistItem {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := []models.WishlistItem{}
	for _, id := range s.order {
		if item := s.items[id]; item.SessionID == sessionID {
			out = append(out, *item)
		}
	}
	return out
}

// AddToWishlist is an idempotent insert: an existing (productId, sessionId)
// entry is returned as-is instead of being duplicated.
func (s *WishlistStore) AddToWishlist(productID, sessionID string) models.WishlistItem {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, id := range s.order {
		item := s.items[id]
		if item.ProductID == productID && item.SessionID == sessionID {
			return *item
		}
	}

	item := &models.WishlistItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		SessionID: sessionID,
	}
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return *item
}

// RemoveFromWishlist deletes by id; absent ids are a no-op.
func (s *WishlistStore) RemoveFromWishlist(id string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.items[id]; !ok {
		return
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *WishlistStore) IsInWishlist(productID, sessionID string) bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, item := range s.items {
		if item.ProductID == productID && item.SessionID == sessionID {
			return true
		}
	}
	return false
}
