// internal/store/cart.go
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/himalayanharvest/storefront/internal/models"
)

// CartStore holds cart items keyed by minted id, with insertion order
// preserved per session. The mutex serializes the read-modify-write on the
// merge-on-add path; two rapid adds for the same pair must land on one row.
type CartStore struct {
	mtx   sync.Mutex
	items map[string]*models.CartItem
	order []string
}

func NewCartStore() *CartStore {
	return &CartStore{
		items: make(map[string]*models.CartItem),
	}
}

func (s *CartStore) GetCartItems(sessionID string) []models.CartItem {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := []models.CartItem{}
	for _, id := range s.order {
		if item := s.items[id]; item.SessionID == sessionID {
			out = append(out, *item)
		}
	}
	return out
}

// AddCartItem merges repeat adds of the same (productId, sessionId) pair
// into the existing row, incrementing its quantity in place and returning
// it under its original id. Only a miss mints a new id. The scan is O(n),
// which is fine at cart sizes.
func (s *CartStore) AddCartItem(productID, sessionID string, quantity int) models.CartItem {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	for _, id := range s.order {
		item := s.items[id]
		if item.ProductID == productID && item.SessionID == sessionID {
			item.Quantity += quantity
			return *item
		}
	}

	item := &models.CartItem{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		SessionID: sessionID,
	}
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return *item
}

// RemoveCartItem deletes by id and is a no-op when the id is absent.
func (s *CartStore) RemoveCartItem(id string) {
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

// ClearCart removes every item belonging to sessionID and leaves other
// sessions untouched.
func (s *CartStore) ClearCart(sessionID string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	kept := s.order[:0]
	for _, id := range s.order {
		if s.items[id].SessionID == sessionID {
			delete(s.items, id)
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
}
