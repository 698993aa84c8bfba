// internal/store/review.go
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/himalayanharvest/storefront/internal/models"
)

// ReviewStore is append-only from the API's perspective.
type ReviewStore struct {
	mtx     sync.Mutex
	reviews map[string]*models.Review
	order   []string
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		reviews: make(map[string]*models.Review),
	}
}

func (s *ReviewStore) GetReviews(productID string) []models.Review {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := []models.Review{}
	for _, id := range s.order {
		if r := s.reviews[id]; r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out
}

// AddReview mints an id and inserts. Nothing prevents the same session
// reviewing a product twice; the source never did either.
func (s *ReviewStore) AddReview(req models.AddReviewRequest) models.Review {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	r := &models.Review{
		ID:           uuid.NewString(),
		ProductID:    req.ProductID,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Title:        req.Title,
		Content:      req.Content,
		SessionID:    req.SessionID,
	}
	s.reviews[r.ID] = r
	s.order = append(s.order, r.ID)
	return *r
}
