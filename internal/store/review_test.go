package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himalayanharvest/storefront/internal/models"
)

func TestAddAndFilterReviews(t *testing.T) {
	s := NewReviewStore()

	r1 := s.AddReview(models.AddReviewRequest{
		ProductID:    "1",
		CustomerName: "Ravi",
		Rating:       5,
		Title:        "Excellent",
		Content:      "Best honey I have had",
		SessionID:    "abc",
	})
	s.AddReview(models.AddReviewRequest{
		ProductID:    "2",
		CustomerName: "Meera",
		Rating:       4,
		Title:        "Good ghee",
		Content:      "Rich aroma",
		SessionID:    "abc",
	})

	assert.NotEmpty(t, r1.ID)

	reviews := s.GetReviews("1")
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ravi", reviews[0].CustomerName)

	assert.Empty(t, s.GetReviews("3"))
}

func TestSameSessionMayReviewTwice(t *testing.T) {
	s := NewReviewStore()

	req := models.AddReviewRequest{
		ProductID:    "1",
		CustomerName: "Ravi",
		Rating:       5,
		Title:        "Again",
		Content:      "Still great",
		SessionID:    "abc",
	}
	a := s.AddReview(req)
	b := s.AddReview(req)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.GetReviews("1"), 2)
}
