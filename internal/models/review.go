// internal/models/review.go
package models

// Review is append-only: no update or delete is exposed.
type Review struct {
	ID           string `json:"id"`
	ProductID    string `json:"productId"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	SessionID    string `json:"sessionId"`
}

// AddReviewRequest carries no rating bounds; the storefront slider keeps
// ratings in 1-5 and the server accepts what it is given.
type AddReviewRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	CustomerName string `json:"customerName" validate:"required"`
	Rating       int    `json:"rating" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Content      string `json:"content" validate:"required"`
	SessionID    string `json:"sessionId" validate:"required"`
}
