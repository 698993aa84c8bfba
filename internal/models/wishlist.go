// internal/models/wishlist.go
package models

// WishlistItem is a (product, session) membership record.
type WishlistItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	SessionID string `json:"sessionId"`
}

// WishlistItemWithProduct is the read-time join returned by GET /api/wishlist.
type WishlistItemWithProduct struct {
	WishlistItem
	Product *Product `json:"product"`
}

type AddWishlistItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	SessionID string `json:"sessionId" validate:"required"`
}
