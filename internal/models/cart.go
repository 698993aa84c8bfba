// internal/models/cart.go
package models

// CartItem is a (session, product, quantity) tuple. At most one item exists
// per (sessionId, productId) pair; repeat adds merge into the existing row.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	SessionID string `json:"sessionId"`
}

// CartItemWithProduct is the read-time join returned by GET /api/cart.
// Product is nil when the referenced product no longer exists; the
// reference is not enforced at write time.
type CartItemWithProduct struct {
	CartItem
	Product *Product `json:"product"`
}

// AddCartItemRequest accepts an omitted quantity; the handler defaults it
// to 1, matching the insert schema the storefront client was built against.
type AddCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	SessionID string `json:"sessionId" validate:"required"`
}
