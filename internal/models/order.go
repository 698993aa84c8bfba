// internal/models/order.go
package models

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// Valid reports whether s is one of the three known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDispatched, OrderStatusDelivered:
		return true
	}
	return false
}

// Order keeps its line items as an opaque JSON-encoded string, as the
// storefront submits them. No checkout path creates orders automatically;
// records only exist when a caller posts them directly.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	CustomerAddress string      `json:"customerAddress"`
	Items           string      `json:"items"`
	TotalPrice      string      `json:"totalPrice"`
	Status          OrderStatus `json:"status"`
	CreatedAt       string      `json:"createdAt"`
}

type CreateOrderRequest struct {
	CustomerName    string `json:"customerName" validate:"required"`
	CustomerEmail   string `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string `json:"customerPhone" validate:"required"`
	CustomerAddress string `json:"customerAddress" validate:"required"`
	Items           string `json:"items" validate:"required"`
	TotalPrice      string `json:"totalPrice" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

// Analytics is the admin dashboard aggregate. TotalCost is modeled as a
// fixed 40% margin of revenue, not a real cost ledger.
type Analytics struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int     `json:"totalOrders"`
	TotalCost    float64 `json:"totalCost"`
}
