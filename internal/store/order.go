// internal/store/order.go
package store

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/himalayanharvest/storefront/internal/models"
)

// costRatio is the placeholder margin assumption behind the dashboard's
// cost figure. There is no real cost ledger.
const costRatio = 0.4

// OrderStore collects directly-posted orders. Neither checkout path
// (WhatsApp handoff, gateway payment) creates records here, so analytics
// reflect only explicit POST /api/orders calls.
type OrderStore struct {
	mtx    sync.Mutex
	orders map[string]*models.Order
	order  []string
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*models.Order),
	}
}

func (s *OrderStore) GetAllOrders() []models.Order {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	out := make([]models.Order, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.orders[id])
	}
	return out
}

func (s *OrderStore) GetOrder(id string) (models.Order, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return *o, nil
}

func (s *OrderStore) CreateOrder(req models.CreateOrderRequest) models.Order {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	o := &models.Order{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           req.Items,
		TotalPrice:      req.TotalPrice,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	s.orders[o.ID] = o
	s.order = append(s.order, o.ID)
	return *o
}

func (s *OrderStore) UpdateOrderStatus(id string, status models.OrderStatus) (models.Order, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	o.Status = status
	return *o, nil
}

// Analytics reduces the order collection into the dashboard aggregate.
// Unparseable totals count toward totalOrders but contribute zero revenue.
func (s *OrderStore) Analytics() models.Analytics {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	a := models.Analytics{TotalOrders: len(s.order)}
	for _, id := range s.order {
		if v, err := strconv.ParseFloat(s.orders[id].TotalPrice, 64); err == nil {
			a.TotalRevenue += v
		}
	}
	a.TotalCost = a.TotalRevenue * costRatio
	return a
}
