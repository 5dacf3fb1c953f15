package store

import "storefront/internal/domain"

// OrderSlice holds the order history, newest first.
type OrderSlice struct {
	state
	orders []domain.Order
}

// SetOrders replaces the history.
func (s *OrderSlice) SetOrders(orders []domain.Order) {
	s.mu.Lock()
	s.orders = append([]domain.Order(nil), orders...)
	s.mu.Unlock()
	s.signal()
}

// AddOrder prepends a freshly placed order.
func (s *OrderSlice) AddOrder(o domain.Order) {
	s.mu.Lock()
	s.orders = append([]domain.Order{o}, s.orders...)
	s.mu.Unlock()
	s.signal()
}

// SetStatus patches one order's status in place, located by linear scan.
func (s *OrderSlice) SetStatus(orderID string, status domain.OrderStatus) {
	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			break
		}
	}
	s.mu.Unlock()
	s.signal()
}

// Orders returns a snapshot of the history.
func (s *OrderSlice) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.orders...)
}
