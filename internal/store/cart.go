package store

import "storefront/internal/domain"

// CartSlice holds the user's cart lines. All lookups are linear scans; a
// single user's cart stays small.
type CartSlice struct {
	state
	items []domain.CartItem
}

// SetItems replaces the whole cart.
func (s *CartSlice) SetItems(items []domain.CartItem) {
	s.mu.Lock()
	s.items = append([]domain.CartItem(nil), items...)
	s.mu.Unlock()
	s.signal()
}

// AddItem reconciles a line returned by the backend into the cart. When a
// line for the same product already exists its quantity is REPLACED with the
// new value, not added to it.
func (s *CartSlice) AddItem(item domain.CartItem) {
	s.mu.Lock()
	replaced := false
	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity = item.Quantity
			s.items[i].TotalPrice = item.TotalPrice
			replaced = true
			break
		}
	}
	if !replaced {
		s.items = append(s.items, item)
	}
	s.mu.Unlock()
	s.signal()
}

// RemoveItem drops a line by its cart-line id.
func (s *CartSlice) RemoveItem(itemID string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.signal()
}

// SetQuantity updates a line's quantity in place, clamped so it never drops
// below 1.
func (s *CartSlice) SetQuantity(itemID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()
	s.signal()
}

// SetItemTotal writes the server-computed line total after a quantity update.
func (s *CartSlice) SetItemTotal(itemID string, total float64) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].TotalPrice = total
			break
		}
	}
	s.mu.Unlock()
	s.signal()
}

// Items returns a snapshot of the cart lines.
func (s *CartSlice) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartItem(nil), s.items...)
}

// Clear empties the cart, e.g. after a successful order.
func (s *CartSlice) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.signal()
}
