package store

import "storefront/internal/domain"

// ProductSlice holds the product listing, the currently opened product, and
// the daily-deals batch.
type ProductSlice struct {
	state
	products []domain.Product
	selected *domain.Product
	deals    []domain.Product
}

// SetProducts replaces the listing.
func (s *ProductSlice) SetProducts(items []domain.Product) {
	s.mu.Lock()
	s.products = append([]domain.Product(nil), items...)
	s.mu.Unlock()
	s.signal()
}

// AddProducts appends a pagination page.
func (s *ProductSlice) AddProducts(items []domain.Product) {
	s.mu.Lock()
	s.products = append(s.products, items...)
	s.mu.Unlock()
	s.signal()
}

// SetSelected stores the product opened on the detail screen.
func (s *ProductSlice) SetSelected(p domain.Product) {
	s.mu.Lock()
	copied := p
	s.selected = &copied
	s.mu.Unlock()
	s.signal()
}

// SetDeals replaces the daily-deals batch. The batch is all-or-nothing: a
// failed fan-out never writes partial results.
func (s *ProductSlice) SetDeals(items []domain.Product) {
	s.mu.Lock()
	s.deals = append([]domain.Product(nil), items...)
	s.mu.Unlock()
	s.signal()
}

// Products returns a snapshot of the listing.
func (s *ProductSlice) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

// Selected returns the detail-screen product, if any.
func (s *ProductSlice) Selected() (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return domain.Product{}, false
	}
	return *s.selected, true
}

// Deals returns a snapshot of the daily-deals batch.
func (s *ProductSlice) Deals() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.deals...)
}
