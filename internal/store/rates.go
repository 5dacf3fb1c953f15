package store

import "storefront/internal/domain"

// RateSlice holds the commission and shipping-tax tables fetched for
// checkout.
type RateSlice struct {
	state
	commissions []domain.CommissionRule
	shipping    []domain.ShippingRate
}

// SetCommissions replaces the commission table.
func (s *RateSlice) SetCommissions(rules []domain.CommissionRule) {
	s.mu.Lock()
	s.commissions = append([]domain.CommissionRule(nil), rules...)
	s.mu.Unlock()
	s.signal()
}

// SetShippingRates replaces the shipping-tax table.
func (s *RateSlice) SetShippingRates(rates []domain.ShippingRate) {
	s.mu.Lock()
	s.shipping = append([]domain.ShippingRate(nil), rates...)
	s.mu.Unlock()
	s.signal()
}

// Commissions returns a snapshot of the commission table.
func (s *RateSlice) Commissions() []domain.CommissionRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CommissionRule(nil), s.commissions...)
}

// ShippingRates returns a snapshot of the shipping-tax table.
func (s *RateSlice) ShippingRates() []domain.ShippingRate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ShippingRate(nil), s.shipping...)
}

// ActiveShippingRate selects the single rate used for display: the first
// active record, else the first record. There is no tie-break beyond
// document order.
func (s *RateSlice) ActiveShippingRate() (domain.ShippingRate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.shipping {
		if r.IsActive {
			return r, true
		}
	}
	if len(s.shipping) > 0 {
		return s.shipping[0], true
	}
	return domain.ShippingRate{}, false
}
