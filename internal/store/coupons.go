package store

import "storefront/internal/domain"

// CouponSlice holds the coupon list plus the last validated coupon.
type CouponSlice struct {
	state
	coupons []domain.Coupon
	applied *domain.Coupon
}

// SetCoupons replaces the list.
func (s *CouponSlice) SetCoupons(coupons []domain.Coupon) {
	s.mu.Lock()
	s.coupons = append([]domain.Coupon(nil), coupons...)
	s.mu.Unlock()
	s.signal()
}

// SetApplied stores the server-validated coupon for the checkout screen.
func (s *CouponSlice) SetApplied(c domain.Coupon) {
	s.mu.Lock()
	copied := c
	s.applied = &copied
	s.mu.Unlock()
	s.signal()
}

// ClearApplied drops the applied coupon.
func (s *CouponSlice) ClearApplied() {
	s.mu.Lock()
	s.applied = nil
	s.mu.Unlock()
	s.signal()
}

// Coupons returns a snapshot of the list.
func (s *CouponSlice) Coupons() []domain.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Coupon(nil), s.coupons...)
}

// Applied returns the validated coupon, if any.
func (s *CouponSlice) Applied() (domain.Coupon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.applied == nil {
		return domain.Coupon{}, false
	}
	return *s.applied, true
}
