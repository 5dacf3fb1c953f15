package store

import "storefront/internal/domain"

// AddressSlice holds the user's saved addresses.
type AddressSlice struct {
	state
	addresses []domain.Address
}

// SetAddresses replaces the list.
func (s *AddressSlice) SetAddresses(addresses []domain.Address) {
	s.mu.Lock()
	s.addresses = append([]domain.Address(nil), addresses...)
	s.mu.Unlock()
	s.signal()
}

// AddAddress appends a saved address.
func (s *AddressSlice) AddAddress(a domain.Address) {
	s.mu.Lock()
	s.addresses = append(s.addresses, a)
	s.mu.Unlock()
	s.signal()
}

// RemoveAddress drops an address by id.
func (s *AddressSlice) RemoveAddress(id string) {
	s.mu.Lock()
	kept := s.addresses[:0]
	for _, a := range s.addresses {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.addresses = kept
	s.mu.Unlock()
	s.signal()
}

// Addresses returns a snapshot of the list.
func (s *AddressSlice) Addresses() []domain.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Address(nil), s.addresses...)
}
