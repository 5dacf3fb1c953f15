package store

import "storefront/internal/domain"

// FavoriteSlice holds the per-user wishlist aggregate.
type FavoriteSlice struct {
	state
	favorite domain.Favorite
}

// SetFavorite replaces the aggregate.
func (s *FavoriteSlice) SetFavorite(f domain.Favorite) {
	s.mu.Lock()
	s.favorite = f
	s.mu.Unlock()
	s.signal()
}

// AddItem appends a product to the aggregate unless already present.
func (s *FavoriteSlice) AddItem(p domain.Product) {
	s.mu.Lock()
	present := false
	for _, it := range s.favorite.FavoriteItems {
		if it.ID == p.ID {
			present = true
			break
		}
	}
	if !present {
		s.favorite.FavoriteItems = append(s.favorite.FavoriteItems, p)
	}
	s.mu.Unlock()
	s.signal()
}

// RemoveItem filters a product out of the aggregate.
func (s *FavoriteSlice) RemoveItem(productID string) {
	s.mu.Lock()
	kept := s.favorite.FavoriteItems[:0]
	for _, it := range s.favorite.FavoriteItems {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	s.favorite.FavoriteItems = kept
	s.mu.Unlock()
	s.signal()
}

// AddSeller appends a vendor unless already present.
func (s *FavoriteSlice) AddSeller(v domain.Vendor) {
	s.mu.Lock()
	present := false
	for _, sl := range s.favorite.FavoriteSellers {
		if sl.ID == v.ID {
			present = true
			break
		}
	}
	if !present {
		s.favorite.FavoriteSellers = append(s.favorite.FavoriteSellers, v)
	}
	s.mu.Unlock()
	s.signal()
}

// RemoveSeller filters a vendor out of the aggregate.
func (s *FavoriteSlice) RemoveSeller(vendorID string) {
	s.mu.Lock()
	kept := s.favorite.FavoriteSellers[:0]
	for _, sl := range s.favorite.FavoriteSellers {
		if sl.ID != vendorID {
			kept = append(kept, sl)
		}
	}
	s.favorite.FavoriteSellers = kept
	s.mu.Unlock()
	s.signal()
}

// Favorite returns a snapshot of the aggregate.
func (s *FavoriteSlice) Favorite() domain.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := s.favorite
	f.FavoriteItems = append([]domain.Product(nil), s.favorite.FavoriteItems...)
	f.FavoriteSellers = append([]domain.Vendor(nil), s.favorite.FavoriteSellers...)
	return f
}

// HasItem reports whether a product is favorited.
func (s *FavoriteSlice) HasItem(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.favorite.FavoriteItems {
		if it.ID == productID {
			return true
		}
	}
	return false
}
