package store

import "storefront/internal/domain"

// SearchFilter is the in-memory post-filter applied on top of server
// results. Zero values mean "no constraint".
type SearchFilter struct {
	MinPrice   float64
	MaxPrice   float64
	Brand      string
	CategoryID string
}

// SearchSlice holds search results guarded by a monotonic request sequence.
// Every issued search takes the next sequence number; a response is applied
// only if it is the latest issued, so a stale slower response can never
// overwrite a newer one.
type SearchSlice struct {
	state
	seq     uint64
	results []domain.Product
	filter  SearchFilter
}

// Next reserves the sequence number for a search about to be issued.
func (s *SearchSlice) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Apply writes results if seq is still the latest issued request. It reports
// whether the results were applied.
func (s *SearchSlice) Apply(seq uint64, results []domain.Product) bool {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		return false
	}
	s.results = append([]domain.Product(nil), results...)
	s.mu.Unlock()
	s.signal()
	return true
}

// Latest reports whether seq is still the newest issued request. Error
// handlers use it so a stale failure does not clobber newer results.
func (s *SearchSlice) Latest(seq uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return seq == s.seq
}

// SetFilter stores the post-filter chosen on the results screen.
func (s *SearchSlice) SetFilter(f SearchFilter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	s.signal()
}

// Results returns the raw results with the current post-filter applied.
func (s *SearchSlice) Results() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Product
	for _, p := range s.results {
		if s.filter.MinPrice > 0 && p.Price.Amount < s.filter.MinPrice {
			continue
		}
		if s.filter.MaxPrice > 0 && p.Price.Amount > s.filter.MaxPrice {
			continue
		}
		if s.filter.Brand != "" && p.Brand != s.filter.Brand {
			continue
		}
		if s.filter.CategoryID != "" && p.CategoryID != s.filter.CategoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}
