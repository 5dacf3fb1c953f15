package store

import "storefront/internal/domain"

// SupportSlice holds the support requests submitted in this session.
type SupportSlice struct {
	state
	problems []domain.SupportProblem
}

// AddProblem records a submitted request.
func (s *SupportSlice) AddProblem(p domain.SupportProblem) {
	s.mu.Lock()
	s.problems = append(s.problems, p)
	s.mu.Unlock()
	s.signal()
}

// Problems returns a snapshot of the submitted requests.
func (s *SupportSlice) Problems() []domain.SupportProblem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SupportProblem(nil), s.problems...)
}
