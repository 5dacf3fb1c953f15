package store

import "storefront/internal/domain"

// ProfileSlice holds the signed-in user's profile record.
type ProfileSlice struct {
	state
	profile *domain.Profile
}

// SetProfile stores the fetched or updated profile.
func (s *ProfileSlice) SetProfile(p domain.Profile) {
	s.mu.Lock()
	copied := p
	s.profile = &copied
	s.mu.Unlock()
	s.signal()
}

// Clear drops the profile on logout.
func (s *ProfileSlice) Clear() {
	s.mu.Lock()
	s.profile = nil
	s.mu.Unlock()
	s.signal()
}

// Profile returns the profile, if loaded.
func (s *ProfileSlice) Profile() (domain.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return domain.Profile{}, false
	}
	return *s.profile, true
}
