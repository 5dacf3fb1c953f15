package store

import "storefront/internal/domain"

// AuthSlice holds the current session. It implements the API client's
// TokenSource so the client reads the token through injection instead of a
// global store handle.
type AuthSlice struct {
	state
	session *domain.Session
}

// SetSession stores the session after login or startup hydration.
func (s *AuthSlice) SetSession(sess domain.Session) {
	s.mu.Lock()
	copied := sess
	s.session = &copied
	s.mu.Unlock()
	s.signal()
}

// Clear drops the session on logout or expiry.
func (s *AuthSlice) Clear() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	s.signal()
}

// Session returns the current session and whether one exists.
func (s *AuthSlice) Session() (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.Session{}, false
	}
	return *s.session, true
}

// UserType returns the signed-in user's type, empty when signed out.
func (s *AuthSlice) UserType() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.UserType
}
