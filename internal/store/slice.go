package store

import "sync"

// state is the part every slice shares: a loading flag and a single
// human-readable error string. A failed fetch sets the error and leaves the
// slice's prior data untouched.
type state struct {
	mu      sync.RWMutex
	loading bool
	err     string
	notify  func()
}

// SetLoading flips the slice's loading flag.
func (s *state) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
	s.signal()
}

// SetError records the extracted failure message. Empty clears it.
func (s *state) SetError(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	s.signal()
}

// Loading reports whether a fetch is in flight.
func (s *state) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last failure message, empty when the last call succeeded.
func (s *state) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *state) signal() {
	if s.notify != nil {
		s.notify()
	}
}
