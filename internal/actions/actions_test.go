package actions

import (
	"io"
	"log"

	"storefront/internal/domain"
	"storefront/internal/store"
)

type stubSessions struct {
	saved   []domain.Session
	cleared int
	saveErr error
}

func (s *stubSessions) SaveSession(sess domain.Session) error {
	s.saved = append(s.saved, sess)
	return s.saveErr
}

func (s *stubSessions) ClearSession() error {
	s.cleared++
	return nil
}

func testActions() (*Actions, *store.Store, *stubSessions) {
	st := store.New()
	sessions := &stubSessions{}
	a := &Actions{
		store:    st,
		sessions: sessions,
		logger:   log.New(io.Discard, "", 0),
		pageSize: DefaultPageSize,
	}
	return a, st, sessions
}
