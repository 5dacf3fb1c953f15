package app

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/store"
)

type stubLocal struct {
	session *domain.Session
	err     error
}

func (s stubLocal) LoadSession() (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func TestBootstrapWithSessionOpensHome(t *testing.T) {
	st := store.New()
	local := stubLocal{session: &domain.Session{Token: "tok", UserID: "u1"}}

	if got := Bootstrap(local, st, nil); got != RouteHome {
		t.Fatalf("expected home route, got %s", got)
	}
	sess, ok := st.Auth.Session()
	if !ok || sess.UserID != "u1" {
		t.Fatalf("auth slice not hydrated: %+v ok=%v", sess, ok)
	}
}

func TestBootstrapWithoutSessionOpensWelcome(t *testing.T) {
	st := store.New()

	if got := Bootstrap(stubLocal{err: domain.ErrNotFound}, st, nil); got != RouteWelcome {
		t.Fatalf("expected welcome route, got %s", got)
	}
	if _, ok := st.Auth.Session(); ok {
		t.Fatalf("auth slice hydrated without a session")
	}
}

func TestBootstrapReadFailureFallsBackToWelcome(t *testing.T) {
	st := store.New()

	if got := Bootstrap(stubLocal{err: errors.New("disk error")}, st, nil); got != RouteWelcome {
		t.Fatalf("expected welcome route on read failure, got %s", got)
	}
}

func TestBootstrapDoesNotCheckExpiry(t *testing.T) {
	st := store.New()
	stale := &domain.Session{Token: "tok", RefreshTokenExpiresOn: time.Now().Add(-time.Hour)}

	// A stale session still opens home; the API client expires it lazily on
	// the first request.
	if got := Bootstrap(stubLocal{session: stale}, st, nil); got != RouteHome {
		t.Fatalf("stale session must still open home, got %s", got)
	}
}
