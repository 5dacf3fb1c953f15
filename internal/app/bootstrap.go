// Package app performs the startup bootstrap: read the persisted session,
// hydrate the auth slice synchronously, and decide the start route.
package app

import (
	"errors"
	"io"
	"log"

	"storefront/internal/domain"
	"storefront/internal/store"
)

// Route is the screen stack the app opens with.
type Route string

const (
	RouteWelcome Route = "welcome"
	RouteHome    Route = "home"
)

// sessionReader is the slice of local storage bootstrap needs.
type sessionReader interface {
	LoadSession() (*domain.Session, error)
}

// Bootstrap hydrates the store from local storage and returns the start
// route. Expiry is NOT checked here; the API client checks it lazily on the
// first request, so a stale session still opens the home stack and is logged
// out on first use.
func Bootstrap(local sessionReader, st *store.Store, logger *log.Logger) Route {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	sess, err := local.LoadSession()
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Printf("read persisted session: %v", err)
		}
		return RouteWelcome
	}
	st.Auth.SetSession(*sess)
	return RouteHome
}
