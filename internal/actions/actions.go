// Package actions holds the action creators: each one flips a slice's
// loading flag, calls the backend client, and writes either the result or
// the extracted error message into the slice. Every call is fire-once,
// success-or-error; a failure never touches the slice's prior data.
package actions

import (
	"errors"
	"io"
	"log"

	"storefront/internal/api"
	"storefront/internal/domain"
	"storefront/internal/store"
)

// DefaultPageSize is the page size used for paginated listings.
const DefaultPageSize = 10

// sessionStore is the device-local persistence the auth actions write
// through.
type sessionStore interface {
	SaveSession(domain.Session) error
	ClearSession() error
}

// slice is the state surface every action drives.
type slice interface {
	SetLoading(bool)
	SetError(string)
}

// Actions binds the API client to the store. The per-family client
// interfaces are satisfied by *api.Client and stubbed in tests.
type Actions struct {
	auth      authClient
	catalog   catalogClient
	cart      cartClient
	orders    orderClient
	favorites favoriteClient
	coupons   couponClient
	rates     rateClient
	search    searchClient
	support   supportClient
	profile   profileClient

	store    *store.Store
	sessions sessionStore
	logger   *log.Logger
	pageSize int
}

// New wires an Actions over the real client.
func New(client *api.Client, st *store.Store, sessions sessionStore, logger *log.Logger) *Actions {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Actions{
		auth:      client,
		catalog:   client,
		cart:      client,
		orders:    client,
		favorites: client,
		coupons:   client,
		rates:     client,
		search:    client,
		support:   client,
		profile:   client,
		store:     st,
		sessions:  sessions,
		logger:    logger,
		pageSize:  DefaultPageSize,
	}
}

// fail records the failure on the slice and handles lazy session expiry by
// logging the user out. Prior slice data stays untouched.
func (a *Actions) fail(sl slice, err error) error {
	if errors.Is(err, domain.ErrSessionExpired) {
		a.Logout()
	}
	sl.SetError(errorMessage(err))
	sl.SetLoading(false)
	return err
}

func (a *Actions) done(sl slice) {
	sl.SetError("")
	sl.SetLoading(false)
}

// errorMessage reduces any failure to the display string the slices carry.
// API errors already hold the extracted backend message.
func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
