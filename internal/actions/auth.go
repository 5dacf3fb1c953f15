package actions

import (
	"context"

	"storefront/internal/api"
	"storefront/internal/domain"
)

type authClient interface {
	Login(ctx context.Context, in api.LoginInput) (*domain.Session, error)
	Register(ctx context.Context, in api.RegisterInput) error
	ResetPassword(ctx context.Context, email string) error
	ResendConfirmation(ctx context.Context, email string) error
}

// Login authenticates, stores the session, and persists it to local storage.
func (a *Actions) Login(ctx context.Context, email, password string) error {
	sl := a.store.Auth
	sl.SetLoading(true)
	sess, err := a.auth.Login(ctx, api.LoginInput{Email: email, Password: password})
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetSession(*sess)
	if a.sessions != nil {
		if err := a.sessions.SaveSession(*sess); err != nil {
			a.logger.Printf("persist session: %v", err)
		}
	}
	a.done(sl)
	return nil
}

// Register creates an account. Login stays blocked until the confirmation
// email is handled.
func (a *Actions) Register(ctx context.Context, in api.RegisterInput) error {
	sl := a.store.Auth
	sl.SetLoading(true)
	if err := a.auth.Register(ctx, in); err != nil {
		return a.fail(sl, err)
	}
	a.done(sl)
	return nil
}

// ResetPassword triggers the password-reset email.
func (a *Actions) ResetPassword(ctx context.Context, email string) error {
	sl := a.store.Auth
	sl.SetLoading(true)
	if err := a.auth.ResetPassword(ctx, email); err != nil {
		return a.fail(sl, err)
	}
	a.done(sl)
	return nil
}

// ResendConfirmation re-sends the account confirmation email.
func (a *Actions) ResendConfirmation(ctx context.Context, email string) error {
	sl := a.store.Auth
	sl.SetLoading(true)
	if err := a.auth.ResendConfirmation(ctx, email); err != nil {
		return a.fail(sl, err)
	}
	a.done(sl)
	return nil
}

// Logout clears the session from the store and from local storage. Also
// invoked when any request trips the lazy expiry check.
func (a *Actions) Logout() {
	a.store.Auth.Clear()
	a.store.Profile.Clear()
	a.store.Cart.Clear()
	if a.sessions != nil {
		if err := a.sessions.ClearSession(); err != nil {
			a.logger.Printf("clear persisted session: %v", err)
		}
	}
}
