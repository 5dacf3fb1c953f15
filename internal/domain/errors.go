package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrSessionExpired indicates the stored refresh token is past its expiry.
	ErrSessionExpired = errors.New("session expired")
	// ErrEmailNotConfirmed indicates the backend refused login pending email confirmation.
	ErrEmailNotConfirmed = errors.New("email not confirmed")
	// ErrInvalidCredentials indicates email/password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
