package domain

import "time"

// Session is the persisted auth blob: issued tokens plus the identity fields
// screens read without a profile fetch. Only RefreshTokenExpiresOn is checked
// client-side, lazily, before each outgoing request.
type Session struct {
	Token                 string    `json:"token"`
	RefreshToken          string    `json:"refreshToken"`
	ExpiresOn             time.Time `json:"expiresOn"`
	RefreshTokenExpiresOn time.Time `json:"refreshTokenExpiresOn"`
	UserID                string    `json:"userId"`
	UserName              string    `json:"userName"`
	Email                 string    `json:"email"`
	UserType              string    `json:"userType"`
}

// Expired reports whether the refresh token is past its expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.RefreshTokenExpiresOn.IsZero() && now.After(s.RefreshTokenExpiresOn)
}
