package api

import (
	"context"

	"storefront/internal/domain"
)

// LoginInput is the credentials payload for /Auth/Login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the signup payload for /Auth/Register.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone,omitempty"`
	UserType  string `json:"userType"`
}

// Login authenticates and returns the issued session blob.
func (c *Client) Login(ctx context.Context, in LoginInput) (*domain.Session, error) {
	var sess domain.Session
	if err := c.post(ctx, "/Auth/Login", in, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Register creates an account. The backend sends a confirmation email; login
// fails until it is confirmed.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	return c.post(ctx, "/Auth/Register", in, nil)
}

// ResetPassword triggers the password-reset email.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "/Auth/ForgotPassword", body, nil)
}

// ResendConfirmation re-sends the account confirmation email.
func (c *Client) ResendConfirmation(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.post(ctx, "/Auth/ResendConfirmationEmail", body, nil)
}
