package api

import (
	"context"
	"net/url"

	"storefront/internal/domain"
)

// Profile fetches the signed-in user's profile.
func (c *Client) Profile(ctx context.Context) (*domain.Profile, error) {
	var out domain.Profile
	if err := c.get(ctx, "/Profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile writes profile changes and returns the stored record.
func (c *Client) UpdateProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	var out domain.Profile
	if err := c.put(ctx, "/Profile/Update", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Addresses lists the user's saved addresses.
func (c *Client) Addresses(ctx context.Context) ([]domain.Address, error) {
	var out []domain.Address
	if err := c.get(ctx, "/Address/GetAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddAddress saves a new address and returns it with its assigned id.
func (c *Client) AddAddress(ctx context.Context, a domain.Address) (*domain.Address, error) {
	var out domain.Address
	if err := c.post(ctx, "/Address/Add", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveAddress deletes a saved address by id.
func (c *Client) RemoveAddress(ctx context.Context, id string) error {
	return c.delete(ctx, "/Address/Remove/"+url.PathEscape(id), nil)
}

// BankAccounts lists the user's payout accounts.
func (c *Client) BankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	var out []domain.BankAccount
	if err := c.get(ctx, "/BankAccount/GetAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddBankAccount saves a payout account and returns it with its assigned id.
func (c *Client) AddBankAccount(ctx context.Context, b domain.BankAccount) (*domain.BankAccount, error) {
	var out domain.BankAccount
	if err := c.post(ctx, "/BankAccount/Add", b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveBankAccount deletes a payout account by id.
func (c *Client) RemoveBankAccount(ctx context.Context, id string) error {
	return c.delete(ctx, "/BankAccount/Remove/"+url.PathEscape(id), nil)
}
