package actions

import (
	"context"

	"storefront/internal/domain"
)

type profileClient interface {
	Profile(ctx context.Context) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	Addresses(ctx context.Context) ([]domain.Address, error)
	AddAddress(ctx context.Context, a domain.Address) (*domain.Address, error)
	RemoveAddress(ctx context.Context, id string) error
	BankAccounts(ctx context.Context) ([]domain.BankAccount, error)
	AddBankAccount(ctx context.Context, b domain.BankAccount) (*domain.BankAccount, error)
	RemoveBankAccount(ctx context.Context, id string) error
}

// LoadProfile fetches the signed-in user's profile.
func (a *Actions) LoadProfile(ctx context.Context) error {
	sl := a.store.Profile
	sl.SetLoading(true)
	p, err := a.profile.Profile(ctx)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetProfile(*p)
	a.done(sl)
	return nil
}

// UpdateProfile writes profile changes and mirrors the stored record.
func (a *Actions) UpdateProfile(ctx context.Context, p domain.Profile) error {
	sl := a.store.Profile
	sl.SetLoading(true)
	stored, err := a.profile.UpdateProfile(ctx, p)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetProfile(*stored)
	a.done(sl)
	return nil
}

// LoadAddresses fetches the saved addresses.
func (a *Actions) LoadAddresses(ctx context.Context) error {
	sl := a.store.Addresses
	sl.SetLoading(true)
	addresses, err := a.profile.Addresses(ctx)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetAddresses(addresses)
	a.done(sl)
	return nil
}

// AddAddress saves an address and appends the stored record.
func (a *Actions) AddAddress(ctx context.Context, addr domain.Address) error {
	sl := a.store.Addresses
	sl.SetLoading(true)
	stored, err := a.profile.AddAddress(ctx, addr)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.AddAddress(*stored)
	a.done(sl)
	return nil
}

// RemoveAddress deletes an address server-side, then locally.
func (a *Actions) RemoveAddress(ctx context.Context, id string) error {
	sl := a.store.Addresses
	sl.SetLoading(true)
	if err := a.profile.RemoveAddress(ctx, id); err != nil {
		return a.fail(sl, err)
	}
	sl.RemoveAddress(id)
	a.done(sl)
	return nil
}

// LoadBankAccounts fetches the payout accounts.
func (a *Actions) LoadBankAccounts(ctx context.Context) error {
	sl := a.store.Bank
	sl.SetLoading(true)
	accounts, err := a.profile.BankAccounts(ctx)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetAccounts(accounts)
	a.done(sl)
	return nil
}

// AddBankAccount saves a payout account and appends the stored record.
func (a *Actions) AddBankAccount(ctx context.Context, acct domain.BankAccount) error {
	sl := a.store.Bank
	sl.SetLoading(true)
	stored, err := a.profile.AddBankAccount(ctx, acct)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.AddAccount(*stored)
	a.done(sl)
	return nil
}

// RemoveBankAccount deletes a payout account server-side, then locally.
func (a *Actions) RemoveBankAccount(ctx context.Context, id string) error {
	sl := a.store.Bank
	sl.SetLoading(true)
	if err := a.profile.RemoveBankAccount(ctx, id); err != nil {
		return a.fail(sl, err)
	}
	sl.RemoveAccount(id)
	a.done(sl)
	return nil
}
