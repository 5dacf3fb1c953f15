package store

import "storefront/internal/domain"

// BankAccountSlice holds the vendor user's payout accounts.
type BankAccountSlice struct {
	state
	accounts []domain.BankAccount
}

// SetAccounts replaces the list.
func (s *BankAccountSlice) SetAccounts(accounts []domain.BankAccount) {
	s.mu.Lock()
	s.accounts = append([]domain.BankAccount(nil), accounts...)
	s.mu.Unlock()
	s.signal()
}

// AddAccount appends a saved account.
func (s *BankAccountSlice) AddAccount(b domain.BankAccount) {
	s.mu.Lock()
	s.accounts = append(s.accounts, b)
	s.mu.Unlock()
	s.signal()
}

// RemoveAccount drops an account by id.
func (s *BankAccountSlice) RemoveAccount(id string) {
	s.mu.Lock()
	kept := s.accounts[:0]
	for _, b := range s.accounts {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.accounts = kept
	s.mu.Unlock()
	s.signal()
}

// Accounts returns a snapshot of the list.
func (s *BankAccountSlice) Accounts() []domain.BankAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.BankAccount(nil), s.accounts...)
}
