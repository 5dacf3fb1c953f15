// Package store is the client-side normalized store: one slice per entity
// family, each holding its data plus loading/error flags behind pure
// mutators. Mutations are serialized per slice and subscribers are notified
// after each one, which is the screens' re-render signal.
package store

import "sync"

// Store aggregates every slice. Screens read slice state through snapshot
// accessors and never mutate it directly.
type Store struct {
	Auth       *AuthSlice
	Cart       *CartSlice
	Categories *CategorySlice
	Products   *ProductSlice
	Orders     *OrderSlice
	Favorites  *FavoriteSlice
	Coupons    *CouponSlice
	Rates      *RateSlice
	Addresses  *AddressSlice
	Bank       *BankAccountSlice
	Profile    *ProfileSlice
	Support    *SupportSlice
	Search     *SearchSlice

	mu   sync.Mutex
	subs []func(slice string)
}

// New builds a Store with empty slices.
func New() *Store {
	s := &Store{
		Auth:       &AuthSlice{},
		Cart:       &CartSlice{},
		Categories: &CategorySlice{},
		Products:   &ProductSlice{},
		Orders:     &OrderSlice{},
		Favorites:  &FavoriteSlice{},
		Coupons:    &CouponSlice{},
		Rates:      &RateSlice{},
		Addresses:  &AddressSlice{},
		Bank:       &BankAccountSlice{},
		Profile:    &ProfileSlice{},
		Support:    &SupportSlice{},
		Search:     &SearchSlice{},
	}
	s.Auth.notify = s.notifier("auth")
	s.Cart.notify = s.notifier("cart")
	s.Categories.notify = s.notifier("categories")
	s.Products.notify = s.notifier("products")
	s.Orders.notify = s.notifier("orders")
	s.Favorites.notify = s.notifier("favorites")
	s.Coupons.notify = s.notifier("coupons")
	s.Rates.notify = s.notifier("rates")
	s.Addresses.notify = s.notifier("addresses")
	s.Bank.notify = s.notifier("bankAccounts")
	s.Profile.notify = s.notifier("profile")
	s.Support.notify = s.notifier("support")
	s.Search.notify = s.notifier("search")
	return s
}

// Subscribe registers a listener called with the slice name after every
// mutation. Listeners run on the mutating goroutine and must be quick.
func (s *Store) Subscribe(fn func(slice string)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) notifier(name string) func() {
	return func() { s.broadcast(name) }
}

func (s *Store) broadcast(name string) {
	s.mu.Lock()
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(name)
	}
}
