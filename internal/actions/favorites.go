package actions

import (
	"context"

	"storefront/internal/domain"
)

type favoriteClient interface {
	Favorite(ctx context.Context) (*domain.Favorite, error)
	AddFavoriteItem(ctx context.Context, productID string) (*domain.Favorite, error)
	RemoveFavoriteItem(ctx context.Context, productID string) error
	AddFavoriteSeller(ctx context.Context, vendorID string) (*domain.Favorite, error)
	RemoveFavoriteSeller(ctx context.Context, vendorID string) error
}

// LoadFavorite fetches the user's wishlist aggregate.
func (a *Actions) LoadFavorite(ctx context.Context) error {
	sl := a.store.Favorites
	sl.SetLoading(true)
	f, err := a.favorites.Favorite(ctx)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetFavorite(*f)
	a.done(sl)
	return nil
}

// AddFavoriteItem favorites a product; the backend returns the updated
// aggregate, which replaces the slice.
func (a *Actions) AddFavoriteItem(ctx context.Context, productID string) error {
	sl := a.store.Favorites
	sl.SetLoading(true)
	f, err := a.favorites.AddFavoriteItem(ctx, productID)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetFavorite(*f)
	a.done(sl)
	return nil
}

// RemoveFavoriteItem unfavorites a product and filters it locally.
func (a *Actions) RemoveFavoriteItem(ctx context.Context, productID string) error {
	sl := a.store.Favorites
	sl.SetLoading(true)
	if err := a.favorites.RemoveFavoriteItem(ctx, productID); err != nil {
		return a.fail(sl, err)
	}
	sl.RemoveItem(productID)
	a.done(sl)
	return nil
}

// AddFavoriteSeller favorites a vendor.
func (a *Actions) AddFavoriteSeller(ctx context.Context, vendorID string) error {
	sl := a.store.Favorites
	sl.SetLoading(true)
	f, err := a.favorites.AddFavoriteSeller(ctx, vendorID)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetFavorite(*f)
	a.done(sl)
	return nil
}

// RemoveFavoriteSeller unfavorites a vendor and filters it locally.
func (a *Actions) RemoveFavoriteSeller(ctx context.Context, vendorID string) error {
	sl := a.store.Favorites
	sl.SetLoading(true)
	if err := a.favorites.RemoveFavoriteSeller(ctx, vendorID); err != nil {
		return a.fail(sl, err)
	}
	sl.RemoveSeller(vendorID)
	a.done(sl)
	return nil
}
