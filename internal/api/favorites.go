package api

import (
	"context"
	"net/url"

	"storefront/internal/domain"
)

// Favorite fetches the user's wishlist aggregate.
func (c *Client) Favorite(ctx context.Context) (*domain.Favorite, error) {
	var out domain.Favorite
	if err := c.get(ctx, "/Favorite", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddFavoriteItem favorites a product and returns the updated aggregate.
func (c *Client) AddFavoriteItem(ctx context.Context, productID string) (*domain.Favorite, error) {
	var out domain.Favorite
	if err := c.post(ctx, "/Favorite/AddItem/"+url.PathEscape(productID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFavoriteItem unfavorites a product.
func (c *Client) RemoveFavoriteItem(ctx context.Context, productID string) error {
	return c.delete(ctx, "/Favorite/RemoveItem/"+url.PathEscape(productID), nil)
}

// AddFavoriteSeller favorites a vendor and returns the updated aggregate.
func (c *Client) AddFavoriteSeller(ctx context.Context, vendorID string) (*domain.Favorite, error) {
	var out domain.Favorite
	if err := c.post(ctx, "/Favorite/AddSaller/"+url.PathEscape(vendorID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFavoriteSeller unfavorites a vendor.
func (c *Client) RemoveFavoriteSeller(ctx context.Context, vendorID string) error {
	return c.delete(ctx, "/Favorite/RemoveSaller/"+url.PathEscape(vendorID), nil)
}
