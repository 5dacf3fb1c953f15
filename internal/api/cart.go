package api

import (
	"context"
	"net/url"

	"storefront/internal/domain"
)

// Cart fetches the signed-in user's cart lines.
func (c *Client) Cart(ctx context.Context) ([]domain.CartItem, error) {
	var out []domain.CartItem
	if err := c.get(ctx, "/Cart", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddToCart adds a product and returns the resulting cart line, totals
// computed server-side.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (*domain.CartItem, error) {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	var out domain.CartItem
	if err := c.post(ctx, "/Cart/Add", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCartQuantity changes a line's quantity and returns the updated line.
func (c *Client) UpdateCartQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	body := map[string]interface{}{"itemId": itemID, "quantity": quantity}
	var out domain.CartItem
	if err := c.put(ctx, "/Cart/UpdateQuantity", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveFromCart deletes a cart line by id.
func (c *Client) RemoveFromCart(ctx context.Context, itemID string) error {
	return c.delete(ctx, "/Cart/Remove/"+url.PathEscape(itemID), nil)
}
