package api

import (
	"context"
	"net/url"

	"storefront/internal/domain"
)

// CreateOrderInput is the checkout payload. Totals are recomputed
// server-side; the client's numbers are display-only.
type CreateOrderInput struct {
	AddressID      string `json:"addressId,omitempty"`
	CouponCode     string `json:"couponCode,omitempty"`
	ContactSupport bool   `json:"contactSupport,omitempty"`
}

// CreateOrder places an order from the server-side cart.
func (c *Client) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.post(ctx, "/Order/Create", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Orders fetches the user's order history.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.get(ctx, "/Order/GetAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Order fetches a single order by id.
func (c *Client) Order(ctx context.Context, id string) (*domain.Order, error) {
	var out domain.Order
	if err := c.get(ctx, "/Order/Get/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus patches one order's status and returns the new value.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.OrderStatus, error) {
	body := map[string]string{"status": string(status)}
	var out struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := c.patch(ctx, "/Order/UpdateStatus/"+url.PathEscape(id), body, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}
