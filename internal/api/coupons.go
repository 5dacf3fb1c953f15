package api

import (
	"context"

	"storefront/internal/domain"
)

// Coupons lists the coupons visible to the user.
func (c *Client) Coupons(ctx context.Context) ([]domain.Coupon, error) {
	var out []domain.Coupon
	if err := c.get(ctx, "/Coupon/GetAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateCoupon checks a code server-side and returns the coupon with its
// isActived/isExpired flags set.
func (c *Client) ValidateCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	body := map[string]string{"code": code}
	var out domain.Coupon
	if err := c.post(ctx, "/Coupon/Validate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
