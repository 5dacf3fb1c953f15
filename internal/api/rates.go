package api

import (
	"context"

	"storefront/internal/domain"
)

// CommissionRules lists the commission table. Active-rule selection happens
// client-side.
func (c *Client) CommissionRules(ctx context.Context) ([]domain.CommissionRule, error) {
	var out []domain.CommissionRule
	if err := c.get(ctx, "/Commission/GetAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShippingRates lists the shipping-tax table.
func (c *Client) ShippingRates(ctx context.Context) ([]domain.ShippingRate, error) {
	var out []domain.ShippingRate
	if err := c.get(ctx, "/ShippingTax/GetAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
