package api

import (
	"context"

	"storefront/internal/domain"
)

// CreateSupportProblem submits a support request and returns the stored
// record.
func (c *Client) CreateSupportProblem(ctx context.Context, p domain.SupportProblem) (*domain.SupportProblem, error) {
	var out domain.SupportProblem
	if err := c.post(ctx, "/SupportProblem/Create", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
