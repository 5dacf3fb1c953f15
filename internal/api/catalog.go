package api

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"storefront/internal/domain"
)

// CategoryPage is one page of the category listing. TotalCount is nil when
// the backend omits it, in which case callers fall back to the page-size
// heuristic for "has more".
type CategoryPage struct {
	Items      []domain.Category `json:"items"`
	TotalCount *int              `json:"totalCount,omitempty"`
}

// Categories fetches one page of the flat category list.
func (c *Client) Categories(ctx context.Context, page, pageSize int) (*CategoryPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out CategoryPage
	if err := c.get(ctx, "/Category/GetAll", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Products fetches one page of the product listing.
func (c *Client) Products(ctx context.Context, page, pageSize int) ([]domain.Product, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out []domain.Product
	if err := c.get(ctx, "/Product/GetAll", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Product fetches a single product by id.
func (c *Client) Product(ctx context.Context, id string) (*domain.Product, error) {
	var out domain.Product
	if err := c.get(ctx, "/Product/Get/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductsByCategory fetches all products of one category.
func (c *Client) ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.get(ctx, "/Product/GetByCategory/"+url.PathEscape(categoryID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchProducts runs a server-side text search.
func (c *Client) SearchProducts(ctx context.Context, term string) ([]domain.Product, error) {
	body := map[string]string{"term": term}
	var out []domain.Product
	if err := c.post(ctx, "/Product/Search", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchByImage uploads an image and returns visually similar products.
func (c *Client) SearchByImage(ctx context.Context, filename string, image io.Reader) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.postMultipart(ctx, "/Product/SearchByImage", "image", filename, image, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
