package actions

import (
	"context"

	"golang.org/x/sync/errgroup"

	"storefront/internal/api"
	"storefront/internal/domain"
)

type catalogClient interface {
	Categories(ctx context.Context, page, pageSize int) (*api.CategoryPage, error)
	Products(ctx context.Context, page, pageSize int) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)
	ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error)
}

// LoadCategories fetches the first category page, replacing the slice.
func (a *Actions) LoadCategories(ctx context.Context) error {
	sl := a.store.Categories
	sl.SetLoading(true)
	page, err := a.catalog.Categories(ctx, 1, a.pageSize)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetCategories(page.Items, 1, a.hasMore(page, len(page.Items)))
	a.done(sl)
	return nil
}

// LoadMoreCategories fetches the next page and appends it, de-duplicated by
// id. A no-op when the slice already saw the last page.
func (a *Actions) LoadMoreCategories(ctx context.Context) error {
	sl := a.store.Categories
	current, hasMore := sl.Pagination()
	if !hasMore {
		return nil
	}
	sl.SetLoading(true)
	next := current + 1
	page, err := a.catalog.Categories(ctx, next, a.pageSize)
	if err != nil {
		return a.fail(sl, err)
	}
	total := len(sl.Categories()) + len(page.Items)
	sl.AddCategories(page.Items, next, a.hasMore(page, total))
	a.done(sl)
	return nil
}

// hasMore prefers the server's totalCount; without one it falls back to the
// page-length heuristic, which reports a false "has more" when the true last
// page holds exactly pageSize items.
func (a *Actions) hasMore(page *api.CategoryPage, loaded int) bool {
	if page.TotalCount != nil {
		return loaded < *page.TotalCount
	}
	return len(page.Items) == a.pageSize
}

// LoadProducts fetches the first product page.
func (a *Actions) LoadProducts(ctx context.Context) error {
	sl := a.store.Products
	sl.SetLoading(true)
	items, err := a.catalog.Products(ctx, 1, a.pageSize)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetProducts(items)
	a.done(sl)
	return nil
}

// LoadProduct fetches one product for the detail screen.
func (a *Actions) LoadProduct(ctx context.Context, id string) error {
	sl := a.store.Products
	sl.SetLoading(true)
	p, err := a.catalog.Product(ctx, id)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetSelected(*p)
	a.done(sl)
	return nil
}

// LoadProductsByCategory fetches a category's products into the listing.
func (a *Actions) LoadProductsByCategory(ctx context.Context, categoryID string) error {
	sl := a.store.Products
	sl.SetLoading(true)
	items, err := a.catalog.ProductsByCategory(ctx, categoryID)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetProducts(items)
	a.done(sl)
	return nil
}

// LoadDailyDeals fans out one request per category and fans the results back
// in. Fail-fast: if any request fails the whole batch fails and no partial
// results are written.
func (a *Actions) LoadDailyDeals(ctx context.Context, categoryIDs []string) error {
	sl := a.store.Products
	sl.SetLoading(true)

	results := make([][]domain.Product, len(categoryIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range categoryIDs {
		i, id := i, id
		g.Go(func() error {
			items, err := a.catalog.ProductsByCategory(gctx, id)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return a.fail(sl, err)
	}

	var deals []domain.Product
	for _, items := range results {
		deals = append(deals, items...)
	}
	sl.SetDeals(deals)
	a.done(sl)
	return nil
}
