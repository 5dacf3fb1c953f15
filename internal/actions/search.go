package actions

import (
	"context"
	"io"

	"storefront/internal/domain"
	"storefront/internal/store"
)

type searchClient interface {
	SearchProducts(ctx context.Context, term string) ([]domain.Product, error)
	SearchByImage(ctx context.Context, filename string, image io.Reader) ([]domain.Product, error)
}

// Search issues a text search. Every invocation takes the next sequence
// number; responses that resolve after a newer search was issued are
// discarded, so keystroke-per-request traffic cannot apply stale results.
func (a *Actions) Search(ctx context.Context, term string) error {
	sl := a.store.Search
	seq := sl.Next()
	sl.SetLoading(true)
	results, err := a.search.SearchProducts(ctx, term)
	if err != nil {
		if !sl.Latest(seq) {
			return err
		}
		return a.fail(sl, err)
	}
	if sl.Apply(seq, results) {
		a.done(sl)
	}
	return nil
}

// SearchByImage uploads an image and applies the results under the same
// sequencing rules as text search.
func (a *Actions) SearchByImage(ctx context.Context, filename string, image io.Reader) error {
	sl := a.store.Search
	seq := sl.Next()
	sl.SetLoading(true)
	results, err := a.search.SearchByImage(ctx, filename, image)
	if err != nil {
		if !sl.Latest(seq) {
			return err
		}
		return a.fail(sl, err)
	}
	if sl.Apply(seq, results) {
		a.done(sl)
	}
	return nil
}

// SetSearchFilter applies the in-memory post-filter on top of the current
// results.
func (a *Actions) SetSearchFilter(f store.SearchFilter) {
	a.store.Search.SetFilter(f)
}
