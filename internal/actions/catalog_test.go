package actions

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"storefront/internal/api"
	"storefront/internal/domain"
)

type stubCatalog struct {
	pages map[int]*api.CategoryPage
	err   error

	byCategory    map[string][]domain.Product
	byCategoryErr map[string]error

	categoryCalls int
}

func (s *stubCatalog) Categories(_ context.Context, page, pageSize int) (*api.CategoryPage, error) {
	s.categoryCalls++
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.pages[page]
	if !ok {
		return &api.CategoryPage{}, nil
	}
	return p, nil
}

func (s *stubCatalog) Products(context.Context, int, int) ([]domain.Product, error) {
	return nil, s.err
}

func (s *stubCatalog) Product(context.Context, string) (*domain.Product, error) {
	return &domain.Product{}, s.err
}

func (s *stubCatalog) ProductsByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	if err := s.byCategoryErr[categoryID]; err != nil {
		return nil, err
	}
	return s.byCategory[categoryID], nil
}

func intPtr(v int) *int { return &v }

func categoryPage(count int, totalCount *int) *api.CategoryPage {
	items := make([]domain.Category, count)
	for i := range items {
		items[i] = domain.Category{ID: fmt.Sprintf("c%d", i)}
	}
	return &api.CategoryPage{Items: items, TotalCount: totalCount}
}

func TestLoadCategoriesPrefersTotalCount(t *testing.T) {
	a, st, _ := testActions()
	a.catalog = &stubCatalog{pages: map[int]*api.CategoryPage{
		1: categoryPage(DefaultPageSize, intPtr(25)),
	}}

	if err := a.LoadCategories(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, hasMore := st.Categories.Pagination(); !hasMore {
		t.Fatalf("10 of 25 must report more pages")
	}
}

func TestLoadCategoriesTotalCountReachedStopsPaging(t *testing.T) {
	a, st, _ := testActions()
	// A full page, but totalCount says this is everything.
	a.catalog = &stubCatalog{pages: map[int]*api.CategoryPage{
		1: categoryPage(DefaultPageSize, intPtr(DefaultPageSize)),
	}}

	if err := a.LoadCategories(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, hasMore := st.Categories.Pagination(); hasMore {
		t.Fatalf("totalCount reached must stop paging")
	}
}

func TestLoadCategoriesHeuristicWithoutTotalCount(t *testing.T) {
	cases := []struct {
		count   int
		hasMore bool
	}{
		{DefaultPageSize, true},
		{DefaultPageSize - 1, false},
		{0, false},
	}
	for _, tc := range cases {
		a, st, _ := testActions()
		a.catalog = &stubCatalog{pages: map[int]*api.CategoryPage{1: categoryPage(tc.count, nil)}}

		if err := a.LoadCategories(context.Background()); err != nil {
			t.Fatalf("load %d items: %v", tc.count, err)
		}
		if _, hasMore := st.Categories.Pagination(); hasMore != tc.hasMore {
			t.Fatalf("%d items without totalCount: hasMore=%v want %v", tc.count, hasMore, tc.hasMore)
		}
	}
}

func TestLoadMoreCategoriesAppendsNextPage(t *testing.T) {
	a, st, _ := testActions()
	a.catalog = &stubCatalog{pages: map[int]*api.CategoryPage{
		1: {Items: []domain.Category{{ID: "a"}, {ID: "b"}}, TotalCount: intPtr(3)},
		2: {Items: []domain.Category{{ID: "b"}, {ID: "c"}}, TotalCount: intPtr(3)},
	}}

	if err := a.LoadCategories(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := a.LoadMoreCategories(context.Background()); err != nil {
		t.Fatalf("load more: %v", err)
	}

	got := st.Categories.Categories()
	if len(got) != 3 || got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("unexpected merged pages: %+v", got)
	}
	page, _ := st.Categories.Pagination()
	if page != 2 {
		t.Fatalf("expected page 2, got %d", page)
	}
}

func TestLoadMoreCategoriesNoOpWhenExhausted(t *testing.T) {
	a, _, _ := testActions()
	stub := &stubCatalog{pages: map[int]*api.CategoryPage{
		1: {Items: []domain.Category{{ID: "a"}}, TotalCount: intPtr(1)},
	}}
	a.catalog = stub

	if err := a.LoadCategories(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := a.LoadMoreCategories(context.Background()); err != nil {
		t.Fatalf("load more: %v", err)
	}

	if stub.categoryCalls != 1 {
		t.Fatalf("exhausted pagination still hit the backend: %d calls", stub.categoryCalls)
	}
}

func TestLoadCategoriesErrorLeavesDataUntouched(t *testing.T) {
	a, st, _ := testActions()
	st.Categories.SetCategories([]domain.Category{{ID: "old"}}, 1, true)
	a.catalog = &stubCatalog{err: errors.New("backend down")}

	if err := a.LoadCategories(context.Background()); err == nil {
		t.Fatalf("expected error")
	}

	got := st.Categories.Categories()
	if len(got) != 1 || got[0].ID != "old" {
		t.Fatalf("failure touched prior data: %+v", got)
	}
	if st.Categories.Err() != "backend down" {
		t.Fatalf("unexpected message: %q", st.Categories.Err())
	}
	if st.Categories.Loading() {
		t.Fatalf("loading flag stuck after failure")
	}
}

func TestLoadDailyDealsMergesInRequestOrder(t *testing.T) {
	a, st, _ := testActions()
	a.catalog = &stubCatalog{byCategory: map[string][]domain.Product{
		"c1": {{ID: "p1"}, {ID: "p2"}},
		"c2": {{ID: "p3"}},
	}}

	if err := a.LoadDailyDeals(context.Background(), []string{"c1", "c2"}); err != nil {
		t.Fatalf("daily deals: %v", err)
	}

	got := st.Products.Deals()
	if len(got) != 3 || got[0].ID != "p1" || got[2].ID != "p3" {
		t.Fatalf("unexpected deal order: %+v", got)
	}
}

func TestLoadDailyDealsFailsWithoutPartialResults(t *testing.T) {
	a, st, _ := testActions()
	a.catalog = &stubCatalog{
		byCategory:    map[string][]domain.Product{"c1": {{ID: "p1"}}},
		byCategoryErr: map[string]error{"c2": errors.New("backend down")},
	}

	if err := a.LoadDailyDeals(context.Background(), []string{"c1", "c2"}); err == nil {
		t.Fatalf("expected fan-out failure")
	}

	if got := st.Products.Deals(); len(got) != 0 {
		t.Fatalf("failed batch wrote partial results: %+v", got)
	}
	if st.Products.Err() == "" {
		t.Fatalf("error message not recorded")
	}
}
