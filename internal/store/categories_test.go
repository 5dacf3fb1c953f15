package store

import (
	"testing"

	"storefront/internal/domain"
)

func strPtr(v string) *string {
	return &v
}

func fixtureCategories() []domain.Category {
	return []domain.Category{
		{ID: "c1", Name: "Electronics", NameEn: "Electronics", NameAr: "إلكترونيات", Children: []domain.Category{
			{ID: "c1a", Name: "Phones", NameEn: "Phones", ParentID: strPtr("c1")},
			{ID: "c1b", Name: "Laptops", NameEn: "Laptops", ParentID: strPtr("c1")},
		}},
		{ID: "c2", Name: "Fashion", NameEn: "Fashion", Children: []domain.Category{
			{ID: "c2a", Name: "Shoes", NameEn: "Shoes", ParentID: strPtr("c2")},
		}},
		{ID: "c1a", Name: "Phones", NameEn: "Phones", ParentID: strPtr("c1")},
		{ID: "c1b", Name: "Laptops", NameEn: "Laptops", ParentID: strPtr("c1")},
		{ID: "c2a", Name: "Shoes", NameEn: "Shoes", ParentID: strPtr("c2")},
	}
}

func TestRootsContainOnlyNilParents(t *testing.T) {
	st := New()
	st.Categories.SetCategories(fixtureCategories(), 1, false)

	roots := st.Categories.Roots()
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	for _, r := range roots {
		if r.ParentID != nil {
			t.Fatalf("root %s has truthy parentId", r.ID)
		}
	}
}

func TestSearchEmptyTermIsIdentity(t *testing.T) {
	st := New()
	st.Categories.SetCategories(fixtureCategories(), 1, false)

	roots := st.Categories.Roots()
	got := st.Categories.Search("")
	if len(got) != len(roots) {
		t.Fatalf("empty search returned %d roots, want %d", len(got), len(roots))
	}
	for i := range got {
		if got[i].ID != roots[i].ID {
			t.Fatalf("empty search reordered roots: got %s want %s", got[i].ID, roots[i].ID)
		}
		if len(got[i].Children) != len(roots[i].Children) {
			t.Fatalf("empty search changed children of %s", got[i].ID)
		}
	}
}

func TestSearchMatchingRootKeepsAllChildren(t *testing.T) {
	st := New()
	st.Categories.SetCategories(fixtureCategories(), 1, false)

	got := st.Categories.Search("electr")
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("expected only c1, got %+v", got)
	}
	if len(got[0].Children) != 2 {
		t.Fatalf("matching root must keep all children, got %d", len(got[0].Children))
	}
}

func TestSearchChildMatchPrunesChildren(t *testing.T) {
	st := New()
	st.Categories.SetCategories(fixtureCategories(), 1, false)

	got := st.Categories.Search("phone")
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("expected root c1 for child match, got %+v", got)
	}
	if len(got[0].Children) != 1 || got[0].Children[0].ID != "c1a" {
		t.Fatalf("expected only matching child c1a, got %+v", got[0].Children)
	}
	if len(got[0].Children) > 2 {
		t.Fatalf("pruned children longer than original")
	}

	// The store's own copy must be untouched.
	roots := st.Categories.Roots()
	if len(roots[0].Children) != 2 {
		t.Fatalf("search mutated stored children: %d", len(roots[0].Children))
	}
}

func TestSearchMatchesArabicName(t *testing.T) {
	st := New()
	st.Categories.SetCategories(fixtureCategories(), 1, false)

	got := st.Categories.Search("إلكترونيات")
	if len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("expected c1 via Arabic name, got %+v", got)
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	st := New()
	st.Categories.SetCategories(fixtureCategories(), 1, false)

	if got := st.Categories.Search("zzz"); len(got) != 0 {
		t.Fatalf("expected no results, got %+v", got)
	}
}

func TestAddCategoriesDeduplicatesPreservingOrder(t *testing.T) {
	st := New()
	first := []domain.Category{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}
	second := []domain.Category{{ID: "b", Name: "B again"}, {ID: "c", Name: "C"}, {ID: "a", Name: "A again"}}

	st.Categories.SetCategories(first, 1, true)
	st.Categories.AddCategories(second, 2, false)

	got := st.Categories.Categories()
	if len(got) != 3 {
		t.Fatalf("expected 3 unique categories, got %d", len(got))
	}
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("order not preserved at %d: got %s want %s", i, got[i].ID, id)
		}
	}
	if got[0].Name != "A" || got[1].Name != "B" {
		t.Fatalf("duplicate overwrote first-seen record: %+v", got)
	}
}

func TestAddCategoriesTwiceWithSamePageIsIdempotent(t *testing.T) {
	st := New()
	page := []domain.Category{{ID: "a"}, {ID: "b"}}
	st.Categories.SetCategories(page, 1, true)
	st.Categories.AddCategories(page, 2, false)

	if got := st.Categories.Categories(); len(got) != 2 {
		t.Fatalf("expected 2 unique categories, got %d", len(got))
	}
}

func TestPaginationState(t *testing.T) {
	st := New()
	st.Categories.SetCategories(nil, 1, true)
	page, hasMore := st.Categories.Pagination()
	if page != 1 || !hasMore {
		t.Fatalf("unexpected pagination: page=%d hasMore=%v", page, hasMore)
	}
	st.Categories.AddCategories(nil, 2, false)
	page, hasMore = st.Categories.Pagination()
	if page != 2 || hasMore {
		t.Fatalf("unexpected pagination after add: page=%d hasMore=%v", page, hasMore)
	}
}

func TestStoreNotifiesSubscribersPerMutation(t *testing.T) {
	st := New()
	var seen []string
	st.Subscribe(func(slice string) { seen = append(seen, slice) })

	st.Categories.SetCategories(nil, 1, false)
	st.Cart.SetItems(nil)

	if len(seen) != 2 || seen[0] != "categories" || seen[1] != "cart" {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}
