package store

import (
	"testing"

	"storefront/internal/domain"
)

func TestApplyDiscardsStaleSequence(t *testing.T) {
	st := New()
	first := st.Search.Next()
	second := st.Search.Next()

	// The newer request resolves first.
	if !st.Search.Apply(second, []domain.Product{{ID: "new"}}) {
		t.Fatalf("latest sequence must apply")
	}
	// The stale slower response must be dropped.
	if st.Search.Apply(first, []domain.Product{{ID: "old"}}) {
		t.Fatalf("stale sequence must be discarded")
	}

	got := st.Search.Results()
	if len(got) != 1 || got[0].ID != "new" {
		t.Fatalf("stale response overwrote results: %+v", got)
	}
}

func TestLatestReportsNewestIssued(t *testing.T) {
	st := New()
	first := st.Search.Next()
	if !st.Search.Latest(first) {
		t.Fatalf("only issued sequence must be latest")
	}
	second := st.Search.Next()
	if st.Search.Latest(first) {
		t.Fatalf("superseded sequence still latest")
	}
	if !st.Search.Latest(second) {
		t.Fatalf("newest sequence must be latest")
	}
}

func TestResultsApplyPostFilter(t *testing.T) {
	st := New()
	seq := st.Search.Next()
	st.Search.Apply(seq, []domain.Product{
		{ID: "p1", Brand: "Nova", CategoryID: "phones", Price: domain.Price{Amount: 499}},
		{ID: "p2", Brand: "Pulse", CategoryID: "laptops", Price: domain.Price{Amount: 899}},
		{ID: "p3", Brand: "Nova", CategoryID: "phones", Price: domain.Price{Amount: 99}},
	})

	st.Search.SetFilter(SearchFilter{Brand: "Nova"})
	if got := st.Search.Results(); len(got) != 2 {
		t.Fatalf("brand filter: expected 2, got %d", len(got))
	}

	st.Search.SetFilter(SearchFilter{Brand: "Nova", MinPrice: 100})
	got := st.Search.Results()
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("combined filter: got %+v", got)
	}

	st.Search.SetFilter(SearchFilter{MaxPrice: 500, CategoryID: "phones"})
	if got := st.Search.Results(); len(got) != 2 {
		t.Fatalf("price+category filter: expected 2, got %d", len(got))
	}

	st.Search.SetFilter(SearchFilter{})
	if got := st.Search.Results(); len(got) != 3 {
		t.Fatalf("empty filter must pass everything, got %d", len(got))
	}
}
