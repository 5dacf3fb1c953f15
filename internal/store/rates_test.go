package store

import (
	"testing"

	"storefront/internal/domain"
)

func TestActiveShippingRateSelection(t *testing.T) {
	st := New()

	if _, ok := st.Rates.ActiveShippingRate(); ok {
		t.Fatalf("empty table must select nothing")
	}

	st.Rates.SetShippingRates([]domain.ShippingRate{
		{ID: "r1", Name: "Standard", Price: 10},
		{ID: "r2", Name: "Express", Price: 25, IsActive: true},
		{ID: "r3", Name: "Priority", Price: 40, IsActive: true},
	})
	rate, ok := st.Rates.ActiveShippingRate()
	if !ok || rate.ID != "r2" {
		t.Fatalf("first active rate must win, got %+v", rate)
	}

	st.Rates.SetShippingRates([]domain.ShippingRate{
		{ID: "r1", Name: "Standard", Price: 10},
		{ID: "r2", Name: "Express", Price: 25},
	})
	rate, ok = st.Rates.ActiveShippingRate()
	if !ok || rate.ID != "r1" {
		t.Fatalf("no active rate must fall back to first, got %+v", rate)
	}
}
