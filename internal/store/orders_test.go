package store

import (
	"testing"

	"storefront/internal/domain"
)

func TestAddOrderPrepends(t *testing.T) {
	st := New()
	st.Orders.SetOrders([]domain.Order{{ID: "o1"}})
	st.Orders.AddOrder(domain.Order{ID: "o2"})

	got := st.Orders.Orders()
	if len(got) != 2 || got[0].ID != "o2" {
		t.Fatalf("new order must be at head: %+v", got)
	}
}

func TestSetStatusPatchesInPlace(t *testing.T) {
	st := New()
	st.Orders.SetOrders([]domain.Order{
		{ID: "o1", Status: domain.OrderStatusProcessing},
		{ID: "o2", Status: domain.OrderStatusProcessing},
	})

	st.Orders.SetStatus("o2", domain.OrderStatusDelivered)

	got := st.Orders.Orders()
	if got[0].Status != domain.OrderStatusProcessing {
		t.Fatalf("wrong order patched: %+v", got)
	}
	if got[1].Status != domain.OrderStatusDelivered {
		t.Fatalf("status not patched: %+v", got)
	}

	// Unknown id is a no-op.
	st.Orders.SetStatus("missing", domain.OrderStatusCancelled)
	if got := st.Orders.Orders(); len(got) != 2 {
		t.Fatalf("patch of unknown id changed history: %+v", got)
	}
}

func TestOrderStatusFromCode(t *testing.T) {
	cases := []struct {
		code int
		want domain.OrderStatus
	}{
		{0, domain.OrderStatusProcessing},
		{3, domain.OrderStatusProcessing},
		{6, domain.OrderStatusProcessing},
		{7, domain.OrderStatusDelivered},
		{9, domain.OrderStatusDelivered},
		{10, domain.OrderStatusCancelled},
	}
	for _, tc := range cases {
		if got := domain.OrderStatusFromCode(tc.code); got != tc.want {
			t.Fatalf("code %d: got %s want %s", tc.code, got, tc.want)
		}
	}
}
