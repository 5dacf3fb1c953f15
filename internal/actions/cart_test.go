package actions

import (
	"context"
	"testing"

	"storefront/internal/domain"
)

type stubCart struct {
	items []domain.CartItem
	item  *domain.CartItem
	err   error

	addedQuantities   []int
	updatedQuantities []int
	removed           []string
}

func (s *stubCart) Cart(context.Context) ([]domain.CartItem, error) {
	return s.items, s.err
}

func (s *stubCart) AddToCart(_ context.Context, productID string, quantity int) (*domain.CartItem, error) {
	s.addedQuantities = append(s.addedQuantities, quantity)
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubCart) UpdateCartQuantity(_ context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	s.updatedQuantities = append(s.updatedQuantities, quantity)
	if s.err != nil {
		return nil, s.err
	}
	return s.item, nil
}

func (s *stubCart) RemoveFromCart(_ context.Context, itemID string) error {
	if s.err != nil {
		return s.err
	}
	s.removed = append(s.removed, itemID)
	return nil
}

func TestAddToCartClampsQuantityBeforeCall(t *testing.T) {
	a, st, _ := testActions()
	stub := &stubCart{item: &domain.CartItem{ID: "l1", ProductID: "p1", Quantity: 1}}
	a.cart = stub

	if err := a.AddToCart(context.Background(), "p1", 0); err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(stub.addedQuantities) != 1 || stub.addedQuantities[0] != 1 {
		t.Fatalf("quantity not clamped before the call: %v", stub.addedQuantities)
	}
	if got := st.Cart.Items(); len(got) != 1 || got[0].ID != "l1" {
		t.Fatalf("returned line not reconciled: %+v", got)
	}
}

func TestChangeQuantityWritesBackServerValues(t *testing.T) {
	a, st, _ := testActions()
	st.Cart.SetItems([]domain.CartItem{{ID: "l1", ProductID: "p1", Quantity: 2, UnitPrice: 10, TotalPrice: 20}})
	a.cart = &stubCart{item: &domain.CartItem{ID: "l1", Quantity: 5, TotalPrice: 50}}

	if err := a.ChangeQuantity(context.Background(), "l1", 5); err != nil {
		t.Fatalf("change quantity: %v", err)
	}

	got := st.Cart.Items()[0]
	if got.Quantity != 5 || got.TotalPrice != 50 {
		t.Fatalf("server values not written back: %+v", got)
	}
}

func TestRemoveFromCartKeepsLineOnServerError(t *testing.T) {
	a, st, _ := testActions()
	st.Cart.SetItems([]domain.CartItem{{ID: "l1"}})
	a.cart = &stubCart{err: context.DeadlineExceeded}

	if err := a.RemoveFromCart(context.Background(), "l1"); err == nil {
		t.Fatalf("expected error")
	}

	if got := st.Cart.Items(); len(got) != 1 {
		t.Fatalf("line removed despite server failure: %+v", got)
	}
	if st.Cart.Err() == "" {
		t.Fatalf("error message not recorded")
	}
}

func TestRemoveFromCartDeletesLocallyAfterServer(t *testing.T) {
	a, st, _ := testActions()
	st.Cart.SetItems([]domain.CartItem{{ID: "l1"}, {ID: "l2"}})
	stub := &stubCart{}
	a.cart = stub

	if err := a.RemoveFromCart(context.Background(), "l1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if len(stub.removed) != 1 || stub.removed[0] != "l1" {
		t.Fatalf("server delete not issued: %v", stub.removed)
	}
	got := st.Cart.Items()
	if len(got) != 1 || got[0].ID != "l2" {
		t.Fatalf("unexpected cart after remove: %+v", got)
	}
}
