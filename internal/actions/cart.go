package actions

import (
	"context"

	"storefront/internal/domain"
)

type cartClient interface {
	Cart(ctx context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, productID string, quantity int) (*domain.CartItem, error)
	UpdateCartQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error)
	RemoveFromCart(ctx context.Context, itemID string) error
}

// LoadCart fetches the server-side cart.
func (a *Actions) LoadCart(ctx context.Context) error {
	sl := a.store.Cart
	sl.SetLoading(true)
	items, err := a.cart.Cart(ctx)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetItems(items)
	a.done(sl)
	return nil
}

// AddToCart posts the line and reconciles the returned item into the slice.
// Re-adding a product replaces its quantity with the new value.
func (a *Actions) AddToCart(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	sl := a.store.Cart
	sl.SetLoading(true)
	item, err := a.cart.AddToCart(ctx, productID, quantity)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.AddItem(*item)
	a.done(sl)
	return nil
}

// ChangeQuantity updates one line's quantity, clamped to at least 1, and
// writes back the server-computed line total.
func (a *Actions) ChangeQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	sl := a.store.Cart
	sl.SetLoading(true)
	item, err := a.cart.UpdateCartQuantity(ctx, itemID, quantity)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetQuantity(itemID, item.Quantity)
	sl.SetItemTotal(itemID, item.TotalPrice)
	a.done(sl)
	return nil
}

// RemoveFromCart deletes the line server-side, then locally.
func (a *Actions) RemoveFromCart(ctx context.Context, itemID string) error {
	sl := a.store.Cart
	sl.SetLoading(true)
	if err := a.cart.RemoveFromCart(ctx, itemID); err != nil {
		return a.fail(sl, err)
	}
	sl.RemoveItem(itemID)
	a.done(sl)
	return nil
}
