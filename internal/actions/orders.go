package actions

import (
	"context"

	"storefront/internal/api"
	"storefront/internal/domain"
)

type orderClient interface {
	CreateOrder(ctx context.Context, in api.CreateOrderInput) (*domain.Order, error)
	Orders(ctx context.Context) ([]domain.Order, error)
	Order(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.OrderStatus, error)
}

// CreateOrder places the order, prepends it to the history, and clears the
// cart the order consumed.
func (a *Actions) CreateOrder(ctx context.Context, in api.CreateOrderInput) error {
	sl := a.store.Orders
	sl.SetLoading(true)
	order, err := a.orders.CreateOrder(ctx, in)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.AddOrder(*order)
	a.store.Cart.Clear()
	a.done(sl)
	return nil
}

// LoadOrders fetches the order history.
func (a *Actions) LoadOrders(ctx context.Context) error {
	sl := a.store.Orders
	sl.SetLoading(true)
	orders, err := a.orders.Orders(ctx)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetOrders(orders)
	a.done(sl)
	return nil
}

// UpdateOrderStatus patches one order's status and mirrors the returned
// value into the slice.
func (a *Actions) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	sl := a.store.Orders
	sl.SetLoading(true)
	applied, err := a.orders.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetStatus(orderID, applied)
	a.done(sl)
	return nil
}
