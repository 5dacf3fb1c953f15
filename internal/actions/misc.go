package actions

import (
	"context"

	"storefront/internal/domain"
)

type couponClient interface {
	Coupons(ctx context.Context) ([]domain.Coupon, error)
	ValidateCoupon(ctx context.Context, code string) (*domain.Coupon, error)
}

type rateClient interface {
	CommissionRules(ctx context.Context) ([]domain.CommissionRule, error)
	ShippingRates(ctx context.Context) ([]domain.ShippingRate, error)
}

type supportClient interface {
	CreateSupportProblem(ctx context.Context, p domain.SupportProblem) (*domain.SupportProblem, error)
}

// LoadCoupons fetches the coupon list.
func (a *Actions) LoadCoupons(ctx context.Context) error {
	sl := a.store.Coupons
	sl.SetLoading(true)
	coupons, err := a.coupons.Coupons(ctx)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetCoupons(coupons)
	a.done(sl)
	return nil
}

// ApplyCoupon validates a code server-side; the returned coupon carries the
// backend-computed isActived/isExpired flags.
func (a *Actions) ApplyCoupon(ctx context.Context, code string) error {
	sl := a.store.Coupons
	sl.SetLoading(true)
	c, err := a.coupons.ValidateCoupon(ctx, code)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetApplied(*c)
	a.done(sl)
	return nil
}

// LoadRates fetches the commission and shipping-tax tables for checkout.
func (a *Actions) LoadRates(ctx context.Context) error {
	sl := a.store.Rates
	sl.SetLoading(true)
	commissions, err := a.rates.CommissionRules(ctx)
	if err != nil {
		return a.fail(sl, err)
	}
	shipping, err := a.rates.ShippingRates(ctx)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.SetCommissions(commissions)
	sl.SetShippingRates(shipping)
	a.done(sl)
	return nil
}

// SubmitProblem sends a support request.
func (a *Actions) SubmitProblem(ctx context.Context, p domain.SupportProblem) error {
	sl := a.store.Support
	sl.SetLoading(true)
	created, err := a.support.CreateSupportProblem(ctx, p)
	if err != nil {
		return a.fail(sl, err)
	}
	sl.AddProblem(*created)
	a.done(sl)
	return nil
}
