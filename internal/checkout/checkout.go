// Package checkout computes display totals for the cart and checkout
// screens. The numbers here are presentation only; the backend recomputes
// authoritative totals when the order is placed.
package checkout

import "storefront/internal/domain"

// DefaultShippingPrice is the flat shipping charge applied at checkout.
// TODO: replace with the active rate from the fetched shipping-tax table
// once the backend settles which of the two shipping mechanisms is
// authoritative.
const DefaultShippingPrice = 10

// Breakdown is the checkout screen's total decomposition.
type Breakdown struct {
	Subtotal   float64
	Shipping   float64
	Commission float64
	Total      float64
}

// Input carries everything the total computation reads.
type Input struct {
	Items []domain.CartItem
	// UserType of the signed-in user, matched against commission rules.
	UserType string
	// Commissions is the fetched commission table.
	Commissions []domain.CommissionRule
	// ContactSupport is the "contact support for shipping" option; it
	// forces commission to zero regardless of rule matches.
	ContactSupport bool
}

// LineTotal is the display total for one cart line: unit price times the
// quantity clamped to at least 1.
func LineTotal(item domain.CartItem) float64 {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	return item.UnitPrice * float64(qty)
}

// Subtotal folds line totals over the cart. Pure: computing it twice on the
// same slice yields the same number.
func Subtotal(items []domain.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += LineTotal(it)
	}
	return total
}

// TotalQuantity sums line quantities for commission range matching.
func TotalQuantity(items []domain.CartItem) int {
	var qty int
	for _, it := range items {
		qty += it.Quantity
	}
	return qty
}

// ActiveCommissionRule selects the single rule checkout consults: the first
// active record, else the first record. Among overlapping active rules the
// first in document order wins.
func ActiveCommissionRule(rules []domain.CommissionRule) (domain.CommissionRule, bool) {
	for _, r := range rules {
		if r.IsActive {
			return r, true
		}
	}
	if len(rules) > 0 {
		return rules[0], true
	}
	return domain.CommissionRule{}, false
}

// Commission returns the commission charge. Zero when the contact-support
// option is chosen, when no rule exists, or when the selected rule does not
// match the user type and quantity range. A non-match is silent.
func Commission(rules []domain.CommissionRule, userType string, totalQuantity int, contactSupport bool) float64 {
	if contactSupport {
		return 0
	}
	rule, ok := ActiveCommissionRule(rules)
	if !ok {
		return 0
	}
	if !rule.IsActive || rule.UserType != userType {
		return 0
	}
	if totalQuantity < rule.LowerLimit || totalQuantity > rule.UpperLimit {
		return 0
	}
	return rule.Amount
}

// Total computes the full checkout breakdown.
func Total(in Input) Breakdown {
	sub := Subtotal(in.Items)
	commission := Commission(in.Commissions, in.UserType, TotalQuantity(in.Items), in.ContactSupport)
	return Breakdown{
		Subtotal:   sub,
		Shipping:   DefaultShippingPrice,
		Commission: commission,
		Total:      sub + DefaultShippingPrice + commission,
	}
}
