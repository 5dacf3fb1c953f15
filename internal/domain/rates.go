package domain

// CommissionRule is one row of the backend commission table. A rule applies
// when it is active, matches the buyer's user type, and the order's total
// quantity falls inside [LowerLimit, UpperLimit].
type CommissionRule struct {
	ID         string  `json:"id"`
	UserType   string  `json:"userType"`
	LowerLimit int     `json:"lowerLimit"`
	UpperLimit int     `json:"upperLimit"`
	Amount     float64 `json:"amount"`
	IsActive   bool    `json:"isActive"`
}

// ShippingRate is one row of the backend shipping-tax table.
type ShippingRate struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price"`
	IsActive bool    `json:"isActive"`
}
