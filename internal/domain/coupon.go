package domain

// Coupon mirrors the backend coupon payload. IsActived and IsExpired are
// computed server-side; the client does not recompute expiry from the dates.
// The IsActived spelling matches the backend JSON.
type Coupon struct {
	Code               string  `json:"code"`
	DiscountPercentage float64 `json:"discountPercentage"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	MinPurchase        float64 `json:"minPurchase"`
	MaxPurchase        float64 `json:"maxPurchase"`
	IsActived          bool    `json:"isActived"`
	IsExpired          bool    `json:"isExpired"`
}
