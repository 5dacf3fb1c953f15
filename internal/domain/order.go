package domain

import "time"

// OrderStatus is the single authoritative status representation. Backends
// that send the numeric status ladder are mapped through OrderStatusFromCode.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// OrderStatusFromCode collapses the backend's numeric 0–10 ladder onto the
// three states the client distinguishes. Codes below the delivered band are
// all in-progress variants.
func OrderStatusFromCode(code int) OrderStatus {
	switch {
	case code == 10:
		return OrderStatusCancelled
	case code >= 7:
		return OrderStatusDelivered
	default:
		return OrderStatusProcessing
	}
}

// Order holds a snapshot of cart items at order time; Items never track later
// product changes.
type Order struct {
	ID     string      `json:"id"`
	Date   time.Time   `json:"date"`
	Items  []CartItem  `json:"items"`
	Total  float64     `json:"total"`
	Status OrderStatus `json:"status"`
}
