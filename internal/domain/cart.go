package domain

// CartItem is one cart line. TotalPrice is computed server-side; the client
// displays it as-is even if it disagrees with Quantity × UnitPrice.
type CartItem struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"productId"`
	Title      string  `json:"title"`
	Image      string  `json:"image,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}
