package domain

// ConvertedPrice is one currency view of a product price.
type ConvertedPrice struct {
	CurrencyCode string  `json:"currencyCode"`
	Amount       float64 `json:"amount"`
}

// Price carries the base amount plus per-currency conversions computed by the backend.
type Price struct {
	Amount          float64          `json:"amount"`
	CurrencyCode    string           `json:"currencyCode"`
	ConvertedPrices []ConvertedPrice `json:"convertedPrices,omitempty"`
}

// Configurator is a single key/value pair describing a variant option.
type Configurator struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ProductVariant is a configured variant with its own price and stock.
type ProductVariant struct {
	ID            string         `json:"id"`
	Quantity      int            `json:"quantity"`
	Price         float64        `json:"price"`
	Configurators []Configurator `json:"configurators,omitempty"`
}

// Product mirrors the backend product payload. Products are never created
// client-side; once stored they are immutable except wholesale replacement.
type Product struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Price      Price            `json:"price"`
	Pictures   []string         `json:"pictures,omitempty"`
	VendorID   string           `json:"vendorId,omitempty"`
	VendorName string           `json:"vendorName,omitempty"`
	CategoryID string           `json:"categoryId,omitempty"`
	Brand      string           `json:"brand,omitempty"`
	Weight     float64          `json:"weight,omitempty"`
	Height     float64          `json:"height,omitempty"`
	Width      float64          `json:"width,omitempty"`
	Variants   []ProductVariant `json:"variants,omitempty"`
	Quantity   int              `json:"quantity"`
}

// Vendor is the seller reference used by favorites.
type Vendor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}
