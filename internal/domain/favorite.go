package domain

// Favorite is the per-user wishlist aggregate: favorited products and
// favorited sellers under one record. The backend field name for sellers is
// kept as-is.
type Favorite struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	FavoriteItems   []Product `json:"favoriteItems"`
	FavoriteSellers []Vendor  `json:"favoriteSallers"`
}
