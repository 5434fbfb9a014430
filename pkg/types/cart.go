package types

import "github.com/shopspring/decimal"

// CartItem is one line of the server-owned cart. Product display fields are
// denormalized snapshots taken at fetch time. Quantity is always >= 1; local
// adjustments clamp rather than drop below the floor.
type CartItem struct {
	CartID    int64           `json:"cart_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Weight    string          `json:"weight"`
	Unit      string          `json:"unit"`
}

// WishlistItem mirrors CartItem without a quantity.
type WishlistItem struct {
	WishlistID int64           `json:"wishlist_id"`
	ProductID  int64           `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Image      string          `json:"image"`
	Weight     string          `json:"weight"`
	Unit       string          `json:"unit"`
}
