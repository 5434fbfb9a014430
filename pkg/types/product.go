package types

import "github.com/shopspring/decimal"

// SearchResultsKey is the reserved product-cache key for free-text searches.
// Numeric category ids use their decimal string form as the key.
const SearchResultsKey = "search results"

// Product is a catalog entry: identity plus flat display attributes.
type Product struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Weight    string          `json:"weight"`
	Unit      string          `json:"unit"`
	Stock     int             `json:"stock"`
}
