package types

import "github.com/shopspring/decimal"

// OrderSummary is one row of the order-history list.
type OrderSummary struct {
	OrderID     int64           `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	PlacedAt    string          `json:"placed_at"`
}

// OrderLine is a single purchased product within an order.
type OrderLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// OrderDetails is the single-slot detail cache: the currently viewed order
// with its nested line items. Fetching another order replaces it wholesale.
type OrderDetails struct {
	OrderID     int64           `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	Address     string          `json:"address"`
	Pincode     string          `json:"pincode"`
	PlacedAt    string          `json:"placed_at"`
	Lines       []OrderLine     `json:"lines"`
}

// ContactMessage is an admin-side view of one submitted contact form.
type ContactMessage struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
