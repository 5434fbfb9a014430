package apiclient

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/grocerly/appcore/pkg/types"
	"github.com/shopspring/decimal"
)

// The legacy backend is loose about scalar types: identifiers and quantities
// arrive as JSON numbers or as quoted strings depending on the endpoint.
// flexInt absorbs both.
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		*f = flexInt(v)
		return nil
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexInt(v)
	return nil
}

func parsePrice(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return value
}

type rawUser struct {
	ID      flexInt `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Role    string  `json:"role"`
	Address string  `json:"address"`
	Pincode string  `json:"pincode"`
	Photo   string  `json:"photo"`
	Token   string  `json:"token"`
}

func (r rawUser) toUser() types.User {
	return types.User{
		ID:      int64(r.ID),
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Role:    r.Role,
		Address: r.Address,
		Pincode: r.Pincode,
		Photo:   r.Photo,
		Token:   r.Token,
	}
}

type rawProduct struct {
	PID    flexInt `json:"p_id"`
	Name   string  `json:"p_name"`
	Price  string  `json:"p_price"`
	Image  string  `json:"p_image"`
	Weight string  `json:"p_weight"`
	Unit   string  `json:"p_unit"`
	Stock  flexInt `json:"p_stock"`
}

func (r rawProduct) toProduct() types.Product {
	return types.Product{
		ProductID: int64(r.PID),
		Name:      r.Name,
		Price:     parsePrice(r.Price),
		Image:     r.Image,
		Weight:    r.Weight,
		Unit:      r.Unit,
		Stock:     int(r.Stock),
	}
}

type rawCartItem struct {
	CartID flexInt `json:"cart_id"`
	PID    flexInt `json:"p_id"`
	Qty    flexInt `json:"qty"`
	Name   string  `json:"p_name"`
	Price  string  `json:"p_price"`
	Image  string  `json:"p_image"`
	Weight string  `json:"p_weight"`
	Unit   string  `json:"p_unit"`
}

func (r rawCartItem) toCartItem() types.CartItem {
	qty := int(r.Qty)
	if qty < 1 {
		qty = 1
	}
	return types.CartItem{
		CartID:    int64(r.CartID),
		ProductID: int64(r.PID),
		Quantity:  qty,
		Name:      r.Name,
		Price:     parsePrice(r.Price),
		Image:     r.Image,
		Weight:    r.Weight,
		Unit:      r.Unit,
	}
}

type rawWishlistItem struct {
	WID    flexInt `json:"w_id"`
	PID    flexInt `json:"p_id"`
	Name   string  `json:"p_name"`
	Price  string  `json:"p_price"`
	Image  string  `json:"p_image"`
	Weight string  `json:"p_weight"`
	Unit   string  `json:"p_unit"`
}

func (r rawWishlistItem) toWishlistItem() types.WishlistItem {
	return types.WishlistItem{
		WishlistID: int64(r.WID),
		ProductID:  int64(r.PID),
		Name:       r.Name,
		Price:      parsePrice(r.Price),
		Image:      r.Image,
		Weight:     r.Weight,
		Unit:       r.Unit,
	}
}

type rawOrderSummary struct {
	OID         flexInt `json:"o_id"`
	OrderNumber string  `json:"o_order_id"`
	Total       string  `json:"o_total"`
	Status      string  `json:"o_status"`
	PlacedAt    string  `json:"o_placed_date"`
}

func (r rawOrderSummary) toOrderSummary() types.OrderSummary {
	return types.OrderSummary{
		OrderID:     int64(r.OID),
		OrderNumber: r.OrderNumber,
		Total:       parsePrice(r.Total),
		Status:      r.Status,
		PlacedAt:    r.PlacedAt,
	}
}

type rawOrderLine struct {
	PID   flexInt `json:"p_id"`
	Name  string  `json:"p_name"`
	Price string  `json:"price"`
	Qty   flexInt `json:"qty"`
}

type rawOrderDetails struct {
	OID         flexInt        `json:"o_id"`
	OrderNumber string         `json:"o_order_id"`
	Total       string         `json:"o_total"`
	Status      string         `json:"o_status"`
	Address     string         `json:"o_address"`
	Pincode     string         `json:"o_pincode"`
	PlacedAt    string         `json:"o_placed_date"`
	Items       []rawOrderLine `json:"items"`
}

func (r rawOrderDetails) toOrderDetails() types.OrderDetails {
	lines := make([]types.OrderLine, 0, len(r.Items))
	for _, item := range r.Items {
		qty := int(item.Qty)
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, types.OrderLine{
			ProductID: int64(item.PID),
			Name:      item.Name,
			Price:     parsePrice(item.Price),
			Quantity:  qty,
		})
	}
	return types.OrderDetails{
		OrderID:     int64(r.OID),
		OrderNumber: r.OrderNumber,
		Total:       parsePrice(r.Total),
		Status:      r.Status,
		Address:     r.Address,
		Pincode:     r.Pincode,
		PlacedAt:    r.PlacedAt,
		Lines:       lines,
	}
}

type rawContactMessage struct {
	ID      flexInt `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

func (r rawContactMessage) toContactMessage() types.ContactMessage {
	return types.ContactMessage{
		ID:      int64(r.ID),
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}
