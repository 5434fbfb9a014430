// Package controllers implements the legacy storefront endpoints the mobile
// client talks to. Requests arrive as multipart or url-encoded forms with
// stringly-typed numbers; responses use the loose legacy envelopes.
package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/grocerly/appcore/internal/backoffice"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
)

const maxFormMemory = 4 << 20

// formValue reads one field from either a multipart or url-encoded body, or
// from the query string for GET endpoints.
func formValue(r *http.Request, key string) string {
	if r.Form == nil {
		ct := r.Header.Get("Content-Type")
		if strings.HasPrefix(ct, "multipart/form-data") {
			_ = r.ParseMultipartForm(maxFormMemory)
		} else {
			_ = r.ParseForm()
		}
	}
	return strings.TrimSpace(r.FormValue(key))
}

// formInt64 parses a numeric form field, zero when absent or malformed.
func formInt64(r *http.Request, key string) int64 {
	v, err := strconv.ParseInt(formValue(r, key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// formInt parses a small numeric form field, zero when absent or malformed.
func formInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(formValue(r, key))
	if err != nil {
		return 0
	}
	return v
}

// requireFields returns a validation error naming the first missing field.
func requireFields(r *http.Request, keys ...string) *pkgerrors.Error {
	for _, key := range keys {
		if formValue(r, key) == "" {
			return pkgerrors.New(pkgerrors.KindValidation, key+" is required")
		}
	}
	return nil
}

// The legacy wire shapes: prices travel as strings, identifiers as numbers.

func legacyUser(u *backoffice.User, token string) map[string]any {
	payload := map[string]any{
		"id":      u.ID,
		"name":    u.Name,
		"email":   u.Email,
		"phone":   u.Phone,
		"role":    u.Role,
		"address": u.Address,
		"pincode": u.Pincode,
		"photo":   u.Photo,
	}
	if token != "" {
		payload["token"] = token
	}
	return payload
}

func legacyProduct(p backoffice.Product) map[string]any {
	return map[string]any{
		"p_id":     p.ID,
		"p_name":   p.Name,
		"p_price":  p.Price.String(),
		"p_image":  p.Image,
		"p_weight": p.Weight,
		"p_unit":   p.Unit,
		"p_stock":  p.Stock,
	}
}

func legacyProducts(products []backoffice.Product) []map[string]any {
	out := make([]map[string]any, 0, len(products))
	for _, p := range products {
		out = append(out, legacyProduct(p))
	}
	return out
}

func legacyCartItem(item backoffice.CartItem) map[string]any {
	return map[string]any{
		"cart_id":  item.ID,
		"p_id":     item.ProductID,
		"qty":      item.Quantity,
		"p_name":   item.Product.Name,
		"p_price":  item.Product.Price.String(),
		"p_image":  item.Product.Image,
		"p_weight": item.Product.Weight,
		"p_unit":   item.Product.Unit,
	}
}

func legacyWishlistItem(item backoffice.WishlistItem) map[string]any {
	return map[string]any{
		"w_id":     item.ID,
		"p_id":     item.ProductID,
		"p_name":   item.Product.Name,
		"p_price":  item.Product.Price.String(),
		"p_image":  item.Product.Image,
		"p_weight": item.Product.Weight,
		"p_unit":   item.Product.Unit,
	}
}

func legacyOrderSummary(order backoffice.Order) map[string]any {
	return map[string]any{
		"o_id":          order.ID,
		"o_order_id":    order.OrderNumber,
		"o_total":       order.Total.String(),
		"o_status":      order.Status,
		"o_placed_date": order.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func legacyOrderDetails(order *backoffice.Order) map[string]any {
	items := make([]map[string]any, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, map[string]any{
			"p_id":   line.ProductID,
			"p_name": line.Name,
			"price":  line.Price.String(),
			"qty":    line.Quantity,
		})
	}
	payload := legacyOrderSummary(*order)
	payload["o_address"] = order.Address
	payload["o_pincode"] = order.Pincode
	payload["items"] = items
	return payload
}

func legacyContactMessage(msg backoffice.ContactMessage) map[string]any {
	return map[string]any{
		"id":      msg.ID,
		"name":    msg.Name,
		"email":   msg.Email,
		"phone":   msg.Phone,
		"subject": msg.Subject,
		"message": msg.Message,
	}
}
