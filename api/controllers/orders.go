package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/grocerly/appcore/api/responses"
	"github.com/grocerly/appcore/internal/backoffice"
	"github.com/grocerly/appcore/pkg/enums"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
	"github.com/shopspring/decimal"
)

// orderLineForm is one purchased line inside the JSON-stringified "products"
// form field.
type orderLineForm struct {
	ProductID int64           `json:"p_id"`
	Quantity  int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

// OrdersPlace creates an order from the submitted lines and empties the cart.
func OrdersPlace(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id is required"))
			return
		}
		if err := requireFields(r, "address", "pincode", "products"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var lines []orderLineForm
		if err := json.Unmarshal([]byte(formValue(r, "products")), &lines); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "products must be a JSON array"))
			return
		}
		if len(lines) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "order must contain at least one product"))
			return
		}

		total, err := decimal.NewFromString(formValue(r, "total"))
		if err != nil {
			total = decimal.Zero
		}

		items := make([]backoffice.OrderItem, 0, len(lines))
		for _, line := range lines {
			qty := line.Quantity
			if qty < 1 {
				qty = 1
			}
			items = append(items, backoffice.OrderItem{
				ProductID: line.ProductID,
				Price:     line.Price,
				Quantity:  qty,
			})
			if total.IsZero() {
				total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(qty))))
			}
		}

		order := &backoffice.Order{
			UserID:  userID,
			Total:   total,
			Status:  string(enums.OrderStatusPlaced),
			Address: formValue(r, "address"),
			Pincode: formValue(r, "pincode"),
			Items:   items,
		}
		if err := repo.PlaceOrder(r.Context(), order); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not place order"))
			return
		}

		responses.WriteSuccess(w, "order placed", map[string]any{
			"order_number": order.OrderNumber,
		})
	}
}

// Orders returns the user's order history, newest first.
func Orders(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id is required"))
			return
		}

		orders, err := repo.ListOrders(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not load orders"))
			return
		}

		payload := make([]map[string]any, 0, len(orders))
		for _, order := range orders {
			payload = append(payload, legacyOrderSummary(order))
		}
		responses.WriteSuccess(w, "orders loaded", map[string]any{
			"orders": payload,
		})
	}
}

// OrderDetails returns one order with its lines, scoped to the owning user.
func OrderDetails(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		orderID := formInt64(r, "o_id")
		if userID == 0 || orderID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id and o_id are required"))
			return
		}

		order, err := repo.FindOrder(r.Context(), userID, orderID)
		if err == backoffice.ErrNotFound {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindNotFound, "order not found"))
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not load order"))
			return
		}

		responses.WriteSuccess(w, "order loaded", map[string]any{
			"order_details": legacyOrderDetails(order),
		})
	}
}
