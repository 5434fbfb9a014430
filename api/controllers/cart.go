package controllers

import (
	"net/http"

	"github.com/grocerly/appcore/api/responses"
	"github.com/grocerly/appcore/internal/backoffice"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
)

// CartAdd inserts a cart line. Re-adding an existing product is the legacy
// "exists" outcome so the client treats it as an idempotent success.
func CartAdd(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		productID := formInt64(r, "p_id")
		if userID == 0 || productID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id and p_id are required"))
			return
		}
		qty := formInt(r, "qty")
		if qty < 1 {
			qty = 1
		}

		err := repo.AddCartItem(r.Context(), userID, productID, qty)
		if err == backoffice.ErrDuplicate {
			responses.WriteExists(w, "product is already in the cart")
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not add to cart"))
			return
		}

		responses.WriteSuccess(w, "product added to cart", nil)
	}
}

// Cart returns the user's cart lines with their product details.
func Cart(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id is required"))
			return
		}

		items, err := repo.ListCartItems(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not load cart"))
			return
		}

		payload := make([]map[string]any, 0, len(items))
		for _, item := range items {
			payload = append(payload, legacyCartItem(item))
		}
		responses.WriteSuccess(w, "cart loaded", map[string]any{
			"cart_items": payload,
		})
	}
}

// CartUpdateQuantity shifts a cart line by delta; the stored quantity never
// drops below one.
func CartUpdateQuantity(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		productID := formInt64(r, "p_id")
		if userID == 0 || productID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id and p_id are required"))
			return
		}

		err := repo.AdjustCartQuantity(r.Context(), userID, productID, formInt(r, "delta"))
		if err == backoffice.ErrNotFound {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindNotFound, "cart item not found"))
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not update quantity"))
			return
		}

		responses.WriteSuccess(w, "quantity updated", nil)
	}
}

// CartRemove deletes one cart line by its cart identity.
func CartRemove(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		cartID := formInt64(r, "cart_id")
		if userID == 0 || cartID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id and cart_id are required"))
			return
		}

		err := repo.RemoveCartItem(r.Context(), userID, cartID)
		if err == backoffice.ErrNotFound {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindNotFound, "cart item not found"))
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not remove cart item"))
			return
		}

		responses.WriteSuccess(w, "cart item removed", nil)
	}
}
