package controllers

import (
	"net/http"

	"github.com/grocerly/appcore/api/responses"
	"github.com/grocerly/appcore/internal/backoffice"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
)

// WishlistAdd saves a product; a second save is the legacy "exists" outcome.
func WishlistAdd(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		productID := formInt64(r, "p_id")
		if userID == 0 || productID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id and p_id are required"))
			return
		}

		err := repo.AddWishlistItem(r.Context(), userID, productID)
		if err == backoffice.ErrDuplicate {
			responses.WriteExists(w, "product is already in the wishlist")
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not add to wishlist"))
			return
		}

		responses.WriteSuccess(w, "product added to wishlist", nil)
	}
}

// Wishlist returns the user's saved products.
func Wishlist(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id is required"))
			return
		}

		items, err := repo.ListWishlistItems(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not load wishlist"))
			return
		}

		payload := make([]map[string]any, 0, len(items))
		for _, item := range items {
			payload = append(payload, legacyWishlistItem(item))
		}
		responses.WriteSuccess(w, "wishlist loaded", map[string]any{
			"wishlist": payload,
		})
	}
}

// WishlistRemove deletes one saved product by its wishlist identity.
func WishlistRemove(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		wishlistID := formInt64(r, "w_id")
		if userID == 0 || wishlistID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id and w_id are required"))
			return
		}

		err := repo.RemoveWishlistItem(r.Context(), userID, wishlistID)
		if err == backoffice.ErrNotFound {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindNotFound, "wishlist item not found"))
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not remove wishlist item"))
			return
		}

		responses.WriteSuccess(w, "wishlist item removed", nil)
	}
}
