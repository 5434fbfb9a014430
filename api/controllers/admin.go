package controllers

import (
	"net/http"

	"github.com/grocerly/appcore/api/responses"
	"github.com/grocerly/appcore/internal/backoffice"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
)

// AdminUsers lists every account for the back-office screens.
func AdminUsers(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := repo.ListUsers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not load users"))
			return
		}

		payload := make([]map[string]any, 0, len(users))
		for i := range users {
			payload = append(payload, legacyUser(&users[i], ""))
		}
		responses.WriteSuccess(w, "users loaded", map[string]any{
			"data": payload,
		})
	}
}

// AdminProducts lists the whole catalog for the back-office screens.
func AdminProducts(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := repo.ListProducts(r.Context(), 0, "")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not load products"))
			return
		}

		responses.WriteSuccess(w, "products loaded", map[string]any{
			"data": legacyProducts(products),
		})
	}
}

// AdminContacts lists every contact message for the back-office screens.
func AdminContacts(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := repo.ListContactMessages(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not load messages"))
			return
		}

		payload := make([]map[string]any, 0, len(messages))
		for _, msg := range messages {
			payload = append(payload, legacyContactMessage(msg))
		}
		responses.WriteSuccess(w, "messages loaded", map[string]any{
			"data": payload,
		})
	}
}
