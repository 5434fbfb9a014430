package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/grocerly/appcore/api/responses"
	"github.com/grocerly/appcore/internal/backoffice"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
)

// Products lists the catalog filtered by c_id or a free-text search term.
func Products(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var categoryID int64
		if raw := strings.TrimSpace(r.URL.Query().Get("c_id")); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "c_id must be numeric"))
				return
			}
			categoryID = parsed
		}
		search := strings.TrimSpace(r.URL.Query().Get("search"))

		products, err := repo.ListProducts(r.Context(), categoryID, search)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not load products"))
			return
		}

		responses.WriteSuccess(w, "products loaded", map[string]any{
			"products": legacyProducts(products),
		})
	}
}
