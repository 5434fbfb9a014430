package controllers

import (
	"net/http"

	"github.com/grocerly/appcore/api/responses"
	"github.com/grocerly/appcore/internal/backoffice"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
)

// Contact stores a submitted contact form.
func Contact(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := requireFields(r, "name", "email", "message"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		msg := &backoffice.ContactMessage{
			Name:    formValue(r, "name"),
			Email:   formValue(r, "email"),
			Phone:   formValue(r, "phone"),
			Subject: formValue(r, "subject"),
			Message: formValue(r, "message"),
		}
		if err := repo.CreateContactMessage(r.Context(), msg); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not store message"))
			return
		}

		responses.WriteSuccess(w, "thanks, we received your message", nil)
	}
}
