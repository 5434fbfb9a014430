package controllers

import (
	"net/http"
	"time"

	"github.com/grocerly/appcore/api/responses"
	"github.com/grocerly/appcore/internal/backoffice"
	pkgAuth "github.com/grocerly/appcore/pkg/auth"
	"github.com/grocerly/appcore/pkg/config"
	"github.com/grocerly/appcore/pkg/enums"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
	"github.com/grocerly/appcore/pkg/security"
)

// Signup registers an account and hands back the new identity with a minted
// token. A taken email is the legacy "exists" outcome, not an error.
func Signup(repo *backoffice.Repository, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := requireFields(r, "name", "email", "password", "phone"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		hash, err := security.HashPassword(formValue(r, "password"), cfg.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not hash password"))
			return
		}

		user := &backoffice.User{
			Name:         formValue(r, "name"),
			Email:        formValue(r, "email"),
			PasswordHash: hash,
			Phone:        formValue(r, "phone"),
			Role:         string(enums.RoleCustomer),
		}
		if err := repo.CreateUser(r.Context(), user); err != nil {
			if err == backoffice.ErrDuplicate {
				responses.WriteExists(w, "an account with this email already exists")
				return
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not create account"))
			return
		}

		token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), user.ID, user.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not issue token"))
			return
		}

		responses.WriteSuccess(w, "account created", map[string]any{
			"user_data": legacyUser(user, token),
		})
	}
}

// Login exchanges credentials for the user record and a fresh token.
func Login(repo *backoffice.Repository, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := requireFields(r, "email", "password"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := repo.FindUserByEmail(r.Context(), formValue(r, "email"))
		if err == backoffice.ErrNotFound {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindUnauthorized, "invalid email or password"))
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not load account"))
			return
		}

		ok, err := security.VerifyPassword(formValue(r, "password"), user.PasswordHash)
		if err != nil || !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindUnauthorized, "invalid email or password"))
			return
		}

		token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), user.ID, user.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not issue token"))
			return
		}

		responses.WriteSuccess(w, "login successful", map[string]any{
			"user_data": legacyUser(user, token),
		})
	}
}

// EditProfile applies the submitted non-empty fields and returns the merged
// record. Numbers and identifiers travel as form strings per the contract.
func EditProfile(repo *backoffice.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formInt64(r, "user_id")
		if userID == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindValidation, "user_id is required"))
			return
		}

		fields := map[string]any{}
		for form, column := range map[string]string{
			"name":    "name",
			"email":   "email",
			"phone":   "phone",
			"address": "address",
			"pincode": "pincode",
			"photo":   "photo",
		} {
			if value := formValue(r, form); value != "" {
				fields[column] = value
			}
		}

		user, err := repo.UpdateUserFields(r.Context(), userID, fields)
		if err == backoffice.ErrNotFound {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.KindNotFound, "account not found"))
			return
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.KindInternal, err, "could not update profile"))
			return
		}

		responses.WriteSuccess(w, "profile updated", map[string]any{
			"user_data": legacyUser(user, ""),
		})
	}
}
