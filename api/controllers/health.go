package controllers

import (
	"net/http"

	"github.com/grocerly/appcore/api/responses"
	"github.com/grocerly/appcore/pkg/config"
)

// HealthLive reports process liveness.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Grocerly-Env", cfg.App.Env)
		responses.WriteSuccess(w, "ok", nil)
	}
}
