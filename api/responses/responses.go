// Package responses writes the legacy storefront envelopes: a JSON object
// with a loose `status` string discriminator ("success", "exists", "error")
// and a human message, plus endpoint-specific payload fields.
package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
)

const (
	statusSuccess = "success"
	statusExists  = "exists"
	statusError   = "error"
)

// WriteSuccess writes a 200 success envelope. Extra payload fields are merged
// next to status and message.
func WriteSuccess(w http.ResponseWriter, message string, payload map[string]any) {
	writeEnvelope(w, http.StatusOK, statusSuccess, message, payload)
}

// WriteExists writes the legacy duplicate marker: HTTP 200, status "exists".
func WriteExists(w http.ResponseWriter, message string) {
	writeEnvelope(w, http.StatusOK, statusExists, message, nil)
}

// WriteError maps a typed error onto the legacy error envelope. The HTTP
// status comes from the kind's metadata, but clients key off the body.
func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.KindInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Kind())
	msg := meta.PublicMessage
	switch typed.Kind() {
	case pkgerrors.KindValidation,
		pkgerrors.KindUnauthorized,
		pkgerrors.KindNotFound,
		pkgerrors.KindConflict,
		pkgerrors.KindApplication:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}

	if logg != nil && typed.Kind() == pkgerrors.KindInternal {
		logg.Error(ctx, "request failed", typed)
	}

	writeEnvelope(w, meta.HTTPStatus, statusError, msg, nil)
}

func writeEnvelope(w http.ResponseWriter, httpStatus int, status, message string, payload map[string]any) {
	body := map[string]any{
		"status":  status,
		"message": message,
	}
	for key, value := range payload {
		body[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(body)
}
