// Package respond provides utilities for sending HTTP responses in JSON
// format, including the mapping from domain failure kinds to status codes.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"newsdesk/internal/domain/entity"
)

// statusByKind is the error-taxonomy table. It is a pure lookup by failure
// kind; any kind not present degrades to a generic server error.
var statusByKind = map[entity.Kind]int{
	entity.KindBadRequest:          http.StatusBadRequest,
	entity.KindNotFound:            http.StatusNotFound,
	entity.KindConflict:            http.StatusConflict,
	entity.KindUnprocessableEntity: http.StatusUnprocessableEntity,
	entity.KindForbidden:           http.StatusForbidden,
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// StatusOf returns the transport status code for a domain failure.
// The second return value is false when err is not a recognized domain
// failure, in which case the caller must treat it as an internal error.
func StatusOf(err error) (int, bool) {
	code, ok := statusByKind[entity.KindOf(err)]
	return code, ok
}

// DomainError translates a domain failure into its transport outcome.
// Recognized failure kinds return their mapped status with the failure's
// message; anything else is logged server-side (with credentials masked) and
// surfaces as a 500 with a generic message, never leaking the underlying error.
func DomainError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	if code, ok := StatusOf(err); ok {
		JSON(w, code, map[string]string{"error": err.Error()})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("error", SanitizeError(err)))
	JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
