package handler

import (
	"encoding/json"
	"net/http"

	"stockroom/internal/middleware"
	"stockroom/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to do.
		return
	}
}

// writeError classifies the error, logs the full detail once, and
// writes the sanitised payload. Raw causes and store-specific text
// never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	appErr := model.Classify(err)
	correlationID := middleware.RequestIDFromContext(r.Context())

	logger.Error().
		Stack().
		Err(appErr.Err).
		Str("error_code", appErr.Code()).
		Str("error_message", appErr.Error()).
		Int("status", appErr.StatusCode()).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", correlationID).
		Msg("request failed")

	writeJSON(w, appErr.StatusCode(), model.NewErrorResponse(appErr, correlationID))
}
