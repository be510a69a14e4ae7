package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/logging"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("failed to encode response", slog.Any("error", err))
	}
}

// writeHTML writes a fully rendered page.
func writeHTML(w http.ResponseWriter, r *http.Request, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		logging.FromContext(r.Context()).Debug("writing page", slog.Any("error", err))
	}
}

// redirectHome answers a successful form post with 303 See Other to "/".
func redirectHome(w http.ResponseWriter) {
	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusSeeOther)
}

// respondError logs a failed request once and writes its problem response.
func respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := logging.FromContext(r.Context())
	attrs := []any{slog.String("operation", op), slog.Any("error", err)}

	if status := dto.StatusFor(err); status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", attrs...)
	} else {
		logger.WarnContext(r.Context(), "request rejected", attrs...)
	}

	dto.WriteErrorResponse(w, r, err)
}
