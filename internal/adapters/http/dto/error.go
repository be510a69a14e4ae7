package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level parse error within an
// ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// Server-side failures never echo the underlying cause.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.URL.RequestURI(),
	}

	if status < http.StatusInternalServerError {
		resp.Detail = err.Error()
	}

	var perr *domain.ParseError
	if errors.As(err, &perr) {
		resp.Errors = parseFieldsToDetails(perr.Fields)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error with Content-Type application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// StatusFor maps an error kind to its HTTP status. Connection, query and
// render failures share 500 with errors that carry no kind.
func StatusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindRequestParse:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{
			Location: "form." + field,
			Message:  msg,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}
