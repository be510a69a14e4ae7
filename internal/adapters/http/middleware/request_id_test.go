package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/middleware"
)

func serveRequestID(t *testing.T, incoming string) (ctxID, respID string) {
	t.Helper()

	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctxID = middleware.RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if incoming != "" {
		req.Header.Set("X-Request-ID", incoming)
	}
	handler.ServeHTTP(rec, req)

	return ctxID, rec.Header().Get("X-Request-ID")
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	ctxID, respID := serveRequestID(t, "")

	parsed, err := uuid.Parse(ctxID)
	if err != nil {
		t.Fatalf("generated ID %q is not a UUID: %v", ctxID, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", parsed.Version())
	}
	if respID != ctxID {
		t.Errorf("response X-Request-ID = %q, want %q", respID, ctxID)
	}
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	t.Parallel()

	ctxID, respID := serveRequestID(t, "incoming-123")

	if ctxID != "incoming-123" {
		t.Errorf("RequestIDFromContext = %q, want %q", ctxID, "incoming-123")
	}
	if respID != "incoming-123" {
		t.Errorf("response X-Request-ID = %q, want %q", respID, "incoming-123")
	}
}

func TestRequestID_ReplacesMalformedIncoming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
	}{
		{"too long", strings.Repeat("a", 129)},
		{"contains space", "abc def"},
		{"non-ascii", "idé"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctxID, _ := serveRequestID(t, tt.id)

			if ctxID == tt.id {
				t.Errorf("malformed ID %q was reused", tt.id)
			}
			if _, err := uuid.Parse(ctxID); err != nil {
				t.Errorf("replacement ID %q is not a UUID", ctxID)
			}
		})
	}
}

func TestRequestID_UniqueAcrossRequests(t *testing.T) {
	t.Parallel()

	ids := make(map[string]bool)
	for range 100 {
		id, _ := serveRequestID(t, "")
		ids[id] = true
	}

	if len(ids) != 100 {
		t.Errorf("unique IDs = %d, want 100", len(ids))
	}
}

func TestRequestIDFromContext_NotFound(t *testing.T) {
	t.Parallel()

	if id := middleware.RequestIDFromContext(context.Background()); id != "" {
		t.Errorf("RequestIDFromContext = %q, want empty string", id)
	}
}
