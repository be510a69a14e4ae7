package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/logging"
)

func TestLogging_LogsCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/")
		w.WriteHeader(http.StatusSeeOther)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add", http.NoBody))

	output := buf.String()
	for _, want := range []string{"request completed", "method=POST", "path=/add", "status=303", "duration="} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q, got: %s", want, output)
		}
	}
}

func TestLogging_ServerErrorsLoggedAtError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if !strings.Contains(buf.String(), "level=ERROR") {
		t.Errorf("expected ERROR level for 500, got: %s", buf.String())
	}
}

func TestLogging_StoresEnrichedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("handler log")
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "ctx-logger-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	if !strings.Contains(output, "handler log") {
		t.Error("handler log not captured, enriched logger may not be stored in context")
	}
	if !strings.Contains(output, "request_id=ctx-logger-test") {
		t.Errorf("handler log missing request_id, got: %s", output)
	}
}

func TestLogging_RedactsHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Cookie", "session=abc123")
	req.Header.Set("Accept", "text/html")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	if strings.Contains(output, "abc123") {
		t.Errorf("cookie value leaked into logs: %s", output)
	}
	if !strings.Contains(output, "text/html") {
		t.Errorf("non-sensitive header missing from logs: %s", output)
	}
}

func TestLogging_NoHeadersAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	handler := middleware.Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Accept", "text/html")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if strings.Contains(buf.String(), "request headers") {
		t.Errorf("headers logged at info level: %s", buf.String())
	}
}
