package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todo-web/internal/domain/todo"
)

// stubRenderer returns a fixed page or error and records what it was given.
type stubRenderer struct {
	page []byte
	err  error
	got  []todo.Entry
}

func (s *stubRenderer) Render(entries []todo.Entry) ([]byte, error) {
	s.got = entries
	return s.page, s.err
}

func formPost(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireRedirectHome(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	requireStatus(t, rec, http.StatusSeeOther)
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want %q", loc, "/")
	}
}

func requireProblem(t *testing.T, rec *httptest.ResponseRecorder, want int) dto.ErrorResponse {
	t.Helper()
	requireStatus(t, rec, want)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
	return decodeJSON[dto.ErrorResponse](t, rec)
}
