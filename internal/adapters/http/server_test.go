package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/go-todo-web/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewServer_NilLogger(t *testing.T) {
	t.Parallel()

	cfg := config.ServerConfig{Host: "127.0.0.1", Port: 0}
	if s := adapthttp.NewServer(cfg, http.NotFoundHandler(), nil); s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
		port int
		want string
	}{
		{"ipv4", "127.0.0.1", 9090, "127.0.0.1:9090"},
		{"all interfaces", "0.0.0.0", 8080, "0.0.0.0:8080"},
		{"ipv6", "::1", 8080, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.ServerConfig{Host: tt.host, Port: tt.port}
			s := adapthttp.NewServer(cfg, http.NotFoundHandler(), discardLogger())

			if got := s.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})

	cfg := config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	s := adapthttp.NewServer(cfg, handler, discardLogger())
	if err := s.Listen(); err != nil {
		t.Fatalf("Listen() error: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	resp, err := http.Get("http://" + s.Addr() + "/")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Errorf("response = %d %q, want 200 %q", resp.StatusCode, body, "ok")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown: %v", err)
	}
}

func TestServer_StartErrorOnBusyPort(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen error: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	port := ln.Addr().(*net.TCPAddr).Port
	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: port}, http.NotFoundHandler(), discardLogger())

	if err := s.Start(); err == nil {
		t.Fatal("Start() on busy port returned nil, want error")
	}
}
