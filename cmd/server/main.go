// Package main is the entry point for the to-do web server. It wires all
// dependencies using samber/do v2, initializes the database schema, starts
// the HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-todo-web/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/database"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/logging"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

const (
	defaultProfile        = "local"
	schemaInitTimeout     = 10 * time.Second
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Info("configuration loaded",
		slog.String("profile", profile),
		slog.String("database", cfg.Database.Path),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	pool, err := do.Invoke[*database.Pool](injector)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer closePool(pool, logger)

	// A store that cannot be initialized is fatal.
	initCtx, initCancel := context.WithTimeout(ctx, schemaInitTimeout)
	err = pool.Initialize(initCtx)
	initCancel()
	if err != nil {
		return fmt.Errorf("initializing database schema: %w", err)
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(pool)

	if err := server.Listen(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Drain in-flight requests before the pool is closed by the deferred call.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

func closePool(pool *database.Pool, logger *slog.Logger) {
	if err := pool.Close(); err != nil {
		logger.Error("database close error", slog.Any("error", err))
	}
}

func flushTelemetry(otel *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}
