package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-todo-web/internal/adapters/http"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/view"
	"github.com/jsamuelsen11/go-todo-web/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/database"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/health"
	"github.com/jsamuelsen11/go-todo-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todo-web/internal/ports"
)

// registerDependencies declares the object graph:
//
//	Pool → Store → TodoHandler ┐
//	                Renderer ──┤→ Router → Server
//	HealthRegistry → HealthHandler ┘
func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*database.Pool, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return database.Open(&cfg.Database, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoStore, error) {
		pool := do.MustInvoke[*database.Pool](i)
		return sqlite.NewStore(pool), nil
	})

	do.Provide(injector, func(_ do.Injector) (*view.Renderer, error) {
		return view.New()
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.DefaultCheckTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		store := do.MustInvoke[ports.TodoStore](i)
		renderer := do.MustInvoke[*view.Renderer](i)
		return handlers.NewTodoHandler(store, renderer), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(todoH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
