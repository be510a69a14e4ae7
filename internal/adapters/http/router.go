// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/handlers"
)

// NewRouter registers the to-do page, its form actions and the health probes.
// Middleware is applied globally in the order given. Unknown paths and known
// paths requested with the wrong method both get the standard 404 response.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(http.NotFound)
	r.MethodNotAllowed(http.NotFound)

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Get("/", todoHandler.List)
	r.Post("/add", todoHandler.Add)
	r.Post("/delete", todoHandler.Delete)

	return r
}
