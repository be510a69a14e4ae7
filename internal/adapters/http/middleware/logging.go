package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-todo-web/internal/platform/logging"
)

// Logging stores a request-scoped child logger (tagged with request_id) in the
// context and logs one line when the request completes. Request headers are
// logged, redacted, at debug level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(slog.String("request_id", RequestIDFromContext(ctx)))
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := logging.RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			child.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
