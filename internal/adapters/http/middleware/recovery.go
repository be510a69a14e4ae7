package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-todo-web/internal/adapters/http/dto"
)

var errPanic = errors.New("handler panicked")

// Recovery turns a handler panic into a 500 problem response and logs the
// panic value with its stack. If the handler already started the response,
// only the log entry is written. http.ErrAbortHandler is re-panicked.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
