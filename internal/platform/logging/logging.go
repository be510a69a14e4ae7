// Package logging provides structured logger construction and context propagation
// using the standard library slog package.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logger = logging.FromContext(ctx)
//
// Failures are logged once, at the HTTP boundary, with the operation name and
// the full error chain:
//
//	logger.ErrorContext(ctx, "request failed",
//	    slog.String("operation", "delete"),
//	    slog.Int64("todo_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a configured *slog.Logger.
//
// Level is one of "debug", "info", "warn", "error" (case-insensitive);
// anything else means info. Format "text" selects slog.NewTextHandler, any
// other value slog.NewJSONHandler. At debug level source locations are
// included. Credential-like attributes are redacted.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
