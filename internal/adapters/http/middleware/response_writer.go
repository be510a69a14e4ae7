// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router installs them in this order:
//
//	Recovery → RequestID → OpenTelemetry → Logging → Handler
package middleware

import "net/http"

// responseWriter records the status code and body size a handler produced.
// Recovery, OpenTelemetry and Logging each wrap the writer they are given.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader records the first status code and passes it on. Later calls are
// dropped, matching net/http's own behavior.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Unwrap exposes the wrapped writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
