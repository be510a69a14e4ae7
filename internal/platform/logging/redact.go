package logging

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

const redacted = "[REDACTED]"

// sensitiveHeaders lists header names (lowercase) that carry credentials or
// session state. Shared by the masq field list and RedactHeaders.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// newRedactAttr returns a masq ReplaceAttr that hides credential-like
// attributes by name, by prefix, and bearer tokens by value.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+6)
	for name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
	)
	return masq.New(opts...)
}

// RedactHeaders converts request headers into slog attributes with
// credential-bearing values replaced. Multi-value headers are joined with a
// comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if sensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}
