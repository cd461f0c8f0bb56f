package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redactedValue = "[REDACTED]"

// sensitiveHeaders holds lowercase header names whose values never reach the
// logs.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// RedactHeaders converts headers into slog attributes sorted by name, with
// sensitive values replaced by "[REDACTED]". Multi-value headers are joined
// with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		value := strings.Join(headers[key], ",")
		if sensitiveHeaders[strings.ToLower(key)] {
			value = redactedValue
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return attrs
}
