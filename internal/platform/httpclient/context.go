package httpclient

import (
	"context"
	"net/http"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	correlationIDKey
	idempotentKey
)

// Header names for propagated request metadata.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

var propagated = [...]struct {
	key    ctxKey
	header string
}{
	{requestIDKey, HeaderRequestID},
	{correlationIDKey, HeaderCorrelationID},
}

// WithRequestID stores the inbound request ID so outbound calls forward it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithCorrelationID stores a correlation ID so outbound calls forward it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// Idempotent marks calls made with ctx as safe to repeat. GET, HEAD, PUT,
// DELETE and OPTIONS need no mark.
func Idempotent(ctx context.Context) context.Context {
	return context.WithValue(ctx, idempotentKey, true)
}

func idempotent(ctx context.Context, method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	}
	marked, _ := ctx.Value(idempotentKey).(bool)
	return marked
}

// decorate copies propagated IDs from ctx onto req and fills in the
// User-Agent.
func (c *Client) decorate(ctx context.Context, req *http.Request) {
	for _, p := range propagated {
		if id, _ := ctx.Value(p.key).(string); id != "" {
			req.Header.Set(p.header, id)
		}
	}
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
}
