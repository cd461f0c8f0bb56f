package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// sessionParam is the chi URL parameter naming a form session.
const sessionParam = "id"

// routeOf returns the matched chi route pattern and the form session ID, if
// the route has one. Both are only known once routing has run, so callers
// read them after next.ServeHTTP returns. An unmatched request reports its
// raw path.
func routeOf(r *http.Request) (pattern, sessionID string) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path, ""
	}
	pattern = rctx.RoutePattern()
	if pattern == "" {
		pattern = r.URL.Path
	}
	return pattern, rctx.URLParam(sessionParam)
}
