package middleware

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/dto"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/logging"
)

// Timeout bounds how long a handler may take. The handler's response is held
// back until it returns; past the limit a 504 problem with code timeout is
// sent instead and the late response is discarded. A handler panic is
// re-raised on the request goroutine so Recovery still sees it. Zero or
// negative limits disable the middleware.
func Timeout(limit time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), limit)
			defer cancel()

			held := &heldResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(held, r.WithContext(ctx))
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				held.release(w)
			case <-ctx.Done():
				held.abandon()
				logging.FromContext(r.Context()).WarnContext(r.Context(), "request timed out",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Duration("limit", limit),
				)
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", limit, context.DeadlineExceeded))
			}
		})
	}
}

// heldResponse is the ResponseWriter given to a handler under Timeout. It
// records everything and forwards it in one piece, or never.
type heldResponse struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (h *heldResponse) Header() http.Header {
	return h.header
}

func (h *heldResponse) WriteHeader(status int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.status == 0 && !h.abandoned {
		h.status = status
	}
}

func (h *heldResponse) Write(b []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.abandoned {
		return 0, http.ErrHandlerTimeout
	}
	if h.status == 0 {
		h.status = http.StatusOK
	}
	return h.body.Write(b)
}

// release forwards the recorded response to w.
func (h *heldResponse) release(w http.ResponseWriter) {
	h.mu.Lock()
	defer h.mu.Unlock()

	maps.Copy(w.Header(), h.header)
	if h.status != 0 {
		w.WriteHeader(h.status)
	}
	_, _ = h.body.WriteTo(w)
}

// abandon makes every later write fail.
func (h *heldResponse) abandon() {
	h.mu.Lock()
	h.abandoned = true
	h.mu.Unlock()
}
