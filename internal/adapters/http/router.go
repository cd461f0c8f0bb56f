// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/dto"
	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/handlers"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Unknown paths get a
// problem details 404.
func NewRouter(
	formHandler *handlers.FormHandler,
	phoneHandler *handlers.PhoneHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("route %s %s: %w", req.Method, req.URL.Path, domain.ErrNotFound))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Form sessions.
		r.Post("/forms", formHandler.OpenForm)
		r.Get("/forms/{id}", formHandler.GetForm)
		r.Delete("/forms/{id}", formHandler.CloseForm)

		// UI events.
		r.Post("/forms/{id}/fields/{field}/input", formHandler.InputField)
		r.Post("/forms/{id}/fields/{field}/blur", formHandler.BlurField)
		r.Post("/forms/{id}/submit", formHandler.SubmitForm)

		r.Post("/phone/mask", phoneHandler.Mask)
	})

	return r
}
