// Package formapi is the outbound adapter for a remote form server. Client
// implements ports.RegistrationService over the server's HTTP API, so the
// scenario runner can drive a deployed server exactly as it drives the
// in-process service. Problem responses are translated back into the domain
// errors the server started from.
package formapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/httpclient"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// Compile-time checks.
var (
	_ ports.RegistrationService = (*Client)(nil)
	_ ports.HealthChecker       = (*Client)(nil)
)

const apiPrefix = "/api/v1"

// Client talks to a form server. The underlying httpclient.Client provides
// circuit breaking, rate limiting, retries and tracing. Only the field input
// and blur events are marked idempotent; opening and submitting a form are
// never replayed.
type Client struct {
	http *httpclient.Client
	req  *requester
}

// New creates a Client sending requests through client, whose BaseURL is the
// server root (e.g. "http://localhost:8080"). A nil logger discards logs.
func New(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		http: client,
		req:  &requester{client: client, logger: logger},
	}
}

// Open creates a form session with POST /api/v1/forms.
func (c *Client) Open(ctx context.Context) (*ports.Session, error) {
	return c.session(ctx, http.MethodPost, apiPrefix+"/forms", http.StatusCreated, nil)
}

// Get reads a form session with GET /api/v1/forms/{id}.
func (c *Client) Get(ctx context.Context, id string) (*ports.Session, error) {
	return c.session(ctx, http.MethodGet, formPath(id), http.StatusOK, nil)
}

// Input sends a field value with POST /api/v1/forms/{id}/fields/{field}/input.
func (c *Client) Input(ctx context.Context, id, field, value string) (*ports.Session, error) {
	return c.session(httpclient.Idempotent(ctx), http.MethodPost, fieldPath(id, field, "input"),
		http.StatusOK, valueRequest{Value: value})
}

// Blur signals focus loss with POST /api/v1/forms/{id}/fields/{field}/blur.
func (c *Client) Blur(ctx context.Context, id, field string) (*ports.Session, error) {
	return c.session(httpclient.Idempotent(ctx), http.MethodPost, fieldPath(id, field, "blur"),
		http.StatusOK, nil)
}

// Submit attempts a submission with POST /api/v1/forms/{id}/submit. A
// blocked submission returns a *domain.ValidationError wrapping
// domain.ErrPasswordMismatch.
func (c *Client) Submit(ctx context.Context, id string) (*ports.Session, error) {
	return c.session(ctx, http.MethodPost, formPath(id)+"/submit", http.StatusOK, nil)
}

// Close discards a form session with DELETE /api/v1/forms/{id}.
func (c *Client) Close(ctx context.Context, id string) error {
	return c.req.do(ctx, http.MethodDelete, formPath(id), http.StatusNoContent, nil, nil)
}

// MaskPhone masks raw with POST /api/v1/phone/mask.
func (c *Client) MaskPhone(ctx context.Context, raw string) (string, error) {
	var dto maskDTO
	if err := c.req.do(httpclient.Idempotent(ctx), http.MethodPost, apiPrefix+"/phone/mask",
		http.StatusOK, valueRequest{Value: raw}, &dto); err != nil {
		return "", err
	}
	return dto.Masked, nil
}

// Name identifies the form server in health results.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck fails fast while the circuit breaker is not closed and
// otherwise probes GET /health/live.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.http.HealthCheck(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	if err := c.req.do(ctx, http.MethodGet, "/health/live", http.StatusOK, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", c.Name(), err)
	}
	return nil
}

func (c *Client) session(ctx context.Context, method, path string, wantStatus int, body any) (*ports.Session, error) {
	var dto formDTO
	if err := c.req.do(ctx, method, path, wantStatus, body, &dto); err != nil {
		return nil, err
	}
	return toSession(&dto), nil
}

func formPath(id string) string {
	return apiPrefix + "/forms/" + url.PathEscape(id)
}

func fieldPath(id, field, event string) string {
	return formPath(id) + "/fields/" + url.PathEscape(field) + "/" + event
}
