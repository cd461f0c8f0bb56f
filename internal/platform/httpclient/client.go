// Package httpclient sends requests to a remote form server. Each call goes
// through a circuit breaker and an optional token bucket. Request metadata is
// then copied onto headers, a client span is opened, and the call is tried
// until it succeeds or the retry policy gives up:
//
//	c := httpclient.New(&cfg.Client, "form-api",
//		httpclient.WithMetrics(metrics),
//		httpclient.WithLogger(logger),
//	)
//	req, err := c.NewRequest(ctx, http.MethodGet, "/health/live", nil)
//	resp, err := c.Do(ctx, req)
//
// Only idempotent calls are retried; see Idempotent.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/config"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/telemetry"
)

// ErrCircuitOpen is returned when the breaker rejects a call without sending
// it, and by HealthCheck while the breaker is not closed.
var ErrCircuitOpen = errors.New("circuit breaker open")

// Option customises a Client.
type Option func(*Client)

// WithMetrics records request counts and durations on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithLogger sets the fallback logger. Request-scoped loggers take priority.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent sent on requests that carry none.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// Client is safe for concurrent use.
type Client struct {
	http      *http.Client
	baseURL   string
	name      string
	userAgent string
	breaker   *gobreaker.CircuitBreaker[*http.Response]
	limiter   *rate.Limiter
	policy    policy
	metrics   *telemetry.Metrics
	logger    *slog.Logger
}

// New builds a Client for the service at cfg.BaseURL. name identifies the
// service in logs, spans, metrics and health results.
func New(cfg *config.ClientConfig, name string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		name:    name,
		policy:  newPolicy(cfg.Retry),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		// A caller giving up says nothing about the server.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				slog.String("breaker", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c
}

// NewRequest builds a request for path relative to the base URL.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: building %s %s: %w", c.name, method, path, err)
	}
	return req, nil
}

// Do sends req. ctx carries cancellation, trace context, propagated IDs and
// the Idempotent mark; calls that are not idempotent get a single attempt.
//
// A non-retryable response is returned with a nil error. When retries run
// out on a retryable status, the last response is returned together with an
// error. In both cases the caller closes resp.Body. A rejected or failed
// call returns a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%s: waiting for rate limit: %w", c.name, err)
			}
		}

		c.decorate(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		attempts := 1
		if idempotent(ctx, req.Method) {
			attempts = c.policy.attempts
		}

		resp, err := c.send(spanCtx, req.WithContext(spanCtx), attempts)
		endSpan(span, resp, err)
		return resp, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s: %w: %w", c.name, ErrCircuitOpen, err)
	}

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the service root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name identifies the remote service.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reports the breaker state without touching the network. A
// half-open breaker counts as unhealthy until its probes succeed.
func (c *Client) HealthCheck(context.Context) error {
	if st := c.breaker.State(); st != gobreaker.StateClosed {
		return fmt.Errorf("%s: breaker %s: %w", c.name, st, ErrCircuitOpen)
	}
	return nil
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
