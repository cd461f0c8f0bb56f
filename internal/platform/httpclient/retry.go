package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/config"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/logging"
)

// jitter is the maximum deviation applied to a backoff delay, as a fraction.
const jitter = 0.25

// policy is the retry schedule: exponential growth from initial, capped at
// ceiling before jitter.
type policy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newPolicy(cfg config.RetryConfig) policy {
	return policy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// delay returns the wait before retry n, where n is 1 for the first retry.
// A positive server hint replaces the computed backoff, still capped.
func (p policy) delay(n int, hint time.Duration) time.Duration {
	if hint > 0 {
		return min(hint, p.ceiling)
	}
	d := min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.ceiling))
	d *= 1 + jitter*(2*rand.Float64()-1)
	return time.Duration(max(d, 0))
}

// send tries req up to attempts times. The body is made replayable first so
// every attempt sends the same bytes.
func (c *Client) send(ctx context.Context, req *http.Request, attempts int) (*http.Response, error) {
	if err := replayable(req); err != nil {
		return nil, err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for n := range attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, attempts, c.policy.delay(n, hint), lastErr); err != nil {
				return nil, err
			}
			if err := rewind(req); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil:
			if !retryable(err) {
				return nil, err
			}
			lastErr, hint = err, 0
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		case n == attempts-1:
			return resp, fmt.Errorf("%s: HTTP %d after %d attempt(s)", c.name, resp.StatusCode, attempts)
		default:
			lastErr = fmt.Errorf("%s: HTTP %d", c.name, resp.StatusCode)
			hint = retryAfter(resp.Header.Get("Retry-After"), time.Now())
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}
	}
	return nil, lastErr
}

// pause logs the upcoming retry and sleeps for wait unless ctx ends first.
func (c *Client) pause(ctx context.Context, req *http.Request, n, attempts int, wait time.Duration, cause error) error {
	logging.FromContextOr(ctx, c.logger).WarnContext(ctx, "retrying request",
		slog.String("peer_service", c.name),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// replayable makes sure req.GetBody is set whenever req has a body.
// Requests built over bytes, strings or bytes.Buffer already have one.
func replayable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}
	buf, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("buffering request body: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	req.Body, _ = req.GetBody()
	req.ContentLength = int64(len(buf))
	return nil
}

func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

// retryAfter reads a Retry-After header in either delay-seconds or HTTP-date
// form. Absent, malformed and past values give 0.
func retryAfter(header string, now time.Time) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// retryable reports whether a transport error is worth another attempt.
// Caller cancellation and deadlines are final.
func retryable(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
