package formapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/httpclient"
)

// requester centralizes the HTTP request lifecycle: JSON encoding, execution
// through httpclient.Client, status checking, error translation, JSON
// decoding and body cleanup.
type requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// do sends method path with reqBody encoded as JSON (nil for none), expects
// wantStatus and decodes the response into respBody (nil to discard).
func (r *requester) do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	var body io.Reader = http.NoBody
	if reqBody != nil {
		buf, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := r.client.NewRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Exhausted retries on a retryable status return both resp and err;
		// the response carries the more useful problem document.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if resp.StatusCode != wantStatus {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "form api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode != wantStatus {
		r.logger.DebugContext(ctx, "form api unexpected status",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respBody != nil {
		if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (r *requester) closeBody(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
