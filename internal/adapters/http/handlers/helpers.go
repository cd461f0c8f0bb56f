package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/dto"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/logging"
)

// Route parameters.
const (
	paramID    = "id"
	paramField = "field"
)

// maxBodyBytes caps JSON request bodies. Field values are short; 64 KiB
// leaves room for anything a form sends.
const maxBodyBytes = 64 << 10

// pathParams returns the named chi URL parameters in order. Every missing
// parameter is reported in one validation error.
func pathParams(r *http.Request, names ...string) ([]string, error) {
	values := make([]string, len(names))
	var missing map[string]string
	for i, name := range names {
		values[i] = strings.TrimSpace(chi.URLParam(r, name))
		if values[i] == "" {
			if missing == nil {
				missing = make(map[string]string)
			}
			missing[name] = domain.MsgRequired
		}
	}
	if missing != nil {
		return nil, &domain.ValidationError{Fields: missing}
	}
	return values, nil
}

// request is a JSON body type whose pointer validates itself.
type request[T any] interface {
	*T
	Validate() error
}

// decode reads a size-limited JSON body into a new T and validates it.
func decode[T any, P request[T]](w http.ResponseWriter, r *http.Request) (P, error) {
	body := P(new(T))
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(body); err != nil {
		msg := "invalid JSON"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = "too large"
		}
		return nil, &domain.ValidationError{Fields: map[string]string{"body": msg}}
	}
	if err := body.Validate(); err != nil {
		return nil, err
	}
	return body, nil
}

// respond writes v as a JSON document with status.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response body",
			slog.Int("status", status),
			slog.Any("error", err),
		)
	}
}

// fail writes err as a problem document.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	dto.WriteErrorResponse(w, r, err)
}
