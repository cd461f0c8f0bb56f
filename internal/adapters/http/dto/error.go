package dto

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/platform/logging"
)

// Problem codes carried in ErrorResponse.Code. They separate errors that
// share a status, such as a blocked submission and a malformed body.
const (
	CodePasswordMismatch = "password_mismatch"
	CodeValidation       = "validation"
	CodeNotFound         = "not_found"
	CodeSessionLimit     = "session_limit"
	CodeConflict         = "conflict"
	CodeUnavailable      = "unavailable"
	CodeTimeout          = "timeout"
	CodeInternal         = "internal"
)

// internalDetail replaces the text of unclassified errors.
const internalDetail = "the server could not complete the request"

// ErrorResponse is an RFC 9457 problem document with a code extension
// member.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Code     string        `json:"code,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected field. Location is the form field, route
// parameter or body key.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// problems is checked in order; the first match wins. A password mismatch
// also matches ErrValidation, so it comes first.
var problems = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrPasswordMismatch, http.StatusBadRequest, CodePasswordMismatch},
	{domain.ErrValidation, http.StatusBadRequest, CodeValidation},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrConflict, http.StatusConflict, CodeConflict},
	{domain.ErrExhausted, http.StatusServiceUnavailable, CodeSessionLimit},
	{domain.ErrUnavailable, http.StatusBadGateway, CodeUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, CodeTimeout},
}

// Classify returns the status and problem code for err.
func Classify(err error) (status int, code string) {
	for _, p := range problems {
		if errors.Is(err, p.target) {
			return p.status, p.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// NewErrorResponse builds the problem document for err. Unclassified errors
// get a generic detail so internals stay out of responses.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := Classify(err)

	detail := err.Error()
	if code == CodeInternal {
		detail = internalDetail
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
		Code:     code,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing problem body",
			slog.String("code", resp.Code),
			slog.Any("error", encErr),
		)
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		details = append(details, ErrorDetail{Location: field, Message: fields[field]})
	}
	return details
}
