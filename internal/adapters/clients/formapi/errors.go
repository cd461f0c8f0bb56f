package formapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
)

// problemBodyLimit caps how much of an error body is decoded.
const problemBodyLimit = 64 << 10

// problem is the part of the server's problem document the client reads.
type problem struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// byCode maps problem codes to sentinels. Codes are checked before the
// status because several share one.
var byCode = map[string]error{
	"session_limit": domain.ErrExhausted,
	"timeout":       domain.ErrUnavailable,
	"unavailable":   domain.ErrUnavailable,
	"not_found":     domain.ErrNotFound,
	"conflict":      domain.ErrConflict,
}

var byStatus = map[int]error{
	http.StatusNotFound:           domain.ErrNotFound,
	http.StatusConflict:           domain.ErrConflict,
	http.StatusServiceUnavailable: domain.ErrUnavailable,
	http.StatusGatewayTimeout:     domain.ErrUnavailable,
}

// TranslateHTTPError turns a form API error response into the domain error
// the server classified. A blocked submission comes back as a
// *domain.ValidationError wrapping domain.ErrPasswordMismatch.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)

	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch p.Code {
	case "password_mismatch":
		verr := p.validationError()
		verr.Cause = domain.ErrPasswordMismatch
		return verr
	case "validation":
		if len(p.Errors) > 0 {
			return p.validationError()
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	}
	if target, ok := byCode[p.Code]; ok {
		return fmt.Errorf("%s: %w", detail, target)
	}

	status := resp.StatusCode
	if target, ok := byStatus[status]; ok {
		return fmt.Errorf("%s: %w", detail, target)
	}
	switch {
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if len(p.Errors) > 0 {
			return p.validationError()
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	}
	return fmt.Errorf("form API answered %d: %s", status, detail)
}

// readProblem decodes a problem+json body. Anything else yields the zero
// problem.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != "application/problem+json" {
		return p
	}

	err := json.NewDecoder(io.LimitReader(resp.Body, problemBodyLimit)).Decode(&p)
	if err != nil && !errors.Is(err, io.EOF) {
		return problem{}
	}
	return p
}

func (p problem) validationError() *domain.ValidationError {
	fields := make(map[string]string, len(p.Errors))
	for _, e := range p.Errors {
		fields[e.Location] = e.Message
	}
	return &domain.ValidationError{Fields: fields}
}
