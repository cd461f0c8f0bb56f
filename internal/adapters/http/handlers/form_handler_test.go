package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/dto"
	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/handlers"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
	"github.com/OliveiraRafael10/automacao-formulario/mocks"
)

func newFormHandler(t *testing.T) (*handlers.FormHandler, *mocks.MockRegistrationService) {
	t.Helper()
	svc := mocks.NewMockRegistrationService(t)
	return handlers.NewFormHandler(svc), svc
}

func sessionParams() map[string]string {
	return map[string]string{"id": testSessionID}
}

func fieldParams(field string) map[string]string {
	return map[string]string{"id": testSessionID, "field": field}
}

// --- OpenForm ---

func TestOpenForm_Success(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	svc.EXPECT().Open(mock.Anything).Return(testSession(t, nil), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms", nil)
	h.OpenForm(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	if loc := rec.Header().Get("Location"); loc != "/api/v1/forms/"+testSessionID {
		t.Errorf("Location = %q, want form URL", loc)
	}
	resp := decodeJSON[dto.FormResponse](t, rec)
	if resp.ID != testSessionID {
		t.Errorf("ID = %q, want %q", resp.ID, testSessionID)
	}
	if len(resp.Fields) != 5 {
		t.Errorf("len(Fields) = %d, want 5", len(resp.Fields))
	}
}

func TestOpenForm_SessionLimit(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	svc.EXPECT().Open(mock.Anything).Return(nil, fmt.Errorf("opening form: %w", domain.ErrExhausted))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms", nil)
	h.OpenForm(rec, req)

	requireStatus(t, rec, http.StatusServiceUnavailable)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Code != dto.CodeSessionLimit {
		t.Errorf("Code = %q, want %q", resp.Code, dto.CodeSessionLimit)
	}
}

// --- GetForm ---

func TestGetForm_Success(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	svc.EXPECT().Get(mock.Anything, testSessionID).Return(testSession(t, nil), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forms/"+testSessionID, nil)
	req = withChiParams(req, sessionParams())
	h.GetForm(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestGetForm_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	svc.EXPECT().Get(mock.Anything, testSessionID).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forms/"+testSessionID, nil)
	req = withChiParams(req, sessionParams())
	h.GetForm(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetForm_MissingID(t *testing.T) {
	t.Parallel()
	h, _ := newFormHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/forms/", nil)
	req = withChiParams(req, map[string]string{"id": "  "})
	h.GetForm(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- CloseForm ---

func TestCloseForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"closed", nil, http.StatusNoContent},
		{"unknown session", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newFormHandler(t)

			svc.EXPECT().Close(mock.Anything, testSessionID).Return(tt.err)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/forms/"+testSessionID, nil)
			req = withChiParams(req, sessionParams())
			h.CloseForm(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- InputField ---

func TestInputField_Success(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	sess := testSession(t, func(f *form.Form) { _ = f.Input(form.FieldPhone, "11987654321") })
	svc.EXPECT().Input(mock.Anything, testSessionID, form.FieldPhone, "11987654321").Return(sess, nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]string{"value": "11987654321"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+testSessionID+"/fields/phone/input", body)
	req = withChiParams(req, fieldParams(form.FieldPhone))
	h.InputField(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.FormResponse](t, rec)
	for _, f := range resp.Fields {
		if f.Name == form.FieldPhone && f.Value != "(11) 98765-4321" {
			t.Errorf("phone = %q, want masked", f.Value)
		}
	}
}

func TestInputField_EmptyValueIsForwarded(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	svc.EXPECT().Input(mock.Anything, testSessionID, form.FieldName, "").Return(testSession(t, nil), nil)

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]string{"value": ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+testSessionID+"/fields/name/input", body)
	req = withChiParams(req, fieldParams(form.FieldName))
	h.InputField(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestInputField_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body *bytes.Buffer
	}{
		{"invalid JSON", bytes.NewBufferString("{")},
		{"missing value", bytes.NewBufferString(`{}`)},
		{"null value", bytes.NewBufferString(`{"value": null}`)},
		{"oversized body", bytes.NewBufferString(`{"value": "` + strings.Repeat("9", 80<<10) + `"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, _ := newFormHandler(t)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/x/fields/name/input", tt.body)
			req = withChiParams(req, fieldParams(form.FieldName))
			h.InputField(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestInputField_UnknownField(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	svc.EXPECT().Input(mock.Anything, testSessionID, "nickname", "x").
		Return(nil, &domain.ValidationError{Fields: map[string]string{"nickname": domain.MsgUnknown}})

	rec := httptest.NewRecorder()
	body := jsonBody(t, map[string]string{"value": "x"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+testSessionID+"/fields/nickname/input", body)
	req = withChiParams(req, fieldParams("nickname"))
	h.InputField(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "nickname" {
		t.Errorf("Errors = %+v, want one nickname entry", resp.Errors)
	}
}

// --- BlurField ---

func TestBlurField_Success(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	sess := testSession(t, func(f *form.Form) {
		_ = f.Input(form.FieldEmail, "not-an-email")
		_ = f.Blur(form.FieldEmail)
	})
	svc.EXPECT().Blur(mock.Anything, testSessionID, form.FieldEmail).Return(sess, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+testSessionID+"/fields/email/blur", nil)
	req = withChiParams(req, fieldParams(form.FieldEmail))
	h.BlurField(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.FormResponse](t, rec)
	for _, f := range resp.Fields {
		if f.Name == form.FieldEmail && (f.State != "invalid" || f.Border != form.ColorInvalid) {
			t.Errorf("email = %+v, want invalid", f)
		}
	}
}

func TestBlurField_MissingField(t *testing.T) {
	t.Parallel()
	h, _ := newFormHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/x/fields//blur", nil)
	req = withChiParams(req, map[string]string{"id": testSessionID})
	h.BlurField(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestBlurField_ReportsEveryMissingParam(t *testing.T) {
	t.Parallel()
	h, _ := newFormHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms//fields//blur", nil)
	req = withChiParams(req, map[string]string{})
	h.BlurField(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	locations := map[string]bool{}
	for _, e := range resp.Errors {
		locations[e.Location] = true
	}
	if !locations["id"] || !locations["field"] {
		t.Errorf("Errors = %+v, want entries for id and field", resp.Errors)
	}
}

// --- SubmitForm ---

func TestSubmitForm_Success(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	sess := testSession(t, func(f *form.Form) {
		_ = f.Input(form.FieldPassword, "abc123")
		_ = f.Input(form.FieldConfirmPassword, "abc123")
		_ = f.Submit()
	})
	svc.EXPECT().Submit(mock.Anything, testSessionID).Return(sess, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+testSessionID+"/submit", nil)
	req = withChiParams(req, sessionParams())
	h.SubmitForm(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.FormResponse](t, rec)
	if resp.Notice == nil || resp.Notice.Kind != "success" {
		t.Errorf("Notice = %+v, want success", resp.Notice)
	}
}

func TestSubmitForm_PasswordMismatch(t *testing.T) {
	t.Parallel()
	h, svc := newFormHandler(t)

	svc.EXPECT().Submit(mock.Anything, testSessionID).Return(nil, &domain.ValidationError{
		Fields: map[string]string{form.FieldConfirmPassword: domain.ErrPasswordMismatch.Error()},
		Cause:  domain.ErrPasswordMismatch,
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/"+testSessionID+"/submit", nil)
	req = withChiParams(req, sessionParams())
	h.SubmitForm(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want problem+json", ct)
	}
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Code != dto.CodePasswordMismatch {
		t.Errorf("Code = %q, want %q", resp.Code, dto.CodePasswordMismatch)
	}
}
