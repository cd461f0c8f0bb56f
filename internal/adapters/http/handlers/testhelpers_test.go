package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

const testSessionID = "4b7a1f0e-2f5c-4c7d-9a51-0d6f1d1e8c11"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// testSession returns a session over a fresh registration form, after
// applying edit to it.
func testSession(t *testing.T, edit func(f *form.Form)) *ports.Session {
	t.Helper()

	f, err := form.New(form.Registration(), form.MustChecker())
	if err != nil {
		t.Fatalf("form.New() error = %v", err)
	}
	if edit != nil {
		edit(f)
	}
	return &ports.Session{ID: testSessionID, Form: f.Snapshot()}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
