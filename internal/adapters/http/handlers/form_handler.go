// Package handlers translates HTTP requests into registration service calls.
// Each form route is one UI event: open, input, blur, submit or close.
package handlers

import (
	"context"
	"net/http"

	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/dto"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// FormHandler drives form sessions.
type FormHandler struct {
	svc ports.RegistrationService
}

// NewFormHandler creates a FormHandler.
func NewFormHandler(svc ports.RegistrationService) *FormHandler {
	return &FormHandler{svc: svc}
}

// OpenForm handles POST /api/v1/forms.
func (h *FormHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Open(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/forms/"+sess.ID)
	respond(w, r, http.StatusCreated, dto.ToFormResponse(sess))
}

// GetForm handles GET /api/v1/forms/{id}.
func (h *FormHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	h.sessionEvent(w, r, h.svc.Get)
}

// SubmitForm handles POST /api/v1/forms/{id}/submit. A blocked submission is
// a 400 problem with code password_mismatch; the form state can be read back
// with GetForm.
func (h *FormHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	h.sessionEvent(w, r, h.svc.Submit)
}

// CloseForm handles DELETE /api/v1/forms/{id}.
func (h *FormHandler) CloseForm(w http.ResponseWriter, r *http.Request) {
	p, err := pathParams(r, paramID)
	if err != nil {
		fail(w, r, err)
		return
	}

	if err := h.svc.Close(r.Context(), p[0]); err != nil {
		fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// InputField handles POST /api/v1/forms/{id}/fields/{field}/input.
func (h *FormHandler) InputField(w http.ResponseWriter, r *http.Request) {
	p, err := pathParams(r, paramID, paramField)
	if err != nil {
		fail(w, r, err)
		return
	}
	req, err := decode[dto.InputRequest](w, r)
	if err != nil {
		fail(w, r, err)
		return
	}

	sess, err := h.svc.Input(r.Context(), p[0], p[1], *req.Value)
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToFormResponse(sess))
}

// BlurField handles POST /api/v1/forms/{id}/fields/{field}/blur.
func (h *FormHandler) BlurField(w http.ResponseWriter, r *http.Request) {
	p, err := pathParams(r, paramID, paramField)
	if err != nil {
		fail(w, r, err)
		return
	}

	sess, err := h.svc.Blur(r.Context(), p[0], p[1])
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToFormResponse(sess))
}

// sessionEvent runs a call that needs only the session ID.
func (h *FormHandler) sessionEvent(
	w http.ResponseWriter,
	r *http.Request,
	call func(ctx context.Context, id string) (*ports.Session, error),
) {
	p, err := pathParams(r, paramID)
	if err != nil {
		fail(w, r, err)
		return
	}

	sess, err := call(r.Context(), p[0])
	if err != nil {
		fail(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, dto.ToFormResponse(sess))
}
