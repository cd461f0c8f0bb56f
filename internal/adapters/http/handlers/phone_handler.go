package handlers

import (
	"net/http"

	"github.com/OliveiraRafael10/automacao-formulario/internal/adapters/http/dto"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// PhoneHandler exposes the phone mask on its own.
type PhoneHandler struct {
	svc ports.RegistrationService
}

// NewPhoneHandler creates a PhoneHandler.
func NewPhoneHandler(svc ports.RegistrationService) *PhoneHandler {
	return &PhoneHandler{svc: svc}
}

// Mask handles POST /api/v1/phone/mask.
func (h *PhoneHandler) Mask(w http.ResponseWriter, r *http.Request) {
	req, err := decode[dto.MaskRequest](w, r)
	if err != nil {
		fail(w, r, err)
		return
	}

	masked, err := h.svc.MaskPhone(r.Context(), *req.Value)
	if err != nil {
		fail(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToMaskResponse(*req.Value, masked))
}
