// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/phone"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// FormResponse represents one form session in HTTP responses.
type FormResponse struct {
	ID     string          `json:"id"`
	Fields []FieldResponse `json:"fields"`
	Notice *NoticeResponse `json:"notice,omitempty"`
	Focus  string          `json:"focus,omitempty"`
}

// FieldResponse represents one field. Secret fields never echo their value;
// Filled tells whether anything was typed.
type FieldResponse struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Secret bool   `json:"secret,omitempty"`
	Filled bool   `json:"filled"`
	State  string `json:"state"`
	Border string `json:"border"`
}

// NoticeResponse represents the visible notice.
type NoticeResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ToFormResponse converts a form session to an HTTP response DTO.
func ToFormResponse(s *ports.Session) FormResponse {
	resp := FormResponse{
		ID:     s.ID,
		Fields: make([]FieldResponse, len(s.Form.Fields)),
		Focus:  s.Form.Focus,
	}

	for i, f := range s.Form.Fields {
		resp.Fields[i] = toFieldResponse(f)
	}

	if s.Form.Notice.Visible() {
		resp.Notice = &NoticeResponse{
			Kind:    string(s.Form.Notice.Kind),
			Message: s.Form.Notice.Message,
		}
	}

	return resp
}

func toFieldResponse(f form.FieldView) FieldResponse {
	resp := FieldResponse{
		Name:   f.Name,
		Label:  f.Label,
		Value:  f.Value,
		Secret: f.Secret,
		Filled: f.Value != "",
		State:  f.State.String(),
		Border: f.Border,
	}
	if f.Secret {
		resp.Value = ""
	}
	return resp
}

// MaskResponse is the result of masking a phone number.
type MaskResponse struct {
	Digits   string `json:"digits"`
	Masked   string `json:"masked"`
	Complete bool   `json:"complete"`
}

// ToMaskResponse builds a MaskResponse from the raw input and its mask.
func ToMaskResponse(raw, masked string) MaskResponse {
	return MaskResponse{
		Digits:   phone.Digits(raw),
		Masked:   masked,
		Complete: phone.IsComplete(masked),
	}
}
