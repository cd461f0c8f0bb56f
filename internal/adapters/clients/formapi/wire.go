package formapi

import (
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

// The form API's wire representation. These mirror the server's JSON without
// importing its DTO package, so the two sides can evolve separately.

type formDTO struct {
	ID     string     `json:"id"`
	Fields []fieldDTO `json:"fields"`
	Notice *noticeDTO `json:"notice,omitempty"`
	Focus  string     `json:"focus,omitempty"`
}

type fieldDTO struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Secret bool   `json:"secret,omitempty"`
	Filled bool   `json:"filled"`
	State  string `json:"state"`
	Border string `json:"border"`
}

type noticeDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type valueRequest struct {
	Value string `json:"value"`
}

type maskDTO struct {
	Digits   string `json:"digits"`
	Masked   string `json:"masked"`
	Complete bool   `json:"complete"`
}

// toSession translates a wire form into a session. Unknown states fall back
// to neutral. The server never echoes secret values, so secret fields come
// back empty.
func toSession(dto *formDTO) *ports.Session {
	views := make([]form.FieldView, len(dto.Fields))
	for i, f := range dto.Fields {
		state := form.State(f.State)
		if !state.IsValid() {
			state = form.StateNeutral
		}
		border := f.Border
		if border == "" {
			border = state.Color()
		}
		views[i] = form.FieldView{
			Name:   f.Name,
			Label:  f.Label,
			Value:  f.Value,
			Secret: f.Secret,
			State:  state,
			Border: border,
		}
	}

	var notice form.Notice
	if dto.Notice != nil {
		notice = form.Notice{Kind: form.NoticeKind(dto.Notice.Kind), Message: dto.Notice.Message}
	}

	return &ports.Session{
		ID:   dto.ID,
		Form: form.Snapshot{Fields: views, Notice: notice, Focus: dto.Focus},
	}
}
