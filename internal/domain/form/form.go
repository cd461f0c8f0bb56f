// Package form models a registration form as a set of fields driven by UI
// events. Front ends register callbacks for keystrokes, focus loss and
// submission and forward them to a Form:
//
//	f, _ := form.New(form.Registration(), checker)
//	f.Input(form.FieldPhone, "11987654321") // value becomes "(11) 98765-4321"
//	f.Blur(form.FieldPhone)                 // state becomes valid
//	err := f.Submit()                       // blocked unless passwords match
//
// Each field carries one of three visual states (neutral, valid, invalid).
// A Form is not safe for concurrent use; callers serialise events the way a
// UI event loop does.
package form

import (
	"fmt"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/phone"
)

// Notice messages.
const (
	MsgSubmitted        = "Registration completed successfully!"
	MsgPasswordMismatch = "Passwords do not match! Please check them."
)

// Form is the live state of one rendered form.
type Form struct {
	layout  Layout
	checker *Checker
	fields  []Field
	index   map[string]int
	notice  Notice
	focus   string
}

// New builds an empty form from layout. Every field starts neutral.
func New(layout Layout, checker *Checker) (*Form, error) {
	if checker == nil {
		return nil, fmt.Errorf("form: nil checker")
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	f := &Form{
		layout:  layout,
		checker: checker,
		fields:  make([]Field, len(layout.Fields)),
		index:   make(map[string]int, len(layout.Fields)),
	}
	for i, d := range layout.Fields {
		if err := checker.CheckRule(d.Rule); err != nil {
			return nil, fmt.Errorf("form: field %q: %w", d.Name, err)
		}
		f.fields[i] = Field{Definition: d, State: StateNeutral}
		f.index[d.Name] = i
	}
	return f, nil
}

// Layout returns the layout the form was built from.
func (f *Form) Layout() Layout {
	return f.layout
}

// Input handles a change of the named field's value. The phone field is
// re-masked, an emptied field returns to neutral, and the confirmation
// field's state follows its equality with the password live. Editing the
// password re-evaluates a non-empty confirmation. Input also dismisses a
// blocking notice.
func (f *Form) Input(name, raw string) error {
	fld, err := f.field(name)
	if err != nil {
		return err
	}

	value := raw
	if name == f.layout.Phone {
		value = phone.Mask(raw)
	}
	fld.Value = value

	if f.notice.Kind == NoticeBlocking {
		f.notice = Notice{}
	}

	if value == "" {
		fld.State = StateNeutral
	}

	switch name {
	case f.layout.Confirmation:
		f.matchConfirmation(true)
	case f.layout.Password:
		f.matchConfirmation(false)
	}
	return nil
}

// Blur handles the named field losing focus: a value satisfying the field's
// rule turns valid, a non-empty failing value turns invalid, and an empty
// failing value stays neutral.
func (f *Form) Blur(name string) error {
	fld, err := f.field(name)
	if err != nil {
		return err
	}

	switch {
	case f.checker.Satisfies(fld.Value, fld.Rule):
		fld.State = StateValid
	case fld.Value != "":
		fld.State = StateInvalid
	default:
		fld.State = StateNeutral
	}

	if f.focus == name {
		f.focus = ""
	}
	return nil
}

// Submit handles a submission attempt. When the confirmation differs from
// the password the submission is aborted: a blocking notice is raised, focus
// moves to the confirmation field, which turns invalid, and a
// *domain.ValidationError wrapping domain.ErrPasswordMismatch is returned.
// Field values are left untouched. Otherwise the success notice is shown and
// nil is returned; clearing the form afterwards is the caller's job (Reset).
func (f *Form) Submit() error {
	pw := f.fields[f.index[f.layout.Password]]
	conf := &f.fields[f.index[f.layout.Confirmation]]

	if pw.Value != conf.Value {
		conf.State = StateInvalid
		f.focus = conf.Name
		f.notice = Notice{Kind: NoticeBlocking, Message: MsgPasswordMismatch}
		return &domain.ValidationError{
			Fields: map[string]string{conf.Name: domain.ErrPasswordMismatch.Error()},
			Cause:  domain.ErrPasswordMismatch,
		}
	}

	f.notice = Notice{Kind: NoticeSuccess, Message: MsgSubmitted}
	return nil
}

// Reset clears every value, returns every field to neutral, hides any notice
// and clears focus.
func (f *Form) Reset() {
	for i := range f.fields {
		f.fields[i].Value = ""
		f.fields[i].State = StateNeutral
	}
	f.notice = Notice{}
	f.focus = ""
}

// Value returns the current value of the named field.
func (f *Form) Value(name string) (string, bool) {
	i, ok := f.index[name]
	if !ok {
		return "", false
	}
	return f.fields[i].Value, true
}

// Notice returns the notice currently shown.
func (f *Form) Notice() Notice {
	return f.notice
}

// Snapshot returns an immutable copy of the form state.
func (f *Form) Snapshot() Snapshot {
	views := make([]FieldView, len(f.fields))
	for i, fld := range f.fields {
		views[i] = FieldView{
			Name:   fld.Name,
			Label:  fld.Label,
			Value:  fld.Value,
			Secret: fld.Secret,
			State:  fld.State,
			Border: fld.State.Color(),
		}
	}
	return Snapshot{Fields: views, Notice: f.notice, Focus: f.focus}
}

// matchConfirmation sets the confirmation state from its equality with the
// password. When clearEmpty is set an empty confirmation goes neutral;
// otherwise an empty confirmation is left alone.
func (f *Form) matchConfirmation(clearEmpty bool) {
	pw := f.fields[f.index[f.layout.Password]]
	conf := &f.fields[f.index[f.layout.Confirmation]]

	switch {
	case conf.Value == "":
		if clearEmpty {
			conf.State = StateNeutral
		}
	case conf.Value == pw.Value:
		conf.State = StateValid
	default:
		conf.State = StateInvalid
	}
}

func (f *Form) field(name string) (*Field, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, &domain.ValidationError{Fields: map[string]string{name: domain.MsgUnknown}}
	}
	return &f.fields[i], nil
}
