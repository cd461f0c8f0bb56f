package form

import (
	"errors"
	"testing"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
)

var testChecker = MustChecker()

func newRegistration(t *testing.T) *Form {
	t.Helper()
	f, err := New(Registration(), testChecker)
	if err != nil {
		t.Fatalf("New(Registration()) error = %v", err)
	}
	return f
}

func requireState(t *testing.T, f *Form, name string, want State) {
	t.Helper()
	view, ok := f.Snapshot().Field(name)
	if !ok {
		t.Fatalf("field %q missing from snapshot", name)
	}
	if view.State != want {
		t.Errorf("field %q state = %q, want %q", name, view.State, want)
	}
	if view.Border != want.Color() {
		t.Errorf("field %q border = %q, want %q", name, view.Border, want.Color())
	}
}

func fill(t *testing.T, f *Form, values map[string]string) {
	t.Helper()
	for _, name := range []string{FieldName, FieldEmail, FieldPhone, FieldPassword, FieldConfirmPassword} {
		v, ok := values[name]
		if !ok {
			continue
		}
		if err := f.Input(name, v); err != nil {
			t.Fatalf("Input(%q) error = %v", name, err)
		}
	}
}

func validValues() map[string]string {
	return map[string]string{
		FieldName:            "Maria Silva",
		FieldEmail:           "maria@example.com",
		FieldPhone:           "11987654321",
		FieldPassword:        "abc123",
		FieldConfirmPassword: "abc123",
	}
}

func TestNew_StartsNeutral(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	snap := f.Snapshot()

	if len(snap.Fields) != 5 {
		t.Fatalf("len(Fields) = %d, want 5", len(snap.Fields))
	}
	for _, fv := range snap.Fields {
		if fv.State != StateNeutral || fv.Value != "" {
			t.Errorf("field %q = (%q, %q), want empty neutral", fv.Name, fv.Value, fv.State)
		}
	}
	if snap.Notice.Visible() {
		t.Error("new form shows a notice")
	}
}

func TestNew_RejectsBadLayouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Layout)
	}{
		{"no fields", func(l *Layout) { l.Fields = nil }},
		{"duplicate field", func(l *Layout) { l.Fields = append(l.Fields, Definition{Name: FieldEmail}) }},
		{"unnamed field", func(l *Layout) { l.Fields = append(l.Fields, Definition{}) }},
		{"missing password", func(l *Layout) { l.Password = "secret" }},
		{"missing confirmation", func(l *Layout) { l.Confirmation = "again" }},
		{"same password and confirmation", func(l *Layout) { l.Confirmation = l.Password }},
		{"missing phone", func(l *Layout) { l.Phone = "mobile" }},
		{"unknown rule", func(l *Layout) { l.Fields[0].Rule = "no_such_rule" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := Registration()
			tt.modify(&l)
			if _, err := New(l, testChecker); err == nil {
				t.Error("New() = nil error, want error")
			}
		})
	}

	if _, err := New(Registration(), nil); err == nil {
		t.Error("New(nil checker) = nil error, want error")
	}
}

func TestInput_MasksPhone(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	if err := f.Input(FieldPhone, "(11)98765-4321abc"); err != nil {
		t.Fatalf("Input() error = %v", err)
	}

	got, _ := f.Value(FieldPhone)
	if got != "(11) 98765-4321" {
		t.Errorf("phone value = %q, want %q", got, "(11) 98765-4321")
	}
}

func TestInput_DoesNotMaskOtherFields(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	_ = f.Input(FieldName, "Ana 123")

	if got, _ := f.Value(FieldName); got != "Ana 123" {
		t.Errorf("name value = %q, want %q", got, "Ana 123")
	}
}

func TestInput_EmptyResetsToNeutral(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	_ = f.Input(FieldEmail, "not-an-email")
	_ = f.Blur(FieldEmail)
	requireState(t, f, FieldEmail, StateInvalid)

	_ = f.Input(FieldEmail, "")
	requireState(t, f, FieldEmail, StateNeutral)
}

func TestInput_NonEmptyKeepsState(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	_ = f.Input(FieldEmail, "a@b.co")
	_ = f.Blur(FieldEmail)
	requireState(t, f, FieldEmail, StateValid)

	// Typing again does not re-validate until the next blur.
	_ = f.Input(FieldEmail, "a@b.co!!")
	requireState(t, f, FieldEmail, StateValid)
}

func TestInput_ConfirmationLiveEquality(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	_ = f.Input(FieldPassword, "abc123")

	_ = f.Input(FieldConfirmPassword, "abc")
	requireState(t, f, FieldConfirmPassword, StateInvalid)

	_ = f.Input(FieldConfirmPassword, "abc123")
	requireState(t, f, FieldConfirmPassword, StateValid)

	_ = f.Input(FieldConfirmPassword, "")
	requireState(t, f, FieldConfirmPassword, StateNeutral)
}

func TestInput_PasswordRechecksConfirmation(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	_ = f.Input(FieldPassword, "abc123")
	_ = f.Input(FieldConfirmPassword, "abc123")
	requireState(t, f, FieldConfirmPassword, StateValid)

	_ = f.Input(FieldPassword, "abc1234")
	requireState(t, f, FieldConfirmPassword, StateInvalid)

	_ = f.Input(FieldPassword, "abc123")
	requireState(t, f, FieldConfirmPassword, StateValid)
}

func TestInput_PasswordLeavesEmptyConfirmationAlone(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	_ = f.Input(FieldPassword, "abc123")
	requireState(t, f, FieldConfirmPassword, StateNeutral)
}

func TestInput_UnknownField(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	err := f.Input("nickname", "x")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Input(unknown) error = %v, want ErrValidation", err)
	}
	if err := f.Blur("nickname"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Blur(unknown) error = %v, want ErrValidation", err)
	}
}

func TestBlur_States(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		value string
		want  State
	}{
		{"valid name", FieldName, "Maria", StateValid},
		{"short name", FieldName, "Al", StateInvalid},
		{"empty required name", FieldName, "", StateNeutral},
		{"valid email", FieldEmail, "maria@example.com", StateValid},
		{"bad email", FieldEmail, "maria@", StateInvalid},
		{"complete mobile", FieldPhone, "11987654321", StateValid},
		{"complete landline", FieldPhone, "1132654321", StateValid},
		{"partial phone", FieldPhone, "119876", StateInvalid},
		{"short password", FieldPassword, "abc", StateInvalid},
		{"good password", FieldPassword, "abc123", StateValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newRegistration(t)
			_ = f.Input(tt.field, tt.value)
			if err := f.Blur(tt.field); err != nil {
				t.Fatalf("Blur() error = %v", err)
			}
			requireState(t, f, tt.field, tt.want)
		})
	}
}

func TestBlur_OptionalEmptyFieldIsValid(t *testing.T) {
	t.Parallel()

	l := Registration()
	l.Fields = append(l.Fields, Definition{Name: "nickname", Rule: "omitempty,min=2"})
	f, err := New(l, testChecker)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_ = f.Blur("nickname")
	requireState(t, f, "nickname", StateValid)
}

func TestBlur_ClearsFocus(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	_ = f.Input(FieldPassword, "abc123")
	_ = f.Input(FieldConfirmPassword, "abc124")
	_ = f.Submit()
	if got := f.Snapshot().Focus; got != FieldConfirmPassword {
		t.Fatalf("Focus = %q, want %q", got, FieldConfirmPassword)
	}

	_ = f.Blur(FieldName)
	if got := f.Snapshot().Focus; got != FieldConfirmPassword {
		t.Errorf("Focus after blurring another field = %q, want %q", got, FieldConfirmPassword)
	}
	_ = f.Blur(FieldConfirmPassword)
	if got := f.Snapshot().Focus; got != "" {
		t.Errorf("Focus after blur = %q, want empty", got)
	}
}

func TestSubmit_Matching(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	fill(t, f, validValues())

	if err := f.Submit(); err != nil {
		t.Fatalf("Submit() error = %v, want nil", err)
	}

	n := f.Notice()
	if n.Kind != NoticeSuccess || n.Message != MsgSubmitted {
		t.Errorf("Notice = %+v, want success notice", n)
	}
}

func TestSubmit_MismatchBlocks(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	values := validValues()
	values[FieldConfirmPassword] = "abc124"
	fill(t, f, values)
	before := f.Snapshot()

	err := f.Submit()
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		t.Fatalf("Submit() error = %v, want ErrPasswordMismatch", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Submit() error = %v, want it to wrap ErrValidation", err)
	}

	after := f.Snapshot()
	for i, fv := range after.Fields {
		if fv.Value != before.Fields[i].Value {
			t.Errorf("field %q value changed from %q to %q", fv.Name, before.Fields[i].Value, fv.Value)
		}
	}
	if after.Notice.Kind != NoticeBlocking || after.Notice.Message != MsgPasswordMismatch {
		t.Errorf("Notice = %+v, want blocking mismatch notice", after.Notice)
	}
	if after.Focus != FieldConfirmPassword {
		t.Errorf("Focus = %q, want %q", after.Focus, FieldConfirmPassword)
	}
	requireState(t, f, FieldConfirmPassword, StateInvalid)
}

func TestSubmit_BlockingNoticeDismissedByInput(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	_ = f.Input(FieldPassword, "abc123")
	_ = f.Input(FieldConfirmPassword, "abc124")
	_ = f.Submit()

	_ = f.Input(FieldConfirmPassword, "abc123")
	if f.Notice().Visible() {
		t.Errorf("Notice = %+v, want none after editing", f.Notice())
	}
}

func TestSubmit_EmptyPasswordsMatch(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	if err := f.Submit(); err != nil {
		t.Errorf("Submit() on empty form error = %v, want nil", err)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	fill(t, f, validValues())
	for _, name := range []string{FieldName, FieldEmail, FieldPhone, FieldPassword} {
		_ = f.Blur(name)
	}
	_ = f.Submit()

	f.Reset()

	snap := f.Snapshot()
	for _, fv := range snap.Fields {
		if fv.Value != "" {
			t.Errorf("field %q value = %q, want empty", fv.Name, fv.Value)
		}
		if fv.Border != ColorNeutral {
			t.Errorf("field %q border = %q, want %q", fv.Name, fv.Border, ColorNeutral)
		}
	}
	if snap.Notice.Visible() {
		t.Errorf("Notice = %+v, want hidden", snap.Notice)
	}
}

func TestSnapshot_IsCopy(t *testing.T) {
	t.Parallel()

	f := newRegistration(t)
	_ = f.Input(FieldName, "Maria")
	snap := f.Snapshot()
	snap.Fields[0].Value = "changed"

	if got, _ := f.Value(FieldName); got != "Maria" {
		t.Errorf("form value = %q after mutating snapshot, want %q", got, "Maria")
	}
}

func TestState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state State
		valid bool
		color string
	}{
		{StateNeutral, true, ColorNeutral},
		{StateValid, true, ColorValid},
		{StateInvalid, true, ColorInvalid},
		{"unknown", false, ColorNeutral},
	}

	for _, tt := range tests {
		if got := tt.state.IsValid(); got != tt.valid {
			t.Errorf("State(%q).IsValid() = %v, want %v", tt.state, got, tt.valid)
		}
		if got := tt.state.Color(); got != tt.color {
			t.Errorf("State(%q).Color() = %q, want %q", tt.state, got, tt.color)
		}
	}
}
