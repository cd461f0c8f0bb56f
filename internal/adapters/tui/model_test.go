package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"

	"github.com/OliveiraRafael10/automacao-formulario/internal/app"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
	"github.com/OliveiraRafael10/automacao-formulario/mocks"
)

const (
	idxName = iota
	idxEmail
	idxPhone
	idxPassword
	idxConfirm
)

func newModel(t *testing.T, scheduler *mocks.MockScheduler) (Model, *app.RegistrationService) {
	t.Helper()

	svc, err := app.NewRegistrationService(app.Options{}, scheduler, nil, nil)
	if err != nil {
		t.Fatalf("NewRegistrationService() error = %v", err)
	}

	m := New(context.Background(), svc, time.Millisecond)
	m = update(t, m, m.Init()())
	if m.SessionID() == "" {
		t.Fatalf("session not opened: %v", m.Err())
	}
	return m, svc
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: k})
}

// fill types every field of a valid registration, leaving focus on the
// confirmation field.
func fill(t *testing.T, m Model, confirm string) Model {
	t.Helper()
	m = typeText(t, m, "Maria Silva")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "maria@example.com")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "11987654321")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "abc123")
	m = press(t, m, tea.KeyTab)
	return typeText(t, m, confirm)
}

func TestModel_Open(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, mocks.NewMockScheduler(t))

	if len(m.inputs) != 5 {
		t.Fatalf("inputs = %d, want 5", len(m.inputs))
	}
	if m.active != idxName {
		t.Errorf("active = %d, want %d", m.active, idxName)
	}
	for _, fv := range m.fields {
		if fv.State != form.StateNeutral {
			t.Errorf("field %q state = %q, want neutral", fv.Name, fv.State)
		}
	}
	if !strings.Contains(m.View(), "Full name") {
		t.Errorf("View() missing field label:\n%s", m.View())
	}
}

func TestModel_PhoneIsMaskedWhileTyping(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, mocks.NewMockScheduler(t))
	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyTab)

	m = typeText(t, m, "1198765")
	if got := m.inputs[idxPhone].Value(); got != "(11) 9876-5" {
		t.Errorf("partial phone = %q, want %q", got, "(11) 9876-5")
	}

	m = typeText(t, m, "4321")
	if got := m.inputs[idxPhone].Value(); got != "(11) 98765-4321" {
		t.Errorf("full phone = %q, want %q", got, "(11) 98765-4321")
	}
}

func TestModel_PhoneBackspaceClears(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, mocks.NewMockScheduler(t))
	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "119")

	var seen []string
	for range 6 {
		m = press(t, m, tea.KeyBackspace)
		seen = append(seen, m.inputs[idxPhone].Value())
	}

	want := []string{"(11)", "(1)", "", "", "", ""}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("values after each backspace = %q, want %q", seen, want)
		}
	}
	if got := m.fields[idxPhone].State; got != form.StateNeutral {
		t.Errorf("state = %q, want %q", got, form.StateNeutral)
	}
}

func TestModel_BackspaceOnPlainFieldDropsOneRune(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, mocks.NewMockScheduler(t))
	m = typeText(t, m, "(11)")
	m = press(t, m, tea.KeyBackspace)

	if got := m.inputs[idxName].Value(); got != "(11" {
		t.Errorf("name = %q, want %q", got, "(11")
	}
}

func TestModel_TabBlursField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		state form.State
	}{
		{name: "valid name", text: "Maria Silva", state: form.StateValid},
		{name: "too short", text: "Al", state: form.StateInvalid},
		{name: "empty stays neutral", text: "", state: form.StateNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _ := newModel(t, mocks.NewMockScheduler(t))
			m = typeText(t, m, tt.text)
			m = press(t, m, tea.KeyTab)

			if got := m.fields[idxName].State; got != tt.state {
				t.Errorf("state = %q, want %q", got, tt.state)
			}
			if m.active != idxEmail {
				t.Errorf("active = %d, want %d", m.active, idxEmail)
			}
		})
	}
}

func TestModel_ShiftTabWrapsAround(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, mocks.NewMockScheduler(t))
	m = press(t, m, tea.KeyShiftTab)

	if m.active != idxConfirm {
		t.Errorf("active = %d, want %d", m.active, idxConfirm)
	}
}

func TestModel_MismatchBlocksSubmission(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t, mocks.NewMockScheduler(t))
	m = fill(t, m, "abc124")
	if got := m.fields[idxConfirm].State; got != form.StateInvalid {
		t.Errorf("live confirmation state = %q, want invalid", got)
	}

	// Submit from another field so the focus jump is observable.
	m = press(t, m, tea.KeyShiftTab)
	m = press(t, m, tea.KeyEnter)

	if m.notice.Kind != form.NoticeBlocking {
		t.Errorf("notice = %+v, want blocking", m.notice)
	}
	if m.active != idxConfirm {
		t.Errorf("active = %d, want confirmation (%d)", m.active, idxConfirm)
	}
	if m.inputs[idxName].Value() != "Maria Silva" {
		t.Errorf("name = %q, want values kept", m.inputs[idxName].Value())
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, want nil", m.Err())
	}
	if !strings.Contains(m.View(), form.MsgPasswordMismatch) {
		t.Errorf("View() missing blocking notice:\n%s", m.View())
	}

	// Fixing the confirmation dismisses the notice.
	m = press(t, m, tea.KeyBackspace)
	m = typeText(t, m, "3")
	if m.notice.Visible() {
		t.Errorf("notice = %+v, want dismissed", m.notice)
	}
	if got := m.fields[idxConfirm].State; got != form.StateValid {
		t.Errorf("confirmation state = %q, want valid", got)
	}
}

func TestModel_SuccessThenReset(t *testing.T) {
	t.Parallel()

	scheduler := mocks.NewMockScheduler(t)
	var reset func()
	scheduler.EXPECT().AfterFunc(app.DefaultNoticeDuration, mock.Anything).
		Run(func(_ time.Duration, fn func()) { reset = fn }).
		Once()

	m, _ := newModel(t, scheduler)
	m = fill(t, m, "abc123")
	m = press(t, m, tea.KeyEnter)

	if m.notice.Kind != form.NoticeSuccess {
		t.Fatalf("notice = %+v, want success", m.notice)
	}
	if !strings.Contains(m.View(), form.MsgSubmitted) {
		t.Errorf("View() missing success notice:\n%s", m.View())
	}

	// A refresh before the timer fires keeps the form.
	m = update(t, m, refreshMsg{})
	if m.inputs[idxName].Value() == "" {
		t.Fatal("form cleared before reset")
	}

	if reset == nil {
		t.Fatal("reset was not scheduled")
	}
	reset()
	m = update(t, m, refreshMsg{})

	if m.notice.Visible() {
		t.Errorf("notice = %+v, want hidden after reset", m.notice)
	}
	for i, in := range m.inputs {
		if in.Value() != "" {
			t.Errorf("input %d = %q, want empty", i, in.Value())
		}
		if m.fields[i].State != form.StateNeutral {
			t.Errorf("field %d state = %q, want neutral", i, m.fields[i].State)
		}
	}
}

func TestModel_QuitClosesSession(t *testing.T) {
	t.Parallel()

	m, svc := newModel(t, mocks.NewMockScheduler(t))
	id := m.SessionID()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit cmd did not produce tea.QuitMsg")
	}

	_, err := svc.Get(context.Background(), id)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Get() after quit error = %v, want ErrNotFound", err)
	}
}

func TestModel_OpenError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockRegistrationService(t)
	svc.EXPECT().Open(mock.Anything).Return(nil, domain.ErrExhausted).Once()

	m := New(context.Background(), svc, time.Millisecond)
	m = update(t, m, m.Init()())

	if !errors.Is(m.Err(), domain.ErrExhausted) {
		t.Errorf("Err() = %v, want ErrExhausted", m.Err())
	}
	if !strings.Contains(m.View(), "error:") {
		t.Errorf("View() = %q, want error", m.View())
	}

	// Keys other than quit are ignored without a session.
	m = typeText(t, m, "x")
	if m.SessionID() != "" {
		t.Error("session opened unexpectedly")
	}
}
