// Package tui renders a registration form in the terminal with bubbletea.
// Every keystroke, focus change and submission is forwarded to a
// ports.RegistrationService, so the same model drives an in-process service
// or a remote one through the formapi client.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/phone"
	"github.com/OliveiraRafael10/automacao-formulario/internal/ports"
)

type (
	openedMsg  struct{ session *ports.Session }
	refreshMsg struct{}
	errMsg     struct{ err error }
)

// Model is the bubbletea model of one form session.
type Model struct {
	ctx     context.Context
	svc     ports.RegistrationService
	refresh time.Duration
	keys    KeyMap
	help    help.Model

	sessionID string
	fields    []form.FieldView
	inputs    []textinput.Model
	active    int
	notice    form.Notice
	// resetting is set between an accepted submission and the reset that
	// follows it.
	resetting bool
	err       error
}

// New creates a Model backed by svc. refresh is how long after an accepted
// submission the model re-reads the form to pick up the reset; it should
// match the service's notice duration.
func New(ctx context.Context, svc ports.RegistrationService, refresh time.Duration) Model {
	return Model{
		ctx:     ctx,
		svc:     svc,
		refresh: refresh,
		keys:    DefaultKeyMap,
		help:    help.New(),
	}
}

// Init opens the form session.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		sess, err := m.svc.Open(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return openedMsg{sess}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		m.sessionID = msg.session.ID
		m.build(msg.session.Form)
		return m, m.inputs[m.active].Focus()

	case refreshMsg:
		sess, err := m.svc.Get(m.ctx, m.sessionID)
		if err != nil {
			m.err = err
			return m, nil
		}
		if m.resetting && !sess.Form.Notice.Visible() {
			m.resetting = false
			for i := range m.inputs {
				m.inputs[i].SetValue("")
			}
			return m, m.apply(sess.Form)
		}
		m.apply(sess.Form)
		if m.resetting {
			return m, m.tick()
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.close()
			return m, tea.Quit
		}
		if m.sessionID == "" {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			return m, m.move(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.move(-1)
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		}
		return m, m.input(msg)
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.active], cmd = m.inputs[m.active].Update(msg)
	return m, cmd
}

// SessionID returns the id of the open session, or "" before it is opened.
func (m Model) SessionID() string {
	return m.sessionID
}

// Err returns the last error reported by the service.
func (m Model) Err() error {
	return m.err
}

// build creates one text input per field.
func (m *Model) build(snap form.Snapshot) {
	m.fields = snap.Fields
	m.inputs = make([]textinput.Model, len(snap.Fields))
	for i, fv := range snap.Fields {
		ti := textinput.New()
		ti.Placeholder = fv.Label
		ti.Prompt = ""
		ti.CharLimit = 255
		if fv.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		ti.SetValue(fv.Value)
		m.inputs[i] = ti
	}
	m.active = 0
	m.notice = snap.Notice
}

// apply copies a snapshot into the model. Secret values are never echoed
// by remote services, so the local text is kept for them. A focus request
// from the service moves the cursor.
func (m *Model) apply(snap form.Snapshot) tea.Cmd {
	m.fields = snap.Fields
	m.notice = snap.Notice
	m.err = nil
	for i, fv := range snap.Fields {
		if i >= len(m.inputs) || fv.Secret {
			continue
		}
		if m.inputs[i].Value() != fv.Value {
			m.inputs[i].SetValue(fv.Value)
			m.inputs[i].CursorEnd()
		}
	}
	if snap.Focus == "" {
		return nil
	}
	for i, fv := range snap.Fields {
		if fv.Name == snap.Focus && i != m.active {
			return m.focus(i)
		}
	}
	return nil
}

func (m *Model) input(msg tea.KeyMsg) tea.Cmd {
	before := m.inputs[m.active].Value()
	var cmd tea.Cmd
	m.inputs[m.active], cmd = m.inputs[m.active].Update(msg)
	after := m.inputs[m.active].Value()
	if after == before {
		return cmd
	}

	name := m.fields[m.active].Name
	sess, err := m.svc.Input(m.ctx, m.sessionID, name, after)
	if err == nil && len(after) < len(before) {
		// Deleting mask punctuation re-masks to the old text; drop a digit
		// instead so backspace can always empty the field.
		if fv, ok := sess.Form.Field(name); ok && fv.Value == before {
			sess, err = m.svc.Input(m.ctx, m.sessionID, name, dropLastDigit(after))
		}
	}
	if err != nil {
		m.err = err
		return cmd
	}
	return tea.Batch(cmd, m.apply(sess.Form))
}

func dropLastDigit(s string) string {
	d := phone.Digits(s)
	if d == "" {
		return ""
	}
	return d[:len(d)-1]
}

// move blurs the active field and focuses its neighbour.
func (m *Model) move(delta int) tea.Cmd {
	sess, err := m.svc.Blur(m.ctx, m.sessionID, m.fields[m.active].Name)
	if err != nil {
		m.err = err
	} else {
		m.apply(sess.Form)
	}
	n := len(m.inputs)
	return m.focus(((m.active+delta)%n + n) % n)
}

func (m *Model) focus(i int) tea.Cmd {
	m.inputs[m.active].Blur()
	m.active = i
	return m.inputs[i].Focus()
}

func (m *Model) submit() tea.Cmd {
	sess, err := m.svc.Submit(m.ctx, m.sessionID)
	if err == nil {
		m.resetting = true
		return tea.Batch(m.apply(sess.Form), m.tick())
	}
	if !errors.Is(err, domain.ErrPasswordMismatch) {
		m.err = err
		return nil
	}

	// The blocked form carries the notice and the focus request.
	sess, err = m.svc.Get(m.ctx, m.sessionID)
	if err != nil {
		m.err = err
		return nil
	}
	return m.apply(sess.Form)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg { return refreshMsg{} })
}

func (m *Model) close() {
	if m.sessionID == "" {
		return
	}
	_ = m.svc.Close(m.ctx, m.sessionID)
}
