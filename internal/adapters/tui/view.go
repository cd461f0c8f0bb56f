package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OliveiraRafael10/automacao-formulario/internal/domain/form"
)

const fieldWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	activeLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(form.ColorValid)).
			Bold(true)

	blockingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(form.ColorInvalid)).
			Bold(true)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View implements tea.Model. Each field is boxed in a border coloured by its
// state.
func (m Model) View() string {
	if m.sessionID == "" {
		if m.err != nil {
			return errorStyle.Render("error: "+m.err.Error()) + "\n"
		}
		return "Opening form...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Registration"))
	b.WriteString("\n")

	for i, fv := range m.fields {
		label := labelStyle.Render(fv.Label)
		if i == m.active {
			label = activeLabelStyle.Render(fv.Label)
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(fv.Border)).
			Width(fieldWidth).
			Render(m.inputs[i].View())
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, label, box))
		b.WriteString("\n")
	}

	switch m.notice.Kind {
	case form.NoticeSuccess:
		b.WriteString(successStyle.Render(m.notice.Message))
		b.WriteString("\n")
	case form.NoticeBlocking:
		b.WriteString(blockingStyle.Render(m.notice.Message))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
