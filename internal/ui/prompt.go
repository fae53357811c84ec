package ui

import (
	"github.com/atomicstack/drilldown/internal/drilldown"
	"github.com/atomicstack/drilldown/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

var _ drilldown.Confirmer = (*Model)(nil)

// confirmPrompt is a yes/no question shown on the status row. Every other key
// is swallowed until it is answered.
type confirmPrompt struct {
	title    string
	message  string
	onAccept func()
}

// Confirm asks title on the status row; onAccept runs when the user answers
// yes.
func (m *Model) Confirm(title, message string, onAccept func()) {
	m.forceClearInfo()
	m.errMsg = ""
	m.confirm = &confirmPrompt{title: title, message: message, onAccept: onAccept}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) {
	prompt := m.confirm
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirm = nil
		events.UI.Confirm(prompt.title, prompt.message, true)
		if prompt.onAccept != nil {
			prompt.onAccept()
		}
	case "n", "N", "esc":
		m.confirm = nil
		events.UI.Confirm(prompt.title, prompt.message, false)
	}
}

func (p *confirmPrompt) View() string {
	text := p.title
	if p.message != "" {
		text += " " + p.message
	}
	return text + " [y/N]"
}
