package ui

import (
	"github.com/atomicstack/drilldown/internal/backend"
	"github.com/atomicstack/drilldown/internal/drilldown"
	"github.com/atomicstack/drilldown/internal/logging"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.handleDispatch(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// handleDispatch feeds a catalog event to the stores and brings the lists and
// the drilldown in line with the result.
func (m *Model) handleDispatch(evt backend.Event) tea.Cmd {
	res := m.dispatcher.Handle(evt)
	switch {
	case res.Reloading:
		if m.spinning {
			return nil
		}
		m.spinning = true
		return m.spinner.Tick
	case res.Err != nil:
		logging.Error(res.Err)
		m.backendLastErr = res.Err.Error()
		m.ctrl.ShowWarning(staleCatalog)
		m.refreshLists(0)
	case res.Updated:
		m.backendLastErr = ""
		m.ctrl.ClearWarning()
		m.catalog = res.Catalog
		m.refreshLists(0)
		if lvl, ok := m.ctrl.Level(m.ctrl.CurrentIndex()); ok && lvl.Mode == drilldown.ModeCreateWizard {
			return nil
		}
		m.reportError(m.ctrl.Reselect())
	}
	return nil
}

func (m *Model) handleSpinnerMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok {
		return nil
	}
	if !m.loading() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(tick)
	return cmd
}
