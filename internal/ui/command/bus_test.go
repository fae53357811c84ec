package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ id string }

func TestExecuteRunsRequest(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "catalog:create", Label: "left-pad", Run: func() tea.Msg {
		return doneMsg{id: "left-pad"}
	}})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg, ok := cmd().(doneMsg)
	if !ok || msg.id != "left-pad" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestExecuteSkipsEmptyRequest(t *testing.T) {
	if msg := New().Execute(Request{ID: "noop"})(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
