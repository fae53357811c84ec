package ui

import (
	"testing"

	"github.com/atomicstack/drilldown/internal/drilldown"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func TestEnterDrillsIntoChildren(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("enter")

	if idx := m.Controller().CurrentIndex(); idx != 1 {
		t.Fatalf("expected level 1, got %d", idx)
	}
	if got := m.Bookmarks().Current().Token(); got != "catalog:maven-central" {
		t.Fatalf("unexpected bookmark %q", got)
	}
	if m.currentList() != m.lists[1] {
		t.Fatalf("expected the component list to be current")
	}
	want := []string{"org.apache:commons-lang3", "org.slf4j:slf4j-api"}
	if diff := cmp.Diff(want, itemIDs(m.lists[1])); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	if lvl, _ := m.Controller().Level(0); lvl.Mode != drilldown.ModeBlank {
		t.Fatalf("expected level 0 to be blanked after settling, got %v", lvl.Mode)
	}
}

func TestEnterOnLastListOpensDetail(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("enter")
	h.Key("down")
	h.Key("enter")

	if idx := m.Controller().CurrentIndex(); idx != 2 {
		t.Fatalf("expected detail level, got %d", idx)
	}
	if got := m.Bookmarks().Current().Token(); got != "catalog:maven-central:org.slf4j%3Aslf4j-api" {
		t.Fatalf("unexpected bookmark %q", got)
	}
	if m.detail.record == nil || m.detail.record.Name != "slf4j-api" {
		t.Fatalf("expected slf4j-api detail, got %#v", m.detail.record)
	}
}

func TestSelectingAnotherParentReplacesChildren(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("enter")
	h.Key("esc")
	h.Key("down")
	h.Key("enter")

	if got := m.Bookmarks().Current().Token(); got != "catalog:npm-hosted" {
		t.Fatalf("unexpected bookmark %q", got)
	}
	if diff := cmp.Diff([]string{"left-pad"}, itemIDs(m.lists[1])); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	if m.lists[1].Selected != "" {
		t.Fatalf("expected no component selection, got %q", m.lists[1].Selected)
	}
}

func TestEscapeStepsBack(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("enter")
	h.Key("esc")

	if idx := m.Controller().CurrentIndex(); idx != 0 {
		t.Fatalf("expected level 0, got %d", idx)
	}
	if got := m.Bookmarks().Current().Token(); got != FeatureName {
		t.Fatalf("expected root bookmark, got %q", got)
	}
	if h.Quit() {
		t.Fatalf("did not expect to quit")
	}
	if !m.crumbs.Hidden() {
		t.Fatalf("expected breadcrumb hidden at the root")
	}
}

func TestEscapeAtRootQuits(t *testing.T) {
	h := newTestHarness(t, Options{})
	h.Key("esc")
	if !h.Quit() {
		t.Fatalf("expected escape on the first list to quit")
	}
}

func TestBreadcrumbShortcutRestoresLevel(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("enter")
	h.Key("enter")
	h.Key("alt+2")

	if idx := m.Controller().CurrentIndex(); idx != 1 {
		t.Fatalf("expected level 1, got %d", idx)
	}
	if got := m.Bookmarks().Current().Token(); got != "catalog:maven-central" {
		t.Fatalf("unexpected bookmark %q", got)
	}
}

func TestBreadcrumbMouseClick(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("enter")
	h.Key("enter")

	// " Repositories " is 14 cells and the separator 1, so column 18 lands on
	// the second button.
	h.Send(tea.MouseMsg{X: 18, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if idx := m.Controller().CurrentIndex(); idx != 1 {
		t.Fatalf("expected level 1 after clicking, got %d", idx)
	}

	h.Send(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if idx := m.Controller().CurrentIndex(); idx != 0 {
		t.Fatalf("expected level 0 after clicking the root, got %d", idx)
	}
}

func TestHistoryBack(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("enter")
	h.Key("alt+left")

	if idx := m.Controller().CurrentIndex(); idx != 0 {
		t.Fatalf("expected level 0, got %d", idx)
	}
	h.Key("alt+left")
	if got := m.currentInfo(); got != "No earlier location" {
		t.Fatalf("unexpected info %q", got)
	}
}

func TestGotoNavigates(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("ctrl+g")
	if m.gotoForm == nil {
		t.Fatalf("expected goto prompt")
	}
	h.Type(":npm-hosted")
	h.Key("enter")

	if m.gotoForm != nil {
		t.Fatalf("expected goto prompt to close")
	}
	if idx := m.Controller().CurrentIndex(); idx != 1 {
		t.Fatalf("expected level 1, got %d", idx)
	}
	if m.lists[0].Selected != "npm-hosted" {
		t.Fatalf("expected npm-hosted selected, got %q", m.lists[0].Selected)
	}
}

func TestGotoRejectsUnknownFeature(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("ctrl+g")
	h.Key("ctrl+u")
	h.Type("files:readme")
	h.Key("enter")

	if m.gotoForm == nil || m.gotoForm.err == "" {
		t.Fatalf("expected goto prompt to stay open with an error")
	}
	if got := m.Bookmarks().Current().Token(); got != FeatureName {
		t.Fatalf("expected bookmark unchanged, got %q", got)
	}
}

func TestCursorKeysMoveWithinList(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("down")
	if m.lists[0].Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.lists[0].Cursor)
	}
	h.Key("down")
	if m.lists[0].Cursor != 0 {
		t.Fatalf("expected cursor to wrap to 0, got %d", m.lists[0].Cursor)
	}
	h.Key("end")
	if m.lists[0].Cursor != 1 {
		t.Fatalf("expected cursor at end, got %d", m.lists[0].Cursor)
	}
}
