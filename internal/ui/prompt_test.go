package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/drilldown/internal/permission"
	"github.com/google/go-cmp/cmp"
)

func TestDeleteAsksForConfirmation(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("enter")
	h.Key("ctrl+d")

	if m.confirm == nil {
		t.Fatalf("expected a confirmation prompt")
	}
	if view := h.View(); !strings.Contains(view, "Confirm deletion? maven-central") {
		t.Fatalf("expected confirmation on the status row, view =\n%s", view)
	}
	h.Key("down")
	if m.lists[1].Cursor != 0 {
		t.Fatalf("expected keys to be swallowed while confirming")
	}

	h.Key("y")
	if m.confirm != nil {
		t.Fatalf("expected prompt to close")
	}
	if idx := m.Controller().CurrentIndex(); idx != 0 {
		t.Fatalf("expected reset to level 0, got %d", idx)
	}
	if got := m.Bookmarks().Current().Token(); got != FeatureName {
		t.Fatalf("expected root bookmark, got %q", got)
	}
	if diff := cmp.Diff([]string{"npm-hosted"}, itemIDs(m.lists[0])); diff != "" {
		t.Fatalf("remaining records mismatch (-want +got):\n%s", diff)
	}
	if len(m.catalog.Records) != 2 {
		t.Fatalf("expected children removed too, got %d records", len(m.catalog.Records))
	}
	if got := m.currentInfo(); got != "Deleted maven-central (3 records)" {
		t.Fatalf("unexpected info %q", got)
	}
}

func TestDeleteDeclined(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("enter")
	h.Key("ctrl+d")
	h.Key("n")

	if m.confirm != nil {
		t.Fatalf("expected prompt to close")
	}
	if idx := m.Controller().CurrentIndex(); idx != 1 {
		t.Fatalf("expected to stay on level 1, got %d", idx)
	}
	if len(m.catalog.Records) != 5 {
		t.Fatalf("expected nothing deleted, got %d records", len(m.catalog.Records))
	}
}

func TestDeleteNeedsSelection(t *testing.T) {
	h := newTestHarness(t, Options{})
	m := h.Model()
	h.Key("ctrl+d")
	if m.confirm != nil {
		t.Fatalf("did not expect a prompt without a selection")
	}
	if got := m.currentInfo(); got != "Select a repository to delete" {
		t.Fatalf("unexpected info %q", got)
	}
}

func TestDeleteDenied(t *testing.T) {
	perms := permission.NewChecker([]string{"nexus:repositories:delete"})
	h := newTestHarness(t, Options{Permissions: perms})
	m := h.Model()
	h.Key("enter")
	h.Key("ctrl+d")
	if m.confirm != nil {
		t.Fatalf("did not expect a prompt when deleting is denied")
	}
	if got := m.currentInfo(); got != "Deleting is not permitted" {
		t.Fatalf("unexpected info %q", got)
	}
}
