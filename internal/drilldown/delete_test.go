package drilldown

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeleteConfirmsThenResetsBookmark(t *testing.T) {
	h := newHarness(t, []Record{repoA, repoB}, []Record{compA1})
	_ = h.ctrl.OnRecordSelected(0, repoA)
	_ = h.ctrl.OnRecordSelected(1, compA1)

	h.ctrl.OnDelete()
	if h.confirm.accept == nil {
		t.Fatalf("expected a confirmation prompt")
	}
	if h.confirm.title != DeleteConfirmTitle || h.confirm.message != "Alpha" {
		t.Fatalf("unexpected prompt %q / %q", h.confirm.title, h.confirm.message)
	}
	if len(h.deleted) != 0 {
		t.Fatalf("nothing should be deleted before confirmation")
	}

	h.confirm.accept()
	if diff := cmp.Diff([]string{"a"}, h.deleted); diff != "" {
		t.Fatalf("delete mismatch (-want +got):\n%s", diff)
	}
	if got := h.store.Current().Token(); got != "catalog" {
		t.Fatalf("expected root bookmark, got %q", got)
	}
	if h.ctrl.CurrentIndex() != 0 {
		t.Fatalf("expected return to root, got %d", h.ctrl.CurrentIndex())
	}
}

func TestDeleteFailureKeepsNavigation(t *testing.T) {
	h := newHarness(t, []Record{repoA})
	_ = h.ctrl.OnRecordSelected(0, repoA)
	h.deleteErr = errors.New("locked")

	h.ctrl.OnDelete()
	h.confirm.accept()
	if got := h.store.Current().Token(); got != "catalog:a" {
		t.Fatalf("bookmark should be kept after a failed delete, got %q", got)
	}
}

func TestDeleteWithoutSelectionDoesNothing(t *testing.T) {
	h := newHarness(t, []Record{repoA})
	h.ctrl.OnDelete()
	if h.confirm.accept != nil {
		t.Fatalf("no prompt expected without a selection")
	}
}
