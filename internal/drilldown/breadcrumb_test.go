package drilldown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBreadcrumbHiddenAtRoot(t *testing.T) {
	h := newHarness(t, []Record{repoA}, []Record{compA1})
	_ = h.ctrl.OnRecordSelected(0, repoA)
	_ = h.ctrl.OnRecordSelected(1, compA1)

	entries := h.ctrl.Breadcrumb()
	if len(entries) != 3 {
		t.Fatalf("expected root plus two entries, got %d", len(entries))
	}
	for i, e := range entries[1:] {
		last := i == len(entries)-2
		if e.Terminal != last {
			t.Fatalf("entry %d terminal=%v", i+1, e.Terminal)
		}
	}

	h.ctrl.SlideTo(0, false)
	if !h.bar.hidden || len(h.ctrl.Breadcrumb()) != 0 {
		t.Fatalf("expected breadcrumb hidden at root")
	}
}

func TestBreadcrumbClickRestoresBookmark(t *testing.T) {
	h := newHarness(t, []Record{repoA, repoB}, []Record{compA1, compA2})
	_ = h.ctrl.OnRecordSelected(0, repoA)
	_ = h.ctrl.OnRecordSelected(1, compA1)
	if got := h.store.Current().Token(); got != "catalog:a:a1" {
		t.Fatalf("unexpected bookmark %q", got)
	}

	ok, err := h.ctrl.OnBreadcrumbClick(2)
	if ok || err != nil {
		t.Fatalf("terminal entry must not be clickable, ok=%v err=%v", ok, err)
	}
	if ok, _ := h.ctrl.OnBreadcrumbClick(9); ok {
		t.Fatalf("out of range click should be ignored")
	}

	ok, err = h.ctrl.OnBreadcrumbClick(1)
	if !ok || err != nil {
		t.Fatalf("click failed ok=%v err=%v", ok, err)
	}
	if h.ctrl.CurrentIndex() != 1 {
		t.Fatalf("expected index 1, got %d", h.ctrl.CurrentIndex())
	}
	if got := h.store.Current().Token(); got != "catalog:a" {
		t.Fatalf("expected bookmark catalog:a, got %q", got)
	}

	ok, _ = h.ctrl.OnBreadcrumbClick(0)
	if !ok || h.ctrl.CurrentIndex() != 0 {
		t.Fatalf("root click should return to level 0, index=%d", h.ctrl.CurrentIndex())
	}
	if got := h.store.Current().Token(); got != "catalog" {
		t.Fatalf("expected root bookmark, got %q", got)
	}
}

func TestBackStepsTowardsRoot(t *testing.T) {
	h := newHarness(t, []Record{repoA}, []Record{compA1})
	_ = h.ctrl.OnRecordSelected(0, repoA)
	_ = h.ctrl.OnRecordSelected(1, compA1)

	if ok, _ := h.ctrl.Back(); !ok || h.ctrl.CurrentIndex() != 1 {
		t.Fatalf("expected back to level 1, index=%d", h.ctrl.CurrentIndex())
	}
	if ok, _ := h.ctrl.Back(); !ok || h.ctrl.CurrentIndex() != 0 {
		t.Fatalf("expected back to root, index=%d", h.ctrl.CurrentIndex())
	}
	if ok, _ := h.ctrl.Back(); ok {
		t.Fatalf("back at root should do nothing")
	}
}

func TestBackFromCreateWizard(t *testing.T) {
	h := newHarness(t, []Record{repoA}, []Record{compA1})
	_ = h.ctrl.OnRecordSelected(0, repoA)
	h.ctrl.LoadCreateWizard(2, false, &fakePanel{})
	if l1, _ := h.ctrl.Level(1); l1.ItemBookmark != nil {
		t.Fatalf("create wizard should clear item bookmarks on the way")
	}

	ok, err := h.ctrl.Back()
	if !ok || err != nil {
		t.Fatalf("back failed ok=%v err=%v", ok, err)
	}
	l2, _ := h.ctrl.Level(2)
	if h.ctrl.CurrentIndex() != 1 || l2.Wizard != nil {
		t.Fatalf("expected wizard discarded at level 1, index=%d level2=%+v", h.ctrl.CurrentIndex(), l2)
	}
}

func TestBreadcrumbFitShrinksButtons(t *testing.T) {
	h := newHarness(t, []Record{repoA}, []Record{compA1})
	h.surface.width = 40
	long := fakeRecord{id: "x", name: "an exceedingly long component name"}
	h.sources[1].records = append(h.sources[1].records, long)
	h.views[1].records = append(h.views[1].records, long)

	_ = h.ctrl.OnRecordSelected(0, repoA)
	_ = h.ctrl.OnRecordSelected(1, long)

	if len(h.bar.applied) == 0 {
		t.Fatalf("expected breadcrumb buttons to be reduced")
	}
	got := h.bar.applied[len(h.bar.applied)-1]
	// root button 11 wide, padding 4: 25 left for two buttons of 9 and 38
	if diff := cmp.Diff([]int{9, 16}, got); diff != "" {
		t.Fatalf("width mismatch (-want +got):\n%s", diff)
	}
	if h.bar.Width()+4 > h.surface.width {
		t.Fatalf("breadcrumb still overflows: %d", h.bar.Width())
	}
}

func TestBreadcrumbPaddingDefault(t *testing.T) {
	// "Catalog" root 11 wide plus buttons of 9 and 13: 33 columns
	for _, tc := range []struct {
		padding     int
		wantPadding int
		wantReduce  bool
	}{
		{padding: 0, wantPadding: DefaultBreadcrumbPadding, wantReduce: true},
		{padding: 4, wantPadding: 4, wantReduce: false},
	} {
		h := newHarnessWith(t, harnessOptions{padding: tc.padding, detail: "detail"}, []Record{repoA}, []Record{compA1})
		h.surface.width = 80
		_ = h.ctrl.OnRecordSelected(0, repoA)
		_ = h.ctrl.OnRecordSelected(1, compA1)

		if h.ctrl.padding != tc.wantPadding {
			t.Fatalf("padding %d: got %d, want %d", tc.padding, h.ctrl.padding, tc.wantPadding)
		}
		if reduced := len(h.bar.applied) > 0; reduced != tc.wantReduce {
			t.Fatalf("padding %d: reduced=%v, want %v", tc.padding, reduced, tc.wantReduce)
		}
	}
}

func TestSetItemNameRefreshesVisibleBreadcrumb(t *testing.T) {
	h := newHarness(t, []Record{repoA})
	_ = h.ctrl.OnRecordSelected(0, repoA)
	h.ctrl.SetItemName(1, "Renamed")
	if diff := cmp.Diff([]string{"Catalog", "Renamed"}, entryLabels(h.bar.entries)); diff != "" {
		t.Fatalf("breadcrumb mismatch (-want +got):\n%s", diff)
	}
}

type fakeCondition struct {
	satisfied   func()
	unsatisfied func()
	cancelled   bool
}

func (c *fakeCondition) Subscribe(satisfied, unsatisfied func()) func() {
	c.satisfied, c.unsatisfied = satisfied, unsatisfied
	return func() { c.cancelled = true }
}

type fakeButton struct{ enabled bool }

func (b *fakeButton) Enable()  { b.enabled = true }
func (b *fakeButton) Disable() { b.enabled = false }

func TestPermissionBindings(t *testing.T) {
	conditions := map[string]*fakeCondition{}
	ctrl := New(Options{
		Feature: Feature{Permission: "nexus:catalog"},
		Permissions: func(perm string) Condition {
			c := &fakeCondition{}
			conditions[perm] = c
			return c
		},
	})
	create, del := &fakeButton{}, &fakeButton{}
	ctrl.BindCreate(create)
	cancel := ctrl.BindDelete(del)

	createCond, deleteCond := conditions["nexus:catalog:create"], conditions["nexus:catalog:delete"]
	if createCond == nil || deleteCond == nil {
		t.Fatalf("expected create and delete conditions, got %v", conditions)
	}
	createCond.satisfied()
	deleteCond.satisfied()
	deleteCond.unsatisfied()
	if !create.enabled || del.enabled {
		t.Fatalf("unexpected button state create=%v delete=%v", create.enabled, del.enabled)
	}
	cancel()
	if !deleteCond.cancelled {
		t.Fatalf("expected delete binding cancelled")
	}
}
