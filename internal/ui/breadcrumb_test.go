package ui

import (
	"testing"

	"github.com/atomicstack/drilldown/internal/drilldown"
	"github.com/google/go-cmp/cmp"
)

func testCrumbs() *breadcrumbBar {
	b := newBreadcrumbBar()
	b.Show([]drilldown.Entry{
		{Level: 0, Label: "Repositories", Root: true},
		{Level: 1, Label: "maven-central"},
		{Level: 2, Label: "commons-lang3", Terminal: true},
	})
	return b
}

func TestBreadcrumbBarWidths(t *testing.T) {
	b := testCrumbs()
	if w := b.Width(); w != 46 {
		t.Fatalf("expected width 46, got %d", w)
	}
	if diff := cmp.Diff([]int{15, 15}, b.ButtonWidths()); diff != "" {
		t.Fatalf("button widths mismatch (-want +got):\n%s", diff)
	}
	if got := b.View(); got != " Repositories › maven-central › commons-lang3 " {
		t.Fatalf("unexpected view %q", got)
	}
}

func TestBreadcrumbBarShrinksButtons(t *testing.T) {
	b := testCrumbs()
	b.SetButtonWidths([]int{8, 6})

	if w := b.Width(); w != 30 {
		t.Fatalf("expected width 30, got %d", w)
	}
	if got := b.buttonText(0); got != " Repositories " {
		t.Fatalf("expected root untouched, got %q", got)
	}
	if got := b.buttonText(1); got != " maven… " {
		t.Fatalf("unexpected shortened label %q", got)
	}
	if got := b.buttonText(2); got != " com… " {
		t.Fatalf("unexpected shortened label %q", got)
	}
}

func TestBreadcrumbBarEntryAt(t *testing.T) {
	b := testCrumbs()
	b.SetButtonWidths([]int{8, 6})
	cases := []struct {
		x     int
		index int
		ok    bool
	}{
		{0, 0, true},
		{13, 0, true},
		{14, 0, false},
		{15, 1, true},
		{22, 1, true},
		{24, 2, true},
		{30, 0, false},
		{-1, 0, false},
	}
	for _, tc := range cases {
		index, ok := b.EntryAt(tc.x)
		if index != tc.index || ok != tc.ok {
			t.Fatalf("x=%d: expected %d/%v, got %d/%v", tc.x, tc.index, tc.ok, index, ok)
		}
	}
}

func TestBreadcrumbBarHidden(t *testing.T) {
	b := testCrumbs()
	b.Hide()
	if !b.Hidden() || b.Width() != 0 || b.View() != "" {
		t.Fatalf("expected an empty hidden bar")
	}
	if _, ok := b.EntryAt(0); ok {
		t.Fatalf("expected no hits on a hidden bar")
	}
}

func TestBreadcrumbFitsNarrowTerminal(t *testing.T) {
	h := newTestHarness(t, Options{Width: 30})
	m := h.Model()
	h.Key("enter")
	h.Key("enter")

	if idx := m.Controller().CurrentIndex(); idx != 2 {
		t.Fatalf("expected detail level, got %d", idx)
	}
	if w := m.crumbs.Width(); w+breadcrumbPadding > 30 {
		t.Fatalf("expected breadcrumb to fit in 30 columns, got %d", w)
	}
	if got := m.crumbs.buttonText(0); got != " Repositories " {
		t.Fatalf("expected root button untouched, got %q", got)
	}
	want := []string{"Repositories", "maven-central", "commons-lang3"}
	if diff := cmp.Diff(want, crumbLabels(m)); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}
