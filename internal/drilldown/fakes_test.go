package drilldown

import (
	"testing"
	"time"

	"github.com/atomicstack/drilldown/internal/bookmark"
)

type fakeRecord struct {
	id   string
	name string
}

func (r fakeRecord) ID() string { return r.id }

type fakeSource struct {
	loading   bool
	records   []Record
	listeners []*func()
}

func (s *fakeSource) IsLoading() bool  { return s.loading }
func (s *fakeSource) RecordCount() int { return len(s.records) }

func (s *fakeSource) FindByID(id string) (Record, bool) {
	for _, rec := range s.records {
		if rec.ID() == id {
			return rec, true
		}
	}
	return nil, false
}

func (s *fakeSource) OnLoad(fn func()) func() {
	l := &fn
	s.listeners = append(s.listeners, l)
	return func() {
		for i, existing := range s.listeners {
			if existing == l {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *fakeSource) complete() {
	s.loading = false
	listeners := s.listeners
	s.listeners = nil
	for _, l := range listeners {
		(*l)()
	}
}

type fakeView struct {
	records  []Record
	selected []Record
}

func (v *fakeView) SelectedRecords() []Record { return v.selected }
func (v *fakeView) Select(rec Record)         { v.selected = []Record{rec} }

func (v *fakeView) ContainsNode(rec Record) bool {
	for _, r := range v.records {
		if r.ID() == rec.ID() {
			return true
		}
	}
	return false
}

type focusCall struct {
	index int
	field string
}

type fakeSurface struct {
	width     int
	origin    int
	position  int
	animated  []int
	suspended int
	resumed   int
	syncs     []int
	focus     []focusCall
}

func (s *fakeSurface) Width() int          { return s.width }
func (s *fakeSurface) Height() int         { return 20 }
func (s *fakeSurface) Origin() int         { return s.origin }
func (s *fakeSurface) SetPosition(x int)   { s.position = x }
func (s *fakeSurface) SuspendResize()      { s.suspended++ }
func (s *fakeSurface) ResumeResize()       { s.resumed++ }
func (s *fakeSurface) SyncSize(levels int) { s.syncs = append(s.syncs, levels) }

func (s *fakeSurface) AnimateTo(x int, _ time.Duration, _ Easing) {
	s.position = x
	s.animated = append(s.animated, x)
}

func (s *fakeSurface) Focus(index int, field string) {
	s.focus = append(s.focus, focusCall{index: index, field: field})
}

type fakeScheduler struct {
	delays []time.Duration
	queue  []func()
}

func (s *fakeScheduler) After(d time.Duration, fn func()) {
	s.delays = append(s.delays, d)
	s.queue = append(s.queue, fn)
}

func (s *fakeScheduler) flush() {
	queue := s.queue
	s.queue = nil
	for _, fn := range queue {
		fn()
	}
}

type fakeBar struct {
	hidden  bool
	entries []Entry
	widths  []int
	applied [][]int
}

func (b *fakeBar) Hide() {
	b.hidden = true
	b.entries = nil
	b.widths = nil
}

func (b *fakeBar) Show(entries []Entry) {
	b.hidden = false
	b.entries = entries
	b.widths = nil
	for _, e := range entries[1:] {
		b.widths = append(b.widths, len(e.Label)+4)
	}
}

func (b *fakeBar) Width() int {
	if len(b.entries) == 0 {
		return 0
	}
	return len(b.entries[0].Label) + 4 + sum(b.widths)
}

func (b *fakeBar) ButtonWidths() []int { return append([]int(nil), b.widths...) }

func (b *fakeBar) SetButtonWidths(widths []int) {
	b.widths = append([]int(nil), widths...)
	b.applied = append(b.applied, b.widths)
}

type fakeConfirm struct {
	title   string
	message string
	accept  func()
}

func (c *fakeConfirm) Confirm(title, message string, onAccept func()) {
	c.title, c.message, c.accept = title, message, onAccept
}

type fakePanel struct {
	dirty  bool
	resets int
	field  string
}

func (p *fakePanel) IsDirty() bool        { return p.dirty }
func (p *fakePanel) Reset()               { p.dirty = false; p.resets++ }
func (p *fakePanel) DefaultFocus() string { return p.field }

type harness struct {
	ctrl      *Controller
	store     *bookmark.Store
	sources   []*fakeSource
	views     []*fakeView
	surface   *fakeSurface
	scheduler *fakeScheduler
	bar       *fakeBar
	confirm   *fakeConfirm
	selected  []string
	deleted   []string
	deleteErr error
}

var (
	repoA  = fakeRecord{id: "a", name: "Alpha"}
	repoB  = fakeRecord{id: "b", name: "Beta"}
	compA1 = fakeRecord{id: "a1", name: "Alpha One"}
	compA2 = fakeRecord{id: "a:2", name: "Alpha Two"}
)

// newHarness builds a controller over one master list per record group, plus
// a detail level.
func newHarness(t *testing.T, groups ...[]Record) *harness {
	t.Helper()
	return newHarnessWith(t, harnessOptions{padding: 4, detail: "detail"}, groups...)
}

type harnessOptions struct {
	padding int
	detail  any
}

func newHarnessWith(t *testing.T, opts harnessOptions, groups ...[]Record) *harness {
	t.Helper()
	h := &harness{
		store:     bookmark.NewStore(bookmark.FromToken("catalog")),
		surface:   &fakeSurface{width: 100},
		scheduler: &fakeScheduler{},
		bar:       &fakeBar{},
		confirm:   &fakeConfirm{},
	}
	var masters []Master
	for _, records := range groups {
		src := &fakeSource{records: records}
		view := &fakeView{records: records}
		h.sources = append(h.sources, src)
		h.views = append(h.views, view)
		masters = append(masters, Master{View: view, Source: src})
	}
	h.ctrl = New(Options{
		Feature:    Feature{Name: "catalog", Title: "Catalog", IconClass: "catalog", Permission: "nexus:catalog"},
		Masters:    masters,
		Detail:     opts.detail,
		Surface:    h.surface,
		Breadcrumb: h.bar,
		Bookmarks:  h.store,
		Scheduler:  h.scheduler,
		Confirm:    h.confirm,
		Describe:   func(r Record) string { return r.(fakeRecord).name },
		Delete: func(r Record) error {
			h.deleted = append(h.deleted, r.ID())
			return h.deleteErr
		},
		OnSelection: func(level int, r Record) {
			h.selected = append(h.selected, r.ID())
		},
		OnError:           func(err error) { t.Logf("controller error: %v", err) },
		BreadcrumbPadding: opts.padding,
	})
	h.store.Subscribe(h.ctrl, h.ctrl.NavigateTo)
	return h
}

func entryLabels(entries []Entry) []string {
	var labels []string
	for _, e := range entries {
		labels = append(labels, e.Label)
	}
	return labels
}
