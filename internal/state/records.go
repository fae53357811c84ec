package state

import (
	"github.com/atomicstack/drilldown/internal/catalog"
	"github.com/atomicstack/drilldown/internal/drilldown"
)

// Item wraps a catalog record for the drilldown lists.
type Item struct {
	Record catalog.Record
}

func (i Item) ID() string { return i.Record.ID }

// Label returns the record name, or its id when unnamed.
func (i Item) Label() string {
	if i.Record.Name != "" {
		return i.Record.Name
	}
	return i.Record.ID
}

// RecordStore is the data source behind one master level.
type RecordStore interface {
	drilldown.DataSource
	Level() int
	Items() []Item
	Children(parent string) []Item
	// BeginLoad marks the store as loading until the next Complete.
	BeginLoad()
	// Complete replaces the records and fires pending load listeners once.
	Complete(records []catalog.Record)
}

type recordStore struct {
	level     int
	items     []Item
	loading   bool
	listeners []*func()
}

func NewRecordStore(level int) RecordStore {
	return &recordStore{level: level, loading: true}
}

func (s *recordStore) Level() int {
	return s.level
}

func (s *recordStore) IsLoading() bool {
	return s.loading
}

func (s *recordStore) RecordCount() int {
	return len(s.items)
}

func (s *recordStore) FindByID(id string) (drilldown.Record, bool) {
	for _, item := range s.items {
		if item.ID() == id {
			return item, true
		}
	}
	return nil, false
}

func (s *recordStore) OnLoad(fn func()) func() {
	if fn == nil {
		return func() {}
	}
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

func (s *recordStore) Items() []Item {
	return cloneItems(s.items)
}

func (s *recordStore) Children(parent string) []Item {
	var out []Item
	for _, item := range s.items {
		if item.Record.Parent == parent {
			out = append(out, item)
		}
	}
	return out
}

func (s *recordStore) BeginLoad() {
	s.loading = true
}

func (s *recordStore) Complete(records []catalog.Record) {
	s.items = make([]Item, len(records))
	for i, rec := range records {
		s.items[i] = Item{Record: rec}
	}
	s.loading = false
	listeners := s.listeners
	s.listeners = nil
	for _, l := range listeners {
		(*l)()
	}
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
