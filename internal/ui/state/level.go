package state

import "github.com/atomicstack/drilldown/internal/drilldown"

// Level is the list state of one master level: the rows on display, the
// fuzzy filter, the cursor and the viewport. It also records which row the
// drilldown has selected, which is independent of the cursor.
type Level struct {
	ID             string
	Title          string
	Index          int
	Items          []Item
	Full           []Item
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
	Selected       string
	// Scope is the parent record whose children are listed.
	Scope          string
}

var (
	_ drilldown.ListView      = (*Level)(nil)
	_ drilldown.DirtyResetter = (*Level)(nil)
)

// NewLevel constructs the list for master level index.
func NewLevel(id, title string, index int, items []Item) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		Index:      index,
		Cursor:     -1,
		LastCursor: -1,
	}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the display index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems replaces the rows. The viewport is kept when it still fits and
// a selection whose row disappeared is dropped.
func (l *Level) UpdateItems(items []Item) {
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	if l.Selected != "" && l.find(l.Selected) < 0 {
		l.Selected = ""
	}
	l.applyFilter()
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
		if idx := l.IndexOf(l.Selected); idx >= 0 {
			l.Cursor = idx
		}
	}
	if prevOffset < 0 || prevOffset > len(l.Items)-1 {
		prevOffset = 0
	}
	l.ViewportOffset = prevOffset
}

// Clear empties the list and forgets the selection.
func (l *Level) Clear() {
	l.Selected = ""
	l.Cursor = -1
	l.LastCursor = -1
	l.Filter = ""
	l.FilterCursor = 0
	l.UpdateItems(nil)
}

func (l *Level) find(id string) int {
	for i, item := range l.Full {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// SelectedRecords returns the drilldown selection, if it is still listed.
func (l *Level) SelectedRecords() []drilldown.Record {
	idx := l.find(l.Selected)
	if idx < 0 || l.Full[idx].Record == nil {
		return nil
	}
	return []drilldown.Record{l.Full[idx].Record}
}

// Select marks rec as the drilldown selection and moves the cursor onto it.
func (l *Level) Select(rec drilldown.Record) {
	if rec == nil {
		l.Selected = ""
		return
	}
	l.Selected = rec.ID()
	if idx := l.IndexOf(l.Selected); idx >= 0 {
		l.Cursor = idx
	}
}

// ContainsNode reports whether rec is one of the rows, filtered or not.
func (l *Level) ContainsNode(rec drilldown.Record) bool {
	return rec != nil && l.find(rec.ID()) >= 0
}

// IsSelected reports whether id is the drilldown selection.
func (l *Level) IsSelected(id string) bool {
	return id != "" && l.Selected == id
}

// IsDirty reports whether the user has typed a filter.
func (l *Level) IsDirty() bool {
	return l.Filter != ""
}

func (l *Level) Reset() {
	l.SetFilter("", 0)
}
