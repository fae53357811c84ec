package state

import "github.com/atomicstack/drilldown/internal/drilldown"

// Item is one row of a master list.
type Item struct {
	ID     string
	Label  string
	Record drilldown.Record
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

// RecordItems wraps records for display, labelling each with label(rec).
func RecordItems[R drilldown.Record](records []R, label func(R) string) []Item {
	items := make([]Item, len(records))
	for i, rec := range records {
		text := rec.ID()
		if label != nil {
			if l := label(rec); l != "" {
				text = l
			}
		}
		items[i] = Item{ID: rec.ID(), Label: text, Record: rec}
	}
	return items
}
