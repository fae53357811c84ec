package ui

import (
	"fmt"

	"github.com/atomicstack/drilldown/internal/backend"
	"github.com/atomicstack/drilldown/internal/bookmark"
	"github.com/atomicstack/drilldown/internal/catalog"
	"github.com/atomicstack/drilldown/internal/drilldown"
	"github.com/atomicstack/drilldown/internal/logging/events"
	"github.com/atomicstack/drilldown/internal/state"
	"github.com/atomicstack/drilldown/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// catalogChangedMsg reports the outcome of a catalog mutation run off the
// update loop.
type catalogChangedMsg struct {
	op      string
	record  catalog.Record
	catalog *catalog.Catalog
	err     error
}

// mutateCatalog applies fn to the catalog file, or to a copy of base when the
// browser has no file behind it, and returns the resulting catalog.
func mutateCatalog(path string, base *catalog.Catalog, fn func(*catalog.Catalog) error) (*catalog.Catalog, error) {
	if path == "" {
		c := base.Clone()
		if c == nil {
			c = &catalog.Catalog{}
		}
		if err := fn(c); err != nil {
			return nil, err
		}
		return c, nil
	}
	if err := catalog.Update(path, fn); err != nil {
		return nil, err
	}
	return catalog.Load(path)
}

func (m *Model) createRecordCmd(form *createForm) tea.Cmd {
	path, base := m.path, m.catalog
	depth, parent, name := form.depth, form.parent, form.Value()
	return m.bus.Execute(command.Request{
		ID:    "catalog:create",
		Label: name,
		Run: func() tea.Msg {
			var created catalog.Record
			c, err := mutateCatalog(path, base, func(c *catalog.Catalog) error {
				rec, err := c.Create(depth, parent, name)
				created = rec
				return err
			})
			if err != nil {
				err = fmt.Errorf("create %s: %w", name, err)
			}
			return catalogChangedMsg{op: "create", record: created, catalog: c, err: err}
		},
	})
}

func (m *Model) handleCatalogChangedMsg(msg tea.Msg) tea.Cmd {
	changed, ok := msg.(catalogChangedMsg)
	if !ok {
		return nil
	}
	if changed.err != nil {
		events.Catalog.Error(changed.op, changed.err)
		if form := m.currentForm(); form != nil {
			form.pending = false
		}
		m.reportError(changed.err)
		return nil
	}
	rec := changed.record
	events.Catalog.Create(rec.ID, rec.Kind, rec.Parent)
	m.applyCatalog(changed.catalog)

	segments := []string{FeatureName}
	for _, id := range lineage(m.catalog, rec.ID) {
		segments = append(segments, bookmark.EncodeID(id))
	}
	m.reportError(m.bookmarks.Navigate(bookmark.FromSegments(segments)))
	m.setInfo(fmt.Sprintf("Created %s %s", rec.Kind, rec.Name))
	return nil
}

// deleteRecord removes rec and everything filed under it. It runs on the
// update loop so a failure leaves the drilldown where it is.
func (m *Model) deleteRecord(rec drilldown.Record) error {
	item, ok := rec.(state.Item)
	if !ok {
		return fmt.Errorf("delete %s: unsupported record %T", rec.ID(), rec)
	}
	removed := 0
	c, err := mutateCatalog(m.path, m.catalog, func(c *catalog.Catalog) error {
		n, err := c.Delete(item.ID())
		removed = n
		return err
	})
	if err != nil {
		events.Catalog.Error("delete", err)
		return fmt.Errorf("delete %s: %w", item.Label(), err)
	}
	events.Catalog.Delete(item.ID(), removed)
	m.applyCatalog(c)
	m.setInfo(fmt.Sprintf("Deleted %s (%d records)", item.Label(), removed))
	return nil
}

// applyCatalog routes a catalog the browser produced itself through the same
// path as one read by the watcher.
func (m *Model) applyCatalog(c *catalog.Catalog) {
	if c == nil {
		return
	}
	m.handleDispatch(backend.Event{
		Kind: backend.KindCatalog,
		Data: backend.Snapshot{Path: m.path, Catalog: c},
	})
}
