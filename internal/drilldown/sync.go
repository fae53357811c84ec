package drilldown

import (
	"github.com/atomicstack/drilldown/internal/bookmark"
	"github.com/atomicstack/drilldown/internal/logging/events"
)

// OnRecordSelected is called when the user selects rec in master list
// levelIndex. The next level slides in and the bookmark follows.
func (c *Controller) OnRecordSelected(levelIndex int, rec Record) error {
	if rec == nil {
		return nil
	}
	events.UI.Select(levelIndex, rec.ID(), c.describeRecord(rec))
	return c.LoadView(levelIndex+1, true, rec)
}

// LoadView shows level index and publishes the matching bookmark. When rec is
// given it is the record selected in list index-1.
func (c *Controller) LoadView(index int, animate bool, rec Record) error {
	if !c.Ready() {
		if c.surface != nil {
			c.ShowChild(0, false)
		}
		return nil
	}
	if rec != nil && index > 0 {
		c.applySelection(index-1, rec)
	}
	b := c.buildBookmark(rec)
	for i := 0; i <= index; i++ {
		c.SetItemBookmark(i, b.Prefix(i+1), c)
	}
	c.ShowChild(index, animate)
	return c.bookmarks.Bookmark(b, c)
}

// LoadCreateWizard opens a create wizard on level index. Breadcrumb entries
// leading to it no longer restore a record selection.
func (c *Controller) LoadCreateWizard(index int, animate bool, content any) {
	for i := 1; i <= index && i < len(c.levels); i++ {
		c.levels[i].ItemBookmark = nil
	}
	c.ShowCreateWizard(index, animate, content)
}

// NavigateTo applies a bookmark changed by someone else. If the owning data
// source is still loading, resolution waits for its next load; a later call
// replaces any navigation still waiting. A malformed segment aborts with a
// *bookmark.DecodeError before anything changes.
func (c *Controller) NavigateTo(b bookmark.Bookmark) error {
	segments := b.Segments()
	if !c.Ready() || len(segments) < 2 {
		c.cancelPending()
		return c.LoadView(0, false, nil)
	}

	ids := make([]string, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		id, err := bookmark.DecodeID(seg)
		if err != nil {
			events.Bookmark.DecodeError(b.Token(), err)
			return err
		}
		ids = append(ids, id)
	}
	c.cancelPending()

	index := len(ids) - 1
	if index >= len(c.masters) {
		events.Bookmark.Abandon(index, ids[index], "too deep")
		return c.LoadView(0, false, nil)
	}

	src := c.masters[index].Source
	if src.IsLoading() {
		events.Bookmark.Defer(b.Token(), index)
		c.pendingLevel = index
		c.pending = src.OnLoad(func() {
			c.pending = nil
			c.pendingLevel = -1
			c.report(c.resolve(index, ids))
		})
		return nil
	}
	return c.resolve(index, ids)
}

// Reselect re-applies the current bookmark, typically after the data sources
// reloaded.
func (c *Controller) Reselect() error {
	if len(c.masters) == 0 || c.bookmarks == nil {
		return nil
	}
	return c.NavigateTo(c.bookmarks.Current())
}

func (c *Controller) cancelPending() {
	if c.pending == nil {
		return
	}
	events.Bookmark.Supersede(c.pendingLevel)
	cancel := c.pending
	c.pending = nil
	c.pendingLevel = -1
	cancel()
}

// resolve selects ids[index] in list index. ids[:index] name its ancestors.
func (c *Controller) resolve(index int, ids []string) error {
	id := ids[index]
	src := c.masters[index].Source
	if src.RecordCount() == 0 {
		events.Bookmark.Abandon(index, id, "empty")
		return nil
	}
	rec, ok := src.FindByID(id)
	if !ok {
		events.Bookmark.Abandon(index, id, "missing")
		return nil
	}
	c.restoreAncestors(ids[:index])
	return c.LoadView(index+1, false, rec)
}

func (c *Controller) restoreAncestors(ids []string) {
	for i, id := range ids {
		src := c.masters[i].Source
		if src.IsLoading() || src.RecordCount() == 0 {
			continue
		}
		rec, ok := src.FindByID(id)
		if !ok {
			continue
		}
		c.applySelection(i, rec)
	}
}

// applySelection selects rec in list index and labels level index+1 after it.
func (c *Controller) applySelection(index int, rec Record) {
	if index < len(c.masters) {
		if c.onSelection != nil {
			c.onSelection(index, rec)
		}
		c.masters[index].View.Select(rec)
	}
	next := c.EnsureLevel(index + 1)
	next.ItemName = c.describeRecord(rec)
	if c.iconClass != nil {
		if cls := c.iconClass(rec); cls != "" {
			next.ItemIconClass = cls
		}
	}
}

// buildBookmark keeps segment 0 and reconstructs the ancestor chain by
// walking the lists until one of them shows rec.
func (c *Controller) buildBookmark(rec Record) bookmark.Bookmark {
	current := c.bookmarks.Current()
	root := current.Segment(0)
	if root == "" {
		root = c.feature.Name
	}
	segments := []string{root}
	if rec == nil {
		return bookmark.FromSegments(segments)
	}
	for i := 0; i < len(c.masters); i++ {
		view := c.masters[i].View
		if view.ContainsNode(rec) {
			break
		}
		if seg := current.Segment(i + 1); seg != "" {
			segments = append(segments, seg)
		} else if selected := view.SelectedRecords(); len(selected) > 0 {
			segments = append(segments, bookmark.EncodeID(selected[0].ID()))
		}
	}
	segments = append(segments, bookmark.EncodeID(rec.ID()))
	return bookmark.FromSegments(segments)
}
