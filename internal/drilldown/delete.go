package drilldown

import "github.com/atomicstack/drilldown/internal/logging/events"

// OnDelete asks for confirmation and deletes the record selected in the first
// list. On success the bookmark is reset to the feature root, which brings
// every listener, this controller included, back to level 0. A delete that
// fails synchronously leaves navigation where it is.
func (c *Controller) OnDelete() {
	if len(c.masters) == 0 || c.deleteFn == nil {
		return
	}
	selected := c.masters[0].View.SelectedRecords()
	if len(selected) == 0 {
		return
	}
	rec := selected[0]
	accept := func() {
		events.Drilldown.Delete(rec.ID())
		if err := c.deleteFn(rec); err != nil {
			c.report(err)
			return
		}
		if c.bookmarks == nil {
			return
		}
		root := c.bookmarks.Current().Root()
		if root.IsZero() {
			root = c.buildBookmark(nil)
		}
		c.report(c.bookmarks.Bookmark(root, nil))
	}
	if c.confirm == nil {
		accept()
		return
	}
	c.confirm.Confirm(DeleteConfirmTitle, c.describeRecord(rec), accept)
}
