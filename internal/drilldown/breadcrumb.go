package drilldown

import "github.com/atomicstack/drilldown/internal/logging/events"

// Entry is one breadcrumb button.
type Entry struct {
	Level     int
	Label     string
	IconClass string
	Bookmark  *ItemBookmark
	// Root marks the feature button; Terminal marks the current level, which
	// is shown but not clickable.
	Root     bool
	Terminal bool
}

func (c *Controller) refreshBreadcrumb() {
	if c.breadcrumb == nil {
		return
	}
	if c.currentIndex == 0 {
		c.crumbs = nil
		c.breadcrumb.Hide()
		events.Drilldown.Breadcrumb(0, nil)
		return
	}

	root := c.levels[0]
	entries := []Entry{{
		Level:     0,
		Label:     c.feature.Title,
		IconClass: iconClassFor(c.feature.IconClass, 0),
		Bookmark:  root.ItemBookmark,
		Root:      true,
	}}
	labels := []string{c.feature.Title}
	for i := 1; i <= c.currentIndex && i < len(c.levels); i++ {
		l := c.levels[i]
		entries = append(entries, Entry{
			Level:     i,
			Label:     l.ItemName,
			IconClass: l.ItemIconClass,
			Bookmark:  l.ItemBookmark,
			Terminal:  i == c.currentIndex,
		})
		labels = append(labels, l.ItemName)
	}
	c.crumbs = entries
	c.breadcrumb.Show(append([]Entry(nil), entries...))
	events.Drilldown.Breadcrumb(c.currentIndex, labels)
}

// fitBreadcrumb shrinks the non-root buttons when the bar is wider than the
// surface.
func (c *Controller) fitBreadcrumb() {
	if c.breadcrumb == nil || c.surface == nil || c.currentIndex == 0 {
		return
	}
	available := c.surface.Width()
	total := c.breadcrumb.Width()
	if total+c.padding <= available {
		return
	}
	buttons := c.breadcrumb.ButtonWidths()
	fixed := total + c.padding - sum(buttons)
	c.breadcrumb.SetButtonWidths(ReduceWidths(buttons, available-fixed))
}

// OnBreadcrumbClick handles a click on breadcrumb entry i. The root entry
// returns to level 0; any other entry restores its level's bookmark and
// slides there. It reports whether the click did anything.
func (c *Controller) OnBreadcrumbClick(i int) (bool, error) {
	if i < 0 || i >= len(c.crumbs) {
		return false, nil
	}
	entry := c.crumbs[i]
	if entry.Terminal {
		return false, nil
	}
	err := c.restoreItemBookmark(entry.Level)
	c.SlideTo(entry.Level, true)
	return true, err
}

func (c *Controller) restoreItemBookmark(index int) error {
	if c.bookmarks == nil || index < 0 || index >= len(c.levels) {
		return nil
	}
	ib := c.levels[index].ItemBookmark
	if ib == nil {
		return nil
	}
	return c.bookmarks.Bookmark(ib.Bookmark, ib.Owner)
}

// Back steps one level towards the root. A create wizard is discarded and the
// previous level's bookmark restored; a browse level behaves like a click on
// the previous breadcrumb entry.
func (c *Controller) Back() (bool, error) {
	if c.currentIndex == 0 {
		return false, nil
	}
	current := c.levels[c.currentIndex]
	if current.Mode == ModeCreateWizard {
		target := c.currentIndex - 1
		err := c.restoreItemBookmark(target)
		c.ShowChild(target, true)
		return true, err
	}
	if len(c.crumbs) < 2 {
		return false, nil
	}
	return c.OnBreadcrumbClick(len(c.crumbs) - 2)
}
