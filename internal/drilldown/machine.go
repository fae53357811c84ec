package drilldown

import "github.com/atomicstack/drilldown/internal/logging/events"

// EnsureLevel returns level index, appending blank levels up to it first when
// needed. Levels are never removed.
func (c *Controller) EnsureLevel(index int) *Level {
	if index < 0 {
		index = 0
	}
	if index < len(c.levels) {
		return c.levels[index]
	}
	from := len(c.levels)
	for i := from; i <= index; i++ {
		c.levels = append(c.levels, newLevel(i, nil, iconClassFor(c.feature.IconClass, i)))
	}
	events.Drilldown.Pad(from, len(c.levels))
	c.syncSize()
	return c.levels[index]
}

// ShowChild shows the browse card of level index and slides to it. Any create
// wizard anywhere in the chain is discarded.
func (c *Controller) ShowChild(index int, animate bool) {
	target := c.EnsureLevel(index)
	target.Card = ModeBrowse
	for _, l := range c.levels {
		l.clearWizard()
	}
	events.Drilldown.ShowChild(index, animate)
	c.SlideTo(index, animate)
}

// ShowCreateWizard shows the create card of level index and slides to it.
// A nil content keeps whatever wizard the level already holds.
func (c *Controller) ShowCreateWizard(index int, animate bool, content any) {
	target := c.EnsureLevel(index)
	replaced := content != nil
	if replaced {
		target.Wizard = content
	}
	target.Card = ModeCreateWizard
	events.Drilldown.ShowCreateWizard(index, animate, replaced)
	c.SlideTo(index, animate)
}

// SlideTo lines level index up with the surface origin. Out of range indexes
// are ignored.
func (c *Controller) SlideTo(index int, animate bool) {
	if index < 0 || index >= len(c.levels) || c.surface == nil {
		return
	}
	for _, l := range c.levels[index+1:] {
		l.clearWizard()
	}
	target := c.levels[index]
	target.Mode = target.Card

	c.slideSeq++
	seq := c.slideSeq
	settle := func() { c.settle(seq, index) }

	left := c.surface.Origin() - index*c.surface.Width()
	if animate {
		c.surface.SuspendResize()
		if n, ok := c.surface.(AnimationNotifier); ok {
			n.AnimateToThen(left, SlideDuration, EaseInOut, settle)
		} else {
			c.surface.AnimateTo(left, SlideDuration, EaseInOut)
			if c.scheduler != nil {
				c.scheduler.After(SettleDelay, settle)
			} else {
				defer settle()
			}
		}
	} else {
		c.hideAllExceptAndFocus(index)
		c.surface.SetPosition(left)
	}

	from := c.currentIndex
	c.currentIndex = index
	events.Drilldown.Slide(from, index, animate, left)
	c.refreshBreadcrumb()
	c.fitBreadcrumb()
}

// settle finishes an animated slide. A settle belonging to a slide that has
// since been superseded only releases the resize hold.
func (c *Controller) settle(seq uint64, index int) {
	c.surface.ResumeResize()
	stale := seq != c.slideSeq
	events.Drilldown.Settle(index, stale)
	if stale {
		return
	}
	c.hideAllExceptAndFocus(index)
}

func (c *Controller) hideAllExceptAndFocus(index int) {
	for i, l := range c.levels {
		if i == index {
			continue
		}
		l.Mode = ModeBlank
		if i > index {
			l.resetDirty()
		}
	}
	target := c.levels[index]
	field := ""
	if f, ok := target.VisiblePanel().(DefaultFocuser); ok {
		field = f.DefaultFocus()
	}
	c.surface.Focus(index, field)
}

// SyncSize re-lays the surface after its owner changed size and snaps back to
// the current level.
func (c *Controller) SyncSize() {
	if c.surface == nil {
		return
	}
	c.surface.SyncSize(len(c.levels))
	c.SlideTo(c.currentIndex, false)
}

func (c *Controller) syncSize() {
	if c.surface == nil {
		return
	}
	c.surface.SyncSize(len(c.levels))
	c.surface.SetPosition(c.surface.Origin() - c.currentIndex*c.surface.Width())
}
