// Package drilldown drives a chain of master lists that slide left as the user
// selects records, keeping the selection, a breadcrumb trail and an external
// bookmark in agreement.
package drilldown

import (
	"time"

	"github.com/atomicstack/drilldown/internal/bookmark"
	"github.com/atomicstack/drilldown/internal/logging"
)

const (
	// SettleDelay is how long after an animated slide the off-screen levels
	// are blanked and focus is moved.
	SettleDelay = 300 * time.Millisecond
	// SlideDuration is the length of the slide animation.
	SlideDuration = 200 * time.Millisecond
	// DefaultBreadcrumbPadding is reserved beside the breadcrumb buttons when
	// deciding whether they fit. It is in the surface's width units; terminal
	// front ends measuring cells should pass a smaller BreadcrumbPadding.
	DefaultBreadcrumbPadding = 60
	// DeleteConfirmTitle titles the delete confirmation.
	DeleteConfirmTitle = "Confirm deletion?"
)

// Feature identifies the drilldown to the outside world.
type Feature struct {
	// Name is bookmark segment 0.
	Name       string
	Title      string
	IconClass  string
	Permission string
}

// Options configures a Controller. Masters, Surface and Bookmarks are
// required for navigation; everything else is optional.
type Options struct {
	Feature Feature
	Masters []Master
	// Detail is the browse content of the level after the last master.
	Detail any

	Surface    Surface
	Breadcrumb BreadcrumbBar
	Bookmarks  Bookmarker
	Scheduler  Scheduler
	Confirm    Confirmer

	Delete      func(Record) error
	Describe    func(Record) string
	IconClass   func(Record) string
	Permissions func(permission string) Condition
	// OnSelection is told about every selection the controller applies,
	// including ones restored from a bookmark.
	OnSelection func(level int, rec Record)
	OnError     func(error)

	BreadcrumbPadding int
}

// Controller owns the levels and the navigation state.
type Controller struct {
	feature Feature
	masters []Master
	detail  any
	levels  []*Level

	surface    Surface
	breadcrumb BreadcrumbBar
	bookmarks  Bookmarker
	scheduler  Scheduler
	confirm    Confirmer

	deleteFn    func(Record) error
	describe    func(Record) string
	iconClass   func(Record) string
	permissions func(string) Condition
	onSelection func(int, Record)
	onError     func(error)
	padding     int

	currentIndex int
	slideSeq     uint64
	crumbs       []Entry

	pending      func()
	pendingLevel int
}

// New builds a controller with one level per master plus the detail level.
// Level 0 starts visible.
func New(opts Options) *Controller {
	c := &Controller{
		feature:      opts.Feature,
		masters:      append([]Master(nil), opts.Masters...),
		detail:       opts.Detail,
		surface:      opts.Surface,
		breadcrumb:   opts.Breadcrumb,
		bookmarks:    opts.Bookmarks,
		scheduler:    opts.Scheduler,
		confirm:      opts.Confirm,
		deleteFn:     opts.Delete,
		describe:     opts.Describe,
		iconClass:    opts.IconClass,
		permissions:  opts.Permissions,
		onSelection:  opts.OnSelection,
		onError:      opts.OnError,
		padding:      opts.BreadcrumbPadding,
		pendingLevel: -1,
	}
	if c.padding <= 0 {
		c.padding = DefaultBreadcrumbPadding
	}
	if c.onError == nil {
		c.onError = logging.Error
	}
	for i, m := range c.masters {
		c.levels = append(c.levels, newLevel(i, m.View, iconClassFor(c.feature.IconClass, i)))
	}
	if opts.Detail != nil || len(c.levels) == 0 {
		index := len(c.levels)
		c.levels = append(c.levels, newLevel(index, opts.Detail, iconClassFor(c.feature.IconClass, index)))
	}
	c.levels[0].Mode = c.levels[0].Card
	return c
}

// Ready reports whether the controller has lists to drive.
func (c *Controller) Ready() bool {
	return len(c.masters) > 0 && c.surface != nil && c.bookmarks != nil
}

// Feature returns the feature descriptor.
func (c *Controller) Feature() Feature {
	return c.feature
}

// CurrentIndex is the level lined up with the surface origin.
func (c *Controller) CurrentIndex() int {
	return c.currentIndex
}

// Levels returns the levels in order. The slice is a copy; the levels are not.
func (c *Controller) Levels() []*Level {
	return append([]*Level(nil), c.levels...)
}

// Level returns level index if it exists.
func (c *Controller) Level(index int) (*Level, bool) {
	if index < 0 || index >= len(c.levels) {
		return nil, false
	}
	return c.levels[index], true
}

// Masters returns the configured master lists.
func (c *Controller) Masters() []Master {
	return append([]Master(nil), c.masters...)
}

// Breadcrumb returns the entries last shown in the breadcrumb bar.
func (c *Controller) Breadcrumb() []Entry {
	return append([]Entry(nil), c.crumbs...)
}

// Pending reports whether a bookmark navigation is waiting for a load, and
// for which level.
func (c *Controller) Pending() (int, bool) {
	return c.pendingLevel, c.pending != nil
}

// SetItemName sets the breadcrumb label of level index.
func (c *Controller) SetItemName(index int, name string) {
	c.EnsureLevel(index).ItemName = name
	c.refreshIfVisible(index)
}

// SetItemIconClass sets the breadcrumb icon of level index.
func (c *Controller) SetItemIconClass(index int, iconClass string) {
	c.EnsureLevel(index).ItemIconClass = iconClass
	c.refreshIfVisible(index)
}

// SetItemBookmark sets what clicking level index in the breadcrumb restores.
func (c *Controller) SetItemBookmark(index int, b bookmark.Bookmark, owner any) {
	c.EnsureLevel(index).ItemBookmark = &ItemBookmark{Bookmark: b, Owner: owner}
}

func (c *Controller) refreshIfVisible(index int) {
	if index <= c.currentIndex && c.currentIndex > 0 {
		c.refreshBreadcrumb()
		c.fitBreadcrumb()
	}
}

// BindCreate keeps control enabled while the feature's create permission holds.
func (c *Controller) BindCreate(control Enabler) (cancel func()) {
	return c.bindPermission(control, ":create")
}

// BindDelete keeps control enabled while the feature's delete permission holds.
func (c *Controller) BindDelete(control Enabler) (cancel func()) {
	return c.bindPermission(control, ":delete")
}

func (c *Controller) bindPermission(control Enabler, suffix string) func() {
	if control == nil || c.permissions == nil || c.feature.Permission == "" {
		return func() {}
	}
	cond := c.permissions(c.feature.Permission + suffix)
	if cond == nil {
		return func() {}
	}
	return cond.Subscribe(control.Enable, control.Disable)
}

func (c *Controller) describeRecord(rec Record) string {
	if rec == nil {
		return ""
	}
	if c.describe != nil {
		return c.describe(rec)
	}
	return rec.ID()
}

func (c *Controller) report(err error) {
	if err != nil {
		c.onError(err)
	}
}
