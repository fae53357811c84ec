package drilldown

import (
	"time"

	"github.com/atomicstack/drilldown/internal/bookmark"
)

// Record is anything a master list can hold.
type Record interface {
	ID() string
}

// DataSource backs a master list.
type DataSource interface {
	IsLoading() bool
	RecordCount() int
	FindByID(id string) (Record, bool)
	// OnLoad registers a one-shot listener for the next load completion.
	// The returned func removes the listener if it has not fired yet.
	OnLoad(fn func()) (cancel func())
}

// ListView is the visible list for a master level.
type ListView interface {
	SelectedRecords() []Record
	// Select marks rec as selected without firing a selection event.
	Select(rec Record)
	// ContainsNode reports whether rec is currently rendered by this view.
	ContainsNode(rec Record) bool
}

// Master pairs a list view with the data source that feeds it.
type Master struct {
	View   ListView
	Source DataSource
}

// Easing maps linear animation progress in [0,1] to eased progress.
type Easing func(t float64) float64

// EaseInOut is a cubic ease-in-out curve.
func EaseInOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 0.5*f*f*f + 1
}

// Surface is the geometry the levels are laid out on. Levels sit side by side,
// each Width() wide; sliding moves the strip so one level lines up with Origin.
type Surface interface {
	Width() int
	Height() int
	Origin() int
	SetPosition(x int)
	AnimateTo(x int, d time.Duration, easing Easing)
	SuspendResize()
	ResumeResize()
	// SyncSize is called after new levels are appended.
	SyncSize(levels int)
	// Focus moves input focus into level index, onto field when non-empty.
	Focus(index int, field string)
}

// AnimationNotifier is implemented by surfaces that can report when an
// animation has finished. When present it replaces the fixed settle timer.
type AnimationNotifier interface {
	AnimateToThen(x int, d time.Duration, easing Easing, done func())
}

// Scheduler runs fn once after d, on the same goroutine that drives the
// controller.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// BreadcrumbBar renders breadcrumb entries and reports their measured widths.
type BreadcrumbBar interface {
	// Hide hides the bar and shows the feature's home surface instead.
	Hide()
	Show(entries []Entry)
	Width() int
	// ButtonWidths returns the widths of every button except the root one.
	ButtonWidths() []int
	SetButtonWidths(widths []int)
}

// Confirmer asks the user a yes/no question and calls onAccept on yes.
type Confirmer interface {
	Confirm(title, message string, onAccept func())
}

// Condition is a permission check that can flip between satisfied and
// unsatisfied over time.
type Condition interface {
	Subscribe(satisfied, unsatisfied func()) (cancel func())
}

// Enabler is a control whose availability follows a Condition.
type Enabler interface {
	Enable()
	Disable()
}

// Bookmarker is the external location the controller keeps in sync.
type Bookmarker interface {
	Current() bookmark.Bookmark
	Bookmark(b bookmark.Bookmark, owner any) error
}

// DirtyResetter is implemented by panels holding editable state.
type DirtyResetter interface {
	IsDirty() bool
	Reset()
}

// DefaultFocuser is implemented by panels that name a field to focus when
// they become active.
type DefaultFocuser interface {
	DefaultFocus() string
}

// DetailNotifier is implemented by detail panels that can carry an info or
// warning banner above their content.
type DetailNotifier interface {
	ShowInfo(message string)
	ClearInfo()
	ShowWarning(message string)
	ClearWarning()
}

// DetailTabs is implemented by the stock detail panel, which lays its content
// out in named tabs. Custom detail content usually does not implement it.
type DetailTabs interface {
	AddTab(name string, content any)
	RemoveTab(name string)
}
