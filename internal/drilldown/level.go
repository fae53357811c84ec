package drilldown

import "github.com/atomicstack/drilldown/internal/bookmark"

// DisplayMode selects which card of a level is visible.
type DisplayMode int

const (
	ModeBrowse DisplayMode = iota
	ModeCreateWizard
	ModeBlank
)

func (m DisplayMode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeCreateWizard:
		return "create"
	case ModeBlank:
		return "blank"
	default:
		return "unknown"
	}
}

// ItemBookmark is the bookmark restored when a level's breadcrumb is clicked.
type ItemBookmark struct {
	Bookmark bookmark.Bookmark
	Owner    any
}

// Level is one slot in the drilldown chain.
type Level struct {
	Index int
	// Mode is what is visible right now; Card is what the level shows when
	// it becomes the active one again.
	Mode DisplayMode
	Card DisplayMode

	ItemName      string
	ItemIconClass string
	ItemBookmark  *ItemBookmark

	Browse any
	Wizard any
}

func newLevel(index int, browse any, iconClass string) *Level {
	card := ModeBrowse
	if browse == nil {
		card = ModeBlank
	}
	return &Level{
		Index:         index,
		Mode:          ModeBlank,
		Card:          card,
		ItemIconClass: iconClass,
		Browse:        browse,
	}
}

// VisiblePanel returns the content of the card currently shown.
func (l *Level) VisiblePanel() any {
	switch l.Mode {
	case ModeBrowse:
		return l.Browse
	case ModeCreateWizard:
		return l.Wizard
	default:
		return nil
	}
}

func (l *Level) clearWizard() {
	l.Wizard = nil
	if l.Card == ModeCreateWizard {
		if l.Browse != nil {
			l.Card = ModeBrowse
		} else {
			l.Card = ModeBlank
		}
	}
	if l.Mode == ModeCreateWizard {
		l.Mode = ModeBlank
	}
}

func (l *Level) resetDirty() {
	for _, panel := range []any{l.Browse, l.Wizard} {
		if r, ok := panel.(DirtyResetter); ok && r.IsDirty() {
			r.Reset()
		}
	}
}

func iconClassFor(base string, index int) string {
	if base == "" {
		return ""
	}
	if index == 0 {
		return base + "-x32"
	}
	return base + "-x16"
}
