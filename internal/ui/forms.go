package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/drilldown/internal/bookmark"
	"github.com/atomicstack/drilldown/internal/drilldown"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const createNameField = "name"

var (
	_ drilldown.DirtyResetter  = (*createForm)(nil)
	_ drilldown.DefaultFocuser = (*createForm)(nil)
)

// createForm is the create wizard card: a single name field for a new record
// of one level, filed under parent.
type createForm struct {
	input       textinput.Model
	depth       int
	kind        string
	parent      string
	parentLabel string
	err         string
	pending     bool
}

func newCreateForm(depth int, kind, parent, parentLabel string) *createForm {
	ti := newTextInput(kind + "-name")
	return &createForm{
		input:       ti,
		depth:       depth,
		kind:        kind,
		parent:      parent,
		parentLabel: parentLabel,
	}
}

func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Prompt = "› "
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

func (f *createForm) Value() string { return strings.TrimSpace(f.input.Value()) }
func (f *createForm) Error() string { return f.err }

func (f *createForm) Title() string {
	title := "New " + levelTitle(f.kind)
	if f.parentLabel != "" {
		title += " in " + f.parentLabel
	}
	return title
}

func (f *createForm) Help() string {
	return "Press Enter to create. Esc to cancel."
}

func (f *createForm) IsDirty() bool {
	return f.input.Value() != ""
}

func (f *createForm) Reset() {
	f.input.SetValue("")
	f.err = ""
	f.pending = false
}

func (f *createForm) DefaultFocus() string {
	return createNameField
}

func (f *createForm) focus(field string) {
	if field == createNameField || field == "" {
		f.input.Focus()
	}
}

// update applies a key to the form and reports whether it was submitted or
// cancelled. A submit with an empty name is refused.
func (f *createForm) update(msg tea.KeyMsg) (submit, cancel bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return false, true
	case tea.KeyEnter:
		if f.pending {
			return false, false
		}
		if f.Value() == "" {
			f.err = levelTitle(f.kind) + " name required"
			return false, false
		}
		f.err = ""
		f.pending = true
		return true, false
	}
	if msg.String() == "ctrl+u" {
		f.input.SetValue("")
		f.input.CursorStart()
		return false, false
	}
	f.input, _ = f.input.Update(msg)
	if f.err != "" && f.Value() != "" {
		f.err = ""
	}
	return false, false
}

func (f *createForm) lines() []styledLine {
	lines := []styledLine{
		{text: f.Title(), style: styles.PanelTitle},
		{},
		{text: f.input.View(), raw: true},
		{},
	}
	if f.err != "" {
		lines = append(lines, styledLine{text: f.err, style: styles.Error}, styledLine{})
	}
	return append(lines, styledLine{text: f.Help(), style: styles.Info})
}

// currentForm returns the create wizard on the current level, if one is
// showing.
func (m *Model) currentForm() *createForm {
	lvl, ok := m.ctrl.Level(m.ctrl.CurrentIndex())
	if !ok || lvl.Mode != drilldown.ModeCreateWizard {
		return nil
	}
	form, _ := lvl.Wizard.(*createForm)
	return form
}

// startCreateForm opens a wizard for a new record of the current list's kind,
// one level to the right of the list.
func (m *Model) startCreateForm() {
	if !m.canCreate.enabled {
		m.setInfo("Creating is not permitted")
		return
	}
	current := m.currentList()
	if current == nil {
		return
	}
	depth := current.Index
	parent, parentLabel := "", ""
	if depth > 0 {
		parent = m.lists[depth-1].Selected
		if selected := m.lists[depth-1].SelectedRecords(); len(selected) > 0 {
			parentLabel = describeRecord(selected[0])
		}
	}
	form := newCreateForm(depth, m.catalog.Levels[depth], parent, parentLabel)
	m.errMsg = ""
	m.forceClearInfo()
	m.ctrl.LoadCreateWizard(depth+1, true, form)
}

func (m *Model) handleCreateFormKey(form *createForm, msg tea.KeyMsg) tea.Cmd {
	submit, cancel := form.update(msg)
	switch {
	case cancel:
		_, err := m.ctrl.Back()
		m.reportError(err)
		return nil
	case submit:
		return m.createRecordCmd(form)
	}
	return nil
}

// gotoForm asks for a bookmark token and navigates there.
type gotoForm struct {
	input textinput.Model
	err   string
}

func (m *Model) startGoto() {
	ti := newTextInput(FeatureName + ":…")
	ti.SetValue(m.bookmarks.Current().Token())
	ti.CursorEnd()
	ti.Focus()
	m.gotoForm = &gotoForm{input: ti}
}

func (m *Model) handleGotoKey(msg tea.KeyMsg) tea.Cmd {
	form := m.gotoForm
	switch msg.Type {
	case tea.KeyEsc:
		m.gotoForm = nil
		return nil
	case tea.KeyEnter:
		b, err := parseLocation(form.input.Value())
		if err != nil {
			form.err = err.Error()
			return nil
		}
		m.gotoForm = nil
		m.errMsg = ""
		m.reportError(m.bookmarks.Navigate(b))
		return nil
	}
	form.input, _ = form.input.Update(msg)
	form.err = ""
	return nil
}

func parseLocation(token string) (bookmark.Bookmark, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return bookmark.FromSegments([]string{FeatureName}), nil
	}
	b, err := bookmark.Parse(token)
	if err != nil {
		return bookmark.Bookmark{}, err
	}
	if b.Segment(0) != FeatureName {
		return bookmark.Bookmark{}, fmt.Errorf("unknown location %q", b.Segment(0))
	}
	return b, nil
}

func (f *gotoForm) View() string {
	text := "Go to " + f.input.View()
	if f.err != "" {
		text += "  " + render(styles.Error, f.err)
	}
	return text
}
