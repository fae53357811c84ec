package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/drilldown/internal/catalog"
	"github.com/atomicstack/drilldown/internal/drilldown"
	"github.com/atomicstack/drilldown/internal/logging/events"
	"github.com/atomicstack/drilldown/internal/state"
	uistate "github.com/atomicstack/drilldown/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.confirm != nil {
		m.handleConfirmKey(keyMsg)
		return nil
	}
	if m.gotoForm != nil {
		return m.handleGotoKey(keyMsg)
	}
	if form := m.currentForm(); form != nil {
		return m.handleCreateFormKey(form, keyMsg)
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch key := keyMsg.String(); key {
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		m.handleEnterKey()
	case "up":
		m.moveCursor((*level).MoveCursorUp)
	case "down":
		m.moveCursor((*level).MoveCursorDown)
	case "pgup":
		m.moveCursor(func(l *level) bool { return l.MoveCursorPageUp(m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func(l *level) bool { return l.MoveCursorPageDown(m.maxVisibleItems()) })
	case "home":
		m.moveCursor((*level).MoveCursorHome)
	case "end":
		m.moveCursor((*level).MoveCursorEnd)
	case "ctrl+n":
		m.startCreateForm()
	case "ctrl+d":
		m.startDelete()
	case "ctrl+g":
		m.startGoto()
	case "ctrl+r":
		m.reportError(m.ctrl.Reselect())
	case "alt+left":
		m.historyBack()
	case "]":
		m.cycleDetailTab(1)
	case "[":
		m.cycleDetailTab(-1)
	default:
		if n, ok := strings.CutPrefix(key, "alt+"); ok && len(n) == 1 && n[0] >= '1' && n[0] <= '9' {
			m.clickBreadcrumb(int(n[0] - '1'))
		}
	}
	return nil
}

// handleEscapeKey clears the filter first, then steps back one level. Escape
// on the first list quits.
func (m *Model) handleEscapeKey() tea.Cmd {
	if current := m.currentList(); current != nil && current.Filter != "" {
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		events.Filter.Cleared(current.Index)
		m.syncViewport(current)
		return nil
	}
	m.errMsg = ""
	m.forceClearInfo()
	moved, err := m.ctrl.Back()
	m.reportError(err)
	if !moved && m.ctrl.CurrentIndex() == 0 {
		return tea.Quit
	}
	return nil
}

func (m *Model) handleEnterKey() {
	if m.loading() {
		return
	}
	current := m.currentList()
	if current == nil {
		return
	}
	item, ok := current.Current()
	if !ok || item.Record == nil {
		return
	}
	m.errMsg = ""
	m.reportError(m.ctrl.OnRecordSelected(current.Index, item.Record))
}

func (m *Model) moveCursor(move func(*level) bool) {
	current := m.currentList()
	if current == nil || len(current.Items) == 0 {
		return
	}
	if move(current) {
		events.UI.Cursor(current.Index, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) historyBack() {
	moved, err := m.bookmarks.Back()
	m.reportError(err)
	if !moved {
		m.setInfo("No earlier location")
	}
}

// currentList returns the master list lined up with the surface origin, or
// nil when the current level shows something else.
func (m *Model) currentList() *level {
	lvl, ok := m.ctrl.Level(m.ctrl.CurrentIndex())
	if !ok || lvl.Mode != drilldown.ModeBrowse {
		return nil
	}
	list, _ := lvl.Browse.(*level)
	return list
}

// onSelection keeps the lists below level in step with a selection the
// controller applied, whether typed by the user or restored from a bookmark.
func (m *Model) onSelection(index int, rec drilldown.Record) {
	if index < 0 || index >= len(m.lists) {
		return
	}
	m.refreshList(index)
	m.lists[index].Select(rec)
	m.syncViewport(m.lists[index])
	m.refreshLists(index + 1)
}

// refreshLists reloads lists from index down to the last one.
func (m *Model) refreshLists(from int) {
	for i := max(from, 0); i < len(m.lists); i++ {
		m.refreshList(i)
	}
	m.syncDetail()
}

func (m *Model) refreshList(i int) {
	list := m.lists[i]
	scope := ""
	if i > 0 {
		scope = m.lists[i-1].Selected
	}
	if list.Scope != scope {
		list.Clear()
		list.Scope = scope
	}
	var records []state.Item
	if i == 0 || scope != "" {
		records = m.stores[i].Children(scope)
	}
	list.UpdateItems(uistate.RecordItems(records, state.Item.Label))
	m.syncViewport(list)
}

// cycleDetailTab switches the detail panel's tab while it is the current
// level.
func (m *Model) cycleDetailTab(delta int) {
	lvl, ok := m.ctrl.Level(m.ctrl.CurrentIndex())
	if !ok || lvl.Mode != drilldown.ModeBrowse {
		return
	}
	if panel, ok := lvl.Browse.(*detailPanel); ok && panel.cycleTab(delta) {
		events.UI.DetailTab(panel.activeTab())
	}
}

func (m *Model) syncDetail() {
	if len(m.lists) == 0 {
		m.detail.set(nil)
		return
	}
	last := m.lists[len(m.lists)-1]
	for _, rec := range last.SelectedRecords() {
		if item, ok := rec.(state.Item); ok {
			m.detail.set(&item.Record)
			return
		}
	}
	m.detail.set(nil)
}

func describeRecord(rec drilldown.Record) string {
	if item, ok := rec.(state.Item); ok {
		return item.Label()
	}
	return rec.ID()
}

func recordIcon(rec drilldown.Record) string {
	if item, ok := rec.(state.Item); ok {
		return item.Record.Icon
	}
	return ""
}

// lineage returns the ids from the top level down to id.
func lineage(c *catalog.Catalog, id string) []string {
	var ids []string
	for id != "" && len(ids) <= len(c.Records) {
		rec, ok := c.Find(id)
		if !ok {
			break
		}
		ids = append([]string{rec.ID}, ids...)
		id = rec.Parent
	}
	return ids
}

func (m *Model) startDelete() {
	if !m.canDelete.enabled {
		m.setInfo("Deleting is not permitted")
		return
	}
	if len(m.lists) == 0 {
		return
	}
	if len(m.lists[0].SelectedRecords()) == 0 {
		m.setInfo(fmt.Sprintf("Select a %s to delete", strings.ToLower(m.lists[0].Title)))
		return
	}
	m.ctrl.OnDelete()
}
