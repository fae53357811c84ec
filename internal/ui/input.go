package ui

import (
	"unicode"

	"github.com/atomicstack/drilldown/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(l *level, before int) {
	if l == nil {
		return
	}
	if before != l.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput feeds typing into the filter of the current list. It
// reports whether the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	current := m.currentList()
	if current == nil {
		return false
	}
	moveCaret := func(move func() bool) bool {
		before := current.FilterCursorPos()
		if !move() {
			return false
		}
		m.noteFilterCursorChange(current, before)
		events.Filter.Cursor(current.Index, current.FilterCursor)
		return true
	}
	switch msg.String() {
	case "ctrl+u":
		if current.Filter == "" {
			return false
		}
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.Cleared(current.Index)
		m.syncViewport(current)
		return true
	case "ctrl+w":
		before := current.FilterCursorPos()
		if !current.DeleteFilterWordBackward() {
			return false
		}
		m.noteFilterCursorChange(current, before)
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.WordBackspace(current.Index, current.Filter)
		m.syncViewport(current)
		return true
	case "ctrl+a":
		return moveCaret(current.MoveFilterCursorStart)
	case "ctrl+e":
		return moveCaret(current.MoveFilterCursorEnd)
	case "alt+b":
		return moveCaret(current.MoveFilterCursorWordBackward)
	case "alt+f":
		return moveCaret(current.MoveFilterCursorWordForward)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.removeFilterRune(current)
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(current, string(msg.Runes))
	case tea.KeySpace:
		return m.appendToFilter(current, " ")
	case tea.KeyLeft:
		if msg.Alt {
			return false
		}
		return moveCaret(func() bool { return current.MoveFilterCursor(-1) })
	case tea.KeyRight:
		if msg.Alt {
			return false
		}
		return moveCaret(func() bool { return current.MoveFilterCursor(1) })
	}
	return false
}

func (m *Model) appendToFilter(current *level, text string) bool {
	if text == "" {
		return false
	}
	before := current.FilterCursorPos()
	if !current.InsertFilterText(text) {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Append(current.Index, current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) removeFilterRune(current *level) bool {
	before := current.FilterCursorPos()
	if !current.DeleteFilterRuneBackward() {
		return false
	}
	m.noteFilterCursorChange(current, before)
	m.forceClearInfo()
	m.errMsg = ""
	events.Filter.Backspace(current.Index, current.Filter)
	m.syncViewport(current)
	return true
}

func (m *Model) filterPrompt() string {
	current := m.currentList()
	if current == nil {
		return ""
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.FilterPrompt, "» ")
	text := current.Filter
	if text == "" {
		runes := []rune("(type to filter)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(text)
	pos := min(max(current.FilterCursorPos(), 0), len(runes))
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		return base.Inherit(cursorStyle).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

func render(style *lipgloss.Style, value string) string {
	if style == nil || value == "" {
		return value
	}
	return style.Render(value)
}
