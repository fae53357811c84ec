package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter replaces the filter query and places the filter caret at cursor.
// While a query is active the list cursor jumps to the best match; clearing
// the query puts it back where it was before filtering started.
func (l *Level) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(l.Filter)
	l.Filter = query
	l.FilterCursor = min(max(cursor, 0), len([]rune(query)))
	switch {
	case trimmed != "" && prevTrimmed == "":
		l.LastCursor = l.Cursor
		l.Cursor = 0
	case trimmed != "":
		l.Cursor = 0
	}
	l.applyFilter()
	if trimmed != "" {
		if idx := BestMatchIndex(l.Items, trimmed); idx >= 0 {
			l.Cursor = idx
		}
		return
	}
	if prevTrimmed != "" {
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter caret.
func (l *Level) FilterCursorPos() int {
	return min(max(l.FilterCursor, 0), len([]rune(l.Filter)))
}

// InsertFilterText inserts text at the filter caret.
func (l *Level) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes the rune before the filter caret.
func (l *Level) DeleteFilterRuneBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	if pos == 0 {
		return false
	}
	l.SetFilter(string(append(runes[:pos-1:pos-1], runes[pos:]...)), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word before the filter caret.
func (l *Level) DeleteFilterWordBackward() bool {
	runes := []rune(l.Filter)
	pos := l.FilterCursorPos()
	start := wordStart(runes, pos)
	if start == pos {
		return false
	}
	l.SetFilter(string(append(runes[:start:start], runes[pos:]...)), start)
	return true
}

// MoveFilterCursor moves the filter caret by delta runes.
func (l *Level) MoveFilterCursor(delta int) bool {
	return l.placeFilterCursor(l.FilterCursorPos() + delta)
}

// MoveFilterCursorStart moves the filter caret to the start.
func (l *Level) MoveFilterCursorStart() bool {
	return l.placeFilterCursor(0)
}

// MoveFilterCursorEnd moves the filter caret to the end.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.placeFilterCursor(len([]rune(l.Filter)))
}

// MoveFilterCursorWordBackward moves the filter caret to the previous word start.
func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.placeFilterCursor(wordStart([]rune(l.Filter), l.FilterCursorPos()))
}

// MoveFilterCursorWordForward moves the filter caret past the next word.
func (l *Level) MoveFilterCursorWordForward() bool {
	runes := []rune(l.Filter)
	i := l.FilterCursorPos()
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return l.placeFilterCursor(i)
}

func (l *Level) placeFilterCursor(pos int) bool {
	pos = min(max(pos, 0), len([]rune(l.Filter)))
	if pos == l.FilterCursorPos() {
		return false
	}
	l.FilterCursor = pos
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// FilterItems returns the items matching query. Fuzzy matches on the label
// win; when there are none a plain substring match on label or id is used.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(items))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) || strings.Contains(strings.ToLower(item.ID), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the row the cursor should land on for query: an exact
// label or id, then a label prefix, then the closest fuzzy match.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels(items))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}
