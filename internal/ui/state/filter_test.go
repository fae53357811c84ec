package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" || level.FilterCursor != len("two") {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "two" || level.Cursor != 0 {
		t.Fatalf("expected only 'two' under the cursor, got %#v cursor=%d", level.Items, level.Cursor)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	level.FilterCursor = 1
	if !level.InsertFilterText("z") || level.Filter != "azb" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}
	if !level.DeleteFilterRuneBackward() || level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() || level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() || level.DeleteFilterWordBackward() {
		t.Fatal("expected deletes at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if !level.MoveFilterCursorWordBackward() || level.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorWordForward() || level.FilterCursor != len("one two") {
		t.Fatalf("expected cursor restored to end, got %d", level.FilterCursor)
	}
	if level.MoveFilterCursor(1) {
		t.Fatal("expected no movement past the end")
	}
	if !level.MoveFilterCursor(-1) || level.FilterCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorStart() || level.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursorEnd() {
		t.Fatal("expected move back to end")
	}
}

func TestFilterItems(t *testing.T) {
	items := []Item{{ID: "1", Label: "Alpha"}, {ID: "2", Label: "Beta"}, {ID: "org.slf4j", Label: "logging"}}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"1", "2", "org.slf4j"}},
		{query: "alp", want: []string{"1"}},
		{query: "ta", want: []string{"2"}},
		{query: "slf4j", want: []string{"org.slf4j"}},
		{query: "nomatch", want: nil},
	}
	for _, tt := range tests {
		var got []string
		for _, item := range FilterItems(items, tt.query) {
			got = append(got, item.ID)
		}
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("query %q mismatch (-want +got):\n%s", tt.query, diff)
		}
	}

	clone := CloneItems(items)
	clone[0].Label = "changed"
	if items[0].Label != "Alpha" {
		t.Fatal("expected original slice to remain unchanged")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []Item{
		{ID: "one", Label: "First"},
		{ID: "two", Label: "Second"},
		{ID: "three", Label: "Third"},
	}

	tests := []struct {
		query string
		want  int
	}{
		{query: "Second", want: 1},
		{query: "two", want: 1},
		{query: "th", want: 2},
		{query: "zzz", want: 0},
	}
	for _, tt := range tests {
		if got := BestMatchIndex(items, tt.query); got != tt.want {
			t.Fatalf("BestMatchIndex(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}
