package bookmark

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenRoundTrip(t *testing.T) {
	b := FromSegments([]string{"repos", "maven-central", "org%2Fapache"})
	got := FromToken(b.Token())
	if !got.Equal(b) {
		t.Fatalf("expected %q, got %q", b.Token(), got.Token())
	}
	if diff := cmp.Diff(ToSegments(b), got.Segments()); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestFromTokenEmpty(t *testing.T) {
	if b := FromToken("  "); !b.IsZero() {
		t.Fatalf("expected zero bookmark, got %q", b.Token())
	}
	if segs := FromSegments(nil).Segments(); segs != nil {
		t.Fatalf("expected nil segments, got %#v", segs)
	}
}

func TestEncodeIDEscapesSeparator(t *testing.T) {
	cases := []struct{ id, want string }{
		{"plain", "plain"},
		{"a:b", "a%3Ab"},
		{"a/b c", "a%2Fb%20c"},
		{"100%", "100%25"},
		{"\u00fcn", "%C3%BCn"},
		{"", ""},
	}
	for _, tc := range cases {
		id, want := tc.id, tc.want
		got := EncodeID(id)
		if got != want {
			t.Fatalf("EncodeID(%q) = %q, want %q", id, got, want)
		}
		back, err := DecodeID(got)
		if err != nil {
			t.Fatalf("DecodeID(%q): %v", got, err)
		}
		if back != id {
			t.Fatalf("round trip of %q produced %q", id, back)
		}
	}
}

func TestDecodeIDMalformed(t *testing.T) {
	_, err := DecodeID("abc%zz")
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decodeErr.Segment != "abc%zz" {
		t.Fatalf("unexpected segment %q", decodeErr.Segment)
	}
}

func TestParseValidatesRecordSegments(t *testing.T) {
	if _, err := Parse("feature:ok:also%20ok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Parse("feature:bad%"); err == nil {
		t.Fatalf("expected error for malformed segment")
	}
	// segment 0 is the feature name and is never decoded
	if _, err := Parse("feat%ure:ok"); err != nil {
		t.Fatalf("unexpected error for feature segment: %v", err)
	}
	b, err := Parse("")
	if err != nil || !b.IsZero() {
		t.Fatalf("expected empty bookmark, got %q err=%v", b.Token(), err)
	}
}

func TestPrefixAndRoot(t *testing.T) {
	b := FromToken("f:a:b")
	if got := b.Root().Token(); got != "f" {
		t.Fatalf("expected root f, got %q", got)
	}
	if got := b.Prefix(2).Token(); got != "f:a" {
		t.Fatalf("expected f:a, got %q", got)
	}
	if got := b.Prefix(10).Token(); got != "f:a:b" {
		t.Fatalf("expected full bookmark, got %q", got)
	}
	if !b.Prefix(0).IsZero() {
		t.Fatalf("expected empty prefix")
	}
	if b.Segment(3) != "" || b.Segment(-1) != "" {
		t.Fatalf("expected empty out-of-range segments")
	}
}
