package bookmark

import (
	"fmt"
	"net/url"
	"strings"
)

// Separator joins segments when a bookmark is rendered as a single token.
const Separator = ":"

// Bookmark is an ordered sequence of opaque segments. Segment 0 names the
// feature; segments 1..k hold percent-encoded record identifiers, one per
// visited level.
type Bookmark struct {
	segments []string
}

// DecodeError reports a segment whose percent-encoding is malformed.
type DecodeError struct {
	Segment string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode bookmark segment %q: %v", e.Segment, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FromSegments builds a bookmark from already-encoded segments.
func FromSegments(segments []string) Bookmark {
	if len(segments) == 0 {
		return Bookmark{}
	}
	dup := make([]string, len(segments))
	copy(dup, segments)
	return Bookmark{segments: dup}
}

// ToSegments returns a copy of the bookmark's encoded segments.
func ToSegments(b Bookmark) []string {
	return b.Segments()
}

// FromToken splits a rendered token back into segments. Empty tokens yield an
// empty bookmark.
func FromToken(token string) Bookmark {
	token = strings.TrimSpace(token)
	if token == "" {
		return Bookmark{}
	}
	return Bookmark{segments: strings.Split(token, Separator)}
}

// Parse splits token and validates the encoding of every record segment.
func Parse(token string) (Bookmark, error) {
	b := FromToken(token)
	for _, seg := range b.segments[min(1, len(b.segments)):] {
		if _, err := DecodeID(seg); err != nil {
			return Bookmark{}, err
		}
	}
	return b, nil
}

// Segments returns a copy of the encoded segments.
func (b Bookmark) Segments() []string {
	if len(b.segments) == 0 {
		return nil
	}
	dup := make([]string, len(b.segments))
	copy(dup, b.segments)
	return dup
}

// Len reports the number of segments.
func (b Bookmark) Len() int {
	return len(b.segments)
}

// Segment returns segment i or "" when out of range.
func (b Bookmark) Segment(i int) string {
	if i < 0 || i >= len(b.segments) {
		return ""
	}
	return b.segments[i]
}

// Root returns a bookmark holding only segment 0.
func (b Bookmark) Root() Bookmark {
	return b.Prefix(1)
}

// Prefix returns the first n segments (or all of them when n exceeds Len).
func (b Bookmark) Prefix(n int) Bookmark {
	if n <= 0 || len(b.segments) == 0 {
		return Bookmark{}
	}
	if n > len(b.segments) {
		n = len(b.segments)
	}
	return FromSegments(b.segments[:n])
}

// Token renders the bookmark as a single string.
func (b Bookmark) Token() string {
	return strings.Join(b.segments, Separator)
}

func (b Bookmark) String() string {
	return b.Token()
}

// IsZero reports whether the bookmark has no segments.
func (b Bookmark) IsZero() bool {
	return len(b.segments) == 0
}

// Equal compares segment-wise.
func (b Bookmark) Equal(other Bookmark) bool {
	if len(b.segments) != len(other.segments) {
		return false
	}
	for i := range b.segments {
		if b.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// EncodeID percent-encodes a record identifier for use as a segment. The
// separator is always escaped so tokens split unambiguously.
func EncodeID(id string) string {
	return strings.ReplaceAll(url.PathEscape(id), Separator, "%3A")
}

// DecodeID reverses EncodeID.
func DecodeID(segment string) (string, error) {
	id, err := url.PathUnescape(segment)
	if err != nil {
		return "", &DecodeError{Segment: segment, Err: err}
	}
	return id, nil
}
