package bookmark

import (
	"errors"
	"reflect"

	"github.com/atomicstack/drilldown/internal/logging/events"
)

// NavigateFunc is invoked when the current bookmark changes on behalf of
// someone other than the subscriber.
type NavigateFunc func(Bookmark) error

type subscriber struct {
	owner any
	fn    NavigateFunc
}

// Store holds the current bookmark and its history. It plays the role of the
// browser location: components write to it when their selection changes and
// listen to it for changes made elsewhere.
type Store struct {
	current     Bookmark
	history     []Bookmark
	maxHistory  int
	subscribers []*subscriber
}

const defaultMaxHistory = 50

// NewStore creates a store positioned at initial.
func NewStore(initial Bookmark) *Store {
	return &Store{current: initial, maxHistory: defaultMaxHistory}
}

// Current returns the active bookmark.
func (s *Store) Current() Bookmark {
	return s.current
}

// History returns previously active bookmarks, oldest first.
func (s *Store) History() []Bookmark {
	dup := make([]Bookmark, len(s.history))
	copy(dup, s.history)
	return dup
}

// Subscribe registers fn for navigation events. Changes made through Bookmark
// with the same owner are not echoed back. The returned func unsubscribes.
func (s *Store) Subscribe(owner any, fn NavigateFunc) func() {
	if fn == nil {
		return func() {}
	}
	sub := &subscriber{owner: owner, fn: fn}
	s.subscribers = append(s.subscribers, sub)
	return func() {
		sub.fn = nil
	}
}

// Bookmark makes b current. Subscribers other than owner are notified; a nil
// owner notifies everyone.
func (s *Store) Bookmark(b Bookmark, owner any) error {
	if b.Equal(s.current) {
		return nil
	}
	s.push(b)
	events.Bookmark.Set(b.Token(), owner != nil)
	return s.notify(b, owner)
}

// Navigate applies an externally requested change (typed token, history
// navigation) and notifies every subscriber.
func (s *Store) Navigate(b Bookmark) error {
	s.push(b)
	events.Bookmark.Navigate(b.Token())
	return s.notify(b, nil)
}

// Back pops the history and navigates to the previous bookmark. It reports
// false when there is nothing to go back to.
func (s *Store) Back() (bool, error) {
	if len(s.history) == 0 {
		return false, nil
	}
	prev := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.current = prev
	events.Bookmark.Navigate(prev.Token())
	return true, s.notify(prev, nil)
}

func (s *Store) push(b Bookmark) {
	if !s.current.IsZero() {
		s.history = append(s.history, s.current)
		if s.maxHistory > 0 && len(s.history) > s.maxHistory {
			s.history = s.history[len(s.history)-s.maxHistory:]
		}
	}
	s.current = b
}

func (s *Store) notify(b Bookmark, owner any) error {
	var errs []error
	for _, sub := range s.subscribers {
		if sub.fn == nil {
			continue
		}
		if sameOwner(sub.owner, owner) {
			continue
		}
		if err := sub.fn(b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sameOwner compares owners by identity. Owners whose dynamic type is not
// comparable (maps, slices, funcs) never match.
func sameOwner(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
