// Package permission answers whether an action is allowed and lets controls
// follow the answer as it changes.
package permission

import (
	"strings"
	"sync"
)

// Checker holds the set of denied permissions. Patterns ending in "*" deny
// every permission sharing the prefix.
type Checker struct {
	mu         sync.Mutex
	denied     map[string]bool
	conditions map[string]*Condition
}

// NewChecker returns a checker denying the given patterns.
func NewChecker(denied []string) *Checker {
	c := &Checker{denied: map[string]bool{}, conditions: map[string]*Condition{}}
	for _, pattern := range denied {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			c.denied[pattern] = true
		}
	}
	return c
}

// IsPermitted reports whether perm is allowed.
func (c *Checker) IsPermitted(perm string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.permittedLocked(perm)
}

func (c *Checker) permittedLocked(perm string) bool {
	if c.denied[perm] {
		return false
	}
	for pattern := range c.denied {
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok && strings.HasPrefix(perm, prefix) {
			return false
		}
	}
	return true
}

// Deny adds pattern to the denied set and notifies affected conditions.
func (c *Checker) Deny(pattern string) {
	c.update(func() { c.denied[pattern] = true })
}

// Allow removes pattern from the denied set and notifies affected conditions.
func (c *Checker) Allow(pattern string) {
	c.update(func() { delete(c.denied, pattern) })
}

func (c *Checker) update(mutate func()) {
	c.mu.Lock()
	mutate()
	var changed []*Condition
	var states []bool
	for perm, cond := range c.conditions {
		permitted := c.permittedLocked(perm)
		if cond.set(permitted) {
			changed = append(changed, cond)
			states = append(states, permitted)
		}
	}
	c.mu.Unlock()
	for i, cond := range changed {
		cond.fire(states[i])
	}
}

// Condition returns the shared condition tracking perm.
func (c *Checker) Condition(perm string) *Condition {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cond, ok := c.conditions[perm]; ok {
		return cond
	}
	cond := &Condition{perm: perm, satisfied: c.permittedLocked(perm)}
	c.conditions[perm] = cond
	return cond
}

// Condition is a permission whose state can flip over time.
type Condition struct {
	perm string

	mu        sync.Mutex
	satisfied bool
	subs      []*subscription
}

type subscription struct {
	satisfied   func()
	unsatisfied func()
}

// Permission returns the permission string being tracked.
func (c *Condition) Permission() string {
	return c.perm
}

// Satisfied reports the current state.
func (c *Condition) Satisfied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.satisfied
}

// Subscribe calls satisfied or unsatisfied with the current state right away
// and again on every change. The returned func stops delivery.
func (c *Condition) Subscribe(satisfied, unsatisfied func()) func() {
	sub := &subscription{satisfied: satisfied, unsatisfied: unsatisfied}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	state := c.satisfied
	c.mu.Unlock()
	sub.call(state)
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s == sub {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

func (c *Condition) set(satisfied bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.satisfied == satisfied {
		return false
	}
	c.satisfied = satisfied
	return true
}

func (c *Condition) fire(satisfied bool) {
	c.mu.Lock()
	subs := append([]*subscription(nil), c.subs...)
	c.mu.Unlock()
	for _, sub := range subs {
		sub.call(satisfied)
	}
}

func (s *subscription) call(satisfied bool) {
	if satisfied {
		if s.satisfied != nil {
			s.satisfied()
		}
		return
	}
	if s.unsatisfied != nil {
		s.unsatisfied()
	}
}
