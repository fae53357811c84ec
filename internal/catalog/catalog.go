// Package catalog holds the hierarchical record set browsed by the drilldown:
// an ordered list of level kinds and the records filed under them.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrUnknownKind = errors.New("unknown record kind")
)

// Record is one row of the catalog.
type Record struct {
	ID         string            `toml:"id"`
	Name       string            `toml:"name"`
	Kind       string            `toml:"kind"`
	Parent     string            `toml:"parent,omitempty"`
	Icon       string            `toml:"icon,omitempty"`
	Attributes map[string]string `toml:"attributes,omitempty"`
}

// Catalog is the decoded catalog file.
type Catalog struct {
	Title      string   `toml:"title"`
	Icon       string   `toml:"icon,omitempty"`
	Permission string   `toml:"permission,omitempty"`
	Levels     []string `toml:"levels"`
	Records    []Record `toml:"records"`
}

// Validate checks that every record has a unique id, a known kind and, below
// the first level, a parent of the preceding kind.
func (c *Catalog) Validate() error {
	if len(c.Levels) == 0 {
		return errors.New("catalog declares no levels")
	}
	depth := make(map[string]int, len(c.Levels))
	for i, kind := range c.Levels {
		if strings.TrimSpace(kind) == "" {
			return fmt.Errorf("level %d has an empty kind", i)
		}
		if _, dup := depth[kind]; dup {
			return fmt.Errorf("level kind %q declared twice", kind)
		}
		depth[kind] = i
	}
	byID := make(map[string]Record, len(c.Records))
	for _, rec := range c.Records {
		if rec.ID == "" {
			return fmt.Errorf("record %q has no id", rec.Name)
		}
		if _, dup := byID[rec.ID]; dup {
			return fmt.Errorf("duplicate record id %q", rec.ID)
		}
		if _, ok := depth[rec.Kind]; !ok {
			return fmt.Errorf("record %q: %w %q", rec.ID, ErrUnknownKind, rec.Kind)
		}
		byID[rec.ID] = rec
	}
	for _, rec := range c.Records {
		d := depth[rec.Kind]
		if d == 0 {
			if rec.Parent != "" {
				return fmt.Errorf("record %q is top level but names parent %q", rec.ID, rec.Parent)
			}
			continue
		}
		parent, ok := byID[rec.Parent]
		if !ok {
			return fmt.Errorf("record %q: parent %q: %w", rec.ID, rec.Parent, ErrNotFound)
		}
		if depth[parent.Kind] != d-1 {
			return fmt.Errorf("record %q of kind %q cannot live under %q", rec.ID, rec.Kind, parent.Kind)
		}
	}
	return nil
}

// Depth returns the level index of kind, or -1.
func (c *Catalog) Depth(kind string) int {
	for i, k := range c.Levels {
		if k == kind {
			return i
		}
	}
	return -1
}

// Find returns the record with id.
func (c *Catalog) Find(id string) (Record, bool) {
	for _, rec := range c.Records {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// AtLevel returns the records of level depth, in file order.
func (c *Catalog) AtLevel(depth int) []Record {
	if depth < 0 || depth >= len(c.Levels) {
		return nil
	}
	kind := c.Levels[depth]
	var out []Record
	for _, rec := range c.Records {
		if rec.Kind == kind {
			out = append(out, rec)
		}
	}
	return out
}

// Create appends a record of the given level under parent and returns it.
func (c *Catalog) Create(depth int, parent, name string) (Record, error) {
	if depth < 0 || depth >= len(c.Levels) {
		return Record{}, fmt.Errorf("level %d: %w", depth, ErrUnknownKind)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, errors.New("record name required")
	}
	if depth == 0 {
		parent = ""
	} else {
		p, ok := c.Find(parent)
		if !ok {
			return Record{}, fmt.Errorf("parent %q: %w", parent, ErrNotFound)
		}
		if c.Depth(p.Kind) != depth-1 {
			return Record{}, fmt.Errorf("parent %q is a %s, not a %s", parent, p.Kind, c.Levels[depth-1])
		}
	}
	rec := Record{
		ID:     uuid.NewString(),
		Name:   name,
		Kind:   c.Levels[depth],
		Parent: parent,
	}
	c.Records = append(c.Records, rec)
	return rec, nil
}

// Delete removes the record with id and everything filed under it. It
// returns the number of records removed.
func (c *Catalog) Delete(id string) (int, error) {
	if _, ok := c.Find(id); !ok {
		return 0, fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}
	doomed := map[string]bool{id: true}
	for changed := true; changed; {
		changed = false
		for _, rec := range c.Records {
			if !doomed[rec.ID] && doomed[rec.Parent] {
				doomed[rec.ID] = true
				changed = true
			}
		}
	}
	kept := c.Records[:0]
	for _, rec := range c.Records {
		if !doomed[rec.ID] {
			kept = append(kept, rec)
		}
	}
	c.Records = kept
	return len(doomed), nil
}

// Clone returns a deep copy.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	dup := *c
	dup.Levels = append([]string(nil), c.Levels...)
	dup.Records = make([]Record, len(c.Records))
	for i, rec := range c.Records {
		if rec.Attributes != nil {
			attrs := make(map[string]string, len(rec.Attributes))
			for k, v := range rec.Attributes {
				attrs[k] = v
			}
			rec.Attributes = attrs
		}
		dup.Records[i] = rec
	}
	return &dup
}
