package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load decodes and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	var c Catalog
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load catalog %s: unknown key %q", path, undecoded[0].String())
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return &c, nil
}

// Save writes c to path, replacing the file atomically.
func Save(path string, c *Catalog) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".catalog-*.toml")
	if err != nil {
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())
	if err := toml.NewEncoder(tmp).Encode(c); err != nil {
		tmp.Close()
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save catalog %s: %w", path, err)
	}
	return nil
}

// Update loads the catalog at path, applies fn and saves the result. Nothing
// is written when fn fails.
func Update(path string, fn func(*Catalog) error) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	return Save(path, c)
}

// EncodeRecord renders r the way it is written inside the catalog file.
func EncodeRecord(r Record) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(r); err != nil {
		return "", fmt.Errorf("encode record %s: %w", r.ID, err)
	}
	return buf.String(), nil
}
