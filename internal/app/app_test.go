package app

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"
)

func TestRunReportsMissingCatalog(t *testing.T) {
	err := Run(Config{
		CatalogPath:  filepath.Join(t.TempDir(), "missing.toml"),
		PollInterval: time.Second,
	})
	if err == nil {
		t.Fatalf("expected an error for a missing catalog")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
