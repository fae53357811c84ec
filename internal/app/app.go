package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/drilldown/internal/backend"
	"github.com/atomicstack/drilldown/internal/catalog"
	"github.com/atomicstack/drilldown/internal/logging/events"
	"github.com/atomicstack/drilldown/internal/permission"
	"github.com/atomicstack/drilldown/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath  string
	Bookmark     string
	Width        int
	Height       int
	ShowFooter   bool
	Animate      bool
	PollInterval time.Duration
	Denied       []string
}

// Run loads the catalog and executes the Bubble Tea program until the user
// quits.
func Run(cfg Config) error {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	watcher := backend.NewWatcher(cfg.CatalogPath, cfg.PollInterval)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Catalog:     cat,
		Path:        cfg.CatalogPath,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		Animate:     cfg.Animate,
		Bookmark:    cfg.Bookmark,
		Watcher:     watcher,
		Permissions: permission.NewChecker(cfg.Denied),
	})
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		events.App.Stop(err.Error())
		return err
	}
	events.App.Stop("quit")
	return nil
}
