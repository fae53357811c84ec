package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/drilldown/internal/app"
	"github.com/atomicstack/drilldown/internal/config"
	"github.com/atomicstack/drilldown/internal/logging"
	"github.com/atomicstack/drilldown/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records what the browser was started with: argv, the
// resolved flags, the drilldown settings and the controlling terminal.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     flags,
		"config":    cfg,
		"drilldown": drilldownDetails(cfg.App),
		"tty":       describeTerminal(standardDescriptors()),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

// drilldownDetails summarises the settings that decide where the browser
// opens and what it may do.
func drilldownDetails(cfg app.Config) map[string]interface{} {
	details := map[string]interface{}{
		"catalog":  cfg.CatalogPath,
		"bookmark": cfg.Bookmark,
		"animate":  cfg.Animate,
		"poll":     cfg.PollInterval.String(),
		"denied":   append([]string{}, cfg.Denied...),
	}
	if info, err := os.Stat(cfg.CatalogPath); err == nil {
		details["catalogModTime"] = info.ModTime()
		details["catalogSize"] = info.Size()
	} else {
		details["catalogError"] = err.Error()
	}
	return details
}

type terminalInfo struct {
	Active      *terminalSize       `json:"active,omitempty"`
	Descriptors []descriptorSummary `json:"descriptors"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptorSummary struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

type namedFile struct {
	name string
	fd   uintptr
}

func standardDescriptors() []namedFile {
	return []namedFile{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
}

// describeTerminal reports which descriptors are terminals. The first sized
// terminal becomes Active; the browser lays itself out against it.
func describeTerminal(files []namedFile) terminalInfo {
	info := terminalInfo{Descriptors: make([]descriptorSummary, 0, len(files))}
	for _, f := range files {
		entry := descriptorSummary{Name: f.name}
		fd := int(f.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Width, entry.Height = width, height
				if info.Active == nil {
					info.Active = &terminalSize{Source: f.name, Width: width, Height: height}
				}
			}
		}
		info.Descriptors = append(info.Descriptors, entry)
	}
	return info
}
