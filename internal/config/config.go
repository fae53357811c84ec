package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/drilldown/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envCatalog   = "DRILLDOWN_CATALOG"
	envBookmark  = "DRILLDOWN_BOOKMARK"
	envWidth     = "DRILLDOWN_WIDTH"
	envHeight    = "DRILLDOWN_HEIGHT"
	envFooter    = "DRILLDOWN_FOOTER"
	envNoAnimate = "DRILLDOWN_NO_ANIMATE"
	envPoll      = "DRILLDOWN_POLL"
	envDeny      = "DRILLDOWN_DENY"
	envTrace     = "DRILLDOWN_TRACE"
	envLogFile   = "DRILLDOWN_LOG_FILE"
)

const (
	defaultCatalog = "catalog.toml"
	defaultPoll    = 1500 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("drilldown", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, defaultCatalog), "path to the catalog file")
	bookmark := fs.String("bookmark", envOrDefault(env, envBookmark, ""), "location to open, e.g. catalog:maven-central")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "enable footer hint row (disabled by default)")
	noAnimate := fs.Bool("no-animate", envOrBool(env, envNoAnimate, false), "jump between levels instead of sliding")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, defaultPoll), "how often to check the catalog file for changes")
	deny := fs.String("deny", envOrDefault(env, envDeny, ""), "comma separated permissions to deny, e.g. nexus:repositories:delete")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:  *catalogPath,
			Bookmark:     *bookmark,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Animate:      !*noAnimate,
			PollInterval: *poll,
			Denied:       splitList(*deny),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"catalog":   *catalogPath,
			"bookmark":  *bookmark,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"noAnimate": strconv.FormatBool(*noAnimate),
			"poll":      poll.String(),
			"deny":      *deny,
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	var errs []error
	if strings.TrimSpace(cfg.App.CatalogPath) == "" {
		errs = append(errs, errors.New("catalog path is required"))
	}
	if cfg.App.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll interval must be positive (got %s)", cfg.App.PollInterval))
	}
	return errors.Join(errs...)
}
