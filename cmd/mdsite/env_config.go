package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-mdsite/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Priority: CLI flags > env vars > config file > defaults.
type envConfig struct {
	ConfigPath string        // MDSITE_CONFIG: config name or path
	ContentDir string        // MDSITE_CONTENT_DIR
	StaticDir  string        // MDSITE_STATIC_DIR
	OutputDir  string        // MDSITE_OUTPUT_DIR
	ThemeDir   string        // MDSITE_THEME_DIR
	BasePath   string        // MDSITE_BASE_PATH
	Style      string        // MDSITE_STYLE: style name, CSS path, or "none"
	Timeout    time.Duration // MDSITE_TIMEOUT: per-page timeout
	Workers    int           // MDSITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MDSITE_* environment variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_STATIC_DIR":  true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_THEME_DIR":   true,
	"MDSITE_BASE_PATH":   true,
	"MDSITE_STYLE":       true,
	"MDSITE_TIMEOUT":     true,
	"MDSITE_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDSITE_CONFIG"),
		ContentDir: os.Getenv("MDSITE_CONTENT_DIR"),
		StaticDir:  os.Getenv("MDSITE_STATIC_DIR"),
		OutputDir:  os.Getenv("MDSITE_OUTPUT_DIR"),
		ThemeDir:   os.Getenv("MDSITE_THEME_DIR"),
		BasePath:   os.Getenv("MDSITE_BASE_PATH"),
		Style:      os.Getenv("MDSITE_STYLE"),
	}

	if timeout := os.Getenv("MDSITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if workers := os.Getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars warns about MDSITE_* variables that are not recognized,
// usually typos.
func warnUnknownEnvVars(w io.Writer) {
	var unknown []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig overrides config values with the environment variables
// that are set. CLI flags are merged afterwards.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Content.Dir, env.ContentDir)
	set(&cfg.Static.Dir, env.StaticDir)
	set(&cfg.Output.Dir, env.OutputDir)
	set(&cfg.Theme.Dir, env.ThemeDir)
	set(&cfg.Site.BasePath, env.BasePath)
	set(&cfg.Template.Style, env.Style)
}
