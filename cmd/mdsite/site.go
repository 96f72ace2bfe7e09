package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/hints"
)

// loadConfig loads the named config, or the defaults when name is empty,
// then applies MDSITE_* environment overrides.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)
		return cfg, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergePageFlags merges page flags into config. CLI values override config values.
func mergePageFlags(f *pageFlags, cfg *config.Config) {
	if f.theme != "" {
		cfg.Theme.Dir = f.theme
	}
	if f.template != "" {
		if isTemplateFile(f.template) {
			cfg.Template.Path = f.template
		} else {
			cfg.Template.Path = ""
			cfg.Template.Name = f.template
		}
	}
	if f.style != "" {
		cfg.Template.Style = f.style
	}
	if f.basePath != "" {
		cfg.Site.BasePath = f.basePath
	}
	if f.engine != "" {
		cfg.Markdown.Engine = strings.ToLower(f.engine)
	}
	if f.highlight != "" {
		cfg.Highlight.Enabled = true
		cfg.Highlight.Style = f.highlight
	}
	if f.noHighlight {
		cfg.Highlight.Enabled = false
	}
	if f.dateFormat != "" {
		cfg.Site.DateFormat = f.dateFormat
	}
	if f.minify {
		cfg.Minify = true
	}
}

// mergeDirFlags merges directory flags into config.
func mergeDirFlags(f *dirFlags, cfg *config.Config) {
	if f.content != "" {
		cfg.Content.Dir = f.content
	}
	if f.static != "" {
		cfg.Static.Dir = f.static
	}
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
}

// isTemplateFile reports whether a --template value names a file rather
// than a template in the theme.
func isTemplateFile(s string) bool {
	return strings.ContainsAny(s, `/\`) || strings.HasSuffix(strings.ToLower(s), ".html")
}

// resolveTimeout picks the per-page timeout: flag, then MDSITE_TIMEOUT.
// Zero means the converter default.
func resolveTimeout(flagValue string, env *envConfig) (time.Duration, error) {
	if flagValue == "" {
		return env.Timeout, nil
	}
	d, err := time.ParseDuration(flagValue)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, flagValue)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, flagValue)
	}
	return d, nil
}

// converterOptions translates the site config into converter options.
func converterOptions(cfg *config.Config, timeout time.Duration, now func() time.Time) []mdsite.Option {
	dialect := mdsite.DefaultDialect()
	dialect.Italic = cfg.Markdown.Italic

	opts := []mdsite.Option{
		mdsite.WithEngine(cfg.Markdown.Engine),
		mdsite.WithDialect(dialect),
		mdsite.WithBasePath(cfg.Site.BasePath),
		mdsite.WithDateFormat(cfg.Site.DateFormat),
		mdsite.WithNow(now),
		mdsite.WithMinify(cfg.Minify),
		mdsite.WithAssetPath(cfg.Theme.Dir),
		mdsite.WithStyle(cfg.Template.Style),
	}
	if cfg.Template.Path != "" {
		opts = append(opts, mdsite.WithTemplateFile(cfg.Template.Path))
	} else {
		opts = append(opts, mdsite.WithTemplateName(cfg.Template.Name))
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, mdsite.WithHighlight(cfg.Highlight.Style))
	}
	if timeout > 0 {
		opts = append(opts, mdsite.WithTimeout(timeout))
	}
	return opts
}

// newConverter builds a converter from the config, adding a hint to
// asset errors.
func newConverter(cfg *config.Config, timeout time.Duration, now func() time.Time) (*mdsite.Converter, error) {
	conv, err := mdsite.NewConverter(converterOptions(cfg, timeout, now)...)
	switch {
	case err == nil:
		return conv, nil
	case errors.Is(err, mdsite.ErrStyleNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(mdsite.BuiltinStyles()))
	case errors.Is(err, mdsite.ErrInvalidTemplate), errors.Is(err, mdsite.ErrTemplateNotFound):
		return nil, fmt.Errorf("%w%s", err, hints.ForTemplate())
	default:
		return nil, err
	}
}
