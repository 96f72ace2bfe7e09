package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

// ---------------------------------------------------------------------------
// loadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults without name", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("", &envConfig{OutputDir: "dist"})
		if err != nil {
			t.Fatalf("loadConfig() unexpected error: %v", err)
		}
		if cfg.Output.Dir != "dist" {
			t.Errorf("Output.Dir = %q, want env override %q", cfg.Output.Dir, "dist")
		}
		if cfg.Content.Dir != config.DefaultContentDir {
			t.Errorf("Content.Dir = %q, want default %q", cfg.Content.Dir, config.DefaultContentDir)
		}
	})

	t.Run("env config path", func(t *testing.T) {
		t.Parallel()

		root := setupTestDir(t, map[string]string{"site.yaml": "site:\n  basePath: /docs/\n"})
		cfg, err := loadConfig("", &envConfig{ConfigPath: filepath.Join(root, "site.yaml"), BasePath: "/env/"})
		if err != nil {
			t.Fatalf("loadConfig() unexpected error: %v", err)
		}
		if cfg.Site.BasePath != "/env/" {
			t.Errorf("Site.BasePath = %q, want env to override file", cfg.Site.BasePath)
		}
	})

	t.Run("missing file has hint", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"), &envConfig{})
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("loadConfig() error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error %q has no hint", err)
		}
	})
}

// ---------------------------------------------------------------------------
// mergePageFlags / mergeDirFlags
// ---------------------------------------------------------------------------

func TestMergePageFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags pageFlags
		setup func(cfg *config.Config)
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "empty flags keep config",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Template.Name != config.DefaultTemplateName || cfg.Template.Style != config.DefaultStyle {
					t.Errorf("template = %+v, want defaults", cfg.Template)
				}
			},
		},
		{
			name:  "template name",
			flags: pageFlags{template: "post"},
			setup: func(cfg *config.Config) { cfg.Template.Path = "old.html" },
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Template.Name != "post" || cfg.Template.Path != "" {
					t.Errorf("template = %+v, want name post and no path", cfg.Template)
				}
			},
		},
		{
			name:  "template file",
			flags: pageFlags{template: "layouts/page.html"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Template.Path != "layouts/page.html" {
					t.Errorf("Template.Path = %q, want file path", cfg.Template.Path)
				}
			},
		},
		{
			name:  "highlight enables",
			flags: pageFlags{highlight: "dracula"},
			check: func(t *testing.T, cfg *config.Config) {
				if !cfg.Highlight.Enabled || cfg.Highlight.Style != "dracula" {
					t.Errorf("highlight = %+v, want enabled dracula", cfg.Highlight)
				}
			},
		},
		{
			name:  "no-highlight disables",
			flags: pageFlags{noHighlight: true},
			setup: func(cfg *config.Config) { cfg.Highlight.Enabled = true },
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Highlight.Enabled {
					t.Error("highlight still enabled")
				}
			},
		},
		{
			name:  "engine lowercased",
			flags: pageFlags{engine: "CommonMark"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Markdown.Engine != "commonmark" {
					t.Errorf("Markdown.Engine = %q, want %q", cfg.Markdown.Engine, "commonmark")
				}
			},
		},
		{
			name:  "site values",
			flags: pageFlags{theme: "theme", style: "none", basePath: "/b/", dateFormat: "us", minify: true},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Theme.Dir != "theme" || cfg.Template.Style != "none" || !cfg.Minify {
					t.Errorf("theme/style/minify not merged: %+v", cfg)
				}
				if cfg.Site.BasePath != "/b/" || cfg.Site.DateFormat != "us" {
					t.Errorf("site = %+v, want base path /b/ and format us", cfg.Site)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			if tt.setup != nil {
				tt.setup(cfg)
			}
			mergePageFlags(&tt.flags, cfg)
			tt.check(t, cfg)
		})
	}
}

func TestMergeDirFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	mergeDirFlags(&dirFlags{output: "dist"}, cfg)

	if cfg.Output.Dir != "dist" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "dist")
	}
	if cfg.Content.Dir != config.DefaultContentDir || cfg.Static.Dir != config.DefaultStaticDir {
		t.Errorf("unset flags changed config: content=%q static=%q", cfg.Content.Dir, cfg.Static.Dir)
	}
}

func TestIsTemplateFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{in: "default", want: false},
		{in: "post", want: false},
		{in: "page.html", want: true},
		{in: "PAGE.HTML", want: true},
		{in: "layouts/page", want: true},
		{in: `layouts\page`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := isTemplateFile(tt.in); got != tt.want {
				t.Errorf("isTemplateFile(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// resolveTimeout
// ---------------------------------------------------------------------------

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		flag    string
		env     time.Duration
		want    time.Duration
		wantErr bool
	}{
		{name: "unset", want: 0},
		{name: "env only", env: 7 * time.Second, want: 7 * time.Second},
		{name: "flag wins", flag: "2s", env: 7 * time.Second, want: 2 * time.Second},
		{name: "malformed", flag: "soon", wantErr: true},
		{name: "zero", flag: "0s", wantErr: true},
		{name: "negative", flag: "-1m", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(tt.flag, &envConfig{Timeout: tt.env})
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeout) {
					t.Fatalf("resolveTimeout() error = %v, want ErrInvalidTimeout", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveTimeout() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// newConverter
// ---------------------------------------------------------------------------

func TestNewConverter(t *testing.T) {
	t.Parallel()

	t.Run("default config", func(t *testing.T) {
		t.Parallel()

		conv, err := newConverter(config.DefaultConfig(), 0, func() time.Time { return fixedNow })
		if err != nil {
			t.Fatalf("newConverter() unexpected error: %v", err)
		}
		page, err := conv.Convert(context.Background(), mdsite.Input{Markdown: "---\ndate: auto\n---\n# Hi"})
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if page.Date != "2024-03-15" {
			t.Errorf("Date = %q, want injected clock", page.Date)
		}
	})

	t.Run("unknown style has hint", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Template.Style = "nope"
		_, err := newConverter(cfg, 0, time.Now)
		if !errors.Is(err, mdsite.ErrStyleNotFound) {
			t.Fatalf("newConverter() error = %v, want ErrStyleNotFound", err)
		}
		if !strings.Contains(err.Error(), "minimal") {
			t.Errorf("error %q does not list built-in styles", err)
		}
	})

	t.Run("unknown template has hint", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Template.Name = "nope"
		_, err := newConverter(cfg, 0, time.Now)
		if !errors.Is(err, mdsite.ErrTemplateNotFound) {
			t.Fatalf("newConverter() error = %v, want ErrTemplateNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error %q has no hint", err)
		}
	})
}
