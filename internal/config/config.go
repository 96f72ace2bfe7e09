// Package config loads and validates the site configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxBasePathLength = 256
	MaxStyleLength    = 50 // chroma style names are short
	MaxNameLength     = 64
	MaxFormatLength   = 50
)

// Engine names.
const (
	EngineDialect    = "dialect"
	EngineCommonMark = "commonmark"
)

// Defaults applied to empty fields.
const (
	DefaultContentDir     = "content"
	DefaultStaticDir      = "static"
	DefaultOutputDir      = "public"
	DefaultBasePath       = "/"
	DefaultHighlightStyle = "monokai"
	DefaultTemplateName   = "default"
	DefaultStyle          = "default"
	DefaultDateFormat     = "iso"
	NoStyle               = "none"
)

// appName is the directory name under the user config dir.
const appName = "go-mdsite"

// Config holds all configuration for a site build.
type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Content   DirConfig       `yaml:"content"`
	Static    DirConfig       `yaml:"static"`
	Output    DirConfig       `yaml:"output"`
	Theme     DirConfig       `yaml:"theme"`
	Template  TemplateConfig  `yaml:"template"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
	Highlight HighlightConfig `yaml:"highlight"`
	Minify    bool            `yaml:"minify"`
}

// SiteConfig defines site-wide URL options.
type SiteConfig struct {
	BasePath   string `yaml:"basePath" validate:"omitempty,startswith=/"` // prefix for root-relative URLs
	DateFormat string `yaml:"dateFormat"`                                // e.g. "DD/MM/YYYY" or "long"
}

// DirConfig names a directory.
type DirConfig struct {
	Dir string `yaml:"dir"`
}

// TemplateConfig selects the page template and stylesheet.
type TemplateConfig struct {
	Path  string `yaml:"path"`  // template file, overrides Name
	Name  string `yaml:"name"`  // template name in the theme or built-ins
	Style string `yaml:"style"` // style name, CSS file path, or "none"
}

// MarkdownConfig selects the Markdown engine and inline dialect.
type MarkdownConfig struct {
	Engine string   `yaml:"engine" validate:"omitempty,oneof=dialect commonmark"`
	Italic []string `yaml:"italic" validate:"dive,oneof=_ *"` // italic delimiters, in order
}

// HighlightConfig defines code highlighting options.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator, reporting fields by YAML name.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks enumerations, formats, and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, describe(verrs))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := validateFieldLength("site.basePath", c.Site.BasePath, MaxBasePathLength); err != nil {
		return err
	}
	for name, value := range map[string]string{
		"content.dir":   c.Content.Dir,
		"static.dir":    c.Static.Dir,
		"output.dir":    c.Output.Dir,
		"theme.dir":     c.Theme.Dir,
		"template.path": c.Template.Path,
	} {
		if err := validateFieldLength(name, value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("site.dateFormat", c.Site.DateFormat, MaxFormatLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.name", c.Template.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("template.style", c.Template.Style, MaxPathLength); err != nil {
		return err
	}

	// The output directory is removed on every build.
	if containsDir(c.Output.Dir, c.Static.Dir) {
		return fmt.Errorf("%w: output.dir %q must not contain static.dir %q", ErrInvalidConfig, c.Output.Dir, c.Static.Dir)
	}
	if containsDir(c.Output.Dir, c.Content.Dir) {
		return fmt.Errorf("%w: output.dir %q must not contain content.dir %q", ErrInvalidConfig, c.Output.Dir, c.Content.Dir)
	}
	return nil
}

// containsDir reports whether other is parent itself or lies below it.
func containsDir(parent, other string) bool {
	if parent == "" || other == "" {
		return false
	}
	absParent, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	absOther, err := filepath.Abs(other)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absParent, absOther)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// describe formats validation errors as "field: rule" pairs.
func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s=%s, got %q", field, fe.Tag(), fe.Param(), fmt.Sprint(fe.Value())))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s", field, fe.Tag()))
		}
	}
	return strings.Join(msgs, "; ")
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills empty fields with default values.
func (c *Config) applyDefaults() {
	if c.Site.BasePath == "" {
		c.Site.BasePath = DefaultBasePath
	}
	if c.Site.DateFormat == "" {
		c.Site.DateFormat = DefaultDateFormat
	}
	if c.Content.Dir == "" {
		c.Content.Dir = DefaultContentDir
	}
	if c.Static.Dir == "" {
		c.Static.Dir = DefaultStaticDir
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Template.Name == "" {
		c.Template.Name = DefaultTemplateName
	}
	if c.Template.Style == "" {
		c.Template.Style = DefaultStyle
	}
	if c.Markdown.Engine == "" {
		c.Markdown.Engine = EngineDialect
	}
	if c.Markdown.Italic == nil {
		c.Markdown.Italic = []string{"_", "*"}
	}
	if c.Highlight.Style == "" {
		c.Highlight.Style = DefaultHighlightStyle
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml")
}

// SearchPaths lists where a config name is looked up, in order:
// the current directory, then the user config directory, each with
// .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
