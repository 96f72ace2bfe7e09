package mdsite

import (
	"strings"
	"time"
)

// Markdown engines.
const (
	// EngineDialect is the built-in block and span parser (default).
	EngineDialect = "dialect"

	// EngineCommonMark uses goldmark with GFM extensions.
	EngineCommonMark = "commonmark"
)

// NoStyle disables stylesheet injection when passed to WithStyle.
const NoStyle = "none"

// Input is one page to convert.
type Input struct {
	Markdown string // page source, may start with YAML front matter
	Name     string // source file name (optional), last resort for the title
}

// Page is a converted page.
type Page struct {
	Title string // front matter title, first H1, or the input name
	Date  string // front matter date in the configured format, or ""
	Body  string // converted body HTML, before templating
	HTML  []byte // complete page
	Draft bool   // front matter "draft: true"
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the options applied by NewConverter.
type converterConfig struct {
	engine         string
	dialect        *Dialect
	highlightStyle string
	basePath       string
	minify         bool
	timeout        time.Duration
	dateFormat     string
	now            func() time.Time

	templateSrc  string
	templatePath string
	templateName string
	assetPath    string
	styleInput   string
}

// defaultTimeout bounds one Convert call.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-page conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdsite: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithDateFormat sets how front matter dates render in {{ Date }}:
// tokens such as "DD/MM/YYYY", or a preset (iso, european, us, long).
func WithDateFormat(format string) Option {
	return func(c *Converter) {
		c.cfg.dateFormat = format
	}
}

// WithNow sets the clock used for "date: auto".
func WithNow(now func() time.Time) Option {
	return func(c *Converter) {
		c.cfg.now = now
	}
}

// WithEngine selects EngineDialect or EngineCommonMark.
func WithEngine(engine string) Option {
	return func(c *Converter) {
		c.cfg.engine = strings.ToLower(engine)
	}
}

// WithDialect sets the inline delimiters of the dialect engine.
func WithDialect(d Dialect) Option {
	return func(c *Converter) {
		c.cfg.dialect = &d
	}
}

// WithHighlight enables chroma syntax highlighting of fenced code with the
// named style, and injects the matching stylesheet into each page.
func WithHighlight(style string) Option {
	return func(c *Converter) {
		c.cfg.highlightStyle = style
	}
}

// WithBasePath prefixes root-relative href and src URLs, for sites served
// below the domain root (e.g. "/blog/").
func WithBasePath(basePath string) Option {
	return func(c *Converter) {
		c.cfg.basePath = basePath
	}
}

// WithMinify enables HTML and CSS minification of each page.
func WithMinify(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.minify = enabled
	}
}

// WithTemplate uses src as the page template. It takes precedence over
// WithTemplateFile and WithTemplateName.
func WithTemplate(src string) Option {
	return func(c *Converter) {
		c.cfg.templateSrc = src
	}
}

// WithTemplateFile reads the page template from path.
func WithTemplateFile(path string) Option {
	return func(c *Converter) {
		c.cfg.templatePath = path
	}
}

// WithTemplateName loads a named template through the asset loader.
func WithTemplateName(name string) Option {
	return func(c *Converter) {
		c.cfg.templateName = name
	}
}

// WithAssetPath sets a theme directory whose styles/ and templates/ take
// precedence over the built-in assets.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithAssetLoader sets a custom asset loader. It overrides WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.assetLoader = loader
	}
}

// WithStyle sets the page stylesheet: a style name resolved by the asset
// loader, a path to a CSS file, inline CSS, or NoStyle.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}
