package mdsite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdsite/internal/dateutil"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.BlockPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.HTMLConverter        = (*dialectConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ CodeRenderer                  = (*highlightRenderer)(nil)
)

// Converter turns Markdown pages into complete HTML pages.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	cfg           converterConfig
	assetLoader   AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	template      *pipeline.PageTemplate
	css           string // page style followed by highlight classes
}

// NewConverter creates a Converter. Without options it uses the dialect
// engine, the built-in page template, no stylesheet, and no highlighting.
// Returns an error if an option names a missing asset or an invalid value.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:     EngineDialect,
			timeout:    defaultTimeout,
			dateFormat: dateutil.DefaultDateFormat,
			now:        time.Now,
		},
		preprocessor: &pipeline.BlockPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.now == nil {
		c.cfg.now = time.Now
	}
	if _, err := dateutil.Layout(c.cfg.dateFormat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if c.assetLoader == nil {
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.assetLoader = loader
	}

	if err := c.initEngine(); err != nil {
		return nil, err
	}
	if err := c.initTemplate(); err != nil {
		return nil, err
	}
	if err := c.initStyle(); err != nil {
		return nil, err
	}
	return c, nil
}

// initEngine builds the Markdown engine and, with highlighting on, appends
// the chroma stylesheet to the page CSS.
func (c *Converter) initEngine() error {
	var highlighter *pipeline.Highlighter
	if c.cfg.highlightStyle != "" {
		h, err := pipeline.NewHighlighter(c.cfg.highlightStyle)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, c.cfg.highlightStyle)
		}
		css, err := h.StyleCSS()
		if err != nil {
			return err
		}
		highlighter = h
		c.css = css
	}

	switch c.cfg.engine {
	case EngineDialect, "":
		var popts []ParserOption
		if c.cfg.dialect != nil {
			popts = append(popts, WithParserDialect(*c.cfg.dialect))
		}
		if highlighter != nil {
			popts = append(popts, WithCodeRenderer(&highlightRenderer{h: highlighter}))
		}
		c.htmlConverter = &dialectConverter{parser: NewParser(popts...)}
	case EngineCommonMark:
		c.htmlConverter = pipeline.NewGoldmarkConverter(c.cfg.highlightStyle)
	default:
		return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidEngine, c.cfg.engine, EngineDialect, EngineCommonMark)
	}
	return nil
}

// initTemplate resolves the page template: inline source, then file, then
// a named template from the asset loader.
func (c *Converter) initTemplate() error {
	src := c.cfg.templateSrc
	switch {
	case src != "":
	case c.cfg.templatePath != "":
		data, err := os.ReadFile(c.cfg.templatePath) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
		}
		src = string(data)
	default:
		name := c.cfg.templateName
		if name == "" {
			name = DefaultTemplate
		}
		tpl, err := c.assetLoader.LoadTemplate(name)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", name, err)
		}
		src = tpl
	}

	tpl, err := pipeline.NewPageTemplate(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}
	c.template = tpl
	return nil
}

// initStyle resolves the style input (name, path, or CSS content) and puts
// it before the highlight CSS.
func (c *Converter) initStyle() error {
	input := c.cfg.styleInput
	var css string
	switch {
	case input == "" || input == NoStyle:
		return nil
	case fileutil.IsFilePath(input):
		data, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		css = string(data)
	case fileutil.IsCSS(input):
		css = input
	default:
		loaded, err := c.assetLoader.LoadStyle(input)
		if err != nil {
			return fmt.Errorf("loading style %q: %w", input, err)
		}
		css = loaded
	}

	if c.css != "" {
		css += "\n" + c.css
	}
	c.css = css
	return nil
}

// Convert runs the page pipeline:
//
//  1. normalize line endings and blank lines, split off front matter
//  2. convert the body with the configured engine
//  3. pick the title: front matter, then first H1, then the input name
//  4. format the front matter date and fill the page template
//  5. rewrite Markdown links and apply the base path
//  6. inject the stylesheet and optionally minify
//
// An empty document is valid. Recovers from internal panics to prevent
// crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	fm, body, err := yamlutil.ParseFrontMatter(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	bodyHTML, err := c.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, pipeline.ErrHTMLConversion) {
			return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}

	title := pageTitle(fm.Title, body, input.Name)
	date, err := dateutil.Format(fm.Date, c.cfg.dateFormat, c.cfg.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	html, err := c.template.Fill(ctx, pipeline.PageData{Title: title, Content: bodyHTML, Date: date})
	if err != nil {
		return nil, err
	}

	html, err = pipeline.RewriteLinks(html, pipeline.LinkRewrite{
		BasePath:      c.cfg.basePath,
		MarkdownLinks: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: rewriting links: %v", ErrTemplateRender, err)
	}

	html = c.cssInjector.InjectCSS(ctx, html, c.css)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if c.cfg.minify {
		html, err = pipeline.MinifyHTML(html)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
		}
	}

	return &Page{
		Title: title,
		Date:  date,
		Body:  bodyHTML,
		HTML:  []byte(html),
		Draft: fm.Draft,
	}, nil
}

// pageTitle returns the first non-empty of the front matter title, the
// first level-1 heading, and the file name without its extension.
func pageTitle(frontMatter, markdown, name string) string {
	if t := strings.TrimSpace(frontMatter); t != "" {
		return t
	}
	if t, err := ExtractTitle(markdown); err == nil {
		return t
	}
	base := filepath.Base(name)
	if name == "" || base == "." {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// dialectConverter renders with the built-in block and span parser.
type dialectConverter struct {
	parser *Parser
}

func (d *dialectConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	root, err := d.parser.DocumentToTree(content)
	if err != nil {
		return "", err
	}
	return root.ToHTML()
}

// highlightRenderer renders fenced code through chroma.
type highlightRenderer struct {
	h *pipeline.Highlighter
}

func (r *highlightRenderer) RenderCode(language, code string) (*ParentNode, error) {
	out, err := r.h.Highlight(language, code)
	if err != nil {
		return nil, err
	}
	return NewParent("div", []Node{NewLeaf("", out)}, Attr{Key: "class", Value: "highlight"}), nil
}
