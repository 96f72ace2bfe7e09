package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Page template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
	DatePlaceholder    = "{{ Date }}"
)

// ErrMissingPlaceholder indicates a page template cannot receive content.
var ErrMissingPlaceholder = errors.New("template missing placeholder")

// PageTemplate substitutes a page title and body into an HTML template.
type PageTemplate struct {
	src string
}

// PageData is substituted into a PageTemplate.
type PageData struct {
	Title   string
	Content string
	Date    string // formatted, may be empty
}

// NewPageTemplate validates and wraps template source.
// The content placeholder is required; title and date are optional.
func NewPageTemplate(src string) (*PageTemplate, error) {
	if !strings.Contains(src, ContentPlaceholder) {
		return nil, fmt.Errorf("%w: %s", ErrMissingPlaceholder, ContentPlaceholder)
	}
	return &PageTemplate{src: src}, nil
}

// Fill replaces every placeholder occurrence in a single pass, so
// placeholder text inside title or content is never expanded again.
func (t *PageTemplate) Fill(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r := strings.NewReplacer(
		TitlePlaceholder, data.Title,
		ContentPlaceholder, data.Content,
		DatePlaceholder, data.Date,
	)
	return r.Replace(t.src), nil
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"

	if idx := indexTag(htmlContent, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := indexTag(htmlContent, "<body"); idx != -1 {
		// Find the closing > of <body...>
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// indexTag returns the byte offset in s of the ASCII tag, ignoring ASCII
// case, or -1. Offsets stay valid for s whatever runes it holds.
func indexTag(s, tag string) int {
	for i := 0; i+len(tag) <= len(s); i++ {
		if asciiEqualFold(s[i:i+len(tag)], tag) {
			return i
		}
	}
	return -1
}

func asciiEqualFold(a, b string) bool {
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// sanitizeCSS escapes sequences that could close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
