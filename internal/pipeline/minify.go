package pipeline

import (
	"fmt"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
)

const (
	mediaHTML = "text/html"
	mediaCSS  = "text/css"
)

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

// getMinifier returns the shared HTML minifier. minify.M is safe for
// concurrent use once configured.
func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.AddFunc(mediaHTML, html.Minify)
		minifier.AddFunc(mediaCSS, css.Minify)
	})
	return minifier
}

// MinifyHTML removes insignificant whitespace, comments, and optional tags
// from a rendered page, including inline <style> blocks.
func MinifyHTML(htmlContent string) (string, error) {
	out, err := getMinifier().String(mediaHTML, htmlContent)
	if err != nil {
		return "", fmt.Errorf("minifying HTML: %w", err)
	}
	return out, nil
}
