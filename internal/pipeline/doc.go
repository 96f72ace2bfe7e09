// Package pipeline implements the page stages around Markdown parsing.
//
// Stages, in the order the converter runs them:
//   - Markdown preprocessing (line endings, blank-line normalization)
//   - CommonMark to HTML conversion via Goldmark, for the commonmark engine
//   - Code highlighting via chroma, for the dialect engine
//   - Page template filling ({{ Title }} and {{ Content }})
//   - Link rewriting (Markdown links, base path) via golang.org/x/net/html
//   - CSS injection and HTML minification
//
// The dialect parser itself lives in the root mdsite package; this package
// has no dependency on it.
package pipeline
