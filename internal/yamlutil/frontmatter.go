package yamlutil

import (
	"fmt"
	"strings"
)

// frontMatterDelim opens and closes a front matter block.
const frontMatterDelim = "---"

// FrontMatter is the page metadata recognized at the top of a Markdown file.
// Unknown keys are ignored so pages can carry metadata for other tools.
type FrontMatter struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"` // YYYY-MM-DD, RFC 3339, or "auto"
	Draft bool   `yaml:"draft"`
}

// SplitFrontMatter separates a leading "---" fenced YAML block from the body.
// Line endings must already be normalized to "\n". ok is false, and body is
// the input unchanged, when the content does not start with a closed block.
func SplitFrontMatter(content string) (meta, body string, ok bool) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimRight(first, " \t") != frontMatterDelim {
		return "", content, false
	}

	// Closing delimiter: a line of exactly "---"
	pos := 0
	for pos <= len(rest) {
		end := strings.IndexByte(rest[pos:], '\n')
		line := rest[pos:]
		if end >= 0 {
			line = rest[pos : pos+end]
		}
		if strings.TrimRight(line, " \t") == frontMatterDelim {
			after := ""
			if end >= 0 {
				after = rest[pos+end+1:]
			}
			return rest[:pos], after, true
		}
		if end < 0 {
			break
		}
		pos += end + 1
	}
	return "", content, false
}

// ParseFrontMatter splits and decodes front matter. Content without front
// matter yields a zero FrontMatter and the content unchanged.
func ParseFrontMatter(content string) (FrontMatter, string, error) {
	var fm FrontMatter
	meta, body, ok := SplitFrontMatter(content)
	if !ok || strings.TrimSpace(meta) == "" {
		return fm, body, nil
	}
	if err := Unmarshal([]byte(meta), &fm); err != nil {
		return fm, content, fmt.Errorf("front matter: %w", err)
	}
	return fm, body, nil
}
