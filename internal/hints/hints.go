// Package hints provides actionable error hints for common build failures.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config location among the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/mdsite.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdsite") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForStaticDir returns a hint for a missing static directory.
func ForStaticDir(dir string) string {
	return format("create " + dir + "/ (it may be empty) or set --static")
}

// ForContentDir returns a hint for a missing content directory.
func ForContentDir(dir string) string {
	return format("put Markdown pages in " + dir + "/ or set --content")
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForTemplate returns a hint for page templates that fail to load or parse.
func ForTemplate() string {
	return format("a page template must contain {{ Content }} and may contain {{ Title }}")
}

// ForStyleNotFound lists the available style names.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForMarkdownBlock returns a hint for a page whose block failed to convert.
func ForMarkdownBlock() string {
	return formatHints([]string{
		"headings need text after the #",
		"code blocks must open and close with ```",
		"separate blocks with a blank line",
	})
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
