// Package dateutil formats page dates from front matter values.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrInvalidDate indicates a date value that is neither "auto" nor a
// recognized calendar date.
var ErrInvalidDate = errors.New("invalid date")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when no format is configured.
const DefaultDateFormat = "YYYY-MM-DD"

// autoDate stands for the build time.
const autoDate = "auto"

// dateTokens maps format tokens to Go layout elements, longest first so
// "MMMM" wins over "MM".
var dateTokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named shortcuts for common formats. Lookup is case-insensitive.
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// inputLayouts are the accepted front matter date forms.
var inputLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Layout converts a format such as "DD/MM/YYYY", or a preset name, to a Go
// time layout. Text in brackets is kept literally: "[Week of] MMM D".
// Other characters are copied as they are.
func Layout(format string) (string, error) {
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 8)
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(literal)
			rest = after
			continue
		}
		n := writeToken(&b, rest)
		if n == 0 {
			b.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}
	return b.String(), nil
}

// writeToken writes the layout of the token at the start of s and returns
// its length, or 0 when s does not start with a token.
func writeToken(b *strings.Builder, s string) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.layout)
			return len(t.token)
		}
	}
	return 0
}

// Parse reads a front matter date. "auto" (any case) yields now.
func Parse(value string, now time.Time) (time.Time, error) {
	v := strings.TrimSpace(value)
	if strings.EqualFold(v, autoDate) {
		return now, nil
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (use YYYY-MM-DD or \"auto\")", ErrInvalidDate, value)
}

// Format parses value with Parse and renders it with format.
// An empty value yields an empty string.
func Format(value, format string, now time.Time) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	t, err := Parse(value, now)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
