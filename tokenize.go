package mdsite

import (
	"regexp"
	"strings"
)

// Precompiled inline patterns.
var (
	// ![alt](url): alt has no brackets, url has no parentheses.
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)

	// [text](url). Matches preceded by '!' are images and are skipped by
	// findLinks, since RE2 has no lookbehind.
	linkPattern = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Dialect holds the inline delimiters recognized by the span tokenizer.
type Dialect struct {
	Bold   string   // default "**"
	Italic []string // applied in order; default "_" then "*"
	Code   string   // default "`"
}

// DefaultDialect returns the dialect used when none is configured.
func DefaultDialect() Dialect {
	return Dialect{
		Bold:   "**",
		Italic: []string{"_", "*"},
		Code:   "`",
	}
}

// Tokenize splits inline Markdown into typed spans using the default dialect.
func Tokenize(text string) []TextSpan {
	return defaultParser.Tokenize(text)
}

// tokenize runs the fixed pipeline: images, then links, then bold, italic,
// and code delimiters. The order matters: image syntax contains link syntax,
// and the bold marker contains the asterisk italic marker.
func (d Dialect) tokenize(text string) []TextSpan {
	if text == "" {
		return nil
	}
	spans := []TextSpan{Plain(text)}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)
	if d.Bold != "" {
		spans = SplitDelimiter(spans, d.Bold, SpanBold)
	}
	for _, delim := range d.Italic {
		if delim != "" {
			spans = SplitDelimiter(spans, delim, SpanItalic)
		}
	}
	if d.Code != "" {
		spans = SplitDelimiter(spans, d.Code, SpanCode)
	}
	return spans
}

// SplitDelimiter splits every plain span on delim. Segments at even indices
// stay plain, segments at odd indices become kind, so text between a pair of
// delimiters takes the new kind. An unmatched delimiter turns everything after
// it into kind. Empty segments are dropped; other kinds pass through.
func SplitDelimiter(spans []TextSpan, delim string, kind SpanKind) []TextSpan {
	out := make([]TextSpan, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanPlain {
			out = append(out, span)
			continue
		}
		for i, part := range strings.Split(span.Content, delim) {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, TextSpan{Content: part, Kind: span.Kind})
			} else {
				out = append(out, TextSpan{Content: part, Kind: kind})
			}
		}
	}
	return out
}

// inlineRef is one image or link reference found in a text.
type inlineRef struct {
	start, end int
	text, url  string
}

func findImages(text string) []inlineRef {
	var refs []inlineRef
	for _, m := range imagePattern.FindAllStringSubmatchIndex(text, -1) {
		refs = append(refs, inlineRef{
			start: m[0], end: m[1],
			text: text[m[2]:m[3]], url: text[m[4]:m[5]],
		})
	}
	return refs
}

func findLinks(text string) []inlineRef {
	var refs []inlineRef
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		refs = append(refs, inlineRef{
			start: m[0], end: m[1],
			text: text[m[2]:m[3]], url: text[m[4]:m[5]],
		})
	}
	return refs
}

// ExtractImages returns the (alt, url) pairs of all images in text.
func ExtractImages(text string) [][2]string {
	return refPairs(findImages(text))
}

// ExtractLinks returns the (text, url) pairs of all links in text,
// excluding images.
func ExtractLinks(text string) [][2]string {
	return refPairs(findLinks(text))
}

func refPairs(refs []inlineRef) [][2]string {
	pairs := make([][2]string, len(refs))
	for i, r := range refs {
		pairs[i] = [2]string{r.text, r.url}
	}
	return pairs
}

// SplitImages separates image references out of plain spans.
func SplitImages(spans []TextSpan) []TextSpan {
	return splitRefs(spans, findImages, Image)
}

// SplitLinks separates link references out of plain spans.
func SplitLinks(spans []TextSpan) []TextSpan {
	return splitRefs(spans, findLinks, Link)
}

// splitRefs cuts each plain span around the references found in it, keeping
// the non-empty text between them as plain spans. Cuts use the match offsets,
// so a reference whose text recurs earlier in the span cannot misalign.
func splitRefs(spans []TextSpan, find func(string) []inlineRef, build func(text, url string) TextSpan) []TextSpan {
	out := make([]TextSpan, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanPlain {
			out = append(out, span)
			continue
		}
		refs := find(span.Content)
		if len(refs) == 0 {
			out = append(out, span)
			continue
		}
		pos := 0
		for _, r := range refs {
			if before := span.Content[pos:r.start]; before != "" {
				out = append(out, Plain(before))
			}
			out = append(out, build(r.text, r.url))
			pos = r.end
		}
		if rest := span.Content[pos:]; rest != "" {
			out = append(out, Plain(rest))
		}
	}
	return out
}
