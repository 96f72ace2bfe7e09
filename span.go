package mdsite

import "fmt"

// SpanKind is the formatting kind of a TextSpan.
type SpanKind int

// Span kinds.
const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
	SpanImage
)

var spanKindNames = [...]string{
	SpanPlain:  "plain",
	SpanBold:   "bold",
	SpanItalic: "italic",
	SpanCode:   "code",
	SpanLink:   "link",
	SpanImage:  "image",
}

func (k SpanKind) String() string {
	if k < 0 || int(k) >= len(spanKindNames) {
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
	return spanKindNames[k]
}

// TextSpan is a run of inline text sharing one formatting kind.
type TextSpan struct {
	Content string   // literal text; alt text for images, label for links
	Kind    SpanKind
	Target  string // URL, only for SpanLink and SpanImage
}

// Plain returns a plain text span.
func Plain(s string) TextSpan { return TextSpan{Content: s, Kind: SpanPlain} }

// Bold returns a bold span.
func Bold(s string) TextSpan { return TextSpan{Content: s, Kind: SpanBold} }

// Italic returns an italic span.
func Italic(s string) TextSpan { return TextSpan{Content: s, Kind: SpanItalic} }

// Code returns an inline code span.
func Code(s string) TextSpan { return TextSpan{Content: s, Kind: SpanCode} }

// Link returns a link span with the given label and URL.
func Link(label, url string) TextSpan {
	return TextSpan{Content: label, Kind: SpanLink, Target: url}
}

// Image returns an image span with the given alt text and URL.
func Image(alt, url string) TextSpan {
	return TextSpan{Content: alt, Kind: SpanImage, Target: url}
}

func (s TextSpan) String() string {
	switch s.Kind {
	case SpanLink, SpanImage:
		return fmt.Sprintf("%s(%q, %q)", s.Kind, s.Content, s.Target)
	default:
		return fmt.Sprintf("%s(%q)", s.Kind, s.Content)
	}
}

// SpanToNode converts a span to its leaf node:
//
//	plain  -> raw text
//	bold   -> <b>
//	italic -> <i>
//	code   -> <code>
//	link   -> <a href="target">
//	image  -> <img src="target" alt="content"> with an empty value
func SpanToNode(span TextSpan) (*LeafNode, error) {
	switch span.Kind {
	case SpanPlain:
		return NewLeaf("", span.Content), nil
	case SpanBold:
		return NewLeaf("b", span.Content), nil
	case SpanItalic:
		return NewLeaf("i", span.Content), nil
	case SpanCode:
		return NewLeaf("code", span.Content), nil
	case SpanLink:
		return NewLeaf("a", span.Content, Attr{"href", span.Target}), nil
	case SpanImage:
		return NewLeaf("img", "", Attr{"src", span.Target}, Attr{"alt", span.Content}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidSpanKind, span.Kind)
	}
}

// SpansToNodes converts each span in order.
func SpansToNodes(spans []TextSpan) ([]Node, error) {
	nodes := make([]Node, 0, len(spans))
	for _, span := range spans {
		n, err := SpanToNode(span)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
