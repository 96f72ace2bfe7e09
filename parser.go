package mdsite

import (
	"fmt"
	"strings"
)

// rootTag is the tag of the container node returned by DocumentToTree.
const rootTag = "div"

// defaultParser backs the package-level helpers.
var defaultParser = NewParser()

// CodeRenderer renders the interior of a fenced code block.
// It replaces the default <pre><code> rendering when set on a Parser.
type CodeRenderer interface {
	RenderCode(language, code string) (*ParentNode, error)
}

// Parser converts Markdown text into an HTML node tree.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	dialect Dialect
	code    CodeRenderer
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithParserDialect sets the inline delimiters.
func WithParserDialect(d Dialect) ParserOption {
	return func(p *Parser) {
		p.dialect = d
	}
}

// WithCodeRenderer sets a renderer for fenced code blocks.
func WithCodeRenderer(r CodeRenderer) ParserOption {
	return func(p *Parser) {
		p.code = r
	}
}

// NewParser creates a Parser using DefaultDialect unless overridden.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{dialect: DefaultDialect()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tokenize splits inline Markdown into typed spans.
func (p *Parser) Tokenize(text string) []TextSpan {
	return p.dialect.tokenize(text)
}

// DocumentToTree converts a document using the default parser.
func DocumentToTree(markdown string) (*ParentNode, error) {
	return defaultParser.DocumentToTree(markdown)
}

// BlockToNode converts one block using the default parser.
func BlockToNode(block string) (*ParentNode, error) {
	return defaultParser.BlockToNode(block)
}

// DocumentToTree splits markdown into blocks and converts each one, in order,
// into a child of a single <div> root. Any block error aborts the whole
// document. An empty document yields a root with no children.
func (p *Parser) DocumentToTree(markdown string) (*ParentNode, error) {
	blocks := SplitBlocks(markdown)
	children := make([]Node, 0, len(blocks))
	for i, block := range blocks {
		n, err := p.BlockToNode(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		children = append(children, n)
	}
	return NewParent(rootTag, children), nil
}

// BlockToNode classifies a block and converts it into a parent node.
func (p *Parser) BlockToNode(block string) (*ParentNode, error) {
	b := ClassifyBlock(block)
	switch b.Type {
	case BlockHeading:
		return p.headingToNode(b.Text, b.Level)
	case BlockCode:
		return p.codeToNode(b.Text)
	case BlockQuote:
		return p.quoteToNode(b.Text)
	case BlockUnorderedList:
		return p.listToNode(b.Text, "ul", func(int) int { return len(unorderedMarkers[0]) })
	case BlockOrderedList:
		return p.listToNode(b.Text, "ol", func(i int) int { return len(orderedMarker(i + 1)) })
	default:
		return p.paragraphToNode(b.Text)
	}
}

// inline tokenizes text and converts the spans to leaf nodes.
func (p *Parser) inline(text string) ([]Node, error) {
	return SpansToNodes(p.Tokenize(text))
}

func (p *Parser) wrapInline(tag, text string) (*ParentNode, error) {
	children, err := p.inline(text)
	if err != nil {
		return nil, err
	}
	return NewParent(tag, children), nil
}

func (p *Parser) paragraphToNode(text string) (*ParentNode, error) {
	return p.wrapInline("p", strings.Join(strings.Split(text, "\n"), " "))
}

func (p *Parser) headingToNode(text string, level int) (*ParentNode, error) {
	if len(text) <= level+1 || strings.TrimSpace(text[level+1:]) == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHeadingBlock, text)
	}
	return p.wrapInline(fmt.Sprintf("h%d", level), text[level+1:])
}

func (p *Parser) codeToNode(text string) (*ParentNode, error) {
	if len(text) < 2*len(codeFence) || !strings.HasPrefix(text, codeFence) || !strings.HasSuffix(text, codeFence) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCodeBlock, text)
	}
	inner := text[len(codeFence) : len(text)-len(codeFence)]
	info, body, _ := strings.Cut(inner, "\n")
	var language string
	if fields := strings.Fields(info); len(fields) > 0 && !strings.HasPrefix(fields[0], "`") {
		language = fields[0]
	}

	if p.code != nil {
		return p.code.RenderCode(language, body)
	}

	children, err := p.inline(body)
	if err != nil {
		return nil, err
	}
	var attrs Attrs
	if language != "" {
		attrs = Attrs{{Key: "class", Value: "language-" + language}}
	}
	code := NewParent("code", children, attrs...)
	return NewParent("pre", []Node{code}), nil
}

func (p *Parser) quoteToNode(text string) (*ParentNode, error) {
	lines := strings.Split(text, "\n")
	stripped := make([]string, len(lines))
	for i, line := range lines {
		if !strings.HasPrefix(line, quoteMarker) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidQuoteBlock, line)
		}
		stripped[i] = strings.TrimSpace(strings.TrimPrefix(line, quoteMarker))
	}
	return p.wrapInline("blockquote", strings.Join(stripped, " "))
}

// listToNode wraps each line, minus its marker, in an <li>.
// markerLen returns the marker width of the i-th line (0-based).
func (p *Parser) listToNode(text, tag string, markerLen func(i int) int) (*ParentNode, error) {
	lines := strings.Split(text, "\n")
	items := make([]Node, 0, len(lines))
	for i, line := range lines {
		n := markerLen(i)
		if n > len(line) {
			n = len(line)
		}
		item, err := p.wrapInline("li", line[n:])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return NewParent(tag, items), nil
}

// FirstHeadingText returns the text of the first level-1 heading, without
// its marker, and whether one was found.
func FirstHeadingText(markdown string) (string, bool) {
	for _, block := range SplitBlocks(markdown) {
		b := ClassifyBlock(block)
		if b.Type != BlockHeading || b.Level != 1 {
			continue
		}
		first, _, _ := strings.Cut(b.Text[b.Level+1:], "\n")
		if title := strings.TrimSpace(first); title != "" {
			return title, true
		}
	}
	return "", false
}

// ExtractTitle returns the first level-1 heading text, or ErrNoTitle.
func ExtractTitle(markdown string) (string, error) {
	title, ok := FirstHeadingText(markdown)
	if !ok {
		return "", ErrNoTitle
	}
	return title, nil
}
