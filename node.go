package mdsite

import (
	"fmt"
	"strings"
)

// Node is an element of the HTML tree built from a Markdown document.
// It is implemented by *LeafNode and *ParentNode.
type Node interface {
	// ToHTML serializes the node, and recursively its children, to HTML.
	ToHTML() (string, error)

	writeHTML(b *strings.Builder) error
}

// Compile-time interface implementation checks.
var (
	_ Node = (*LeafNode)(nil)
	_ Node = (*ParentNode)(nil)
)

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attrs is an ordered attribute list. Attributes render in insertion order.
type Attrs []Attr

// Get returns the value of the first attribute named key.
func (a Attrs) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// writeTo renders each attribute as ` key="value"`.
func (a Attrs) writeTo(b *strings.Builder) {
	for _, attr := range a {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(attr.Value)
		b.WriteByte('"')
	}
}

// String returns the attributes as they appear inside an opening tag.
func (a Attrs) String() string {
	var b strings.Builder
	a.writeTo(&b)
	return b.String()
}

// LeafNode is a terminal node carrying text.
// A leaf without a tag renders its value verbatim.
type LeafNode struct {
	Tag   string  // empty = raw text
	Value *string // required, may point to ""
	Attrs Attrs
}

// NewLeaf creates a LeafNode with the given tag, value, and attributes.
func NewLeaf(tag, value string, attrs ...Attr) *LeafNode {
	return &LeafNode{Tag: tag, Value: &value, Attrs: attrs}
}

// Text returns the leaf value, or "" if it is absent.
func (n *LeafNode) Text() string {
	if n.Value == nil {
		return ""
	}
	return *n.Value
}

// ToHTML renders `<tag attrs>value</tag>`, or the bare value when Tag is empty.
func (n *LeafNode) ToHTML() (string, error) {
	var b strings.Builder
	if err := n.writeHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (n *LeafNode) writeHTML(b *strings.Builder) error {
	if n.Value == nil {
		return fmt.Errorf("%w: <%s>", ErrMissingValue, n.Tag)
	}
	if n.Tag == "" {
		b.WriteString(*n.Value)
		return nil
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	n.Attrs.writeTo(b)
	b.WriteByte('>')
	b.WriteString(*n.Value)
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
	return nil
}

// String implements fmt.Stringer for debugging.
func (n *LeafNode) String() string {
	if n.Value == nil {
		return fmt.Sprintf("Leaf(%q, <nil>, %v)", n.Tag, n.Attrs)
	}
	return fmt.Sprintf("Leaf(%q, %q, %v)", n.Tag, *n.Value, n.Attrs)
}

// ParentNode is a structural node owning an ordered list of children.
// A nil Children slice is invalid; an empty one renders an empty element.
type ParentNode struct {
	Tag      string
	Children []Node
	Attrs    Attrs
}

// NewParent creates a ParentNode. A nil children slice is replaced by an
// empty one, so the result always serializes.
func NewParent(tag string, children []Node, attrs ...Attr) *ParentNode {
	if children == nil {
		children = []Node{}
	}
	return &ParentNode{Tag: tag, Children: children, Attrs: attrs}
}

// ToHTML renders the element and all descendants in document order.
func (n *ParentNode) ToHTML() (string, error) {
	var b strings.Builder
	if err := n.writeHTML(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (n *ParentNode) writeHTML(b *strings.Builder) error {
	if n.Tag == "" {
		return ErrMissingTag
	}
	if n.Children == nil {
		return fmt.Errorf("%w: <%s>", ErrMissingChildren, n.Tag)
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	n.Attrs.writeTo(b)
	b.WriteByte('>')
	for _, child := range n.Children {
		if err := child.writeHTML(b); err != nil {
			return err
		}
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
	return nil
}

// String implements fmt.Stringer for debugging.
func (n *ParentNode) String() string {
	return fmt.Sprintf("Parent(%q, %v, %v)", n.Tag, n.Children, n.Attrs)
}
