package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markdownExts are the source extensions rewritten to ".html" in links.
var markdownExts = []string{".md", ".markdown"}

// LinkRewrite configures RewriteLinks.
type LinkRewrite struct {
	// BasePath is prefixed to root-relative URLs ("/x" -> "/blog/x").
	// Empty or "/" leaves them unchanged.
	BasePath string

	// MarkdownLinks rewrites relative links to *.md pages into *.html.
	MarkdownLinks bool
}

// noop reports whether no URL in content can change. Re-rendering through
// x/net/html normalizes markup, so untouched pages skip it.
func (r LinkRewrite) noop(content string) bool {
	if !strings.Contains(content, "href=") && !strings.Contains(content, "src=") {
		return true
	}
	if strings.TrimSuffix(r.BasePath, "/") != "" {
		return false
	}
	if !r.MarkdownLinks {
		return true
	}
	lower := strings.ToLower(content)
	for _, ext := range markdownExts {
		if strings.Contains(lower, ext) {
			return false
		}
	}
	return true
}

// RewriteLinks rewrites a[href] and img[src] attributes of an HTML page or
// fragment. Returns the HTML unchanged when there is nothing to rewrite.
//
// Rewrites:
//   - root-relative URLs get the base path prefix
//   - links to Markdown sources point to the generated page
//
// Does NOT rewrite:
//   - absolute URLs, protocol-relative URLs, anchors, mailto:
//   - srcset attributes and CSS url() references
func RewriteLinks(htmlContent string, r LinkRewrite) (string, error) {
	if r.noop(htmlContent) {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, r)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and rewrites link targets.
func rewriteNode(n *html.Node, r LinkRewrite) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.A, atom.Link:
			rewriteAttr(n, "href", r)
		case atom.Img, atom.Script:
			rewriteAttr(n, "src", r)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, r)
	}
}

// rewriteAttr rewrites a single attribute value.
func rewriteAttr(n *html.Node, attrName string, r LinkRewrite) {
	for i, attr := range n.Attr {
		if attr.Key != attrName {
			continue
		}
		n.Attr[i].Val = rewriteURL(attr.Val, r)
	}
}

// rewriteURL applies the Markdown-link and base-path rules to one URL.
func rewriteURL(u string, r LinkRewrite) string {
	if u == "" || isExternal(u) || strings.HasPrefix(u, "#") {
		return u
	}
	if r.MarkdownLinks {
		u = markdownToHTML(u)
	}
	if base := strings.TrimSuffix(r.BasePath, "/"); base != "" && strings.HasPrefix(u, "/") {
		u = base + u
	}
	return u
}

// isExternal returns true for URLs with a scheme or protocol-relative URLs.
func isExternal(u string) bool {
	if strings.HasPrefix(u, "//") {
		return true
	}
	colon := strings.IndexByte(u, ':')
	if colon <= 0 {
		return false
	}
	// A colon after the first '/', '?' or '#' belongs to the path.
	return !strings.ContainsAny(u[:colon], "/?#")
}

// markdownToHTML swaps a .md/.markdown extension for .html,
// keeping any query string or fragment.
func markdownToHTML(u string) string {
	p, suffix := u, ""
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		p, suffix = u[:i], u[i:]
	}
	ext := strings.ToLower(path.Ext(p))
	for _, md := range markdownExts {
		if ext == md {
			return p[:len(p)-len(ext)] + ".html" + suffix
		}
	}
	return u
}
