// Package mdsite converts a small Markdown dialect into HTML node trees and
// assembles them into the pages of a static site.
//
// # Node Tree
//
// The core works in two layers. Inline text becomes typed spans, and blocks
// become HTML nodes:
//
//	spans := mdsite.Tokenize("This is **bold** and `code`")
//	// [Plain("This is "), Bold("bold"), Plain(" and "), Code("code")]
//
//	root, err := mdsite.DocumentToTree("# Title\n\nSome *text*.")
//	html, err := root.ToHTML()
//	// <div><h1>Title</h1><p>Some <i>text</i>.</p></div>
//
// Blocks are separated by a blank line and classified as heading, code,
// quote, unordered list, ordered list, or paragraph. Delimiters split spans
// by parity: text between the first and second occurrence takes the new
// kind, and an unmatched delimiter turns the rest of the span into it.
// Text is never HTML-escaped.
//
// # Pages
//
// A Converter wraps the tree in a page template:
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithStyle(mdsite.DefaultStyle),
//	    mdsite.WithHighlight("monokai"),
//	    mdsite.WithBasePath("/blog/"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := conv.Convert(ctx, mdsite.Input{Markdown: content, Name: "about.md"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("about.html", page.HTML, 0644)
//
// Each page goes through these stages:
//
//  1. Preprocessing (line endings, blank lines, YAML front matter)
//  2. Body conversion: the dialect parser, or goldmark with EngineCommonMark
//  3. Title selection: front matter, first "# " heading, file name
//  4. Template fill of {{ Title }}, {{ Content }}, and {{ Date }}
//  5. Link rewriting (*.md to *.html, base path prefix)
//  6. Stylesheet injection and optional minification
//
// The front matter keys are title, date, and draft. A date is written as
// YYYY-MM-DD, RFC 3339, or "auto" for the time of conversion, and rendered
// with WithDateFormat ("DD/MM/YYYY", "long", ...).
//
// # Themes
//
// Templates and styles come from the built-in assets or a theme directory
// given to WithAssetPath:
//
//	theme/
//	├── styles/
//	│   └── dark.css
//	└── templates/
//	    └── default.html
//
// Files present in the theme take precedence; the rest fall back to the
// built-in "default" template and style.
package mdsite
