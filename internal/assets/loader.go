package assets

// AssetLoader loads page templates and stylesheets by name.
type AssetLoader interface {
	// LoadStyle returns the CSS of a style (name without .css).
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the HTML of a page template (name without .html).
	LoadTemplate(name string) (string, error)
}
