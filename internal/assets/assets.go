package assets

// Built-in asset names.
const (
	DefaultTemplateName = "default"
	DefaultStyleName    = "default"
)

var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in style by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads a built-in page template by name.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// StyleNames lists the built-in style names.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}
