package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/assets"
)

// Built-in asset names.
const (
	// DefaultTemplate is the name of the built-in page template.
	DefaultTemplate = assets.DefaultTemplateName

	// DefaultStyle is the name of the built-in stylesheet.
	DefaultStyle = assets.DefaultStyleName
)

// BuiltinStyles lists the style names available without a theme.
func BuiltinStyles() []string {
	return assets.StyleNames()
}

// AssetLoader loads page templates and stylesheets by name.
// Implement it to serve themes from somewhere other than a directory.
type AssetLoader interface {
	// LoadStyle returns the CSS of a style (name without .css).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate returns the HTML of a page template (name without .html).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for a theme directory.
// If dir is empty, only the built-in assets are used. Otherwise files in
// dir/styles and dir/templates take precedence over the built-in ones.
//
// Returns ErrInvalidAssetPath if dir is set but not a readable directory.
func NewAssetLoader(dir string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(dir)
	if err != nil {
		return nil, convertAssetError(err, ErrInvalidAssetPath)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter maps internal asset errors to the public sentinels.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	css, err := a.resolver.LoadStyle(name)
	return css, convertAssetError(err, ErrStyleNotFound)
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	tpl, err := a.resolver.LoadTemplate(name)
	return tpl, convertAssetError(err, ErrTemplateNotFound)
}

// convertAssetError maps internal asset errors to public errors. An invalid
// name cannot exist, so it maps to notFound.
func convertAssetError(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrTemplateNotFound):
		return wrapError(ErrTemplateNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrAssetRead):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(notFound, err)
	default:
		return err
	}
}

// wrapError keeps the original message and matches the public sentinel
// with errors.Is. Internal errors are not exposed.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string { return e.original.Error() }

func (e *wrappedAssetError) Unwrap() error { return e.sentinel }
