package mdsite

import "errors"

// Sentinel errors for parsing and rendering.
var (
	ErrInvalidSpanKind     = errors.New("invalid span kind")
	ErrInvalidHeadingBlock = errors.New("heading block has no content")
	ErrInvalidCodeBlock    = errors.New("code block must start and end with a fence")
	ErrInvalidQuoteBlock   = errors.New("quote line does not start with '>'")

	// Node serialization errors.
	ErrMissingTag      = errors.New("parent node requires a tag")
	ErrMissingChildren = errors.New("parent node requires children")
	ErrMissingValue    = errors.New("leaf node requires a value")

	// Title extraction errors.
	ErrNoTitle = errors.New("no level-1 heading found")

	// Page conversion errors.
	ErrHTMLConversion  = errors.New("HTML conversion failed")
	ErrTemplateRender  = errors.New("template rendering failed")
	ErrInvalidEngine   = errors.New("invalid markdown engine")
	ErrInvalidTemplate = errors.New("invalid page template")
	ErrFrontMatter     = errors.New("invalid front matter")
	ErrInvalidDate     = errors.New("invalid page date")
	ErrUnknownStyle    = errors.New("unknown highlight style")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
