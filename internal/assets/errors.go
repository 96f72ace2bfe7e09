package assets

import "errors"

// Sentinel errors for asset operations.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName indicates the name contains path separators or dots.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the theme directory is missing or unreadable.
	ErrInvalidBasePath = errors.New("invalid theme directory")

	ErrAssetRead = errors.New("failed to read asset")
)
