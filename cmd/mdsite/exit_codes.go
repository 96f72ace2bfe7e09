package main

import (
	"context"
	"errors"
	"os"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // One or more pages failed to convert
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Page errors (exit 4)
	if errors.Is(err, ErrPagesFailed) ||
		errors.Is(err, mdsite.ErrHTMLConversion) ||
		errors.Is(err, mdsite.ErrTemplateRender) ||
		errors.Is(err, mdsite.ErrFrontMatter) ||
		errors.Is(err, mdsite.ErrInvalidDate) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitRender
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, mdsite.ErrInvalidEngine) ||
		errors.Is(err, mdsite.ErrInvalidTemplate) ||
		errors.Is(err, mdsite.ErrUnknownStyle) ||
		errors.Is(err, mdsite.ErrStyleNotFound) ||
		errors.Is(err, mdsite.ErrTemplateNotFound) ||
		errors.Is(err, mdsite.ErrInvalidAssetPath) ||
		errors.Is(err, fileutil.ErrUnsafeReset) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, ErrStaticDirNotFound) ||
		errors.Is(err, ErrContentDirNotFound) ||
		errors.Is(err, ErrOutputDir) {
		return ExitIO
	}

	return ExitGeneral
}
