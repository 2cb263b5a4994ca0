package main

import (
	"errors"
	"os"

	mdeditor "github.com/ashishkumardw/markdown-editor"
	"github.com/ashishkumardw/markdown-editor/internal/config"
)

// Exit codes for the mdeditor CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful command
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdeditor.ErrBrowserConnect) ||
		errors.Is(err, mdeditor.ErrPageCreate) ||
		errors.Is(err, mdeditor.ErrPageLoad) ||
		errors.Is(err, mdeditor.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, mdeditor.ErrDocumentLoad) ||
		errors.Is(err, mdeditor.ErrDocumentSave) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdeditor.ErrEmptyMarkdown) ||
		errors.Is(err, mdeditor.ErrUnknownEngine) ||
		errors.Is(err, mdeditor.ErrInvalidPageSize) ||
		errors.Is(err, mdeditor.ErrInvalidOrientation) ||
		errors.Is(err, mdeditor.ErrInvalidMargin) ||
		errors.Is(err, mdeditor.ErrStyleNotFound) ||
		errors.Is(err, mdeditor.ErrInvalidAssetName) ||
		errors.Is(err, mdeditor.ErrUnknownHighlightStyle) {
		return ExitUsage
	}

	return ExitGeneral
}
