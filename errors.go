package mdeditor

import (
	"errors"

	"github.com/ashishkumardw/markdown-editor/internal/assets"
	"github.com/ashishkumardw/markdown-editor/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrUnknownEngine  = errors.New("unknown rendering engine")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset and highlighting errors.
	ErrStyleNotFound         = assets.ErrStyleNotFound
	ErrInvalidAssetName      = assets.ErrInvalidAssetName
	ErrUnknownHighlightStyle = pipeline.ErrUnknownHighlightStyle

	// Task toggling errors.
	ErrNoDocumentSource = errors.New("task toggler has no document source")
	ErrDocumentLoad     = errors.New("failed to load document")
	ErrDocumentSave     = errors.New("failed to save document")
)
