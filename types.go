package mdeditor

import (
	"fmt"
	"strings"
	"time"
)

// Engine selects the markdown to HTML renderer used by Converter.
type Engine string

// Supported engines.
const (
	// EngineLite renders the editor dialect, the same output as Render.
	EngineLite Engine = "lite"
	// EngineGoldmark renders full GitHub Flavored Markdown.
	EngineGoldmark Engine = "goldmark"
)

// ParseEngine converts an engine name (case-insensitive) to an Engine.
// An empty name selects EngineLite.
func ParseEngine(name string) (Engine, error) {
	switch Engine(strings.ToLower(name)) {
	case "", EngineLite:
		return EngineLite, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	}
	return "", fmt.Errorf("%w: %q (must be lite or goldmark)", ErrUnknownEngine, name)
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	switch strings.ToLower(size) {
	case PageSizeLetter, PageSizeA4, PageSizeLegal:
		return true
	}
	return false
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains conversion parameters.
type Input struct {
	Markdown  string        // Markdown content (required)
	Title     string        // Document title (optional, "" = first H1, then "Document")
	CSS       string        // Extra CSS appended after the converter style (optional)
	SourceDir string        // Directory for resolving relative image and link paths (optional)
	Page      *PageSettings // Page settings (optional, nil = defaults)
	Document  bool          // Wrap HTML in a standalone print document
	HTMLOnly  bool          // Skip PDF generation
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML []byte // HTML fragment, or the print document when Input.Document is set or a PDF was made
	PDF  []byte // nil when Input.HTMLOnly is set
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout        time.Duration
	engine         Engine
	highlight      bool
	highlightStyle string
	styleInput     string // name, path, or CSS content
	resolvedStyle  string // CSS content after resolution
	highlightCSS   string // chroma stylesheet when highlighting is on
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdeditor: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the rendering engine. NewConverter returns
// ErrUnknownEngine for values other than EngineLite and EngineGoldmark.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithHighlighting enables syntax highlighting of fenced code blocks with
// the named chroma style ("" = github). With EngineLite the fence language
// tag picks the lexer; untagged or unknown languages stay plain.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithStyle sets the print document stylesheet. Accepts a style name
// ("print", "preview"), a CSS file path, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithAssetLoader sets the loader used to resolve style names.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.assetLoader = loader
	}
}
