package mdeditor

import (
	"context"
	"fmt"
	"os"

	"github.com/ashishkumardw/markdown-editor/internal/assets"
	"github.com/ashishkumardw/markdown-editor/internal/fileutil"
	"github.com/ashishkumardw/markdown-editor/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LineEndingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.LiteConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pdfConverter                  = (*rodConverter)(nil)
	_ pdfRenderer                   = (*rodRenderer)(nil)
)

// Converter orchestrates markdown conversion to HTML fragments, print
// documents and PDFs. Create with NewConverter, use Convert for conversion,
// and Close when done.
type Converter struct {
	cfg           converterConfig
	assetLoader   AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	pdfConverter  pdfConverter
}

// NewConverter creates a Converter. Without options it renders with
// EngineLite, plain code blocks and the print stylesheet.
// Returns an error for an unknown engine, highlight style or stylesheet.
// The browser is started on the first PDF conversion, not here.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout: defaultTimeout,
			engine:  EngineLite,
		},
		preprocessor: &pipeline.LineEndingPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.assetLoader == nil {
		c.assetLoader = assets.NewEmbeddedLoader()
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	if c.htmlConverter == nil {
		if err := c.buildHTMLConverter(); err != nil {
			return nil, err
		}
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// buildHTMLConverter creates the engine, with highlighting when enabled.
func (c *Converter) buildHTMLConverter() error {
	if !c.cfg.highlight {
		switch c.cfg.engine {
		case EngineGoldmark:
			c.htmlConverter = pipeline.NewGoldmarkConverter("")
		default:
			c.htmlConverter = pipeline.NewLiteConverter(nil)
		}
		return nil
	}

	highlighter, err := pipeline.NewChromaHighlighter(c.cfg.highlightStyle)
	if err != nil {
		return err
	}
	css, err := highlighter.CSS()
	if err != nil {
		return fmt.Errorf("building highlight stylesheet: %w", err)
	}
	c.cfg.highlightCSS = css

	switch c.cfg.engine {
	case EngineGoldmark:
		style := c.cfg.highlightStyle
		if style == "" {
			style = pipeline.DefaultHighlightStyle
		}
		c.htmlConverter = pipeline.NewGoldmarkConverter(style)
	default:
		c.htmlConverter = pipeline.NewLiteConverter(highlighter)
	}
	return nil
}

// Convert runs the pipeline and returns the HTML and, unless
// input.HTMLOnly is set, the PDF.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Preprocess markdown
	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to HTML
	htmlContent, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Rewrite relative paths to absolute file:// URLs (if source directory provided)
	if input.SourceDir != "" {
		htmlContent, err = pipeline.ResolveLocalPaths(htmlContent, input.SourceDir)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	// A PDF always renders from a full print document
	if input.Document || !input.HTMLOnly {
		htmlContent = c.buildDocument(ctx, mdContent, htmlContent, input)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	res := &ConvertResult{
		HTML: []byte(htmlContent),
	}

	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: input.Page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// buildDocument wraps a fragment in print scaffolding and injects CSS.
// Order matters: converter style first (base), highlighting next, user CSS
// last (can override).
func (c *Converter) buildDocument(ctx context.Context, mdContent, fragment string, input Input) string {
	title := input.Title
	if title == "" {
		title = pipeline.ExtractTitle(pipeline.SplitLines(mdContent))
	}

	css := c.cfg.resolvedStyle
	if c.cfg.highlightCSS != "" {
		css += "\n" + c.cfg.highlightCSS
	}
	if input.CSS != "" {
		css += "\n" + input.CSS
	}

	return c.cssInjector.InjectCSS(ctx, pipeline.WrapDocument(title, fragment), css)
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter after options are applied and the asset loader is set.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> use asset loader
	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their input validated earlier by Config.Validate() at config load time.
func (c *Converter) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	return input.Page.Validate()
}
