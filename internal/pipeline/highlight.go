package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// ErrUnknownHighlightStyle indicates the chroma style name is not registered.
var ErrUnknownHighlightStyle = errors.New("unknown highlight style")

// ChromaHighlighter formats fenced code with chroma when the fence names a
// known language, and falls back to PlainCode otherwise.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// An empty name selects DefaultHighlightStyle.
func NewChromaHighlighter(styleName string) (*ChromaHighlighter, error) {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	if !slices.Contains(styles.Names(), styleName) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, styleName)
	}
	return &ChromaHighlighter{
		style:     styles.Get(styleName),
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}, nil
}

// FormatCode highlights code for lang. Highlighted output is HTML-escaped by
// chroma; the plain fallback copies code verbatim.
func (h *ChromaHighlighter) FormatCode(code, lang string) string {
	if lang == "" {
		return PlainCode{}.FormatCode(code, lang)
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return PlainCode{}.FormatCode(code, lang)
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return PlainCode{}.FormatCode(code, lang)
	}
	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, it); err != nil {
		return PlainCode{}.FormatCode(code, lang)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// CSS returns the stylesheet for the highlighter's chroma classes.
func (h *ChromaHighlighter) CSS() (string, error) {
	var sb strings.Builder
	if err := h.formatter.WriteCSS(&sb, h.style); err != nil {
		return "", fmt.Errorf("writing highlight CSS: %w", err)
	}
	return sb.String(), nil
}

// HighlightCSS returns the chroma stylesheet for styleName.
func HighlightCSS(styleName string) (string, error) {
	h, err := NewChromaHighlighter(styleName)
	if err != nil {
		return "", err
	}
	return h.CSS()
}
