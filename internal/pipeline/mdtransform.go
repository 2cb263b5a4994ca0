package pipeline

import (
	"context"
	"strings"
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// LineEndingPreprocessor normalizes CRLF line endings to LF.
// It never adds or removes logical lines, so task line indices computed on
// the preprocessed text match the ones computed by ToggleTask.
type LineEndingPreprocessor struct{}

// PreprocessMarkdown converts \r\n to \n.
func (p *LineEndingPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return NormalizeLineEndings(content)
}

// NormalizeLineEndings converts \r\n to \n. A bare \r is not a line
// break: lines are split on LF only, the same way ToggleTask splits them.
func NormalizeLineEndings(content string) string {
	return strings.ReplaceAll(content, "\r\n", "\n")
}

// SplitLines splits source text on line feeds. An empty string is one empty
// line, matching how a document with no content renders.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
