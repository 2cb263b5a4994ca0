package pipeline

import (
	"context"
	"html"
	"strings"
)

// DefaultDocumentTitle is used when a print document has no title.
const DefaultDocumentTitle = "Document"

// documentTemplate is the scaffolding around a rendered fragment for printing
// or PDF export.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%TITLE%</title>
</head>
<body>
%BODY%
</body>
</html>`

// WrapDocument wraps an HTML fragment in a complete HTML5 document.
// The title is escaped; the body is trusted markup and inserted as-is.
func WrapDocument(title, body string) string {
	if strings.TrimSpace(title) == "" {
		title = DefaultDocumentTitle
	}
	return strings.NewReplacer(
		"%TITLE%", html.EscapeString(title),
		"%BODY%", body,
	).Replace(documentTemplate)
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"

	if idx := indexFold(htmlContent, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := indexFold(htmlContent, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// indexFold returns the byte offset of the first ASCII case-insensitive
// match of tag in s, or -1. Offsets index s itself: lowercasing s first
// would shift them whenever a rune changes its encoded length (İ → i̇).
func indexFold(s, tag string) int {
	for i := 0; i+len(tag) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(tag)], tag) {
			return i
		}
	}
	return -1
}

// sanitizeCSS escapes "</" so CSS cannot close the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// ExtractTitle returns the text of the first level-one heading line in
// markdown, or "" if there is none. Used as the print document title.
func ExtractTitle(lines []string) string {
	inFence := false
	for _, line := range lines {
		if strings.HasPrefix(line, fenceMarker) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if m := headingPattern.FindStringSubmatch(line); m != nil && len(m[1]) == 1 {
			return strings.TrimSpace(headingPrefix.ReplaceAllString(line, ""))
		}
	}
	return ""
}
