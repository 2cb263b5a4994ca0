package pipeline

import "regexp"

// inlineRule is one whole-string substitution of the inline pass.
type inlineRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// inlineRules run in order. Bold must precede italic so that "**" pairs are
// consumed before single asterisks; the bold replacement contains no "*".
// Images must precede links since "![a](b)" contains "[a](b)".
var inlineRules = []inlineRule{
	{regexp.MustCompile(`\*\*(.*?)\*\*`), "<strong>${1}</strong>"},
	{regexp.MustCompile(`\*(.*?)\*`), "<em>${1}</em>"},
	{regexp.MustCompile("`([^`]+)`"), "<code>${1}</code>"},
	{
		regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`),
		`<img alt="${1}" src="${2}" style="max-width: 100%; height: auto; border-radius: 8px;">`,
	},
	{
		regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`),
		`<a href="${2}" target="_blank" rel="noopener noreferrer">${1}</a>`,
	},
}

// ApplyInlineFormatting rewrites inline spans over the whole HTML string.
// Unmatched delimiters are left as literal text. The substitutions are not
// line-bound, so code spans, images and links may cross block boundaries.
func ApplyInlineFormatting(html string) string {
	for _, r := range inlineRules {
		html = r.pattern.ReplaceAllString(html, r.replacement)
	}
	return html
}
