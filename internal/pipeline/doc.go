// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The lite engine renders a small, flat Markdown dialect in two stages:
//   - Block rendering: a single forward scan over source lines producing
//     headings, blockquotes, lists, task lists, code fences and paragraphs
//   - Inline formatting: whole-string substitutions for bold, italic,
//     code spans, images and links
//
// Task items carry their zero-based source line index in a data-line
// attribute. ToggleTask patches the source line behind such an index.
//
// The package also hosts the pieces around the engine: line-ending
// preprocessing, the goldmark engine for full GFM documents, chroma fence
// highlighting, print-document scaffolding, CSS injection and local path
// rewriting for PDF export. PDF generation itself is handled by the root
// package using headless Chrome (go-rod).
package pipeline
