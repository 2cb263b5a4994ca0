// Package mdeditor renders a small, flat Markdown dialect to HTML and keeps
// interactive task checkboxes in sync with their source lines.
//
// # Rendering
//
// Render is a pure function from markdown text to an HTML fragment:
//
//	html := mdeditor.Render("# Todo\n- [ ] write tests\n- [x] ship")
//
// The dialect covers ATX headings, single-line blockquotes, flat bullet,
// ordered and task lists, fenced code blocks, blank lines as <br>, and the
// inline forms **bold**, *italic*, `code`, ![alt](src) and [text](href).
// Rendering never fails and does not escape HTML: use it on trusted input.
//
// # Task checkboxes
//
// Every rendered task item carries the zero-based source line of its
// markdown in a data-line attribute:
//
//	<input type="checkbox" data-line="1">
//
// ToggleTask patches that line's bracket token and returns new source, and
// Tasks lists the task items with the same numbering. TaskToggler ties the
// two together over a DocumentSource for hosts that own checkbox events:
//
//	toggler := mdeditor.NewTaskToggler(&mdeditor.FileSource{Path: "todo.md"})
//	html, changed, err := toggler.Toggle(ctx, 1, true)
//
// # Print documents and PDF
//
// Converter wraps the same rendering in a standalone print document with an
// embedded stylesheet and optionally prints it to PDF with headless Chrome:
//
//	conv, err := mdeditor.NewConverter(mdeditor.WithHighlighting("github"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, mdeditor.Input{
//	    Markdown: content,
//	    Page:     &mdeditor.PageSettings{Size: "a4", Orientation: "portrait", Margin: 0.75},
//	})
//
// WithEngine(EngineGoldmark) switches to full GitHub Flavored Markdown for
// documents outside the dialect. For batch conversion, ConverterPool manages
// several converters, each with its own browser.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
// Use ROD_BROWSER_BIN to specify a custom Chrome binary; the sandbox is
// disabled when it is set or when CI=true.
package mdeditor
