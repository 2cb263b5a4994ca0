package mdeditor

import "github.com/ashishkumardw/markdown-editor/internal/pipeline"

// liteRenderer renders the editor dialect with plain code blocks.
var liteRenderer = pipeline.NewLiteConverter(nil)

// Task is a task list item found in markdown source.
type Task struct {
	Line    int    // zero-based line index, equal to the rendered data-line
	Checked bool   // true when written as "[x]"
	Text    string // text after the bracket token, before inline formatting
}

// Render converts markdown to an HTML fragment. It never fails: every input
// produces some HTML. CRLF line endings are normalized to LF first, which
// keeps the line numbering that task checkboxes carry in data-line. A bare
// CR is not a line break.
//
// Text is inserted verbatim, so raw HTML in the source passes through.
// Render is only safe for trusted input.
func Render(markdown string) string {
	return liteRenderer.Render(pipeline.NormalizeLineEndings(markdown))
}

// ToggleTask returns markdown with the task item on lineIndex set to
// checked. Lines are split on LF, matching Render's numbering. If the index
// is out of range or the line is not a task item, markdown is returned
// unchanged.
func ToggleTask(markdown string, lineIndex int, checked bool) string {
	lines := pipeline.SplitLines(markdown)
	if lineIndex < 0 || lineIndex >= len(lines) || !pipeline.IsTaskLine(lines[lineIndex]) {
		return markdown
	}
	return pipeline.JoinLines(pipeline.ToggleTask(lines, lineIndex, checked))
}

// Tasks lists the task items of markdown in source order.
// Task-like lines inside fenced code blocks are not tasks.
func Tasks(markdown string) []Task {
	items := pipeline.FindTasks(pipeline.SplitLines(pipeline.NormalizeLineEndings(markdown)))
	if len(items) == 0 {
		return nil
	}
	tasks := make([]Task, len(items))
	for i, it := range items {
		tasks[i] = Task(it)
	}
	return tasks
}
