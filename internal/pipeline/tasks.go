package pipeline

import "strings"

// Task bracket tokens as written in source.
const (
	checkedToken   = "[x]"
	uncheckedToken = "[ ]"
)

// TaskItem describes a task line found in source.
type TaskItem struct {
	Line    int    // zero-based source line index, same as data-line
	Checked bool   // true for "[x]"
	Text    string // text after the bracket token
}

// IsTaskLine reports whether line is a task list item.
func IsTaskLine(line string) bool {
	return taskPattern.MatchString(line)
}

// FindTasks returns every task item in source order.
// Lines inside fenced code blocks are skipped, as the renderer skips them.
func FindTasks(lines []string) []TaskItem {
	var tasks []TaskItem
	inFence := false
	for i, line := range lines {
		if strings.HasPrefix(line, fenceMarker) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := taskPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		tasks = append(tasks, TaskItem{
			Line:    i,
			Checked: m[1] == "x",
			Text:    taskPrefix.ReplaceAllString(line, ""),
		})
	}
	return tasks
}

// ToggleTask sets the checked state of the task at lineIndex and returns the
// patched lines. The input slice is never modified. If lineIndex is out of
// range or the line is no longer a task item, the lines are returned as-is:
// the document changed shape since it was rendered.
func ToggleTask(lines []string, lineIndex int, checked bool) []string {
	patched := make([]string, len(lines))
	copy(patched, lines)

	if lineIndex < 0 || lineIndex >= len(lines) {
		return patched
	}
	line := lines[lineIndex]
	loc := taskPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return patched
	}

	// loc[2]:loc[3] spans the single character inside the brackets.
	open, end := loc[2]-1, loc[3]+1
	token := uncheckedToken
	if checked {
		token = checkedToken
	}
	patched[lineIndex] = line[:open] + token + line[end:]
	return patched
}
