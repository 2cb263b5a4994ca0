package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// fenceMarker opens and closes a fenced code block. Anything after the
// marker on the opening line is the language tag.
const fenceMarker = "```"

// lineBreak is emitted for blank lines.
const lineBreak = "<br>"

// Block patterns, checked in this order. The task pattern must be tried
// before the bullet pattern since every task line is also a bullet line.
var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+`)
	headingPrefix  = regexp.MustCompile(`^#+\s*`)
	quotePattern   = regexp.MustCompile(`^>\s+`)
	quotePrefix    = regexp.MustCompile(`^>\s*`)
	taskPattern    = regexp.MustCompile(`^-\s+\[(x|\s)\]\s+`)
	taskPrefix     = regexp.MustCompile(`^-\s+\[(x|\s)\]\s*`)
	bulletPattern  = regexp.MustCompile(`^-\s+`)
	bulletPrefix   = regexp.MustCompile(`^-\s*`)
	orderedPattern = regexp.MustCompile(`^\d+\.\s+`)
	orderedPrefix  = regexp.MustCompile(`^\d+\.\s*`)
)

// listKind is the kind of list currently open during a block scan.
type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
	listTask
)

// openTag returns the opening tag for a list kind.
func (k listKind) openTag() string {
	switch k {
	case listUnordered:
		return "<ul>"
	case listOrdered:
		return "<ol>"
	case listTask:
		return `<ul class="task-list">`
	}
	return ""
}

// closeTag returns the closing tag for a list kind.
func (k listKind) closeTag() string {
	switch k {
	case listOrdered:
		return "</ol>"
	case listUnordered, listTask:
		return "</ul>"
	}
	return ""
}

// CodeFormatter renders the raw content of a fenced code block.
// lang is the tag that followed the opening fence, possibly empty.
type CodeFormatter interface {
	FormatCode(code, lang string) string
}

// PlainCode emits fence content verbatim inside <pre><code>.
type PlainCode struct{}

// FormatCode wraps code in <pre><code> without escaping.
func (PlainCode) FormatCode(code, _ string) string {
	return "<pre><code>" + code + "</code></pre>"
}

// blockScan is the state carried through one RenderBlocks call.
type blockScan struct {
	out       strings.Builder
	list      listKind
	inFence   bool
	fenceLang string
	fence     strings.Builder
	code      CodeFormatter
}

func (s *blockScan) emit(fragment string) {
	s.out.WriteString(fragment)
	s.out.WriteByte('\n')
}

// closeList emits the closing tag of the open list, if any.
func (s *blockScan) closeList() {
	if s.list == listNone {
		return
	}
	s.emit(s.list.closeTag())
	s.list = listNone
}

// ensureList switches the open list to kind, closing a different one first.
func (s *blockScan) ensureList(kind listKind) {
	if s.list == kind {
		return
	}
	s.closeList()
	s.emit(kind.openTag())
	s.list = kind
}

func (s *blockScan) flushFence() {
	s.emit(s.code.FormatCode(strings.TrimSpace(s.fence.String()), s.fenceLang))
	s.fence.Reset()
	s.fenceLang = ""
	s.inFence = false
}

func (s *blockScan) line(idx int, line string) {
	if strings.HasPrefix(line, fenceMarker) {
		if s.inFence {
			s.flushFence()
			return
		}
		s.closeList()
		s.inFence = true
		s.fenceLang = strings.TrimSpace(strings.TrimPrefix(line, fenceMarker))
		return
	}

	if s.inFence {
		s.fence.WriteString(line)
		s.fence.WriteByte('\n')
		return
	}

	if m := headingPattern.FindStringSubmatch(line); m != nil {
		s.closeList()
		level := strconv.Itoa(len(m[1]))
		text := headingPrefix.ReplaceAllString(line, "")
		s.emit("<h" + level + ">" + text + "</h" + level + ">")
		return
	}

	if quotePattern.MatchString(line) {
		s.closeList()
		s.emit("<blockquote>" + quotePrefix.ReplaceAllString(line, "") + "</blockquote>")
		return
	}

	if m := taskPattern.FindStringSubmatch(line); m != nil {
		s.ensureList(listTask)
		s.emit(taskItem(idx, m[1] == "x", taskPrefix.ReplaceAllString(line, "")))
		return
	}

	if bulletPattern.MatchString(line) {
		s.ensureList(listUnordered)
		s.emit("<li>" + bulletPrefix.ReplaceAllString(line, "") + "</li>")
		return
	}

	if orderedPattern.MatchString(line) {
		s.ensureList(listOrdered)
		s.emit("<li>" + orderedPrefix.ReplaceAllString(line, "") + "</li>")
		return
	}

	s.closeList()
	if strings.TrimSpace(line) == "" {
		s.emit(lineBreak)
		return
	}
	s.emit("<p>" + line + "</p>")
}

// taskItem renders one task list entry. The data-line attribute carries the
// source line index that ToggleTask expects.
func taskItem(idx int, checked bool, text string) string {
	state := ""
	if checked {
		state = " checked"
	}
	return `<li class="task-item"><label><input type="checkbox"` + state +
		` data-line="` + strconv.Itoa(idx) + `"> <span>` + text + `</span></label></li>`
}

// RenderBlocks converts source lines to block-level HTML. Inline syntax is
// left untouched for ApplyInlineFormatting. Every fragment is followed by a
// newline. A fence still open at end of input is flushed as a code block.
// A nil formatter renders fences with PlainCode.
func RenderBlocks(lines []string, code CodeFormatter) string {
	if code == nil {
		code = PlainCode{}
	}
	s := &blockScan{code: code}
	for i, line := range lines {
		s.line(i, line)
	}
	if s.inFence {
		s.flushFence()
	}
	s.closeList()
	return s.out.String()
}
