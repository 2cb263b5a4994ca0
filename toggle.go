package mdeditor

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/ashishkumardw/markdown-editor/internal/fileutil"
)

// DocumentSource loads and stores the raw markdown of one document.
// Implementations may be backed by a file, a database row, or memory.
type DocumentSource interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, markdown string) error
}

// TaskToggler applies checkbox events to a document: load the source, patch
// the task line, save it when it changed, and render the result.
// Toggles on one TaskToggler are serialized so concurrent events never lose
// an update.
type TaskToggler struct {
	source DocumentSource
	mu     sync.Mutex
}

// NewTaskToggler creates a TaskToggler over source.
func NewTaskToggler(source DocumentSource) *TaskToggler {
	return &TaskToggler{source: source}
}

// Toggle sets the task on lineIndex to checked and returns the re-rendered
// document. changed is false when the line is no longer a task item or the
// index is out of range (the document changed since it was rendered); the
// source is then left untouched and the current rendering is returned.
func (t *TaskToggler) Toggle(ctx context.Context, lineIndex int, checked bool) (html string, changed bool, err error) {
	if t.source == nil {
		return "", false, ErrNoDocumentSource
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	markdown, err := t.source.Load(ctx)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrDocumentLoad, err)
	}

	patched := ToggleTask(markdown, lineIndex, checked)
	changed = patched != markdown
	if changed {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		if err := t.source.Save(ctx, patched); err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrDocumentSave, err)
		}
	}

	return Render(patched), changed, nil
}

// HandlerFunc adapts Toggle to the shape of a checkbox event handler.
// onRender, if not nil, receives the fresh HTML after every toggle that
// changed the document.
func (t *TaskToggler) HandlerFunc(ctx context.Context, onRender func(html string)) func(lineIndex int, checked bool) error {
	return func(lineIndex int, checked bool) error {
		html, changed, err := t.Toggle(ctx, lineIndex, checked)
		if err != nil {
			return err
		}
		if changed && onRender != nil {
			onRender(html)
		}
		return nil
	}
}

// FileSource is a DocumentSource backed by a markdown file.
// Saves replace the file atomically.
type FileSource struct {
	Path string
}

// Compile-time interface check.
var _ DocumentSource = (*FileSource)(nil)

// filePermissions applies to files created by Save.
const filePermissions = 0o644

// Load reads the file.
func (s *FileSource) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(s.Path) // #nosec G304 -- user-provided document path
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save replaces the file content, keeping its permissions.
func (s *FileSource) Save(ctx context.Context, markdown string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(s.Path, []byte(markdown), filePermissions)
}
