package main

// Notes:
// - runMain: we test dispatch and exit codes end to end. Rendering to HTML
//   needs no browser, so render runs on real converters here; PDF export is
//   covered with a mock pool in render_test.go.
// - poolAdapter: we test Acquire/Release/Size and panic on wrong type.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mdeditor "github.com/ashishkumardw/markdown-editor"
	"github.com/ashishkumardw/markdown-editor/internal/assets"
)

// newTestEnv returns an Environment writing to buffers.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:         time.Now,
		Stdout:      &stdout,
		Stderr:      &stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
	}, &stdout, &stderr
}

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestPoolAdapter - Pool adapter behavior
// ---------------------------------------------------------------------------

// wrongTypeConverter is a CLIConverter that is NOT *mdeditor.Converter.
type wrongTypeConverter struct{}

func (w *wrongTypeConverter) Convert(context.Context, mdeditor.Input) (*mdeditor.ConvertResult, error) {
	return &mdeditor.ConvertResult{}, nil
}

func TestPoolAdapter_Release_WrongType(t *testing.T) {
	t.Parallel()

	adapter := newPoolAdapter(1, nil)
	defer adapter.Close()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for wrong type, got none")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("expected string panic, got %T", r)
		}
		if !strings.Contains(msg, "unexpected type") {
			t.Errorf("panic message should contain 'unexpected type', got %q", msg)
		}
	}()

	adapter.Release(&wrongTypeConverter{})
}

func TestPoolAdapter_AcquireRelease(t *testing.T) {
	t.Parallel()

	adapter := newPoolAdapter(3, nil)
	defer adapter.Close()

	if adapter.Size() != 3 {
		t.Errorf("Size() = %d, want 3", adapter.Size())
	}

	conv, err := adapter.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if conv == nil {
		t.Fatal("Acquire() returned nil")
	}
	adapter.Release(conv)
}

func TestPoolAdapter_AcquireError(t *testing.T) {
	t.Parallel()

	adapter := newPoolAdapter(1, []mdeditor.Option{mdeditor.WithEngine("pandoc")})
	defer adapter.Close()

	conv, err := adapter.Acquire()
	if err == nil {
		t.Fatal("Acquire() error = nil, want unknown engine")
	}
	if conv != nil {
		t.Errorf("Acquire() converter = %v, want nil interface", conv)
	}
}

// ---------------------------------------------------------------------------
// TestIsCommand - Command name detection
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"render", true},
		{"toggle", true},
		{"tasks", true},
		{"version", true},
		{"help", true},
		{"convert", false},
		{"", false},
		{"doc.md", false},
		{"Render", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := isCommand(tt.input); got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Main entry point exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage",
			args:         []string{"mdeditor"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: mdeditor"},
		},
		{
			name:         "version",
			args:         []string{"mdeditor", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"mdeditor " + Version},
		},
		{
			name:         "help",
			args:         []string{"mdeditor", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdeditor", "Commands:"},
		},
		{
			name:         "help toggle",
			args:         []string{"mdeditor", "help", "toggle"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdeditor toggle"},
		},
		{
			name:         "help unknown command",
			args:         []string{"mdeditor", "help", "nope"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Unknown command: nope"},
		},
		{
			name:         "unknown command",
			args:         []string{"mdeditor", "convert"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: convert"},
		},
		{
			name:         "render flag help exits 0",
			args:         []string{"mdeditor", "render", "--help"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: mdeditor render"},
		},
		{
			name:         "unknown flag",
			args:         []string{"mdeditor", "tasks", "--bogus", "a.md"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid usage"},
		},
		{
			name:     "render missing file",
			args:     []string{"mdeditor", "render", "nonexistent.md"},
			wantCode: ExitIO,
		},
		{
			name:     "bare markdown path renders",
			args:     []string{"mdeditor", "nonexistent.md"},
			wantCode: ExitIO,
		},
		{
			name:     "render wrong extension",
			args:     []string{"mdeditor", "render", "notes.txt"},
			wantCode: ExitIO, // stat fails before the extension check
		},
		{
			name:     "render too many workers",
			args:     []string{"mdeditor", "render", "-w", "99", "a.md"},
			wantCode: ExitUsage,
		},
		{
			name:     "toggle without line",
			args:     []string{"mdeditor", "toggle", "a.md"},
			wantCode: ExitUsage,
		},
		{
			name:     "toggle missing file",
			args:     []string{"mdeditor", "toggle", "nonexistent.md", "--line", "0"},
			wantCode: ExitIO,
		},
		{
			name:     "tasks without file",
			args:     []string{"mdeditor", "tasks"},
			wantCode: ExitIO,
		},
		{
			name:     "tasks wrong extension",
			args:     []string{"mdeditor", "tasks", "notes.txt"},
			wantCode: ExitUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := newTestEnv()
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_EndToEnd - Commands against real files
// ---------------------------------------------------------------------------

func TestRunMain_RenderHTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "plan.md", "# Plan\n- [ ] write\n- [x] *read*")

	env, stdout, stderr := newTestEnv()
	if code := runMain([]string{"mdeditor", "render", src}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
	}

	out := filepath.Join(dir, "plan.html")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != mdeditor.Render("# Plan\n- [ ] write\n- [x] *read*") {
		t.Errorf("output = %q, want Render() output", data)
	}
	if !strings.Contains(stdout.String(), "Created "+out) {
		t.Errorf("stdout = %q, want Created line", stdout.String())
	}
}

func TestRunMain_RenderDocumentToDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "in/a.md", "- [ ] a")
	writeFile(t, dir, "in/sub/b.markdown", "# Bee\ntext")
	writeFile(t, dir, "in/skip.txt", "ignored")
	outDir := filepath.Join(dir, "out")

	env, stdout, stderr := newTestEnv()
	args := []string{"mdeditor", "render", filepath.Join(dir, "in"), "-o", outDir, "--document", "--style", "preview", "-q"}
	if code := runMain(args, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet run wrote to stdout: %q", stdout.String())
	}

	a, err := os.ReadFile(filepath.Join(outDir, "a.html"))
	if err != nil {
		t.Fatalf("reading a.html: %v", err)
	}
	if !strings.Contains(string(a), "<title>a</title>") {
		t.Error("a.html should fall back to the file name as title")
	}

	b, err := os.ReadFile(filepath.Join(outDir, "sub", "b.html"))
	if err != nil {
		t.Fatalf("reading sub/b.html: %v", err)
	}
	if !strings.Contains(string(b), "<title>Bee</title>") || !strings.Contains(string(b), "<!DOCTYPE html>") {
		t.Errorf("b.html is not a titled print document: %q", b)
	}

	if _, err := os.Stat(filepath.Join(outDir, "skip.html")); !os.IsNotExist(err) {
		t.Error("non-markdown file was rendered")
	}
}

func TestRunMain_ToggleAndTasks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "todo.md", "# Todo\n- [ ] one\n- [ ] two\n")

	env, stdout, stderr := newTestEnv()
	if code := runMain([]string{"mdeditor", "toggle", src, "--line", "2"}, env); code != ExitSuccess {
		t.Fatalf("toggle = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), ":2 checked") {
		t.Errorf("toggle stdout = %q", stdout.String())
	}

	env, stdout, stderr = newTestEnv()
	if code := runMain([]string{"mdeditor", "tasks", src}, env); code != ExitSuccess {
		t.Fatalf("tasks = %d, stderr: %s", code, stderr.String())
	}
	want := "1\t[ ]\tone\n2\t[x]\ttwo\n"
	if stdout.String() != want {
		t.Errorf("tasks stdout = %q, want %q", stdout.String(), want)
	}
}
