package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	mdeditor "github.com/ashishkumardw/markdown-editor"
	"github.com/ashishkumardw/markdown-editor/internal/config"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock pool and converter
// ---------------------------------------------------------------------------

type mockConverter struct {
	mu     sync.Mutex
	inputs []mdeditor.Input
	err    error
}

func (m *mockConverter) Convert(_ context.Context, input mdeditor.Input) (*mdeditor.ConvertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input)
	if m.err != nil {
		return nil, m.err
	}
	return &mdeditor.ConvertResult{
		HTML: []byte("<html>" + input.Title + "</html>"),
		PDF:  []byte("%PDF-1.4 " + input.Title),
	}, nil
}

type mockPool struct {
	conv       *mockConverter
	acquireErr error
	size       int
	opts       []mdeditor.Option
	closed     bool
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {}

func (p *mockPool) Size() int { return p.size }

func (p *mockPool) Close() error {
	p.closed = true
	return nil
}

// factory returns a poolFactory that records the requested size and options.
func (p *mockPool) factory() poolFactory {
	return func(size int, opts []mdeditor.Option) Pool {
		p.size = size
		p.opts = opts
		return p
	}
}

// ---------------------------------------------------------------------------
// TestRunRender - Orchestration with a mock pool
// ---------------------------------------------------------------------------

func TestRunRender_PDF(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "report.md", "# Quarterly\n- [ ] ship")

	pool := &mockPool{conv: &mockConverter{}}
	flags := &renderFlags{pdf: true, workers: 2, page: pageFlags{size: "a4"}}
	env, stdout, _ := newTestEnv()

	if err := runRender(context.Background(), []string{src}, flags, env, pool.factory()); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "report.pdf"))
	if err != nil {
		t.Fatalf("reading PDF: %v", err)
	}
	if string(data) != "%PDF-1.4 Quarterly" {
		t.Errorf("PDF = %q", data)
	}
	if !pool.closed {
		t.Error("pool not closed")
	}
	if pool.size != 2 {
		t.Errorf("pool size = %d, want 2", pool.size)
	}

	input := pool.conv.inputs[0]
	if input.HTMLOnly {
		t.Error("HTMLOnly set for PDF export")
	}
	if input.SourceDir != dir {
		t.Errorf("SourceDir = %q, want %q", input.SourceDir, dir)
	}
	if input.Page == nil || input.Page.Size != "a4" || input.Page.Margin != mdeditor.DefaultMargin {
		t.Errorf("Page = %+v, want a4 with default margin", input.Page)
	}
	if !strings.Contains(stdout.String(), "report.pdf") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunRender_OutputFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "a.md", "x")
	out := filepath.Join(dir, "nested", "custom.html")

	pool := &mockPool{conv: &mockConverter{}}
	flags := &renderFlags{output: out, document: documentFlags{standalone: true, title: "Given"}}
	env, _, _ := newTestEnv()

	if err := runRender(context.Background(), []string{src}, flags, env, pool.factory()); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "<html>Given</html>" {
		t.Errorf("output = %q", data)
	}
	input := pool.conv.inputs[0]
	if !input.Document || !input.HTMLOnly {
		t.Errorf("input = %+v, want Document and HTMLOnly", input)
	}
}

func TestRunRender_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := writeFile(t, dir, "a.md", "x")
	emptyDir := filepath.Join(dir, "empty")
	if err := os.Mkdir(emptyDir, 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		flags    *renderFlags
		pool     *mockPool
		wantErr  error
		wantCode int
	}{
		{
			name:     "no input",
			flags:    &renderFlags{},
			pool:     &mockPool{conv: &mockConverter{}},
			wantErr:  ErrNoInput,
			wantCode: ExitIO,
		},
		{
			name:     "directory without markdown",
			args:     []string{emptyDir},
			flags:    &renderFlags{},
			pool:     &mockPool{conv: &mockConverter{}},
			wantErr:  ErrNoInput,
			wantCode: ExitIO,
		},
		{
			name:     "invalid engine",
			args:     []string{src},
			flags:    &renderFlags{engine: engineFlags{engine: "pandoc"}},
			pool:     &mockPool{conv: &mockConverter{}},
			wantErr:  config.ErrInvalidValue,
			wantCode: ExitUsage,
		},
		{
			name:     "invalid timeout",
			args:     []string{src},
			flags:    &renderFlags{timeout: "soon"},
			pool:     &mockPool{conv: &mockConverter{}},
			wantErr:  ErrInvalidTimeout,
			wantCode: ExitUsage,
		},
		{
			name:     "invalid margin",
			args:     []string{src},
			flags:    &renderFlags{page: pageFlags{margin: 9}},
			pool:     &mockPool{conv: &mockConverter{}},
			wantErr:  config.ErrInvalidValue,
			wantCode: ExitUsage,
		},
		{
			name:     "missing config",
			args:     []string{src},
			flags:    &renderFlags{config: "./missing.yaml"},
			pool:     &mockPool{conv: &mockConverter{}},
			wantErr:  config.ErrConfigNotFound,
			wantCode: ExitUsage,
		},
		{
			name:     "converter creation fails",
			args:     []string{src},
			flags:    &renderFlags{},
			pool:     &mockPool{acquireErr: mdeditor.ErrUnknownHighlightStyle},
			wantErr:  ErrConverterInit,
			wantCode: ExitUsage,
		},
		{
			name:     "browser failure",
			args:     []string{src},
			flags:    &renderFlags{pdf: true},
			pool:     &mockPool{conv: &mockConverter{err: mdeditor.ErrBrowserConnect}},
			wantErr:  mdeditor.ErrBrowserConnect,
			wantCode: ExitBrowser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := newTestEnv()
			err := runRender(context.Background(), tt.args, tt.flags, env, tt.pool.factory())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("runRender() error = %v, want %v", err, tt.wantErr)
			}
			if code := exitCodeFor(err); code != tt.wantCode {
				t.Errorf("exitCodeFor() = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeRenderFlags - Flags override config
// ---------------------------------------------------------------------------

func TestMergeRenderFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.CSS.Style = "print"
	cfg.Page.Size = "letter"

	mergeRenderFlags(&renderFlags{
		output:   "out",
		engine:   engineFlags{engine: "goldmark", highlightStyle: "monokai"},
		document: documentFlags{standalone: true, title: "T", style: "preview"},
		page:     pageFlags{orientation: "landscape", margin: 1},
	}, cfg)

	if cfg.Output.DefaultDir != "out" {
		t.Errorf("Output.DefaultDir = %q", cfg.Output.DefaultDir)
	}
	if cfg.Render.Engine != "goldmark" || !cfg.Render.Highlight || cfg.Render.HighlightStyle != "monokai" {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if !cfg.Document.Standalone || cfg.Document.Title != "T" {
		t.Errorf("Document = %+v", cfg.Document)
	}
	if cfg.CSS.Style != "preview" {
		t.Errorf("CSS.Style = %q, want preview", cfg.CSS.Style)
	}
	if cfg.Page.Size != "letter" || cfg.Page.Orientation != "landscape" || cfg.Page.Margin != 1 {
		t.Errorf("Page = %+v, unset size should keep config value", cfg.Page)
	}
}

// ---------------------------------------------------------------------------
// TestResolveTimeout - Duration parsing and priority
// ---------------------------------------------------------------------------

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flagValue string
		envValue  time.Duration
		want      time.Duration
		wantErr   bool
	}{
		{name: "all empty uses default", want: 0},
		{name: "flag only", flagValue: "2m", want: 2 * time.Minute},
		{name: "env only", envValue: 45 * time.Second, want: 45 * time.Second},
		{name: "flag overrides env", flagValue: "1m30s", envValue: time.Minute, want: 90 * time.Second},
		{name: "invalid flag", flagValue: "abc", wantErr: true},
		{name: "zero flag", flagValue: "0s", envValue: time.Minute, wantErr: true},
		{name: "negative flag", flagValue: "-5s", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(tt.flagValue, tt.envValue)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeout) {
					t.Errorf("resolveTimeout() error = %v, want %v", err, ErrInvalidTimeout)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveTimeout() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout(%q, %v) = %v, want %v", tt.flagValue, tt.envValue, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveInputPath - Positional argument and config fallback
// ---------------------------------------------------------------------------

func TestResolveInputPath(t *testing.T) {
	t.Parallel()

	withDefault := config.DefaultConfig()
	withDefault.Input.DefaultDir = "notes"

	tests := []struct {
		name    string
		args    []string
		cfg     *config.Config
		want    string
		wantErr error
	}{
		{name: "positional wins", args: []string{"a.md"}, cfg: withDefault, want: "a.md"},
		{name: "config default", cfg: withDefault, want: "notes"},
		{name: "nothing", cfg: config.DefaultConfig(), wantErr: ErrNoInput},
		{name: "too many", args: []string{"a.md", "b.md"}, cfg: withDefault, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveInputPath(tt.args, tt.cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("resolveInputPath() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("resolveInputPath() = %q, %v, want %q", got, err, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildPageSettings - Page defaults and validation
// ---------------------------------------------------------------------------

func TestBuildPageSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		page    config.PageConfig
		want    *mdeditor.PageSettings
		wantErr error
	}{
		{name: "unset returns nil", page: config.PageConfig{}, want: nil},
		{
			name: "size only gets defaults",
			page: config.PageConfig{Size: "legal"},
			want: &mdeditor.PageSettings{Size: "legal", Orientation: "portrait", Margin: mdeditor.DefaultMargin},
		},
		{
			name: "all fields",
			page: config.PageConfig{Size: "a4", Orientation: "landscape", Margin: 2},
			want: &mdeditor.PageSettings{Size: "a4", Orientation: "landscape", Margin: 2},
		},
		{name: "invalid size", page: config.PageConfig{Size: "a5"}, wantErr: mdeditor.ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Page = tt.page
			got, err := buildPageSettings(cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("buildPageSettings() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildPageSettings() error = %v", err)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("buildPageSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildConverterOptions - Config to converter options
// ---------------------------------------------------------------------------

func TestBuildConverterOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*config.Config)
		timeout  time.Duration
		wantOpts int
		wantErr  error
	}{
		{name: "defaults", mutate: func(*config.Config) {}, wantOpts: 1},
		{
			name:     "everything set",
			mutate:   func(c *config.Config) { c.Render.Highlight = true; c.CSS.Style = "preview" },
			timeout:  time.Minute,
			wantOpts: 4,
		},
		{
			name:     "unknown highlight style surfaces at construction",
			mutate:   func(c *config.Config) { c.Render.Highlight = true; c.Render.HighlightStyle = "nope" },
			wantOpts: 2,
			wantErr:  mdeditor.ErrUnknownHighlightStyle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			opts := buildConverterOptions(cfg, tt.timeout, nil)
			if len(opts) != tt.wantOpts {
				t.Errorf("len(opts) = %d, want %d", len(opts), tt.wantOpts)
			}

			conv, err := mdeditor.NewConverter(opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewConverter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			_ = conv.Close()
		})
	}
}
