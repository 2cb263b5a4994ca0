package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestNewChromaHighlighter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{name: "default style", style: ""},
		{name: "known style", style: "monokai"},
		{name: "unknown style", style: "no-such-style", wantErr: ErrUnknownHighlightStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := NewChromaHighlighter(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewChromaHighlighter(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewChromaHighlighter(%q) error = %v", tt.style, err)
			}
			if h == nil {
				t.Fatal("NewChromaHighlighter() returned nil")
			}
		})
	}
}

func TestChromaHighlighter_FormatCode(t *testing.T) {
	t.Parallel()

	h, err := NewChromaHighlighter("")
	if err != nil {
		t.Fatalf("NewChromaHighlighter() error = %v", err)
	}

	tests := []struct {
		name         string
		code         string
		lang         string
		wantContains string
		wantExact    string
	}{
		{
			name:         "known language is highlighted",
			code:         "package main",
			lang:         "go",
			wantContains: `class="chroma"`,
		},
		{
			name:      "empty language falls back to plain",
			code:      "<b>x</b>",
			lang:      "",
			wantExact: "<pre><code><b>x</b></code></pre>",
		},
		{
			name:      "unknown language falls back to plain",
			code:      "x",
			lang:      "no-such-language",
			wantExact: "<pre><code>x</code></pre>",
		},
		{
			name:         "highlighted output is escaped",
			code:         `x := "<b>"`,
			lang:         "go",
			wantContains: "&lt;b&gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := h.FormatCode(tt.code, tt.lang)
			if tt.wantExact != "" && got != tt.wantExact {
				t.Errorf("FormatCode() = %q, want %q", got, tt.wantExact)
			}
			if tt.wantContains != "" && !strings.Contains(got, tt.wantContains) {
				t.Errorf("FormatCode() = %q, want to contain %q", got, tt.wantContains)
			}
		})
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	css, err := HighlightCSS("github")
	if err != nil {
		t.Fatalf("HighlightCSS() error = %v", err)
	}
	if !strings.Contains(css, ".chroma") {
		t.Errorf("HighlightCSS() missing .chroma rules: %q", css)
	}

	if _, err := HighlightCSS("no-such-style"); !errors.Is(err, ErrUnknownHighlightStyle) {
		t.Errorf("HighlightCSS(unknown) error = %v, want %v", err, ErrUnknownHighlightStyle)
	}
}

func TestLiteConverter_WithHighlighter(t *testing.T) {
	t.Parallel()

	h, err := NewChromaHighlighter("")
	if err != nil {
		t.Fatalf("NewChromaHighlighter() error = %v", err)
	}

	got := NewLiteConverter(h).Render("```go\nfunc f() {}\n```\n```\nplain\n```")
	if !strings.Contains(got, `class="chroma"`) {
		t.Errorf("Render() = %q, want highlighted go block", got)
	}
	if !strings.Contains(got, "<pre><code>plain</code></pre>") {
		t.Errorf("Render() = %q, want plain block for untagged fence", got)
	}
}
