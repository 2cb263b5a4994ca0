package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ashishkumardw/markdown-editor/internal/config"
)

// envPrefix marks the environment variables read by mdeditor.
const envPrefix = "MDEDITOR_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string        // MDEDITOR_CONFIG: config file name or path
	Style          string        // MDEDITOR_STYLE: CSS style name or path
	Timeout        time.Duration // MDEDITOR_TIMEOUT: PDF generation timeout
	InputDir       string        // MDEDITOR_INPUT_DIR: default input directory
	OutputDir      string        // MDEDITOR_OUTPUT_DIR: default output directory
	Engine         string        // MDEDITOR_ENGINE: lite, goldmark
	HighlightStyle string        // MDEDITOR_HIGHLIGHT_STYLE: chroma style, enables highlighting
	PageSize       string        // MDEDITOR_PAGE_SIZE: a4, letter, legal
	Workers        int           // MDEDITOR_WORKERS: parallel workers
}

// knownEnvVars lists valid MDEDITOR_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDEDITOR_CONFIG":          true,
	"MDEDITOR_STYLE":           true,
	"MDEDITOR_TIMEOUT":         true,
	"MDEDITOR_INPUT_DIR":       true,
	"MDEDITOR_OUTPUT_DIR":      true,
	"MDEDITOR_ENGINE":          true,
	"MDEDITOR_HIGHLIGHT_STYLE": true,
	"MDEDITOR_PAGE_SIZE":       true,
	"MDEDITOR_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed timeout and worker values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("MDEDITOR_CONFIG"),
		Style:          os.Getenv("MDEDITOR_STYLE"),
		InputDir:       os.Getenv("MDEDITOR_INPUT_DIR"),
		OutputDir:      os.Getenv("MDEDITOR_OUTPUT_DIR"),
		Engine:         os.Getenv("MDEDITOR_ENGINE"),
		HighlightStyle: os.Getenv("MDEDITOR_HIGHLIGHT_STYLE"),
		PageSize:       os.Getenv("MDEDITOR_PAGE_SIZE"),
	}

	if timeout := os.Getenv("MDEDITOR_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("MDEDITOR_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDEDITOR_* variables.
// Helps catch typos like MDEDITOR_STYEL.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty,
// so the order is: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeRenderFlags).
// The engine is the exception: config always carries one, so the env var
// wins over the lite default.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.CSS.Style == "" {
		cfg.CSS.Style = env.Style
	}

	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	if env.Engine != "" && (cfg.Render.Engine == "" || cfg.Render.Engine == config.EngineLite) {
		cfg.Render.Engine = env.Engine
	}

	// Highlight style auto-enables highlighting
	if env.HighlightStyle != "" && cfg.Render.HighlightStyle == "" {
		cfg.Render.HighlightStyle = env.HighlightStyle
		cfg.Render.Highlight = true
	}

	if env.PageSize != "" && cfg.Page.Size == "" {
		cfg.Page.Size = env.PageSize
	}
}
