// Package config loads mdeditor configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ashishkumardw/markdown-editor/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigTooLarge  = errors.New("config file exceeds maximum size")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// MaxConfigSize limits config input to prevent memory exhaustion.
const MaxConfigSize = 1 << 20

// appDirName is the directory under the user config dir searched by name.
const appDirName = "mdeditor"

// Field length limits.
const (
	MaxTitleLength          = 200
	MaxStyleLength          = 2048 // style name or file path
	MaxHighlightStyleLength = 50
	MaxPathLength           = 4096
)

// Engine names accepted in render.engine.
const (
	EngineLite     = "lite"
	EngineGoldmark = "goldmark"
)

// Config holds all configuration for rendering and export.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Render   RenderConfig   `yaml:"render"`
	CSS      CSSConfig      `yaml:"css"`
	Page     PageConfig     `yaml:"page"`
	Document DocumentConfig `yaml:"document"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source file
}

// CSSConfig selects the stylesheet for print documents.
type CSSConfig struct {
	Style string `yaml:"style"` // style name or CSS file path (empty = print)
}

// RenderConfig selects the markdown engine and fence highlighting.
type RenderConfig struct {
	Engine         string `yaml:"engine"`         // "lite" (default) or "goldmark"
	Highlight      bool   `yaml:"highlight"`      // highlight fenced code by language tag
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name (default: github)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches, 0 = default
}

// DocumentConfig controls print-document scaffolding.
type DocumentConfig struct {
	Title      string `yaml:"title"`      // empty = first H1, then file name
	Standalone bool   `yaml:"standalone"` // wrap HTML output in <html>/<head>/<body>
}

// DefaultConfig returns a configuration that renders fragments with the lite
// engine and no highlighting.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{Engine: EngineLite},
	}
}

// Validate checks enum values, ranges and field lengths.
// Called by LoadConfig; also usable on a Config built by hand.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"css.style", c.CSS.Style, MaxStyleLength},
		{"render.highlightStyle", c.Render.HighlightStyle, MaxHighlightStyleLength},
		{"document.title", c.Document.Title, MaxTitleLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Render.Engine) {
	case "", EngineLite, EngineGoldmark:
	default:
		return fmt.Errorf("%w: render.engine %q (must be lite or goldmark)", ErrInvalidValue, c.Render.Engine)
	}

	switch strings.ToLower(c.Page.Size) {
	case "", "letter", "a4", "legal":
	default:
		return fmt.Errorf("%w: page.size %q (must be letter, a4, or legal)", ErrInvalidValue, c.Page.Size)
	}

	switch strings.ToLower(c.Page.Orientation) {
	case "", "portrait", "landscape":
	default:
		return fmt.Errorf("%w: page.orientation %q (must be portrait or landscape)", ErrInvalidValue, c.Page.Orientation)
	}

	if c.Page.Margin != 0 && (c.Page.Margin < 0.25 || c.Page.Margin > 3.0) {
		return fmt.Errorf("%w: page.margin %.2f (must be between 0.25 and 3.0)", ErrInvalidValue, c.Page.Margin)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path; otherwise it is a
// name searched in standard locations. Unknown fields are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates YAML config data.
func Parse(data []byte) (*Config, error) {
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}
	if cfg.Render.Engine == "" {
		cfg.Render.Engine = EngineLite
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries ./name.yaml, ./name.yml, then the same under <user config dir>/mdeditor/.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{"."}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, appDirName))
	}

	tried := make([]string, 0, len(extensions)*len(dirs))
	for _, dir := range dirs {
		for _, ext := range extensions {
			candidate := filepath.Join(dir, name+ext)
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			tried = append(tried, candidate)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
