package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	mdeditor "github.com/ashishkumardw/markdown-editor"
	"github.com/ashishkumardw/markdown-editor/internal/assets"
	"github.com/ashishkumardw/markdown-editor/internal/config"
)

// Sentinel errors for the render command.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// renderParams groups parameters shared across batch/file rendering.
type renderParams struct {
	title    string
	page     *mdeditor.PageSettings
	document bool // wrap HTML output in a print document
	pdf      bool // export PDF instead of HTML
}

// poolFactory creates the converter pool for a batch.
type poolFactory func(size int, opts []mdeditor.Option) Pool

// runRenderCmd parses render flags and runs the render command.
func runRenderCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	configureMaxProcs(flags.common.verbose, env.Stderr)
	return runRender(ctx, positional, flags, env, newPoolAdapter)
}

// runRender orchestrates discovery, conversion and reporting.
func runRender(ctx context.Context, positionalArgs []string, flags *renderFlags, env *Environment, newPool poolFactory) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// Priority: flags > env > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeRenderFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	ext := extHTML
	if flags.pdf {
		ext = extPDF
	}
	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir, ext)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	page, err := buildPageSettings(cfg)
	if err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := mdeditor.ResolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}

	pool := newPool(poolSize, buildConverterOptions(cfg, timeout, env.AssetLoader))
	defer pool.Close()

	params := &renderParams{
		title:    cfg.Document.Title,
		page:     page,
		document: cfg.Document.Standalone,
		pdf:      flags.pdf,
	}

	results := renderBatch(ctx, pool, files, params, env)

	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed: %w", failed, len(results), firstError(results))
	}
	return nil
}

// loadConfig loads the config named by the flag, then the env var.
// Without either, defaults are used.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeRenderFlags copies explicitly set flags over config values.
func mergeRenderFlags(flags *renderFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}

	if flags.engine.engine != "" {
		cfg.Render.Engine = flags.engine.engine
	}
	if flags.engine.highlight {
		cfg.Render.Highlight = true
	}
	if flags.engine.highlightStyle != "" {
		cfg.Render.HighlightStyle = flags.engine.highlightStyle
		cfg.Render.Highlight = true
	}

	if flags.document.standalone {
		cfg.Document.Standalone = true
	}
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.style != "" {
		cfg.CSS.Style = flags.document.style
	}

	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.orientation != "" {
		cfg.Page.Orientation = flags.page.orientation
	}
	if flags.page.margin > 0 {
		cfg.Page.Margin = flags.page.margin
	}
}

// resolveTimeout picks the flag value, then the env value.
// Zero means the library default.
func resolveTimeout(flagValue string, envValue time.Duration) (time.Duration, error) {
	if flagValue == "" {
		return envValue, nil
	}
	d, err := time.ParseDuration(flagValue)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flagValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidTimeout, flagValue)
	}
	return d, nil
}

// resolveInputPath returns the positional input, or the configured default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(args))
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// buildPageSettings creates mdeditor.PageSettings from config.
// Returns nil (library defaults) when no page field is set.
func buildPageSettings(cfg *config.Config) (*mdeditor.PageSettings, error) {
	hasConfig := cfg.Page.Size != "" || cfg.Page.Orientation != "" || cfg.Page.Margin > 0
	if !hasConfig {
		return nil, nil
	}

	ps := &mdeditor.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}

	// Apply defaults
	if ps.Size == "" {
		ps.Size = mdeditor.PageSizeLetter
	}
	if ps.Orientation == "" {
		ps.Orientation = mdeditor.OrientationPortrait
	}
	if ps.Margin == 0 {
		ps.Margin = mdeditor.DefaultMargin
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// buildConverterOptions maps config to converter options.
func buildConverterOptions(cfg *config.Config, timeout time.Duration, loader assets.AssetLoader) []mdeditor.Option {
	opts := []mdeditor.Option{mdeditor.WithEngine(mdeditor.Engine(cfg.Render.Engine))}
	if loader != nil {
		opts = append(opts, mdeditor.WithAssetLoader(loader))
	}
	if cfg.Render.Highlight {
		opts = append(opts, mdeditor.WithHighlighting(cfg.Render.HighlightStyle))
	}
	if cfg.CSS.Style != "" {
		opts = append(opts, mdeditor.WithStyle(cfg.CSS.Style))
	}
	if timeout > 0 {
		opts = append(opts, mdeditor.WithTimeout(timeout))
	}
	return opts
}
