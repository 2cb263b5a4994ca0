package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks invalid flags or arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// engineFlags holds rendering engine flags.
type engineFlags struct {
	engine         string
	highlight      bool
	highlightStyle string
}

// documentFlags holds print document flags.
type documentFlags struct {
	standalone bool
	title      string
	style      string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	config   string
	output   string
	workers  int
	timeout  string
	pdf      bool
	engine   engineFlags
	document documentFlags
	page     pageFlags
}

// toggleFlags holds flags for the toggle command.
type toggleFlags struct {
	common  commonFlags
	line    int
	lineSet bool
	uncheck bool
	print   bool
}

// tasksFlags holds flags for the tasks command.
type tasksFlags struct {
	pending bool
	verbose bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// addEngineFlags adds rendering engine flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: lite, goldmark")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code by language tag")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for highlighting (implies --highlight)")
}

// addDocumentFlags adds print document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVarP(&f.standalone, "document", "d", false, "wrap HTML in a standalone print document")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = first H1, then file name)")
	fs.StringVarP(&f.style, "style", "s", "", "CSS style name or file path")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseArgs runs fs.Parse, wrapping parse failures in ErrUsage.
// flag.ErrHelp is returned as-is so callers can exit cleanly.
func parseArgs(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	fs := newFlagSet("render", w, printRenderUsage)
	f := &renderFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.pdf, "pdf", false, "export PDF instead of HTML (requires Chrome)")

	addCommonFlags(fs, &f.common)
	addEngineFlags(fs, &f.engine)
	addDocumentFlags(fs, &f.document)
	addPageFlags(fs, &f.page)

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseToggleFlags parses toggle command flags and returns positional args.
func parseToggleFlags(args []string, w io.Writer) (*toggleFlags, []string, error) {
	fs := newFlagSet("toggle", w, printToggleUsage)
	f := &toggleFlags{}

	fs.IntVarP(&f.line, "line", "l", 0, "zero-based line index of the task")
	fs.BoolVarP(&f.uncheck, "uncheck", "u", false, "clear the checkbox instead of checking it")
	fs.BoolVar(&f.print, "print", false, "print the re-rendered HTML after a change")
	addCommonFlags(fs, &f.common)

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	f.lineSet = fs.Changed("line")
	return f, fs.Args(), nil
}

// parseTasksFlags parses tasks command flags and returns positional args.
func parseTasksFlags(args []string, w io.Writer) (*tasksFlags, []string, error) {
	fs := newFlagSet("tasks", w, printTasksUsage)
	f := &tasksFlags{}

	fs.BoolVar(&f.pending, "pending", false, "list unchecked tasks only")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print a completion summary")

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
