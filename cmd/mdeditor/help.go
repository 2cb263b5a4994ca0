package main

import (
	"fmt"
	"io"
	"strings"

	mdeditor "github.com/ashishkumardw/markdown-editor"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdeditor <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render markdown files to HTML or PDF")
	fmt.Fprintln(w, "  toggle     Check or uncheck a task item in a markdown file")
	fmt.Fprintln(w, "  tasks      List the task items of a markdown file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdeditor help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdeditor render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown files to HTML fragments, print documents or PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <duration>    PDF generation timeout (default: 30s)")
	fmt.Fprintln(w, "      --pdf                   Export PDF instead of HTML (requires Chrome)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <name>         Markdown engine: lite (default), goldmark")
	fmt.Fprintln(w, "      --highlight             Highlight fenced code by language tag")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "  -d, --document              Wrap HTML in a standalone print document")
	fmt.Fprintln(w, "      --title <s>             Document title (default: first H1, then file name)")
	fmt.Fprintf(w, "  -s, --style <name|path>     Stylesheet: %s, or a CSS file (default: %s)\n",
		strings.Join(mdeditor.Styles(), ", "), mdeditor.DefaultStyle)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page (PDF):")
	fmt.Fprintln(w, "  -p, --page-size <size>      letter, a4, legal (default: letter)")
	fmt.Fprintln(w, "      --orientation <o>       portrait, landscape (default: portrait)")
	fmt.Fprintln(w, "      --margin <inches>       0.25-3.0 (default: 0.5)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDEDITOR_CONFIG, MDEDITOR_STYLE, MDEDITOR_TIMEOUT, MDEDITOR_INPUT_DIR,")
	fmt.Fprintln(w, "  MDEDITOR_OUTPUT_DIR, MDEDITOR_ENGINE, MDEDITOR_HIGHLIGHT_STYLE,")
	fmt.Fprintln(w, "  MDEDITOR_PAGE_SIZE, MDEDITOR_WORKERS")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN             Chrome binary for PDF export")
}

// printToggleUsage prints usage for the toggle command.
func printToggleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdeditor toggle <file> --line <n> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check (or uncheck) the task item on a line and save the file.")
	fmt.Fprintln(w, "Lines are zero-based, as listed by 'mdeditor tasks'. A line that is not")
	fmt.Fprintln(w, "a task item, or a task already in the requested state, is left unchanged.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -l, --line <n>              Zero-based line index of the task (required)")
	fmt.Fprintln(w, "  -u, --uncheck               Clear the checkbox instead of checking it")
	fmt.Fprintln(w, "      --print                 Print the re-rendered HTML after a change")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show detailed output")
}

// printTasksUsage prints usage for the tasks command.
func printTasksUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdeditor tasks <file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List task items as: line<TAB>[x] or [ ]<TAB>text")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --pending               List unchecked tasks only")
	fmt.Fprintln(w, "  -v, --verbose               Print a completion summary")
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "toggle":
		printToggleUsage(env.Stdout)
	case "tasks":
		printTasksUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdeditor version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdeditor help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
