package main

import (
	"context"
	"fmt"
	"time"

	mdeditor "github.com/ashishkumardw/markdown-editor"
)

// runToggleCmd checks or unchecks one task item and saves the file.
// A toggle that changes nothing is reported, not treated as an error.
func runToggleCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseToggleFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	path, err := singleFileArg(positional)
	if err != nil {
		return err
	}
	if !flags.lineSet {
		return fmt.Errorf("%w: --line is required", ErrUsage)
	}

	start := env.Now()
	checked := !flags.uncheck
	changed := false
	toggler := mdeditor.NewTaskToggler(&mdeditor.FileSource{Path: path})
	handler := toggler.HandlerFunc(ctx, func(html string) {
		changed = true
		if flags.print {
			fmt.Fprint(env.Stdout, html)
		}
	})

	if err := handler(flags.line, checked); err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "toggle took %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}

	if flags.common.quiet {
		return nil
	}
	if !changed {
		fmt.Fprintf(env.Stderr, "%s:%d unchanged (not a task item, or already %s)\n", path, flags.line, checkState(checked))
		return nil
	}
	if !flags.print {
		fmt.Fprintf(env.Stdout, "%s:%d %s\n", path, flags.line, checkState(checked))
	}
	return nil
}

// checkState names a checkbox state.
func checkState(checked bool) string {
	if checked {
		return "checked"
	}
	return "unchecked"
}

// singleFileArg returns the only positional argument, a markdown file.
func singleFileArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", ErrNoInput
	case 1:
	default:
		return "", fmt.Errorf("%w: expected one file, got %d", ErrUsage, len(args))
	}
	if err := validateMarkdownExtension(args[0]); err != nil {
		return "", err
	}
	return args[0], nil
}
