package main

import (
	"context"
	"fmt"

	mdeditor "github.com/ashishkumardw/markdown-editor"
)

// runTasksCmd lists the task items of a markdown file, one per line:
// line index, checkbox, text, separated by tabs.
func runTasksCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseTasksFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	path, err := singleFileArg(positional)
	if err != nil {
		return err
	}

	markdown, err := (&mdeditor.FileSource{Path: path}).Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	tasks := mdeditor.Tasks(markdown)
	done := 0
	for _, task := range tasks {
		if task.Checked {
			done++
			if flags.pending {
				continue
			}
		}
		fmt.Fprintf(env.Stdout, "%d\t%s\t%s\n", task.Line, checkbox(task.Checked), task.Text)
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "%s: %d of %d done\n", path, done, len(tasks))
	}
	return nil
}

// checkbox renders a task state the way it is written in source.
func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
