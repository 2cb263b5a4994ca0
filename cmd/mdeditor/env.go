package main

import (
	"io"
	"os"
	"time"

	"github.com/ashishkumardw/markdown-editor/internal/assets"
)

// Environment carries the process dependencies commands touch: the clock
// used for timings, the output streams, and the stylesheet source.
// Tests swap in buffers and fixed clocks.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader
}

// DefaultEnv wires the real streams, wall clock and embedded styles.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
	}
}
