package main

import (
	"context"
	"fmt"

	mdeditor "github.com/ashishkumardw/markdown-editor"
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input mdeditor.Input) (*mdeditor.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*mdeditor.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire() (CLIConverter, error)
	Release(CLIConverter)
	Size() int
	Close() error
}

// poolAdapter exposes mdeditor.ConverterPool as a Pool.
type poolAdapter struct {
	pool *mdeditor.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

// newPoolAdapter creates a pool of size converters built with opts.
func newPoolAdapter(size int, opts []mdeditor.Option) Pool {
	return &poolAdapter{pool: mdeditor.NewConverterPool(size, opts...)}
}

// Acquire gets a converter, creating it on first use.
func (a *poolAdapter) Acquire() (CLIConverter, error) {
	conv, err := a.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// Release returns a converter obtained from Acquire.
// Panics on a converter of another type (programmer error).
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*mdeditor.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

// Size returns the pool capacity.
func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// Close releases every browser started by the pool.
func (a *poolAdapter) Close() error {
	return a.pool.Close()
}
