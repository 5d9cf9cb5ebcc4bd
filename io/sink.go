// Package argio centralizes the process IO used by go-argspec. Every
// user-facing line the library prints - diagnostics, help text, the version
// string - goes through a Sink, so embedding programs and tests can redirect
// or capture output without touching global state.
package argio

import (
	"bytes"
	"fmt"
	stdio "io"
	"os"
)

// Sink holds the writers for normal and diagnostic output.
type Sink struct {
	out stdio.Writer
	err stdio.Writer
}

// New returns a sink bound to process stdio.
func New() *Sink {
	return &Sink{out: os.Stdout, err: os.Stderr}
}

// WithOut sets the standard output writer and returns the sink for chaining.
func (s *Sink) WithOut(w stdio.Writer) *Sink { s.out = w; return s }

// WithErr sets the diagnostic output writer and returns the sink for chaining.
func (s *Sink) WithErr(w stdio.Writer) *Sink { s.err = w; return s }

// Out returns the configured standard output writer.
func (s *Sink) Out() stdio.Writer { return s.out }

// Err returns the configured diagnostic output writer.
func (s *Sink) Err() stdio.Writer { return s.err }

// Printf writes formatted normal output (help text, version string).
func (s *Sink) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// Errorf writes a formatted diagnostic line.
func (s *Sink) Errorf(format string, args ...any) {
	fmt.Fprintf(s.err, format, args...)
}

// Capture returns a sink backed by in-memory buffers together with those
// buffers. Tests use it as an explicit per-test output context instead of
// sharing process stdio.
func Capture() (*Sink, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	return &Sink{out: out, err: errBuf}, out, errBuf
}
