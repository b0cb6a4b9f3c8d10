// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// A Sink receives the primary output values of each simulation step.
// The values slice is only valid for the duration of the call.
//
type Sink interface {
	Emit(step int, values []Value) error
}

// SinkFunc adapts a function to the Sink interface.
//
type SinkFunc func(step int, values []Value) error

// Emit calls f(step, values).
//
func (f SinkFunc) Emit(step int, values []Value) error { return f(step, values) }

// DefaultSeparator separates values in LineWriter output.
//
const DefaultSeparator = ";"

// LineWriter writes one line per step, values separated by a separator.
//
type LineWriter struct {
	w   *bufio.Writer
	sep string
}

// NewLineWriter returns a LineWriter writing to w. If sep is empty,
// DefaultSeparator is used. Callers must call Flush once done.
//
func NewLineWriter(w io.Writer, sep string) *LineWriter {
	if sep == "" {
		sep = DefaultSeparator
	}
	return &LineWriter{w: bufio.NewWriter(w), sep: sep}
}

// Emit implements Sink.
//
func (l *LineWriter) Emit(_ int, values []Value) error {
	for i, v := range values {
		if i > 0 {
			l.w.WriteString(l.sep)
		}
		l.w.WriteString(v.String())
	}
	return errors.Wrap(l.w.WriteByte('\n'), "write output")
}

// Flush flushes buffered output.
//
func (l *LineWriter) Flush() error {
	return errors.Wrap(l.w.Flush(), "flush output")
}

// Trace is a Sink that records all output vectors.
//
type Trace [][]Value

// Emit implements Sink.
//
func (t *Trace) Emit(_ int, values []Value) error {
	*t = append(*t, append([]Value(nil), values...))
	return nil
}

// Strings returns the trace as lines formatted like LineWriter output with
// the given separator.
//
func (t Trace) Strings(sep string) []string {
	out := make([]string, len(t))
	var b strings.Builder
	for i, row := range t {
		b.Reset()
		for j, v := range row {
			if j > 0 {
				b.WriteString(sep)
			}
			b.WriteString(v.String())
		}
		out[i] = b.String()
	}
	return out
}

// MultiSink duplicates its output to all the provided sinks. It stops at the
// first error.
//
func MultiSink(sinks ...Sink) Sink {
	return SinkFunc(func(step int, values []Value) error {
		for _, s := range sinks {
			if err := s.Emit(step, values); err != nil {
				return err
			}
		}
		return nil
	})
}

// FormatVector formats values like LineWriter does, without a line terminator.
//
func FormatVector(values []Value, sep string) string {
	return Trace{values}.Strings(sep)[0]
}
