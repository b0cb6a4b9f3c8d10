// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vectors reads input vectors for a simulation.
//
// Input files hold one vector per line. Blank lines are ignored and '#'
// starts a comment. Values are written either as a dense string of symbols
//
//	01X1
//
// or separated by ';', ',' or white space:
//
//	0;1;X;1
//	0, 1, x, 1
//
// Symbols are those accepted by logicsim.ParseValue.
//
package vectors

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/db47h/logicsim"
)

// Error is returned for invalid input lines.
//
type Error struct {
	Line int
	Col  int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, col %d: %v", e.Line, e.Col, e.Err)
}

// Unwrap returns the underlying error.
//
func (e *Error) Unwrap() error { return e.Err }

func isSep(r rune) bool {
	return r == ';' || r == ',' || unicode.IsSpace(r)
}

// ParseLine parses a single vector. It returns nil for blank and comment
// lines. Errors report 1-based column numbers.
//
func ParseLine(s string) ([]logicsim.Value, error) {
	t := strings.TrimSpace(s)
	if t == "" || t[0] == '#' {
		return nil, nil
	}
	var row []logicsim.Value
	col := 0
	for _, r := range s {
		col++
		if r == '#' {
			break
		}
		if isSep(r) {
			continue
		}
		v, err := logicsim.ParseValue(r)
		if err != nil {
			return nil, &Error{Col: col, Err: err}
		}
		row = append(row, v)
	}
	return row, nil
}

// Read reads all vectors from r.
//
func Read(r io.Reader) ([][]logicsim.Value, error) {
	var rows [][]logicsim.Value
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		row, err := ParseLine(s.Text())
		if err != nil {
			e := err.(*Error)
			e.Line = line
			return nil, errors.WithStack(e)
		}
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows, errors.WithStack(s.Err())
}

// ReadFile reads all vectors from the named file.
//
func ReadFile(name string) ([][]logicsim.Value, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	rows, err := Read(f)
	return rows, errors.Wrap(err, name)
}

// Write writes rows to w, one per line, with values separated by sep.
//
func Write(w io.Writer, rows [][]logicsim.Value, sep string) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		bw.WriteString(logicsim.FormatVector(row, sep))
		bw.WriteByte('\n')
	}
	return errors.WithStack(bw.Flush())
}
