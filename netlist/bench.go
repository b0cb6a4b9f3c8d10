// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist loads circuits from netlist files.
//
// Two formats are supported: the ISCAS-89 ".bench" format
//
//	# comment
//	INPUT(A)
//	OUTPUT(Y)
//	W = NAND(A, B)
//	Q = DFF(W)
//	Y = AND(Q, C)
//
// and a YAML format that lists elements explicitly, see ParseYAML.
//
// In bench files, elements are named after the net they drive.
//
package netlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/logicsim"
)

// ParseError is the error type returned for syntax and wiring errors in a
// netlist file.
//
type ParseError struct {
	File string
	Line int
	Col  int // 0 if unknown
	Err  error
}

func (e *ParseError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.File, e.Line, e.Col, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

// Unwrap returns the underlying error.
//
func (e *ParseError) Unwrap() error { return e.Err }

type benchParser struct {
	file string
	b    *logicsim.Builder
	l    lexer
	line int
}

func (p *benchParser) errorf(col int, format string, args ...interface{}) error {
	return errors.WithStack(&ParseError{File: p.file, Line: p.line, Col: col, Err: errors.Errorf(format, args...)})
}

func (p *benchParser) unexpected(t token) error {
	return p.errorf(t.col, "unexpected %v", t)
}

func (p *benchParser) expect(typ tokenType) (token, error) {
	t := p.l.next()
	if t.typ != typ {
		return t, p.unexpected(t)
	}
	return t, nil
}

// args parses an argument list. The opening parenthesis has already been
// read.
//
func (p *benchParser) args() ([]string, error) {
	var ins []string
	t := p.l.next()
	if t.typ == tokRParen {
		return ins, nil
	}
	for {
		if t.typ != tokIdent {
			return nil, p.unexpected(t)
		}
		ins = append(ins, t.val)
		t = p.l.next()
		switch t.typ {
		case tokRParen:
			return ins, nil
		case tokComma:
			t = p.l.next()
		default:
			return nil, p.unexpected(t)
		}
	}
}

func (p *benchParser) parseLine(s string) error {
	p.l = lexer{line: []rune(s)}
	t := p.l.next()
	if t.typ == tokEOF {
		return nil
	}
	if t.typ != tokIdent {
		return p.unexpected(t)
	}
	lhs := t
	switch t = p.l.next(); t.typ {
	case tokLParen:
		return p.declaration(lhs)
	case tokEqual:
	default:
		return p.unexpected(t)
	}

	typ, err := p.expect(tokIdent)
	if err != nil {
		return err
	}
	if _, err = p.expect(tokLParen); err != nil {
		return err
	}
	ins, err := p.args()
	if err != nil {
		return err
	}
	if _, err = p.expect(tokEOF); err != nil {
		return err
	}
	if err = addGate(p.b, lhs.val, typ.val, lhs.val, ins); err != nil {
		return errors.WithStack(&ParseError{File: p.file, Line: p.line, Col: lhs.col, Err: err})
	}
	return nil
}

// declaration parses INPUT(...) and OUTPUT(...).
//
func (p *benchParser) declaration(kw token) error {
	var decl func(...string) error
	switch strings.ToUpper(kw.val) {
	case "INPUT":
		decl = p.b.AddInput
	case "OUTPUT":
		decl = p.b.AddOutput
	default:
		return p.errorf(kw.col, "unknown declaration %s", kw.val)
	}
	names, err := p.args()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return p.errorf(kw.col, "empty %s declaration", kw.val)
	}
	if _, err = p.expect(tokEOF); err != nil {
		return err
	}
	return decl(names...)
}

// ParseBench reads a circuit in bench format from r. name is used as the
// circuit name and in error messages.
//
func ParseBench(r io.Reader, name string) (*logicsim.Circuit, error) {
	return parseBench(r, name, name)
}

func parseBench(r io.Reader, file, name string) (*logicsim.Circuit, error) {
	p := &benchParser{file: file, b: logicsim.NewBuilder(name)}
	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		if err := p.parseLine(s.Text()); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, file)
	}
	c, err := p.b.Build()
	return c, errors.Wrap(err, file)
}

// LoadBench loads a circuit in bench format from the named file. The circuit
// is named after the file's base name, without extension.
//
func LoadBench(path string) (*logicsim.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	return parseBench(f, path, baseName(path))
}

func baseName(path string) string {
	b := filepath.Base(path)
	return strings.TrimSuffix(b, filepath.Ext(b))
}
