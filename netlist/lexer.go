// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import "unicode"

// Tokens
const (
	tokEOF tokenType = iota
	tokIdent
	tokLParen
	tokRParen
	tokComma
	tokEqual
)

type tokenType int

var tokenNames = [...]string{
	tokEOF:    "end of line",
	tokIdent:  "identifier",
	tokLParen: "'('",
	tokRParen: "')'",
	tokComma:  "','",
	tokEqual:  "'='",
}

func (t tokenType) String() string { return tokenNames[t] }

type token struct {
	typ tokenType
	col int // 1-based column
	val string
}

func (t token) String() string {
	if t.typ == tokIdent {
		return "identifier " + t.val
	}
	return t.typ.String()
}

// lexer splits a single netlist line into tokens. A '#' starts a comment
// that runs to the end of the line. Identifiers are runs of any characters
// other than white space and the punctuation "()=,#", so that net names like
// "G1.3" or "bus[4]" need no quoting.
//
type lexer struct {
	line []rune
	pos  int
}

func isPunct(r rune) bool {
	switch r {
	case '(', ')', '=', ',', '#':
		return true
	}
	return false
}

func (l *lexer) next() token {
	for l.pos < len(l.line) && unicode.IsSpace(l.line[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.line) || l.line[l.pos] == '#' {
		l.pos = len(l.line)
		return token{typ: tokEOF, col: l.pos + 1}
	}
	start := l.pos
	l.pos++
	switch l.line[start] {
	case '(':
		return token{typ: tokLParen, col: start + 1}
	case ')':
		return token{typ: tokRParen, col: start + 1}
	case ',':
		return token{typ: tokComma, col: start + 1}
	case '=':
		return token{typ: tokEqual, col: start + 1}
	}
	for l.pos < len(l.line) {
		r := l.line[l.pos]
		if unicode.IsSpace(r) || isPunct(r) {
			break
		}
		l.pos++
	}
	return token{typ: tokIdent, col: start + 1, val: string(l.line[start:l.pos])}
}
