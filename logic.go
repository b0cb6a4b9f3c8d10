// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// A Value is a three-valued logic signal.
//
type Value uint8

// Logic values. The zero value is Lo.
//
const (
	Lo Value = iota // logic 0
	Hi              // logic 1
	X               // unknown
)

var valueSym = [...]string{Lo: "0", Hi: "1", X: "X"}

func (v Value) String() string {
	if int(v) < len(valueSym) {
		return valueSym[v]
	}
	return "?"
}

// Bool returns a Value from a bool.
//
func Bool(b bool) Value {
	if b {
		return Hi
	}
	return Lo
}

// ParseValue returns the Value for the symbol r. 0 and 1 are the known
// values, x, X, u, U and - all denote an unknown value.
//
func ParseValue(r rune) (Value, error) {
	switch r {
	case '0':
		return Lo, nil
	case '1':
		return Hi, nil
	case 'x', 'X', 'u', 'U', '-':
		return X, nil
	}
	return X, errors.Errorf("invalid logic value %q", r)
}

// And reduces ins with AND semantics: Lo dominates, then X.
//
func And(ins ...Value) Value {
	r := Hi
	for _, v := range ins {
		switch v {
		case Lo:
			return Lo
		case X:
			r = X
		}
	}
	return r
}

// Or reduces ins with OR semantics: Hi dominates, then X.
//
func Or(ins ...Value) Value {
	r := Lo
	for _, v := range ins {
		switch v {
		case Hi:
			return Hi
		case X:
			r = X
		}
	}
	return r
}

// Not inverts in. An unknown input leaves the output at its previous value
// prev.
//
func Not(in, prev Value) Value {
	switch in {
	case Lo:
		return Hi
	case Hi:
		return Lo
	}
	return prev
}

// Latch returns data if clk is Hi, prev otherwise. This is a level-sampled
// storage cell: the simulator guarantees that it is evaluated once per step.
//
func Latch(clk, data, prev Value) Value {
	if clk == Hi {
		return data
	}
	return prev
}

// eval computes the next output value of an element of kind k given its
// input values and previous output.
//
func eval(k Kind, ins []Value, prev Value) Value {
	switch k {
	case KindAnd:
		return And(ins...)
	case KindOr:
		return Or(ins...)
	case KindNot:
		if len(ins) == 0 {
			return prev
		}
		return Not(ins[0], prev)
	case KindDFF:
		if len(ins) < 2 {
			return prev
		}
		return Latch(ins[0], ins[1], prev)
	}
	return prev
}
