// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "strings"

// Kind identifies the logic function of an element.
//
type Kind uint8

// Element kinds. KindUnknown elements perform no computation.
//
const (
	KindUnknown Kind = iota
	KindAnd
	KindOr
	KindNot
	KindDFF
)

// Unbounded is the MaxIn value of kinds that accept any number of inputs.
//
const Unbounded = -1

// KindInfo describes an element kind: its printable type name and input
// arity.
//
type KindInfo struct {
	Name  string
	MinIn int
	MaxIn int // Unbounded for n-ary gates
	// Clocked elements are evaluated once per step, before combinational
	// logic.
	Clocked bool
}

var kinds = [...]KindInfo{
	KindUnknown: {Name: "UNKNOWN", MinIn: 0, MaxIn: Unbounded},
	KindAnd:     {Name: "AND", MinIn: 1, MaxIn: Unbounded},
	KindOr:      {Name: "OR", MinIn: 1, MaxIn: Unbounded},
	KindNot:     {Name: "NOT", MinIn: 1, MaxIn: 1},
	KindDFF:     {Name: "DFF", MinIn: 2, MaxIn: 2, Clocked: true},
}

// Info returns the catalog entry for k.
//
func (k Kind) Info() KindInfo {
	if int(k) < len(kinds) {
		return kinds[k]
	}
	return kinds[KindUnknown]
}

func (k Kind) String() string { return k.Info().Name }

// Clocked returns true for storage elements.
//
func (k Kind) Clocked() bool { return k.Info().Clocked }

// accepts returns true if n inputs are valid for k.
func (k Kind) accepts(n int) bool {
	i := k.Info()
	return n >= i.MinIn && (i.MaxIn == Unbounded || n <= i.MaxIn)
}

// ParseKind returns the Kind for a type name. The lookup is case insensitive.
// Unrecognized names return KindUnknown.
//
func ParseKind(name string) Kind {
	for k := KindAnd; int(k) < len(kinds); k++ {
		if strings.EqualFold(name, kinds[k].Name) {
			return k
		}
	}
	return KindUnknown
}
