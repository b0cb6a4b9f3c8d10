// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package celllib provides a library of reusable cells for logicsim.
//
// Cells are expanded into the simulator's primitive elements (AND, OR, NOT
// and DFF) when placed in a circuit. Internal nets are named after the cell
// instance with the InternalPrefix prefix.
//
package celllib

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/db47h/logicsim"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
	pClk = "clk"
)

var (
	gateIn  = []string{pA, pB}
	gateOut = []string{pOut}
)

// Not is a NOT gate.
//
//	Inputs: in
//	Outputs: out
//	Function: out = !in
//
var Not = &Spec{
	Name:    "NOT",
	Inputs:  []string{pIn},
	Outputs: gateOut,
	Mount: func(s *Socket) error {
		return s.Add("not", logicsim.KindNot, s.Pin(pOut), s.Pin(pIn))
	},
}

// Buf is a buffer, implemented as a single input AND.
//
//	Inputs: in
//	Outputs: out
//	Function: out = in
//
var Buf = &Spec{
	Name:    "BUF",
	Inputs:  []string{pIn},
	Outputs: gateOut,
	Mount: func(s *Socket) error {
		return s.Add("buf", logicsim.KindAnd, s.Pin(pOut), s.Pin(pIn))
	},
}

// gate mounts an n-ary AND or OR with an optional output inverter.
type gate struct {
	kind   logicsim.Kind
	invert bool
}

func (g gate) mount(s *Socket, ins []string) error {
	if !g.invert {
		return s.Add(g.kind.String(), g.kind, s.Pin(pOut), ins...)
	}
	w := s.Wire(g.kind.String())
	if err := s.Add(g.kind.String(), g.kind, w, ins...); err != nil {
		return err
	}
	return s.Add("not", logicsim.KindNot, s.Pin(pOut), w)
}

func newGate(name string, k logicsim.Kind, invert bool) *Spec {
	g := gate{k, invert}
	return &Spec{
		Name:    name,
		Inputs:  gateIn,
		Outputs: gateOut,
		Mount: func(s *Socket) error {
			return g.mount(s, []string{s.Pin(pA), s.Pin(pB)})
		},
	}
}

func newGateN(name string, ways int, k logicsim.Kind, invert bool) *Spec {
	g := gate{k, invert}
	return &Spec{
		Name:    name + strconv.Itoa(ways),
		Inputs:  Bus(pIn, ways),
		Outputs: gateOut,
		Mount: func(s *Socket) error {
			return g.mount(s, s.Bus(pIn, ways))
		},
	}
}

// Two input gates.
//
//	Inputs: a, b
//	Outputs: out
//
var (
	And  = newGate("AND", logicsim.KindAnd, false)
	Nand = newGate("NAND", logicsim.KindAnd, true)
	Or   = newGate("OR", logicsim.KindOr, false)
	Nor  = newGate("NOR", logicsim.KindOr, true)
)

// AndN returns a N-Way AND gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] && in[1] && ... && in[n-1]
//
func AndN(ways int) *Spec { return newGateN("AND", ways, logicsim.KindAnd, false) }

// NandN returns a N-Way NAND gate.
//
func NandN(ways int) *Spec { return newGateN("NAND", ways, logicsim.KindAnd, true) }

// OrN returns a N-Way OR gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] || in[1] || ... || in[n-1]
//
func OrN(ways int) *Spec { return newGateN("OR", ways, logicsim.KindOr, false) }

// NorN returns a N-Way NOR gate.
//
func NorN(ways int) *Spec { return newGateN("NOR", ways, logicsim.KindOr, true) }

// xor adds out = (a && !b) || (!a && b) to s, with internal nets prefixed by
// tag.
func xor(s *Socket, tag, a, b, out string, invert bool) error {
	na, nb := s.Wire(tag+"na"), s.Wire(tag+"nb")
	w0, w1 := s.Wire(tag+"w0"), s.Wire(tag+"w1")
	var err error
	add := func(local string, k logicsim.Kind, out string, ins ...string) {
		if err == nil {
			err = s.Add(tag+local, k, out, ins...)
		}
	}
	add("na", logicsim.KindNot, na, a)
	add("nb", logicsim.KindNot, nb, b)
	add("w0", logicsim.KindAnd, w0, a, nb)
	add("w1", logicsim.KindAnd, w1, na, b)
	if invert {
		o := s.Wire(tag + "or")
		add("or", logicsim.KindOr, o, w0, w1)
		add("not", logicsim.KindNot, out, o)
	} else {
		add("or", logicsim.KindOr, out, w0, w1)
	}
	return err
}

// Xor is a XOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
var Xor = &Spec{
	Name:    "XOR",
	Inputs:  gateIn,
	Outputs: gateOut,
	Mount: func(s *Socket) error {
		return xor(s, "", s.Pin(pA), s.Pin(pB), s.Pin(pOut), false)
	},
}

// Xnor is a XNOR gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
var Xnor = &Spec{
	Name:    "XNOR",
	Inputs:  gateIn,
	Outputs: gateOut,
	Mount: func(s *Socket) error {
		return xor(s, "", s.Pin(pA), s.Pin(pB), s.Pin(pOut), true)
	},
}

func xorN(name string, ways int, invert bool) *Spec {
	return &Spec{
		Name:    name + strconv.Itoa(ways),
		Inputs:  Bus(pIn, ways),
		Outputs: gateOut,
		Mount: func(s *Socket) error {
			if ways < 2 {
				return errors.Errorf("need at least 2 inputs, got %d", ways)
			}
			in := s.Bus(pIn, ways)
			acc := in[0]
			for i := 1; i < ways; i++ {
				out := s.Pin(pOut)
				last := i == ways-1
				if !last {
					out = s.Wire("x" + strconv.Itoa(i))
				}
				if err := xor(s, strconv.Itoa(i)+".", acc, in[i], out, last && invert); err != nil {
					return err
				}
				acc = out
			}
			return nil
		},
	}
}

// XorN returns a N-Way XOR gate (odd parity).
//
func XorN(ways int) *Spec { return xorN("XOR", ways, false) }

// XnorN returns a N-Way XNOR gate (even parity).
//
func XnorN(ways int) *Spec { return xorN("XNOR", ways, true) }
