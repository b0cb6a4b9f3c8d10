// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package celllib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// fullAdder adds s = a ^ b ^ cin, cout = a && b || (a ^ b) && cin to s.
func fullAdder(s *Socket, tag, a, b, cin, sum, cout string) error {
	p, g, pc := s.Wire(tag+"p"), s.Wire(tag+"g"), s.Wire(tag+"pc")
	if err := xor(s, tag+"p.", a, b, p, false); err != nil {
		return err
	}
	if err := xor(s, tag+"s.", p, cin, sum, false); err != nil {
		return err
	}
	if err := s.Add(tag+"g", logicsim.KindAnd, g, a, b); err != nil {
		return err
	}
	if err := s.Add(tag+"pc", logicsim.KindAnd, pc, p, cin); err != nil {
		return err
	}
	return s.Add(tag+"cout", logicsim.KindOr, cout, g, pc)
}

// HalfAdder is a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
var HalfAdder = &Spec{
	Name:    "HalfAdder",
	Inputs:  []string{pA, pB},
	Outputs: []string{"s", "c"},
	Mount: func(s *Socket) error {
		a, b := s.Pin(pA), s.Pin(pB)
		if err := xor(s, "s.", a, b, s.Pin("s"), false); err != nil {
			return err
		}
		return s.Add("c", logicsim.KindAnd, s.Pin("c"), a, b)
	}}

// FullAdder is a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
var FullAdder = &Spec{
	Name:    "FullAdder",
	Inputs:  []string{pA, pB, "cin"},
	Outputs: []string{"s", "cout"},
	Mount: func(s *Socket) error {
		return fullAdder(s, "", s.Pin(pA), s.Pin(pB), s.Pin("cin"), s.Pin("s"), s.Pin("cout"))
	}}

// AdderN returns a N-bits ripple carry adder.
//
//	Inputs: a[bits], b[bits], cin
//	Outputs: out[bits], c
//
func AdderN(bits int) *Spec {
	return &Spec{
		Name:    "Adder" + strconv.Itoa(bits),
		Inputs:  append(append(Bus(pA, bits), Bus(pB, bits)...), "cin"),
		Outputs: append(Bus(pOut, bits), "c"),
		Mount: func(s *Socket) error {
			a, b, out := s.Bus(pA, bits), s.Bus(pB, bits), s.Bus(pOut, bits)
			carry := s.Pin("cin")
			for i := range out {
				cout := s.Pin("c")
				if i < bits-1 {
					cout = s.Wire("c" + strconv.Itoa(i))
				}
				if err := fullAdder(s, strconv.Itoa(i)+".", a[i], b[i], carry, out[i], cout); err != nil {
					return err
				}
				carry = cout
			}
			return nil
		}}
}
