// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package celllib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// mux adds out = (a && !sel) || (b && sel) to s. nsel is the inverted select
// net.
func mux(s *Socket, tag, a, b, sel, nsel, out string) error {
	w0, w1 := s.Wire(tag+"w0"), s.Wire(tag+"w1")
	if err := s.Add(tag+"w0", logicsim.KindAnd, w0, a, nsel); err != nil {
		return err
	}
	if err := s.Add(tag+"w1", logicsim.KindAnd, w1, b, sel); err != nil {
		return err
	}
	return s.Add(tag+"or", logicsim.KindOr, out, w0, w1)
}

// Mux is a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
var Mux = &Spec{
	Name:    "MUX",
	Inputs:  []string{pA, pB, pSel},
	Outputs: gateOut,
	Mount: func(s *Socket) error {
		nsel := s.Wire("nsel")
		if err := s.Add("nsel", logicsim.KindNot, nsel, s.Pin(pSel)); err != nil {
			return err
		}
		return mux(s, "", s.Pin(pA), s.Pin(pB), s.Pin(pSel), nsel, s.Pin(pOut))
	},
}

// DMux is a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
var DMux = &Spec{
	Name:    "DMUX",
	Inputs:  []string{pIn, pSel},
	Outputs: []string{pA, pB},
	Mount: func(s *Socket) error {
		nsel := s.Wire("nsel")
		if err := s.Add("nsel", logicsim.KindNot, nsel, s.Pin(pSel)); err != nil {
			return err
		}
		if err := s.Add("a", logicsim.KindAnd, s.Pin(pA), s.Pin(pIn), nsel); err != nil {
			return err
		}
		return s.Add("b", logicsim.KindAnd, s.Pin(pB), s.Pin(pIn), s.Pin(pSel))
	},
}

// MuxN returns a n-bits Mux. All bits share a single select inverter.
//
//	Inputs: a[bits], b[bits], sel
//	Outputs: out[bits]
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
//
func MuxN(bits int) *Spec {
	return &Spec{
		Name:    "MUX" + strconv.Itoa(bits),
		Inputs:  append(append(Bus(pA, bits), Bus(pB, bits)...), pSel),
		Outputs: Bus(pOut, bits),
		Mount: func(s *Socket) error {
			a, b, out := s.Bus(pA, bits), s.Bus(pB, bits), s.Bus(pOut, bits)
			sel, nsel := s.Pin(pSel), s.Wire("nsel")
			if err := s.Add("nsel", logicsim.KindNot, nsel, sel); err != nil {
				return err
			}
			for i := range out {
				if err := mux(s, strconv.Itoa(i)+".", a[i], b[i], sel, nsel, out[i]); err != nil {
					return err
				}
			}
			return nil
		}}
}

// DMuxN returns a n-bits DMux.
//
//	Inputs: in[bits], sel
//	Outputs: a[bits], b[bits]
//
func DMuxN(bits int) *Spec {
	return &Spec{
		Name:    "DMUX" + strconv.Itoa(bits),
		Inputs:  append(Bus(pIn, bits), pSel),
		Outputs: append(Bus(pA, bits), Bus(pB, bits)...),
		Mount: func(s *Socket) error {
			in, a, b := s.Bus(pIn, bits), s.Bus(pA, bits), s.Bus(pB, bits)
			sel, nsel := s.Pin(pSel), s.Wire("nsel")
			if err := s.Add("nsel", logicsim.KindNot, nsel, sel); err != nil {
				return err
			}
			for i := range in {
				n := strconv.Itoa(i)
				if err := s.Add(n+".a", logicsim.KindAnd, a[i], in[i], nsel); err != nil {
					return err
				}
				if err := s.Add(n+".b", logicsim.KindAnd, b[i], in[i], sel); err != nil {
					return err
				}
			}
			return nil
		}}
}
