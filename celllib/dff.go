// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package celllib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// DFF is a clocked storage cell.
//
//	Inputs: clk, in
//	Outputs: out
//	Function: if clk == 1 { out = in }
//
var DFF = &Spec{
	Name:    "DFF",
	Inputs:  []string{pClk, pIn},
	Outputs: gateOut,
	Mount: func(s *Socket) error {
		return s.Add("dff", logicsim.KindDFF, s.Pin(pOut), s.Pin(pClk), s.Pin(pIn))
	},
}

// Bit is a 1 bit register with load enable.
//
//	Inputs: clk, in, load
//	Outputs: out
//	Function: if clk == 1 && load == 1 { out = in }
//
var Bit = &Spec{
	Name:    "Bit",
	Inputs:  []string{pClk, pIn, "load"},
	Outputs: gateOut,
	Mount: func(s *Socket) error {
		nload, d := s.Wire("nload"), s.Wire("d")
		if err := s.Add("nload", logicsim.KindNot, nload, s.Pin("load")); err != nil {
			return err
		}
		if err := mux(s, "", s.Pin(pOut), s.Pin(pIn), s.Pin("load"), nload, d); err != nil {
			return err
		}
		return s.Add("dff", logicsim.KindDFF, s.Pin(pOut), s.Pin(pClk), d)
	},
}

// Register returns a n-bits register.
//
//	Inputs: clk, in[bits]
//	Outputs: out[bits]
//	Function: if clk == 1 { out = in }
//
func Register(bits int) *Spec {
	return &Spec{
		Name:    "Register" + strconv.Itoa(bits),
		Inputs:  append([]string{pClk}, Bus(pIn, bits)...),
		Outputs: Bus(pOut, bits),
		Mount: func(s *Socket) error {
			clk, in, out := s.Pin(pClk), s.Bus(pIn, bits), s.Bus(pOut, bits)
			for i := range in {
				if err := s.Add(strconv.Itoa(i), logicsim.KindDFF, out[i], clk, in[i]); err != nil {
					return err
				}
			}
			return nil
		}}
}

// ShiftRegister returns a n-bits serial in, parallel out shift register.
//
//	Inputs: clk, in
//	Outputs: out[bits]
//	Function: if clk == 1 { out[bits-1] = out[bits-2]; ... out[0] = in }
//
// DFFs sample their input in element order, so stages are added from the
// last one to the first: each stage then sees its predecessor's value from
// the previous step.
//
func ShiftRegister(bits int) *Spec {
	return &Spec{
		Name:    "ShiftRegister" + strconv.Itoa(bits),
		Inputs:  []string{pClk, pIn},
		Outputs: Bus(pOut, bits),
		Mount: func(s *Socket) error {
			clk, out := s.Pin(pClk), s.Bus(pOut, bits)
			for i := bits - 1; i >= 0; i-- {
				d := s.Pin(pIn)
				if i > 0 {
					d = out[i-1]
				}
				if err := s.Add(strconv.Itoa(i), logicsim.KindDFF, out[i], clk, d); err != nil {
					return err
				}
			}
			return nil
		}}
}
