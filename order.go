// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "sort"

// ClockNet is the net name given special treatment by the net ordering.
//
const ClockNet = "CLOCK"

// busZero returns true if name has '0' at both positions 1 and 2, like the
// first bit of a zero padded bus: "D00", "X001".
//
func busZero(name string) bool {
	return len(name) > 2 && name[1] == '0' && name[2] == '0'
}

// NetLess is the net name ordering used to map input vector columns and
// output values to nets. Names are compared byte-wise, except for ClockNet
// which sorts before any other name, unless that name satisfies busZero, in
// which case ClockNet sorts after it.
//
// The ordering is part of the external interface: input files and expected
// outputs depend on it.
//
func NetLess(a, b string) bool {
	if a == b {
		return false
	}
	if a == ClockNet {
		return !busZero(b)
	}
	if b == ClockNet {
		return busZero(a)
	}
	return a < b
}

// OrderNets returns the circuit's nets sorted with NetLess. The position of a
// net in this slice is its column in input vectors.
//
func OrderNets(c *Circuit) []NetID {
	order := make([]NetID, len(c.nets))
	for i := range order {
		order[i] = NetID(i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return NetLess(c.nets[order[i]].Name, c.nets[order[j]].Name)
	})
	return order
}
