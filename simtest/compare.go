// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
//
package simtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/celllib"
)

// PinNet returns the name of the net connected to the i-th pin of a test
// cell. Input nets sort before output nets, and both keep pin order.
//
func PinNet(output bool, i int, pin string) string {
	if output {
		return fmt.Sprintf("o%02d.%s", i, pin)
	}
	return fmt.Sprintf("i%02d.%s", i, pin)
}

// Cell builds a circuit made of a single instance of sp whose pins are
// connected to nets named by PinNet, so that input vector columns follow the
// cell's input pin order. It fails the test if the cell's inputs do not sort
// before every other net.
//
func Cell(t testing.TB, sp *celllib.Spec) *logicsim.Circuit {
	t.Helper()
	b := logicsim.NewBuilder(sp.Name)
	w := make(celllib.W)
	for i, p := range sp.Inputs {
		w[p] = PinNet(false, i, p)
		if err := b.AddInput(w[p]); err != nil {
			t.Fatal(err)
		}
	}
	for i, p := range sp.Outputs {
		w[p] = PinNet(true, i, p)
		if err := b.AddOutput(w[p]); err != nil {
			t.Fatal(err)
		}
	}
	if err := sp.Place(b, "u", w); err != nil {
		t.Fatalf("%+v", err)
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	CheckColumns(t, c)
	return c
}

// CheckColumns fails the test if the primary inputs of c are not the first
// columns of input vectors.
//
func CheckColumns(t testing.TB, c *logicsim.Circuit) {
	t.Helper()
	order := logicsim.OrderNets(c)
	n := len(c.Inputs())
	for i, id := range order[:n] {
		if !c.Net(id).IsInput() {
			t.Fatalf("column %d is net %s which is not a primary input", i, c.Net(id).Name)
		}
	}
}

// Exhaustive returns all 2^width binary vectors, the first column being the
// most significant bit.
//
func Exhaustive(width int) [][]logicsim.Value {
	tot := 1 << uint(width)
	out := make([][]logicsim.Value, tot)
	for i := range out {
		row := make([]logicsim.Value, width)
		for bit := range row {
			row[width-bit-1] = logicsim.Bool(i&(1<<uint(bit)) != 0)
		}
		out[i] = row
	}
	return out
}

// Random returns steps random vectors of the given width. If withX is true,
// about one value in four is X.
//
func Random(r *rand.Rand, width, steps int, withX bool) [][]logicsim.Value {
	out := make([][]logicsim.Value, steps)
	for i := range out {
		row := make([]logicsim.Value, width)
		for j := range row {
			n := r.Intn(4)
			switch {
			case n == 3 && withX:
				row[j] = logicsim.X
			default:
				row[j] = logicsim.Bool(n&1 != 0)
			}
		}
		out[i] = row
	}
	return out
}

// TruthTable runs all binary input combinations through c and compares the
// outputs with want. want[o][i] is the expected value of output o for input
// combination i, in the order returned by Exhaustive.
//
func TruthTable(t testing.TB, c *logicsim.Circuit, want [][]logicsim.Value) {
	t.Helper()
	sim, err := logicsim.New(c, nil)
	if err != nil {
		t.Fatal(err)
	}
	names := sim.OutputNames()
	if len(want) != len(names) {
		t.Fatalf("%d expected output columns for outputs %v", len(want), names)
	}
	for i, in := range Exhaustive(len(c.Inputs())) {
		out, err := sim.Step(in)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		for o, v := range out {
			if want[o][i] != v {
				t.Errorf("%s %v: %s = %v, got %v", c.Name(), in, names[o], want[o][i], v)
			}
		}
	}
}

// Compare takes two circuits and compares their outputs given the same
// random inputs. Both circuits must have the same input and output nets.
//
func Compare(t testing.TB, c1, c2 *logicsim.Circuit, steps int, withX bool) {
	t.Helper()

	s1, err := logicsim.New(c1, nil)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := logicsim.New(c2, nil)
	if err != nil {
		t.Fatal(err)
	}

	// compare interfaces
	width := len(c1.Inputs())
	if n := len(c2.Inputs()); n != width {
		t.Fatalf("input count mismatch: %d != %d", width, n)
	}
	cols1, cols2 := s1.Columns()[:width], s2.Columns()[:width]
	for i := range cols1 {
		if cols1[i] != cols2[i] {
			t.Fatalf("input column %d: %q != %q", i, cols1[i], cols2[i])
		}
	}
	names := s1.OutputNames()
	on2 := s2.OutputNames()
	if len(names) != len(on2) {
		t.Fatalf("output count mismatch: %v != %v", names, on2)
	}
	for i := range names {
		if names[i] != on2[i] {
			t.Fatalf("output %d: %q != %q", i, names[i], on2[i])
		}
	}

	errString := func(in []logicsim.Value, o int, ex, got logicsim.Value) string {
		var b strings.Builder
		for i, n := range cols1 {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n)
			b.WriteRune('=')
			b.WriteString(in[i].String())
		}
		return "\nExpected " + b.String() + " => " + names[o] + "=" + ex.String() + "\nGot " + got.String()
	}

	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	start := time.Now()
	for step, in := range Random(r, width, steps, withX) {
		o1, err := s1.Step(in)
		if err != nil {
			t.Fatalf("%s: %+v", c1.Name(), err)
		}
		o2, err := s2.Step(in)
		if err != nil {
			t.Fatalf("%s: %+v", c2.Name(), err)
		}
		for o := range o1 {
			if o1[o] != o2[o] {
				t.Fatalf("seed %d, step %d: %s", seed, step, errString(in, o, o1[o], o2[o]))
			}
		}
	}
	t.Logf("%d/%d elements. %d steps in %v", len(c1.Elements()), len(c2.Elements()), steps, time.Since(start))
}
