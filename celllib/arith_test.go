package celllib_test

import (
	"testing"

	"github.com/db47h/logicsim"
	cl "github.com/db47h/logicsim/celllib"
	"github.com/db47h/logicsim/simtest"
)

// testFunc checks every binary input combination of sp against fn. Inputs and
// outputs are in pin order.
func testFunc(t *testing.T, sp *cl.Spec, fn func(in []bool) []bool) {
	t.Helper()
	sim, err := logicsim.New(simtest.Cell(t, sp), nil)
	if err != nil {
		t.Fatal(err)
	}
	in := make([]bool, len(sp.Inputs))
	for _, row := range simtest.Exhaustive(len(sp.Inputs)) {
		for i, v := range row {
			in[i] = v == logicsim.Hi
		}
		out, err := sim.Step(row)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		for i, w := range fn(in) {
			if out[i] != logicsim.Bool(w) {
				t.Fatalf("%s %v: %s = %v, got %v", sp.Name, row, sp.Outputs[i], logicsim.Bool(w), out[i])
			}
		}
	}
}

// word returns the value of the bits in little endian order.
func word(bits []bool) int {
	n := 0
	for i, b := range bits {
		if b {
			n |= 1 << uint(i)
		}
	}
	return n
}

func TestHalfAdder(t *testing.T) {
	ha, err := cl.Chip("HalfAdder", "a, b", "s, c",
		cl.Xor.Part("a=a, b=b, out=s"),
		cl.And.Part("a=a, b=b, out=c"),
	)
	if err != nil {
		t.Fatal(err)
	}
	simtest.Compare(t, simtest.Cell(t, cl.HalfAdder), simtest.Cell(t, ha), 100, false)
}

func TestFullAdder(t *testing.T) {
	testFunc(t, cl.FullAdder, func(in []bool) []bool {
		sum := word(in[:1]) + word(in[1:2]) + word(in[2:])
		return []bool{sum&1 != 0, sum&2 != 0}
	})
}

func TestAdderN(t *testing.T) {
	const bits = 4
	testFunc(t, cl.AdderN(bits), func(in []bool) []bool {
		sum := word(in[:bits]) + word(in[bits:2*bits]) + word(in[2*bits:])
		out := make([]bool, bits+1)
		for i := range out {
			out[i] = sum&(1<<uint(i)) != 0
		}
		return out
	})
}

func TestMuxN(t *testing.T) {
	const bits = 3
	testFunc(t, cl.MuxN(bits), func(in []bool) []bool {
		if in[2*bits] {
			return in[bits : 2*bits]
		}
		return in[:bits]
	})
}

func TestDMuxN(t *testing.T) {
	const bits = 3
	testFunc(t, cl.DMuxN(bits), func(in []bool) []bool {
		out := make([]bool, 2*bits)
		sel := in[bits]
		for i := 0; i < bits; i++ {
			out[i] = in[i] && !sel
			out[bits+i] = in[i] && sel
		}
		return out
	})
}
