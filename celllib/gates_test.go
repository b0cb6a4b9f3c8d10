package celllib_test

import (
	"testing"

	"github.com/db47h/logicsim"
	cl "github.com/db47h/logicsim/celllib"
	"github.com/db47h/logicsim/simtest"
)

// column converts a string like "0110" to a column of expected values.
func column(s string) []logicsim.Value {
	out := make([]logicsim.Value, len(s))
	for i, r := range s {
		v, err := logicsim.ParseValue(r)
		if err != nil {
			panic(err)
		}
		out[i] = v
	}
	return out
}

func columns(ss ...string) [][]logicsim.Value {
	out := make([][]logicsim.Value, len(ss))
	for i, s := range ss {
		out[i] = column(s)
	}
	return out
}

func TestGates(t *testing.T) {
	data := []struct {
		spec *cl.Spec
		want []string
	}{
		{cl.Not, []string{"10"}},
		{cl.Buf, []string{"01"}},
		{cl.And, []string{"0001"}},
		{cl.Nand, []string{"1110"}},
		{cl.Or, []string{"0111"}},
		{cl.Nor, []string{"1000"}},
		{cl.Xor, []string{"0110"}},
		{cl.Xnor, []string{"1001"}},
		{cl.AndN(3), []string{"00000001"}},
		{cl.NandN(3), []string{"11111110"}},
		{cl.OrN(3), []string{"01111111"}},
		{cl.NorN(3), []string{"10000000"}},
		{cl.XorN(3), []string{"01101001"}},
		{cl.XnorN(3), []string{"10010110"}},
		{cl.Mux, []string{"00011011"}},
		{cl.DMux, []string{"0010", "0001"}},
	}
	for _, d := range data {
		t.Run(d.spec.Name, func(t *testing.T) {
			simtest.TruthTable(t, simtest.Cell(t, d.spec), columns(d.want...))
		})
	}
}

func TestXorChip(t *testing.T) {
	xor, err := cl.Chip("XOR", "a, b", "out",
		cl.Nand.Part("a=a, b=b, out=nandAB"),
		cl.Nand.Part("a=a, b=nandAB, out=w0"),
		cl.Nand.Part("a=b, b=nandAB, out=w1"),
		cl.Nand.Part("a=w0, b=w1, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	simtest.Compare(t, simtest.Cell(t, cl.Xor), simtest.Cell(t, xor), 100, false)
}

// The inverters in XOR hold their last known output when their input goes to
// X, so the last step still yields a known value.
func TestXorUnknown(t *testing.T) {
	c := simtest.Cell(t, cl.Xor)
	var tr logicsim.Trace
	err := logicsim.Run(c, [][]logicsim.Value{
		{logicsim.X, logicsim.Lo},
		{logicsim.Hi, logicsim.Hi},
		{logicsim.Hi, logicsim.X},
	}, &tr, nil)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	want := []string{"X", "0", "0"}
	for i, s := range tr.Strings("") {
		if s != want[i] {
			t.Errorf("step %d: expected %s, got %s", i, want[i], s)
		}
	}
}

func TestChip_errors(t *testing.T) {
	data := []struct {
		name  string
		parts []cl.Part
	}{
		{"bad pin", []cl.Part{cl.Not.Part("a=a, out=out")}},
		{"input as output", []cl.Part{cl.Not.Part("in=out, out=a")}},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			if _, err := cl.Chip("test", "a", "out", d.parts...); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestPlace_errors(t *testing.T) {
	b := logicsim.NewBuilder("test")
	if err := cl.Not.Place(b, "", cl.W{"in": "a", "out": "b"}); err == nil {
		t.Error("empty instance name: expected an error")
	}
	if err := cl.Not.Place(b, "n", cl.W{"out": "b"}); err == nil {
		t.Error("unconnected input: expected an error")
	}
	if err := cl.Not.Place(b, "n", cl.W{"in": "a", "o": "b"}); err == nil {
		t.Error("bad pin: expected an error")
	}
	if err := cl.Not.PlaceConns(b, "n", "in=a, out=b"); err != nil {
		t.Fatalf("%+v", err)
	}
	if err := cl.Not.PlaceConns(b, "m", "in=a, out=b"); err == nil {
		t.Error("two drivers: expected an error")
	}
}
