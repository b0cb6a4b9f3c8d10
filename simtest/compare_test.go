package simtest_test

import (
	"testing"

	"github.com/db47h/logicsim"
	cl "github.com/db47h/logicsim/celllib"
	"github.com/db47h/logicsim/simtest"
)

func TestCompare(t *testing.T) {
	or, err := cl.Chip("custom_or", "a, b", "out",
		cl.Nand.Part("a=a, b=a, out=notA"),
		cl.Nand.Part("a=b, b=b, out=notB"),
		cl.Nand.Part("a=notA, b=notB, out=out"),
	)
	if err != nil {
		t.Fatal(err)
	}
	simtest.Compare(t, simtest.Cell(t, cl.Or), simtest.Cell(t, or), 64, false)
}

func TestExhaustive(t *testing.T) {
	rows := simtest.Exhaustive(2)
	want := []string{"00", "01", "10", "11"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows", len(rows))
	}
	for i, r := range rows {
		if got := logicsim.FormatVector(r, ""); got != want[i] {
			t.Errorf("row %d: expected %s, got %s", i, want[i], got)
		}
	}
}
