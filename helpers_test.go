package logicsim_test

import (
	"testing"

	"github.com/pkg/errors"

	ls "github.com/db47h/logicsim"
)

func trace(t *testing.T, err error) {
	t.Helper()
	if err, ok := err.(interface {
		StackTrace() errors.StackTrace
	}); ok {
		for _, f := range err.StackTrace() {
			t.Logf("%+v ", f)
		}
	}
}

// elem is an element description for build.
type elem struct {
	name string
	kind ls.Kind
	out  string
	ins  []string
}

func e(name string, k ls.Kind, out string, ins ...string) elem {
	return elem{name, k, out, ins}
}

// build builds a circuit or fails the test.
func build(t testing.TB, inputs []string, elems ...elem) *ls.Circuit {
	t.Helper()
	b := ls.NewBuilder(t.Name())
	if err := b.AddInput(inputs...); err != nil {
		t.Fatalf("%+v", err)
	}
	for _, el := range elems {
		if _, err := b.Add(el.name, el.kind, el.out, el.ins...); err != nil {
			t.Fatalf("%+v", err)
		}
	}
	c, err := b.Build()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return c
}

// vec parses a string of value symbols.
func vec(s string) []ls.Value {
	out := make([]ls.Value, 0, len(s))
	for _, r := range s {
		v, err := ls.ParseValue(r)
		if err != nil {
			panic(err)
		}
		out = append(out, v)
	}
	return out
}

func vecs(ss ...string) [][]ls.Value {
	out := make([][]ls.Value, len(ss))
	for i, s := range ss {
		out[i] = vec(s)
	}
	return out
}

// run simulates c and returns the output trace as strings.
func run(t testing.TB, c *ls.Circuit, opts *ls.Options, rows ...string) []string {
	t.Helper()
	var tr ls.Trace
	if err := ls.Run(c, vecs(rows...), &tr, opts); err != nil {
		t.Fatalf("%+v", err)
	}
	return tr.Strings("")
}

// counter counts recorder events.
type counter struct {
	evals, props, steps, fails int
	sweeps                     []int
}

func (c *counter) Eval(ls.Kind)    { c.evals++ }
func (c *counter) Propagate()      { c.props++ }
func (c *counter) Step(sweeps int) { c.steps++; c.sweeps = append(c.sweeps, sweeps) }
func (c *counter) NoConvergence()  { c.fails++ }
