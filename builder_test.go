package logicsim_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ls "github.com/db47h/logicsim"
)

func TestBuilder_errors(t *testing.T) {
	td := []struct {
		name  string
		elems []elem
		err   string
	}{
		{"dup", []elem{e("g", ls.KindAnd, "Y", "A"), e("g", ls.KindOr, "Z", "A")}, "duplicate element name g"},
		{"not_arity", []elem{e("n", ls.KindNot, "Y", "A", "B")}, "NOT n: invalid input count 2"},
		{"dff_arity", []elem{e("q", ls.KindDFF, "Q", "D")}, "DFF q: invalid input count 1"},
		{"and_arity", []elem{e("g", ls.KindAnd, "Y")}, "AND g: invalid input count 0"},
		{"driven", []elem{e("g", ls.KindAnd, "Y", "A"), e("h", ls.KindOr, "Y", "B")}, "OR h: net Y already driven by g"},
		{"no_output", []elem{e("g", ls.KindAnd, "", "A")}, "AND g: no output net"},
		{"empty_input", []elem{e("g", ls.KindAnd, "Y", "A", "")}, "AND g: empty name for input #1"},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			b := ls.NewBuilder(d.name)
			var err error
			for _, el := range d.elems {
				if _, err = b.Add(el.name, el.kind, el.out, el.ins...); err != nil {
					break
				}
			}
			require.Error(t, err)
			trace(t, err)
			assert.Equal(t, d.err, err.Error())
		})
	}
}

func TestBuilder_build(t *testing.T) {
	b := ls.NewBuilder("empty")
	_, err := b.Build()
	assert.Equal(t, ls.ErrEmptyCircuit, errors.Cause(err))

	b = ls.NewBuilder("driven")
	require.NoError(t, b.AddInput("A"))
	_, err = b.Add("n", ls.KindNot, "A", "B")
	require.NoError(t, err)
	_, err = b.Build()
	assert.EqualError(t, err, "primary input A driven by n")

	b = ls.NewBuilder("twice")
	require.NoError(t, b.AddInput("A"))
	_, err = b.Build()
	require.NoError(t, err)
	_, err = b.Build()
	assert.Error(t, err)

	assert.Error(t, ls.NewBuilder("x").AddInput(""))
	assert.Error(t, ls.NewBuilder("x").AddOutput(""))
}

func TestBuilder(t *testing.T) {
	b := ls.NewBuilder("test")
	require.NoError(t, b.AddInput("A", "B"))
	require.NoError(t, b.AddOutput("W"))
	g, err := b.Add("", ls.KindAnd, "W", "A", "A", "B")
	require.NoError(t, err)
	_, err = b.Add("n", ls.KindNot, "Y", "W")
	require.NoError(t, err)
	u, err := b.AddType("u", "FROB", ls.KindUnknown, "", "Y")
	require.NoError(t, err)
	assert.True(t, b.HasNet("Y"))
	assert.False(t, b.HasNet("Z"))
	c, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "test", c.Name())
	assert.Equal(t, "__0", c.Element(g).Name)
	assert.Equal(t, "FROB", c.Element(u).Type)
	assert.Equal(t, ls.NoNet, c.Element(u).Output)

	a, ok := c.NetByName("A")
	require.True(t, ok)
	assert.Equal(t, []ls.ElementID{g}, c.Net(a).Consumers, "consumers are listed once per element")
	assert.True(t, c.Net(a).IsInput())
	assert.False(t, c.Net(a).IsOutput())

	w, _ := c.NetByName("W")
	assert.True(t, c.Net(w).IsOutput(), "declared output with consumers")
	y, _ := c.NetByName("Y")
	assert.False(t, c.Net(y).IsOutput(), "consumed by an unknown element")

	assert.Len(t, c.Inputs(), 2)
	assert.Equal(t, []ls.NetID{w}, c.Outputs())
	assert.Equal(t, map[ls.Kind]int{ls.KindAnd: 1, ls.KindNot: 1, ls.KindUnknown: 1}, c.Stats())

	_, ok = c.ElementByName("n")
	assert.True(t, ok)
	_, ok = c.ElementByName("m")
	assert.False(t, ok)
}
