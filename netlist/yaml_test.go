package netlist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/netlist"
	"github.com/db47h/logicsim/simtest"
)

func TestLoadYAML(t *testing.T) {
	for _, format := range []string{"", netlist.FormatYAML, "yml"} {
		c, err := netlist.Load("testdata/half_adder.yaml", format)
		require.NoError(t, err)
		assert.Equal(t, "half_adder", c.Name())
		_, ok := c.ElementByName("carry")
		assert.True(t, ok)
		simtest.TruthTable(t, c, [][]logicsim.Value{
			{logicsim.Lo, logicsim.Lo, logicsim.Lo, logicsim.Hi},
			{logicsim.Lo, logicsim.Hi, logicsim.Hi, logicsim.Lo},
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := netlist.Load("testdata/s27.bench", "")
	require.NoError(t, err)
	assert.Equal(t, "s27", c.Name())

	_, err = netlist.Load("testdata/s27.bench", "vhdl")
	assert.Error(t, err)

	_, err = netlist.Load("testdata/s27.bench", netlist.FormatYAML)
	assert.Error(t, err)
}

func TestParseYAML_errors(t *testing.T) {
	data := []struct {
		name string
		src  string
		msg  string
	}{
		{"unknown field", "inputs: [a]\nwires: [b]\n", "wires"},
		{"missing type", "inputs: [a]\nelements:\n  - {output: y, inputs: [a]}\n", "missing type"},
		{"no name", "inputs: [a]\nelements:\n  - {type: NOT, inputs: [a]}\n", "missing both name and output"},
		{"empty", "name: x\n", "no inputs and no elements"},
		{"arity", "elements:\n  - {type: NOT, inputs: [a, b], output: y}\n", "invalid input count"},
		{"syntax", "inputs: [a\n", "test"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := netlist.ParseYAML(strings.NewReader(d.src), "test")
			require.Error(t, err)
			assert.Contains(t, err.Error(), d.msg)
		})
	}
}

func TestParseYAML_name(t *testing.T) {
	c, err := netlist.ParseYAML(strings.NewReader("inputs: [a]\nelements:\n  - {type: not, inputs: [a], output: y}\n"), "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", c.Name())
	id, ok := c.ElementByName("y")
	require.True(t, ok)
	assert.Equal(t, logicsim.KindNot, c.Element(id).Kind)
	assert.Equal(t, "NOT", c.Element(id).Type)
}
