/*
Package logicsim provides a discrete-time, three-valued logic simulator for
gate-level netlists.

A circuit is a fixed graph of elements (AND, OR, NOT gates and DFF storage
cells) connected by named nets. It is assembled with a Builder, or loaded from
a netlist file with the netlist package, and is immutable once built.

A simulation applies a sequence of input vectors to the circuit, one per time
step. Every step, each DFF samples its inputs exactly once, then the
combinational logic is evaluated until no net changes. The values of the
primary outputs are then emitted, one vector per step:

	c, err := netlist.LoadBench("s27.bench")
	if err != nil {
		// handle error
	}
	w := logicsim.NewLineWriter(os.Stdout, ";")
	err = logicsim.Run(c, inputs, w, nil)
	w.Flush()

Signals take one of three values: Lo, Hi or X (unknown). All nets start at X.

Input vector columns and output values are ordered by net name, see NetLess.

*/
package logicsim
