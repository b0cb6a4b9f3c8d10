// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// activation is the per-element simulation record.
type activation struct {
	value Value // last computed output
	dirty bool  // pending re-evaluation
}

// State is the mutable state of one simulation run: the current value of
// every net and the activation record of every element. A State is owned by
// a single Simulator.
//
type State struct {
	c       *Circuit
	values  []Value      // net values, indexed by NetID
	acts    []activation // indexed by ElementID
	order   []NetID      // nets in NetLess order
	outputs []NetID      // primary outputs, in NetLess order
	ins     []Value      // scratch buffer for element inputs
}

func newState(c *Circuit) *State {
	s := &State{
		c:      c,
		values: make([]Value, len(c.nets)),
		acts:   make([]activation, len(c.elems)),
		order:  OrderNets(c),
	}
	for i := range s.values {
		s.values[i] = X
	}
	for i := range s.acts {
		s.acts[i].value = X
	}
	for _, id := range s.order {
		if c.nets[id].IsOutput() {
			s.outputs = append(s.outputs, id)
		}
	}
	return s
}

// Circuit returns the simulated circuit.
//
func (s *State) Circuit() *Circuit { return s.c }

// Value returns the current value of net n.
//
func (s *State) Value(n NetID) Value { return s.values[n] }

// Order returns the nets in column order. It must not be modified.
//
func (s *State) Order() []NetID { return s.order }

// Outputs returns the primary output nets in emission order. It must not be
// modified.
//
func (s *State) Outputs() []NetID { return s.outputs }

// Dirty returns true if element e is pending re-evaluation.
//
func (s *State) Dirty(e ElementID) bool { return s.acts[e].dirty }

// markConsumers flags every consumer of net n for re-evaluation.
//
func (s *State) markConsumers(n NetID) {
	for _, e := range s.c.nets[n].Consumers {
		s.acts[e].dirty = true
	}
}

// apply sets the first len(row) nets in column order to the values in row.
// Consumers of every assigned net are marked dirty, changed or not.
//
func (s *State) apply(row []Value) {
	for i, v := range row {
		n := s.order[i]
		s.values[n] = v
		s.markConsumers(n)
	}
}

// readOutputs appends the primary output values to buf.
//
func (s *State) readOutputs(buf []Value) []Value {
	for _, n := range s.outputs {
		buf = append(buf, s.values[n])
	}
	return buf
}
