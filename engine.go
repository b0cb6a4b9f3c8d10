// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// evaluate recomputes element id and propagates a changed output to its
// output net. It returns true if the output net changed.
//
func (s *State) evaluate(id ElementID, r Recorder) bool {
	e := &s.c.elems[id]
	ins := s.ins[:0]
	for _, n := range e.Inputs {
		ins = append(ins, s.values[n])
	}
	s.ins = ins

	a := &s.acts[id]
	a.value = eval(e.Kind, ins, a.value)
	r.Eval(e.Kind)
	if e.Output == NoNet || s.values[e.Output] == a.value {
		return false
	}
	s.values[e.Output] = a.value
	s.markConsumers(e.Output)
	r.Propagate()
	return true
}

// settle runs the circuit to a fixed point. Clocked elements are evaluated
// exactly once, unconditionally, before the combinational sweeps. Then dirty
// combinational elements are evaluated in element order until a sweep
// evaluates nothing. Clocked elements marked dirty during the sweeps are
// cleared without being evaluated.
//
// maxSweeps <= 0 disables the sweep limit. settle returns the number of
// sweeps, including the final idle one.
//
func (s *State) settle(maxSweeps int, r Recorder) (int, error) {
	elems := s.c.elems
	sweeps := 0
	for first := true; ; first = false {
		progress := false
		if first {
			for i := range elems {
				if elems[i].Kind.Clocked() {
					s.acts[i].dirty = false
					s.evaluate(ElementID(i), r)
					progress = true
				}
			}
		} else {
			for i := range elems {
				if elems[i].Kind.Clocked() {
					s.acts[i].dirty = false
				}
			}
		}

		for i := range elems {
			if a := &s.acts[i]; a.dirty && !elems[i].Kind.Clocked() {
				a.dirty = false
				s.evaluate(ElementID(i), r)
				progress = true
			}
		}

		sweeps++
		if !progress {
			return sweeps, nil
		}
		if maxSweeps > 0 && sweeps >= maxSweeps {
			return sweeps, ErrNoConvergence
		}
	}
}
