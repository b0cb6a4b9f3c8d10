// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// A Recorder collects simulation statistics. Implementations must be safe for
// concurrent use if shared between simulators.
//
type Recorder interface {
	// Eval is called for every element evaluation.
	Eval(k Kind)
	// Propagate is called when an evaluation changes a net value.
	Propagate()
	// Step is called once a step has settled, with the sweep count.
	Step(sweeps int)
	// NoConvergence is called when a step hits the sweep limit.
	NoConvergence()
}

type nopRecorder struct{}

func (nopRecorder) Eval(Kind)      {}
func (nopRecorder) Propagate()     {}
func (nopRecorder) Step(int)       {}
func (nopRecorder) NoConvergence() {}
