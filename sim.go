// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/db47h/logicsim/internal/logging"
)

// Options configures a Simulator. The zero value is a valid configuration.
//
type Options struct {
	// MaxSweeps limits the number of combinational sweeps per step. Zero
	// selects a limit derived from the circuit size that any loop free
	// circuit satisfies. A negative value disables the limit.
	MaxSweeps int
	// Logger receives debug and trace output. Defaults to logr.Discard().
	Logger logr.Logger
	// Metrics collects statistics. May be nil.
	Metrics Recorder
	// OnStep, if not nil, is called after each step has settled and before
	// outputs are emitted. s is only valid for the duration of the call.
	OnStep func(step int, s *State)
}

// Simulator runs input vectors through a circuit.
//
// A Simulator is not safe for concurrent use. Several simulators can share
// the same Circuit.
//
type Simulator struct {
	c         *Circuit
	log       logr.Logger
	rec       Recorder
	onStep    func(int, *State)
	maxSweeps int

	s    *State
	step int
	out  []Value
}

// New returns a new Simulator for circuit c. opts may be nil.
//
func New(c *Circuit, opts *Options) (*Simulator, error) {
	if c == nil {
		return nil, errors.New("nil circuit")
	}
	if opts == nil {
		opts = &Options{}
	}
	sim := &Simulator{
		c:         c,
		log:       opts.Logger,
		rec:       opts.Metrics,
		onStep:    opts.OnStep,
		maxSweeps: opts.MaxSweeps,
	}
	if sim.log.GetSink() == nil {
		sim.log = logr.Discard()
	}
	sim.log = sim.log.WithValues("circuit", c.name)
	if sim.rec == nil {
		sim.rec = nopRecorder{}
	}
	if sim.maxSweeps == 0 {
		sim.maxSweeps = len(c.elems) + 2
	}
	sim.Reset()
	return sim, nil
}

// Reset discards all simulation state: all nets and element outputs return
// to X and the step counter to 0.
//
func (sim *Simulator) Reset() {
	sim.s = newState(sim.c)
	sim.step = 0
}

// Steps returns the number of steps run since the last Reset.
//
func (sim *Simulator) Steps() int { return sim.step }

// State returns the current simulation state.
//
func (sim *Simulator) State() *State { return sim.s }

// Columns returns the net names in input vector column order.
//
func (sim *Simulator) Columns() []string {
	names := make([]string, len(sim.s.order))
	for i, n := range sim.s.order {
		names[i] = sim.c.nets[n].Name
	}
	return names
}

// OutputNames returns the primary output net names in emission order.
//
func (sim *Simulator) OutputNames() []string {
	names := make([]string, len(sim.s.outputs))
	for i, n := range sim.s.outputs {
		names[i] = sim.c.nets[n].Name
	}
	return names
}

// Step applies one input vector, runs the circuit until it settles and
// returns the primary output values. The returned slice is reused by the next
// call to Step.
//
func (sim *Simulator) Step(row []Value) ([]Value, error) {
	s := sim.s
	if len(row) > len(s.order) {
		return nil, errors.Wrapf(ErrVectorWidth, "step %d: %d values for %d nets", sim.step, len(row), len(s.order))
	}
	s.apply(row)
	sweeps, err := s.settle(sim.maxSweeps, sim.rec)
	if err != nil {
		sim.rec.NoConvergence()
		return nil, errors.Wrapf(err, "step %d: %d sweeps", sim.step, sweeps)
	}
	sim.rec.Step(sweeps)
	sim.log.V(logging.TRACE).Info("step settled", "step", sim.step, "sweeps", sweeps)
	if sim.onStep != nil {
		sim.onStep(sim.step, s)
	}
	sim.step++
	sim.out = s.readOutputs(sim.out[:0])
	return sim.out, nil
}

// Run runs all input vectors in order and emits the primary outputs of each
// step to out.
//
func (sim *Simulator) Run(inputs [][]Value, out Sink) error {
	ins := len(sim.c.Inputs())
	sim.log.V(logging.DEBUG).Info("simulation start",
		"nets", len(sim.c.nets),
		"elements", len(sim.c.elems),
		"inputs", ins,
		"outputs", len(sim.s.outputs),
		"steps", len(inputs))
	for i, row := range inputs {
		if len(row) != ins {
			sim.log.V(logging.DEBUG).Info("input vector width differs from primary input count",
				"row", i, "width", len(row), "inputs", ins)
			break
		}
	}
	for _, row := range inputs {
		step := sim.step
		vs, err := sim.Step(row)
		if err != nil {
			return err
		}
		if err = out.Emit(step, vs); err != nil {
			return errors.Wrapf(err, "step %d", step)
		}
	}
	sim.log.V(logging.DEBUG).Info("simulation done", "steps", sim.step)
	return nil
}

// Run simulates circuit c with a new Simulator. See Simulator.Run.
//
func Run(c *Circuit, inputs [][]Value, out Sink, opts *Options) error {
	sim, err := New(c, opts)
	if err != nil {
		return err
	}
	return sim.Run(inputs, out)
}
