// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "github.com/pkg/errors"

// Errors returned by the simulator. They are usually wrapped; use
// errors.Cause to test for them.
//
var (
	// ErrNoConvergence is returned when the combinational logic does not
	// settle within the sweep limit, which indicates a combinational loop.
	ErrNoConvergence = errors.New("combinational logic did not converge")
	// ErrVectorWidth is returned for input vectors wider than the circuit's
	// net count.
	ErrVectorWidth = errors.New("input vector wider than net count")
	// ErrEmptyCircuit is returned when building a circuit with no nets.
	ErrEmptyCircuit = errors.New("empty circuit")
)
