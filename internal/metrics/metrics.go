// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package metrics collects simulation statistics with Prometheus collectors.
package metrics

import (
	"io"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/db47h/logicsim"
)

const namespace = "logicsim"

// Metrics implements logicsim.Recorder on a private Prometheus registry.
type Metrics struct {
	reg *prometheus.Registry

	steps         prometheus.Counter
	evals         *prometheus.CounterVec
	propagations  prometheus.Counter
	sweeps        prometheus.Histogram
	noConvergence prometheus.Counter
}

// New registers the simulation collectors on a new registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "steps_total",
			Help:      "Number of simulated time steps.",
		}),
		evals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Number of element evaluations, by element kind.",
		}, []string{"kind"}),
		propagations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "propagations_total",
			Help:      "Number of evaluations that changed a net value.",
		}),
		sweeps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweeps_per_step",
			Help:      "Number of combinational sweeps needed to settle a step.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		noConvergence: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "convergence_failures_total",
			Help:      "Number of steps aborted by the sweep limit.",
		}),
	}
	m.reg.MustRegister(m.steps, m.evals, m.propagations, m.sweeps, m.noConvergence)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Eval implements logicsim.Recorder.
func (m *Metrics) Eval(k logicsim.Kind) { m.evals.WithLabelValues(k.String()).Inc() }

// Propagate implements logicsim.Recorder.
func (m *Metrics) Propagate() { m.propagations.Inc() }

// Step implements logicsim.Recorder.
func (m *Metrics) Step(sweeps int) {
	m.steps.Inc()
	m.sweeps.Observe(float64(sweeps))
}

// NoConvergence implements logicsim.Recorder.
func (m *Metrics) NoConvergence() { m.noConvergence.Inc() }

// SweepStats returns the number of settled steps and the total number of
// sweeps they took.
func (m *Metrics) SweepStats() (steps uint64, sweeps float64) {
	var pb dto.Metric
	if err := m.sweeps.Write(&pb); err != nil {
		return 0, 0
	}
	h := pb.GetHistogram()
	return h.GetSampleCount(), h.GetSampleSum()
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	mfs, err := m.reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
