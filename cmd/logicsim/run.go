// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/config"
	"github.com/db47h/logicsim/internal/logging"
	"github.com/db47h/logicsim/internal/metrics"
	"github.com/db47h/logicsim/vectors"
	"github.com/db47h/logicsim/wave"
)

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [netlist]",
		Short: "Simulate a netlist",
		Long: `Run reads input vectors, one per line, and applies them to the
netlist. Vector values are assigned to nets in column order (see the info
command). The primary output values of each step are printed on one line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run,
	}
	config.AddFlags(cmd.Flags())
	return cmd
}

func (a *app) readVectors(cmd *cobra.Command) ([][]logicsim.Value, error) {
	name := a.cfg.Vectors
	if name == "" || name == "-" {
		rows, err := vectors.Read(cmd.InOrStdin())
		return rows, errors.Wrap(err, "stdin")
	}
	return vectors.ReadFile(name)
}

func (a *app) run(cmd *cobra.Command, args []string) (err error) {
	cfg := a.cfg
	c, err := a.loadNetlist(args)
	if err != nil {
		return err
	}
	inputs, err := a.readVectors(cmd)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if cfg.Out != "" && cfg.Out != "-" {
		f, e := os.Create(cfg.Out)
		if e != nil {
			return errors.WithStack(e)
		}
		defer func() {
			if e := f.Close(); err == nil {
				err = errors.WithStack(e)
			}
		}()
		out = f
	}

	opts := &logicsim.Options{MaxSweeps: cfg.MaxSweeps, Logger: a.log}
	var m *metrics.Metrics
	if cfg.Metrics {
		m = metrics.New()
		opts.Metrics = m
	}
	var rec *wave.Recorder
	if cfg.Wave != "" {
		if rec, err = wave.NewRecorder(c, cfg.WaveNets...); err != nil {
			return err
		}
		opts.OnStep = rec.OnStep
	}

	lw := logicsim.NewLineWriter(out, cfg.Separator)
	err = logicsim.Run(c, inputs, lw, opts)
	// flush the steps that did complete, even on error.
	if e := lw.Flush(); err == nil {
		err = e
	}
	if m != nil {
		steps, sweeps := m.SweepStats()
		a.log.V(logging.DEBUG).Info("sweep statistics", "steps", steps, "sweeps", sweeps)
		if e := m.WriteText(cmd.ErrOrStderr()); err == nil {
			err = e
		}
	}
	if err != nil {
		return err
	}
	if rec != nil {
		if err = rec.Save(cfg.Wave); err != nil {
			return err
		}
		a.log.Info("waveform saved", "file", cfg.Wave, "nets", len(rec.Names()), "steps", rec.Steps())
	}
	return nil
}
