// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package wave records net values during a simulation and renders them as a
// timing diagram.
//
// A Recorder is hooked into a simulation with its OnStep method:
//
//	rec, err := wave.NewRecorder(c)
//	// ...
//	err = logicsim.Run(c, inputs, sink, &logicsim.Options{OnStep: rec.OnStep})
//	// ...
//	err = rec.Save("run.svg")
//
package wave

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/db47h/logicsim"
)

// Supported output formats.
//
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// swing is the distance between the Lo or Hi level of a trace and its lane
// center. X is drawn at the center.
const swing = 0.35

// Recorder records the values of a set of nets at the end of each step.
//
type Recorder struct {
	c     *logicsim.Circuit
	nets  []logicsim.NetID
	names []string
	hist  [][]logicsim.Value // hist[i] is the history of nets[i]
}

// NewRecorder returns a new Recorder for the named nets of c. If no names are
// given, the primary inputs and outputs of c are recorded, in column order.
//
func NewRecorder(c *logicsim.Circuit, names ...string) (*Recorder, error) {
	r := &Recorder{c: c}
	if len(names) == 0 {
		for _, id := range logicsim.OrderNets(c) {
			if n := c.Net(id); n.IsInput() || n.IsOutput() {
				r.nets = append(r.nets, id)
				r.names = append(r.names, n.Name)
			}
		}
	} else {
		for _, name := range names {
			id, ok := c.NetByName(name)
			if !ok {
				return nil, errors.Errorf("%s: no such net %q", c.Name(), name)
			}
			r.nets = append(r.nets, id)
			r.names = append(r.names, name)
		}
	}
	r.hist = make([][]logicsim.Value, len(r.nets))
	return r, nil
}

// OnStep records the current values of the recorded nets. Its signature
// matches logicsim.Options.OnStep.
//
func (r *Recorder) OnStep(step int, s *logicsim.State) {
	for i, id := range r.nets {
		r.hist[i] = append(r.hist[i], s.Value(id))
	}
}

// Names returns the names of the recorded nets.
//
func (r *Recorder) Names() []string { return r.names }

// Steps returns the number of recorded steps.
//
func (r *Recorder) Steps() int {
	if len(r.hist) == 0 {
		return 0
	}
	return len(r.hist[0])
}

// History returns the recorded values of the i-th net.
//
func (r *Recorder) History(i int) []logicsim.Value { return r.hist[i] }

func level(v logicsim.Value, lane float64) float64 {
	switch v {
	case logicsim.Lo:
		return lane - swing
	case logicsim.Hi:
		return lane + swing
	}
	return lane
}

// Plot returns a timing diagram of the recorded values. The first net is
// drawn at the top.
//
func (r *Recorder) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.c.Name()
	p.X.Label.Text = "step"
	p.X.Min = 0
	p.X.Max = float64(r.Steps())

	n := len(r.nets)
	labels := make([]string, n)
	for i, h := range r.hist {
		lane := float64(n - 1 - i)
		labels[n-1-i] = r.names[i]
		if len(h) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(h)+1)
		for t, v := range h {
			xys[t] = plotter.XY{X: float64(t), Y: level(v, lane)}
		}
		// extend the last value to the end of its step
		xys[len(h)] = plotter.XY{X: float64(len(h)), Y: xys[len(h)-1].Y}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, errors.Wrap(err, r.names[i])
		}
		l.StepStyle = plotter.PostStep
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = plotutil.Color(i)
		p.Add(l)
	}
	p.NominalY(labels...)
	p.Add(plotter.NewGrid())
	return p, nil
}

// size returns a drawing size suitable for the recorded data.
func (r *Recorder) size() (w, h vg.Length) {
	w = vg.Length(r.Steps()) * vg.Centimeter / 2
	if w < 12*vg.Centimeter {
		w = 12 * vg.Centimeter
	}
	h = vg.Length(len(r.nets))*vg.Centimeter + 3*vg.Centimeter
	return w, h
}

func checkFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return errors.Errorf("unsupported image format %q", format)
}

// Render writes the timing diagram to w in the given format, one of Formats.
//
func (r *Recorder) Render(w io.Writer, format string) error {
	format = strings.ToLower(format)
	if err := checkFormat(format); err != nil {
		return err
	}
	p, err := r.Plot()
	if err != nil {
		return err
	}
	width, height := r.size()
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = wt.WriteTo(w)
	return errors.WithStack(err)
}

// Save writes the timing diagram to the named file. The image format is
// derived from the file extension.
//
func (r *Recorder) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if err = checkFormat(strings.ToLower(format)); err != nil {
		return errors.Wrap(err, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = errors.WithStack(e)
		}
	}()
	return errors.Wrap(r.Render(f, format), path)
}
