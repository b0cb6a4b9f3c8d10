// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package celllib

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/logicsim"
)

// InternalPrefix starts the name of every net created inside a cell. It sorts
// after letters and digits so that internal nets never take input vector
// columns ahead of user nets.
//
const InternalPrefix = "~"

// A MountFn adds a cell's elements to the host circuit. MountFn's should
// query the socket for the net names connected to the cell's pins.
//
// For example, a NAND cell can be defined like this:
//
//	nand := &Spec{
//		Name: "NAND",
//		Inputs: IO("a, b"),
//		Outputs: IO("out"),
//		Mount: func(s *Socket) error {
//			w := s.Wire("and")
//			if err := s.Add("and", logicsim.KindAnd, w, s.Pin("a"), s.Pin("b")); err != nil {
//				return err
//			}
//			return s.Add("not", logicsim.KindNot, s.Pin("out"), w)
//		}}
//
type MountFn func(s *Socket) error

// A Spec is a cell blueprint: its pin interface and how to expand it into
// primitive elements.
//
type Spec struct {
	Name    string
	Inputs  []string
	Outputs []string
	Mount   MountFn
}

// A Part is a Spec together with its connections in a host cell.
//
type Part struct {
	*Spec
	W W
}

// Part returns a Part for sp with the given connection string. It panics if
// conns cannot be parsed.
//
func (sp *Spec) Part(conns string) Part {
	w, err := ParseConnections(conns)
	if err != nil {
		panic(err)
	}
	return Part{sp, w}
}

func (sp *Spec) hasPin(name string) bool {
	for _, p := range sp.Inputs {
		if p == name {
			return true
		}
	}
	for _, p := range sp.Outputs {
		if p == name {
			return true
		}
	}
	return false
}

// Place adds an instance of sp named name to b. w maps the cell's pins to
// nets of b. All inputs must be connected. Unconnected outputs are left
// floating on internal nets.
//
func (sp *Spec) Place(b *logicsim.Builder, name string, w W) error {
	if name == "" {
		return errors.New("empty instance name for " + sp.Name)
	}
	s := &Socket{b: b, name: name, pins: make(W, len(w))}
	for k, v := range w {
		if !sp.hasPin(k) {
			return errors.New("invalid pin name " + k + " for cell " + sp.Name)
		}
		s.pins[k] = v
	}
	for _, in := range sp.Inputs {
		if _, ok := s.pins[in]; !ok {
			return errors.Errorf("%s %s: input pin %s not connected", sp.Name, name, in)
		}
	}
	for _, out := range sp.Outputs {
		if _, ok := s.pins[out]; !ok {
			s.pins[out] = s.Wire(out)
		}
	}
	return errors.Wrapf(sp.Mount(s), "%s %s", sp.Name, name)
}

// PlaceConns is like Place with the connections given as a connection string.
//
func (sp *Spec) PlaceConns(b *logicsim.Builder, name, conns string) error {
	w, err := ParseConnections(conns)
	if err != nil {
		return err
	}
	return sp.Place(b, name, w)
}

// A Socket maps a cell instance's pins to nets in the host circuit.
//
type Socket struct {
	b    *logicsim.Builder
	name string
	pins W
}

// Name returns the instance name.
//
func (s *Socket) Name() string { return s.name }

// Pin returns the host net connected to pin name.
// This function panics if the pin does not exist.
//
func (s *Socket) Pin(name string) string {
	n, ok := s.pins[name]
	if !ok {
		panic("pin " + name + " does not exist")
	}
	return n
}

// Bus returns the host nets connected to the n pins of a bus.
//
func (s *Socket) Bus(name string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s.Pin(BusPinName(name, i))
	}
	return out
}

// Wire returns the name of an internal net of the cell instance.
//
func (s *Socket) Wire(local string) string {
	return InternalPrefix + s.name + "." + local
}

// Add adds a primitive element to the cell instance.
//
func (s *Socket) Add(local string, k logicsim.Kind, out string, ins ...string) error {
	_, err := s.b.Add(s.name+"."+local, k, out, ins...)
	return err
}

// Mount places a sub-cell. The values in w are host nets, usually obtained
// with Pin or Wire.
//
func (s *Socket) Mount(sp *Spec, local string, w W) error {
	return sp.Place(s.b, s.name+"."+local, w)
}

// Chip composes existing parts into a new cell. The part connections refer to
// the chip's pins, or to internal wires for any other name.
//
//	xor, err := Chip("XOR", "a, b", "out",
//		Nand.Part("a=a, b=b, out=nandAB"),
//		Nand.Part("a=a, b=nandAB, out=w0"),
//		Nand.Part("a=b, b=nandAB, out=w1"),
//		Nand.Part("a=w0, b=w1, out=out"),
//	)
//
func Chip(name, inputs, outputs string, parts ...Part) (*Spec, error) {
	sp := &Spec{Name: name, Inputs: IO(inputs), Outputs: IO(outputs)}
	for _, p := range parts {
		for k := range p.W {
			if !p.Spec.hasPin(k) {
				return nil, errors.New("invalid pin name " + k + " for part " + p.Spec.Name)
			}
		}
		for _, o := range p.Spec.Outputs {
			if v, ok := p.W[o]; ok {
				for _, in := range sp.Inputs {
					if v == in {
						return nil, errors.Errorf("%s.%s:%s: chip input pin used as output", p.Spec.Name, o, v)
					}
				}
			}
		}
	}
	sp.Mount = func(s *Socket) error {
		for i, p := range parts {
			w := make(W, len(p.W))
			for k, v := range p.W {
				if sp.hasPin(v) {
					w[k] = s.Pin(v)
				} else {
					w[k] = s.Wire(v)
				}
			}
			if err := s.Mount(p.Spec, strconv.Itoa(i), w); err != nil {
				return err
			}
		}
		return nil
	}
	return sp, nil
}

// IO expands a pin specification like "a, b, bus[4]" into individual pin
// names: a, b, bus[0], bus[1], bus[2], bus[3].
//
func IO(spec string) []string {
	var out []string
	for _, p := range strings.Split(spec, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if i := strings.IndexByte(p, '['); i > 0 && strings.HasSuffix(p, "]") {
			if n, err := strconv.Atoi(p[i+1 : len(p)-1]); err == nil {
				out = append(out, Bus(p[:i], n)...)
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
