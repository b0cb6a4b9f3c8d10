// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Builder assembles a Circuit. Nets are created the first time they are
// referenced, either as an element input or output or as a declared primary
// input or output.
//
// The zero value is not usable, use NewBuilder.
//
type Builder struct {
	c      *Circuit
	inputs []NetID // declared primary inputs
}

// NewBuilder returns a new Builder for a circuit with the given name.
//
func NewBuilder(name string) *Builder {
	return &Builder{
		c: &Circuit{
			name:    name,
			netIdx:  make(map[string]NetID),
			elemIdx: make(map[string]ElementID),
		},
	}
}

// Net returns the id of the named net. If no such net exists a new one is
// allocated.
//
func (b *Builder) Net(name string) NetID {
	c := b.c
	id, ok := c.netIdx[name]
	if !ok {
		id = NetID(len(c.nets))
		c.nets = append(c.nets, Net{Name: name, Driver: NoElement})
		c.netIdx[name] = id
	}
	return id
}

// HasNet returns true if the named net has already been referenced.
//
func (b *Builder) HasNet(name string) bool {
	_, ok := b.c.netIdx[name]
	return ok
}

// AddInput declares primary inputs. Build fails if any of them ends up
// being driven by an element.
//
func (b *Builder) AddInput(names ...string) error {
	for _, n := range names {
		if n == "" {
			return errors.New("empty input net name")
		}
		b.inputs = append(b.inputs, b.Net(n))
	}
	return nil
}

// AddOutput declares primary outputs.
//
func (b *Builder) AddOutput(names ...string) error {
	for _, n := range names {
		if n == "" {
			return errors.New("empty output net name")
		}
		b.c.nets[b.Net(n)].Output = true
	}
	return nil
}

// Add adds an element of kind k. If name is empty, a unique name is generated.
// An empty output leaves the element unconnected, which is only valid for
// KindUnknown elements.
//
func (b *Builder) Add(name string, k Kind, output string, inputs ...string) (ElementID, error) {
	return b.AddType(name, k.String(), k, output, inputs...)
}

// AddType is like Add but records typ as the element's printable type.
// This is used for element types that are mapped to another kind (BUF as a
// single input AND) or not recognized at all.
//
func (b *Builder) AddType(name, typ string, k Kind, output string, inputs ...string) (ElementID, error) {
	c := b.c
	id := ElementID(len(c.elems))
	if name == "" {
		name = "__" + strconv.Itoa(int(id))
	}
	if _, ok := c.elemIdx[name]; ok {
		return NoElement, errors.New("duplicate element name " + name)
	}
	if !k.accepts(len(inputs)) {
		return NoElement, errors.Errorf("%s %s: invalid input count %d", typ, name, len(inputs))
	}
	e := Element{Name: name, Type: typ, Kind: k, Output: NoNet}
	if output != "" {
		o := b.Net(output)
		if d := c.nets[o].Driver; d != NoElement {
			return NoElement, errors.Errorf("%s %s: net %s already driven by %s", typ, name, output, c.elems[d].Name)
		}
		e.Output = o
	} else if k != KindUnknown {
		return NoElement, errors.Errorf("%s %s: no output net", typ, name)
	}
	e.Inputs = make([]NetID, len(inputs))
	for i, in := range inputs {
		if in == "" {
			return NoElement, errors.Errorf("%s %s: empty name for input #%d", typ, name, i)
		}
		e.Inputs[i] = b.Net(in)
	}

	// commit
	if e.Output != NoNet {
		c.nets[e.Output].Driver = id
	}
	for _, in := range e.Inputs {
		// a net feeding the same element twice lists it once.
		if cs := c.nets[in].Consumers; len(cs) > 0 && cs[len(cs)-1] == id {
			continue
		}
		c.nets[in].Consumers = append(c.nets[in].Consumers, id)
	}
	c.elems = append(c.elems, e)
	c.elemIdx[name] = id
	return id, nil
}

// Build checks the circuit and returns it. The Builder must not be used
// afterwards.
//
func (b *Builder) Build() (*Circuit, error) {
	c := b.c
	if c == nil {
		return nil, errors.New("builder already used")
	}
	if len(c.nets) == 0 {
		return nil, ErrEmptyCircuit
	}
	for _, id := range b.inputs {
		if n := &c.nets[id]; n.Driver != NoElement {
			return nil, errors.Errorf("primary input %s driven by %s", n.Name, c.elems[n.Driver].Name)
		}
	}
	b.c = nil
	return c, nil
}
