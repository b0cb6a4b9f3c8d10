// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// ElementID is the handle of an element in a Circuit.
//
type ElementID int

// NetID is the handle of a net in a Circuit.
//
type NetID int

// Invalid handles.
//
const (
	NoElement ElementID = -1
	NoNet     NetID     = -1
)

// An Element is a gate or storage cell. Its input order is significant for
// DFFs: clock first, then data.
//
type Element struct {
	Name   string
	Type   string // printable type, as found in the source netlist
	Kind   Kind
	Inputs []NetID
	Output NetID // NoNet if the element drives nothing
}

// A Net is a named wire with at most one driver.
//
type Net struct {
	Name      string
	Driver    ElementID // NoElement for primary inputs
	Consumers []ElementID
	// Output is set for nets declared as primary outputs. Nets with no
	// consumers are primary outputs as well, see IsOutput.
	Output bool
}

// IsInput returns true if n is a primary input.
//
func (n *Net) IsInput() bool { return n.Driver == NoElement }

// IsOutput returns true if n is a primary output.
//
func (n *Net) IsOutput() bool { return n.Output || len(n.Consumers) == 0 }

// Circuit is an immutable circuit graph. Element and net handles index
// directly into the circuit's arenas. A Circuit is never modified by a
// simulation and can be shared by concurrent simulators.
//
type Circuit struct {
	name    string
	elems   []Element
	nets    []Net
	netIdx  map[string]NetID
	elemIdx map[string]ElementID
}

// Name returns the circuit name.
//
func (c *Circuit) Name() string { return c.name }

// Elements returns all elements in construction order. The returned slice
// must not be modified.
//
func (c *Circuit) Elements() []Element { return c.elems }

// Nets returns all nets in construction order. The returned slice must not be
// modified.
//
func (c *Circuit) Nets() []Net { return c.nets }

// Element returns the element with the given id.
//
func (c *Circuit) Element(id ElementID) *Element { return &c.elems[id] }

// Net returns the net with the given id.
//
func (c *Circuit) Net(id NetID) *Net { return &c.nets[id] }

// NetByName returns the id of the named net.
//
func (c *Circuit) NetByName(name string) (NetID, bool) {
	id, ok := c.netIdx[name]
	return id, ok
}

// ElementByName returns the id of the named element.
//
func (c *Circuit) ElementByName(name string) (ElementID, bool) {
	id, ok := c.elemIdx[name]
	return id, ok
}

// Inputs returns the primary input nets in construction order.
//
func (c *Circuit) Inputs() []NetID {
	var ids []NetID
	for i := range c.nets {
		if c.nets[i].IsInput() {
			ids = append(ids, NetID(i))
		}
	}
	return ids
}

// Outputs returns the primary output nets in construction order.
//
func (c *Circuit) Outputs() []NetID {
	var ids []NetID
	for i := range c.nets {
		if c.nets[i].IsOutput() {
			ids = append(ids, NetID(i))
		}
	}
	return ids
}

// Stats returns the element count per kind.
//
func (c *Circuit) Stats() map[Kind]int {
	m := make(map[Kind]int)
	for i := range c.elems {
		m[c.elems[i].Kind]++
	}
	return m
}
