// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/db47h/logicsim"
)

// File is the YAML representation of a netlist:
//
//	name: half_adder
//	inputs: [a, b]
//	outputs: [c, s]
//	elements:
//	  - {name: c, type: AND, inputs: [a, b], output: c}
//	  - {name: s, type: XOR, inputs: [a, b], output: s}
//
// Element types are the same as in bench files. An element with no name is
// named after its output net.
//
type File struct {
	Name     string    `yaml:"name"`
	Inputs   []string  `yaml:"inputs"`
	Outputs  []string  `yaml:"outputs"`
	Elements []Element `yaml:"elements"`
}

// Element is an element entry in a YAML netlist.
//
type Element struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Inputs []string `yaml:"inputs,flow"`
	Output string   `yaml:"output"`
}

// Validate checks the file for missing fields.
//
func (f *File) Validate() error {
	if len(f.Elements) == 0 && len(f.Inputs) == 0 {
		return errors.New("no inputs and no elements")
	}
	for i := range f.Elements {
		e := &f.Elements[i]
		if e.Type == "" {
			return errors.Errorf("element #%d (%s): missing type", i, e.Name)
		}
		if e.Name == "" && e.Output == "" {
			return errors.Errorf("element #%d: missing both name and output", i)
		}
	}
	return nil
}

// Circuit builds the circuit described by f.
//
func (f *File) Circuit() (*logicsim.Circuit, error) {
	if err := f.Validate(); err != nil {
		return nil, errors.Wrap(err, f.Name)
	}
	b := logicsim.NewBuilder(f.Name)
	if err := b.AddInput(f.Inputs...); err != nil {
		return nil, errors.Wrap(err, f.Name)
	}
	if err := b.AddOutput(f.Outputs...); err != nil {
		return nil, errors.Wrap(err, f.Name)
	}
	for i := range f.Elements {
		e := &f.Elements[i]
		name := e.Name
		if name == "" {
			name = e.Output
		}
		if err := addGate(b, name, e.Type, e.Output, e.Inputs); err != nil {
			return nil, errors.Wrapf(err, "%s: element #%d", f.Name, i)
		}
	}
	c, err := b.Build()
	return c, errors.Wrap(err, f.Name)
}

// ParseYAML reads a YAML netlist from r. If the file has no name, the circuit
// is named name. Unknown fields are rejected.
//
func ParseYAML(r io.Reader, name string) (*logicsim.Circuit, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, name)
	}
	if f.Name == "" {
		f.Name = name
	}
	return f.Circuit()
}

// LoadYAML loads a YAML netlist from the named file.
//
func LoadYAML(path string) (*logicsim.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()
	c, err := ParseYAML(f, baseName(path))
	return c, errors.Wrap(err, path)
}
