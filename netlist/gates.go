// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/celllib"
)

// composite gate types, expanded into primitives.
var composites = map[string]func(ways int) *celllib.Spec{
	"NAND": celllib.NandN,
	"NOR":  celllib.NorN,
	"XOR":  celllib.XorN,
	"XNOR": celllib.XnorN,
}

// addGate adds a gate of type typ named name to b.
//
// AND, OR, NOT and DFF map to primitive elements. A DFF with a single input
// is clocked by logicsim.ClockNet. BUF and BUFF are single input AND
// elements. NAND, NOR, XOR and XNOR are expanded with the matching celllib
// cells, their internal nets named after the instance. Any other type yields
// an element of unknown kind that never drives its output.
//
func addGate(b *logicsim.Builder, name, typ, out string, ins []string) error {
	t := strings.ToUpper(typ)
	switch t {
	case "DFF":
		if len(ins) == 1 {
			ins = []string{logicsim.ClockNet, ins[0]}
		}
		_, err := b.AddType(name, t, logicsim.KindDFF, out, ins...)
		return err
	case "BUF", "BUFF":
		if len(ins) != 1 {
			return errors.Errorf("%s %s: invalid input count %d", t, name, len(ins))
		}
		_, err := b.AddType(name, t, logicsim.KindAnd, out, ins...)
		return err
	}
	if f, ok := composites[t]; ok {
		w := celllib.W{"out": out}
		for i, n := range ins {
			w[celllib.BusPinName("in", i)] = n
		}
		return f(len(ins)).Place(b, name, w)
	}
	k := logicsim.ParseKind(typ)
	if k != logicsim.KindUnknown {
		typ = t
	}
	_, err := b.AddType(name, typ, k, out, ins...)
	return err
}
