// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package celllib

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// W maps a cell's pin names (the keys) to net names in the host circuit.
//
type W map[string]string

// BusPinName returns the name of pin i of a bus.
//
func BusPinName(bus string, i int) string {
	return bus + "[" + strconv.Itoa(i) + "]"
}

// Bus returns the pin names of an n pin bus.
//
func Bus(name string, n int) []string {
	b := make([]string, n)
	for i := range b {
		b[i] = BusPinName(name, i)
	}
	return b
}

// ParseConnections parses a connection string like
//
//	"a=x, b=y[2], in[0..3]=bus[4..7], out=z"
//
// into a W. Bus ranges on both sides are expanded; a range on the left can
// also be connected to a single net.
//
func ParseConnections(conns string) (W, error) {
	w := make(W)
	for _, c := range strings.Split(conns, ",") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		i := strings.IndexByte(c, '=')
		if i < 0 {
			return nil, errors.Errorf("in %q: expected '=' in %q", conns, c)
		}
		k, v := strings.TrimSpace(c[:i]), strings.TrimSpace(c[i+1:])
		if k == "" || v == "" {
			return nil, errors.Errorf("in %q: invalid pin mapping %s:%s", conns, k, v)
		}
		ks, err := expandRange(k)
		if err != nil {
			return nil, errors.Wrap(err, "expand key "+k)
		}
		vs, err := expandRange(v)
		if err != nil {
			return nil, errors.Wrap(err, "expand value "+v)
		}
		switch {
		case len(ks) == len(vs):
			for i := range ks {
				w[ks[i]] = vs[i]
			}
		case len(vs) == 1:
			// many to one
			for _, k := range ks {
				w[k] = vs[0]
			}
		default:
			return nil, errors.New("pin count mismatch in pin mapping: " + k + ":" + v)
		}
	}
	return w, nil
}

func expandRange(name string) ([]string, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return []string{name}, nil
	}
	bus := name[:i]
	if bus == "" {
		return nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	i = strings.Index(n, "..")
	if i < 0 {
		return []string{name}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "bus range start")
	}
	n = n[i+2:]
	i = strings.IndexRune(n, ']')
	if i < 0 {
		return nil, errors.New("no terminating ] in bus range")
	}
	end, err := strconv.Atoi(n[:i])
	if err != nil {
		return nil, errors.Wrap(err, "bus range end")
	}
	if end < start {
		return nil, errors.Errorf("invalid bus range %d..%d", start, end)
	}
	r := make([]string, 0, end-start+1)
	for i := start; i <= end; i++ {
		r = append(r, BusPinName(bus, i))
	}
	return r, nil
}
