// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/db47h/logicsim"
)

// Format names.
//
const (
	FormatBench = "bench"
	FormatYAML  = "yaml"
)

// Load loads a netlist from the named file. format is one of FormatBench or
// FormatYAML ("yml" is accepted too). If format is empty, it is derived from
// the file extension: ".yaml" and ".yml" files are YAML, anything else is
// bench.
//
func Load(path, format string) (*logicsim.Circuit, error) {
	if format == "" {
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			format = FormatYAML
		default:
			format = FormatBench
		}
	}
	switch format {
	case FormatBench:
		return LoadBench(path)
	case FormatYAML, "yml":
		return LoadYAML(path)
	}
	return nil, errors.Errorf("unknown netlist format %q", format)
}
