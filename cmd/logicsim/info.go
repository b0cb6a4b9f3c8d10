// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/config"
)

func (a *app) infoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [netlist]",
		Short: "Print the nets of a netlist in column order",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.info,
	}
	config.AddNetlistFlags(cmd.Flags())
	return cmd
}

func netRole(n *logicsim.Net) string {
	var r []string
	if n.IsInput() {
		r = append(r, "input")
	}
	if n.IsOutput() {
		r = append(r, "output")
	}
	if len(r) == 0 {
		return "internal"
	}
	return strings.Join(r, ",")
}

func (a *app) info(cmd *cobra.Command, args []string) error {
	c, err := a.loadNetlist(args)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "circuit %s: %d nets, %d elements, %d inputs, %d outputs\n\n",
		c.Name(), len(c.Nets()), len(c.Elements()), len(c.Inputs()), len(c.Outputs()))
	fmt.Fprintln(tw, "COLUMN\tNET\tROLE\tDRIVER")
	for i, id := range logicsim.OrderNets(c) {
		n := c.Net(id)
		drv := "-"
		if n.Driver != logicsim.NoElement {
			e := c.Element(n.Driver)
			drv = e.Name + " (" + e.Type + ")"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, n.Name, netRole(n), drv)
	}

	stats := c.Stats()
	kinds := make([]logicsim.Kind, 0, len(stats))
	for k := range stats {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	fmt.Fprintln(tw, "\nKIND\tCOUNT")
	for _, k := range kinds {
		fmt.Fprintf(tw, "%v\t%d\n", k, stats[k])
	}
	return errors.WithStack(tw.Flush())
}
