// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/config"
	"github.com/db47h/logicsim/internal/logging"
	"github.com/db47h/logicsim/netlist"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	cfg *config.Config
	zl  *zap.Logger
	log logr.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard()}
	root := &cobra.Command{
		Use:   "logicsim",
		Short: "Three-valued gate-level logic simulator",
		Long: `logicsim applies input vectors to a netlist of AND, OR, NOT and DFF
elements, one vector per time step, and prints the primary outputs of
each step.

Settings are read from flags, LOGICSIM_* environment variables and an
optional logicsim.yaml config file.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}
	config.AddGlobalFlags(root.PersistentFlags())
	root.AddCommand(a.runCmd(), a.infoCmd(), versionCmd())
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return errors.WithStack(err)
	}
	v, err := config.NewViper(file)
	if err != nil {
		return err
	}
	if a.cfg, err = config.Load(v, cmd.Flags()); err != nil {
		return err
	}
	a.zl, a.log, err = logging.New(a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return err
	}
	if f := v.ConfigFileUsed(); f != "" {
		a.log.V(logging.DEBUG).Info("using config file", "file", f)
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.zl != nil {
		// stderr sync fails on some platforms; nothing to report.
		_ = a.zl.Sync()
	}
	return nil
}

// loadNetlist loads the netlist named by the first argument or by the
// netlist setting.
func (a *app) loadNetlist(args []string) (*logicsim.Circuit, error) {
	path := a.cfg.Netlist
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no netlist given")
	}
	c, err := netlist.Load(path, strings.ToLower(a.cfg.Format))
	if err != nil {
		return nil, err
	}
	a.log.V(logging.DEBUG).Info("netlist loaded", "file", path,
		"nets", len(c.Nets()), "elements", len(c.Elements()))
	return c, nil
}
