// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the logicsim run configuration from defaults, an
// optional config file, LOGICSIM_* environment variables and command line
// flags, in increasing order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys. They double as flag names.
const (
	KeyNetlist   = "netlist"
	KeyFormat    = "format"
	KeyVectors   = "vectors"
	KeyOut       = "out"
	KeySeparator = "separator"
	KeyMaxSweeps = "max-sweeps"
	KeyWave      = "wave"
	KeyWaveNets  = "wave-nets"
	KeyMetrics   = "metrics"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// EnvPrefix is the prefix of environment variables overriding config values.
const EnvPrefix = "LOGICSIM"

// Config holds the settings of a simulation run.
type Config struct {
	Netlist   string   `mapstructure:"netlist"`
	Format    string   `mapstructure:"format"` // bench, yaml, or empty to guess from the file extension
	Vectors   string   `mapstructure:"vectors"`
	Out       string   `mapstructure:"out"`
	Separator string   `mapstructure:"separator"`
	MaxSweeps int      `mapstructure:"max-sweeps"`
	Wave      string   `mapstructure:"wave"`
	WaveNets  []string `mapstructure:"wave-nets"`
	Metrics   bool     `mapstructure:"metrics"`
	LogLevel  string   `mapstructure:"log-level"`
	LogFormat string   `mapstructure:"log-format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySeparator, ";")
	v.SetDefault(KeyMaxSweeps, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// AddNetlistFlags declares the flags selecting the netlist on fs.
func AddNetlistFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyNetlist, "n", "", "netlist file")
	fs.String(KeyFormat, "", "netlist format: bench or yaml (default: from file extension)")
}

// AddFlags declares the run flags on fs, including the netlist flags.
func AddFlags(fs *pflag.FlagSet) {
	AddNetlistFlags(fs)
	fs.StringP(KeyVectors, "i", "", "input vector file (default: stdin)")
	fs.StringP(KeyOut, "o", "", "output file (default: stdout)")
	fs.String(KeySeparator, ";", "output value separator")
	fs.Int(KeyMaxSweeps, 0, "combinational sweep limit per step (0: automatic, <0: none)")
	fs.String(KeyWave, "", "render a waveform of the run to this file (.png, .svg or .pdf)")
	fs.StringSlice(KeyWaveNets, nil, "nets to include in the waveform (default: inputs and outputs)")
	fs.Bool(KeyMetrics, false, "print simulation metrics to stderr")
}

// AddGlobalFlags declares the flags shared by all commands on fs.
func AddGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: ./logicsim.yaml or $HOME/.config/logicsim/logicsim.yaml)")
	fs.String(KeyLogLevel, "info", "log level: error, warn, info, debug or trace")
	fs.String(KeyLogFormat, "console", "log format: console or json")
}

// NewViper returns a viper instance with defaults and environment binding set
// up. If file is not empty, it is read as the config file, otherwise
// logicsim.yaml is looked up in the usual places and is optional.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		return v, nil
	}
	v.SetConfigName("logicsim")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/logicsim")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "read config file")
		}
	}
	return v, nil
}

// Load binds fs to v and decodes the resulting configuration.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if len(c.Separator) != 1 {
		return errors.Errorf("separator must be a single character, got %q", c.Separator)
	}
	switch strings.ToLower(c.Format) {
	case "", "bench", "yaml", "yml":
	default:
		return errors.Errorf("unknown netlist format %q", c.Format)
	}
	return nil
}
