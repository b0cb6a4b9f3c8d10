// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logging builds the structured loggers used by logicsim.
//
// Library code logs through logr. The command line tool backs it with a zap
// logger.
//
package logging

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// logr verbosity levels.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ParseLevel maps a level name to a zap level. logr V(n) messages are logged
// at zap level -n, so "trace" enables V(TRACE).
//
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.Level(-DEBUG), nil
	case "trace":
		return zapcore.Level(-TRACE), nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, errors.Errorf("unknown log level %q", s)
}

// New returns a zap logger writing to stderr and its logr wrapper.
// Callers should Sync the zap logger before exiting.
//
func New(level, format string) (*zap.Logger, logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, logr.Discard(), err
	}
	var cfg zap.Config
	switch strings.ToLower(format) {
	case "", FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case FormatJSON:
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	default:
		return nil, logr.Discard(), errors.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	zl, err := cfg.Build()
	if err != nil {
		return nil, logr.Discard(), errors.Wrap(err, "build logger")
	}
	return zl, zapr.NewLogger(zl), nil
}

// NewTestLogger returns a logger writing to t.Log with all levels enabled.
//
func NewTestLogger(t testing.TB) logr.Logger {
	return zapr.NewLogger(zaptest.NewLogger(t, zaptest.Level(zapcore.Level(-TRACE))))
}
