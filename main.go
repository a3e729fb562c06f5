// Copyright 2020 The golang.design Initiative Authors.
// All rights reserved. Use of this source code is governed
// by a GNU GPLv3 license that can be found in the LICENSE file.

// Command pibench estimates π from the Leibniz series, times the
// computation and prints the estimate, its error and the elapsed time.
package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"golang.design/x/pibench/internal/series"
	"golang.design/x/pibench/internal/stat"
)

func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		// stdout stays reserved for the report
		return zap.NewNop()
	}
	return l.Named("bench")
}

// run times one estimate of n terms and writes the report to stdout.
// Diagnostics go to logger only.
func run(stdout io.Writer, clock stat.Clock, n int, logger *zap.Logger) error {
	logger.Info("estimating pi", zap.Int("terms", n))
	res := stat.Measure(clock, n)
	logger.Info("done", zap.Duration("elapsed", res.Elapsed))

	if err := stat.FormatText(stdout, res); err != nil {
		logger.Error("cannot write report", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	logger := newLogger()
	err := run(os.Stdout, time.Now, series.Terms, logger)
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
