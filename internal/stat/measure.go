// Copyright 2020 The golang.design Initiative Authors.
// All rights reserved. Use of this source code is governed
// by a GNU GPLv3 license that can be found in the LICENSE file.

// Package stat times a series estimate and reports it.
package stat

import (
	"time"

	"golang.design/x/pibench/internal/series"
)

// A Clock returns the current time. time.Now is the usual Clock.
type Clock func() time.Time

// Result is one timed run of the series estimator.
type Result struct {
	Terms    int
	Estimate float64
	Error    float64
	Elapsed  time.Duration
}

// Measure runs series.Estimate(n) between two clock reads.
func Measure(clock Clock, n int) *Result {
	t0 := clock()
	est := series.Estimate(n)
	t1 := clock()

	elapsed := t1.Sub(t0)
	if elapsed < 0 {
		// wall clock stepped back
		elapsed = 0
	}
	return &Result{
		Terms:    n,
		Estimate: est,
		Error:    Delta(est),
		Elapsed:  elapsed,
	}
}
