// Copyright 2020 The golang.design Initiative Authors.
// All rights reserved. Use of this source code is governed
// by a GNU GPLv3 license that can be found in the LICENSE file.

// Package series sums the Leibniz series for π.
package series

// Terms is the number of series terms the benchmark sums.
const Terms = 100_000_000

// Estimate returns 4 * (1 - 1/3 + 1/5 - ... ± 1/(2n+1)).
//
// Terms are added one at a time in increasing order with no
// compensation, so the result is bit-reproducible for a given n.
// Estimate(0) is 4.
func Estimate(n int) float64 {
	s := 1.0
	// counting k up to n rather than i past it keeps n == math.MaxInt finite
	for k := 0; k < n; k++ {
		i := k + 1
		var si float64
		if i%2 == 1 {
			si = -1 / (2*float64(i) + 1)
		} else {
			si = 1 / (2*float64(i) + 1)
		}
		s += si
	}
	return 4 * s
}
