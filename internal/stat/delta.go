// Copyright 2020 The golang.design Initiative Authors.
// All rights reserved. Use of this source code is governed
// by a GNU GPLv3 license that can be found in the LICENSE file.

package stat

import "math"

// Delta returns the signed error of estimate from math.Pi. It is
// positive when the estimate undershoots and negative when it
// overshoots.
func Delta(estimate float64) float64 {
	return math.Pi - estimate
}
