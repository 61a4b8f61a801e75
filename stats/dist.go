// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution.
type Dist interface {
	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// Survival returns the upper tail probability of this
	// distribution at x. This is 1 - CDF(x), but implementations
	// may compute it more accurately for small tail probabilities.
	Survival(x float64) float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. The value of y must be in [0, 1].
	InvCDF(y float64) float64
}

// invCDF inverts the monotone CDF of a distribution supported on
// [0, ∞) by bracketing and bisection. p must be in (0, 1).
func invCDF(cdf func(float64) float64, p float64) float64 {
	lo, hi := 0.0, 1.0
	for cdf(hi) < p {
		lo, hi = hi, hi*2
		if hi == inf {
			return inf
		}
	}
	for hi-lo > 1e-10*(1+hi) {
		mid := 0.5 * (lo + hi)
		if cdf(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}
