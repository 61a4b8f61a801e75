// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// An FDist is the F-distribution with D1 numerator and D2 denominator
// degrees of freedom. It is the null distribution of the ratio of two
// independent variance estimates, and hence of the one-way ANOVA F
// statistic with D1 = DFB and D2 = DFE.
//
// Both degrees of freedom must be positive. Evaluating a
// misparameterized FDist yields NaN.
type FDist struct {
	D1, D2 float64
}

var _ Dist = FDist{}

func (d FDist) PDF(x float64) float64 {
	if !(d.D1 > 0 && d.D2 > 0) {
		return nan
	}
	return distuv.F{D1: d.D1, D2: d.D2}.Prob(x)
}

func (d FDist) CDF(x float64) float64 {
	if !(d.D1 > 0 && d.D2 > 0) {
		return nan
	}
	if x <= 0 {
		return 0
	}
	return distuv.F{D1: d.D1, D2: d.D2}.CDF(x)
}

// Survival returns the probability that an F-distributed variable
// exceeds x. This is the p-value of an observed F statistic x.
func (d FDist) Survival(x float64) float64 {
	if !(d.D1 > 0 && d.D2 > 0) {
		return nan
	}
	if x <= 0 {
		return 1
	}
	return distuv.F{D1: d.D1, D2: d.D2}.Survival(x)
}

func (d FDist) InvCDF(y float64) float64 {
	if !(d.D1 > 0 && d.D2 > 0) || !(y >= 0 && y <= 1) {
		return nan
	}
	switch y {
	case 0:
		return 0
	case 1:
		return inf
	}
	return invCDF(d.CDF, y)
}
