// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

// A StudentizedRangeDist is the distribution of the range of K
// independent standard normal variables divided by an independent
// estimate of their standard deviation with V degrees of freedom.
//
// This is the null distribution of the Tukey-Kramer q statistic: for
// K group means and an error mean square on V degrees of freedom, the
// largest standardized difference between any two of the K means
// follows this distribution when all population means are equal.
//
// There is no closed form for this distribution. The CDF
//
//	P(Q ≤ q) = ∫₀^∞ g_V(s) · R_K(q·s) ds
//
// where g_V is the density of √(χ²_V/V) and R_K(w) is the
// probability that the range of K standard normal variables is at
// most w, is evaluated by Gauss-Legendre quadrature of both
// integrals. See Hochberg, Y.; Tamhane, A. C. (1987). Multiple
// Comparison Procedures. Wiley, appendix 3, for the integral forms.
//
// K must be at least 2 and V must be positive. Evaluating a
// misparameterized StudentizedRangeDist yields NaN.
type StudentizedRangeDist struct {
	// K is the number of sample means whose range is taken.
	K int

	// V is the degrees of freedom of the standard deviation
	// estimate. It is integral in applications, but any positive
	// value is accepted.
	V float64
}

var _ Dist = StudentizedRangeDist{}

// Quadrature settings for the two integrals in the CDF. The standard
// normal weight confines the inner integrand to |z| ≤ srZCut, and the
// scale density g_V has mean ≈ 1 and standard deviation < 1/√(2V), so
// the outer window 1 ± srOuterHalf/√V (clamped at 0) carries all but
// a vanishing fraction of its mass for every V ≥ 1. The rule orders
// leave the quadrature error far below the truncation error.
const (
	srZCut       = 8.0
	srInnerOrder = 101
	srOuterHalf  = 12.0
	srOuterOrder = 201
)

// rangeCDF returns the probability that the range of K independent
// standard normal variables is at most w.
func (d StudentizedRangeDist) rangeCDF(w float64) float64 {
	if w <= 0 {
		return 0
	}
	k1 := float64(d.K - 1)
	f := func(z float64) float64 {
		return distuv.UnitNormal.Prob(z) * math.Pow(distuv.UnitNormal.CDF(z)-distuv.UnitNormal.CDF(z-w), k1)
	}
	p := float64(d.K) * quad.Fixed(f, -srZCut, srZCut, srInnerOrder, quad.Legendre{}, 0)
	return math.Min(1, p)
}

func (d StudentizedRangeDist) CDF(q float64) float64 {
	if d.K < 2 || !(d.V > 0) || math.IsNaN(q) {
		return nan
	}
	if q <= 0 {
		return 0
	}
	if math.IsInf(q, 1) {
		return 1
	}

	// Log of the normalizing constant of g_V avoids Γ(V/2)
	// overflow for large V.
	v := d.V
	lg, _ := math.Lgamma(v / 2)
	lnC := 0.5*v*math.Log(v) - lg - (0.5*v-1)*math.Ln2

	f := func(s float64) float64 {
		lnG := lnC - 0.5*v*s*s
		if v != 1 {
			lnG += (v - 1) * math.Log(s)
		}
		return math.Exp(lnG) * d.rangeCDF(q*s)
	}
	half := srOuterHalf / math.Sqrt(v)
	lo := math.Max(0, 1-half)
	p := quad.Fixed(f, lo, 1+half, srOuterOrder, quad.Legendre{}, 0)
	return math.Max(0, math.Min(1, p))
}

func (d StudentizedRangeDist) Survival(q float64) float64 {
	return 1 - d.CDF(q)
}

// InvCDF returns the quantile of the Studentized range distribution:
// the critical value q such that CDF(q) = y. It is increasing in y
// and, for fixed y and V, increasing in K.
func (d StudentizedRangeDist) InvCDF(y float64) float64 {
	if d.K < 2 || !(d.V > 0) || !(y >= 0 && y <= 1) {
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
