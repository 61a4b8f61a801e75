// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrGroupCount is returned when fewer than two sample
	// groups are supplied.
	ErrGroupCount = errors.New("need at least two groups")

	// ErrEmptyGroup is returned when a sample group has no
	// observations.
	ErrEmptyGroup = errors.New("group has no observations")

	// ErrSampleSize is returned when there are too few
	// observations to estimate the within-group variance.
	ErrSampleSize = errors.New("sample is too small")

	// ErrZeroVariance is returned when every observation equals
	// its group mean, leaving no within-group variance to test
	// against.
	ErrZeroVariance = errors.New("sample has zero variance")

	// ErrDegreesOfFreedom is returned when an ANOVA result with
	// non-positive error degrees of freedom is supplied.
	ErrDegreesOfFreedom = errors.New("non-positive error degrees of freedom")

	// ErrMeanSquare is returned when an ANOVA result with a
	// negative (or NaN) error mean square is supplied.
	ErrMeanSquare = errors.New("error mean square is not a non-negative number")

	// ErrSignificanceLevel is returned when a significance level
	// is outside the open interval (0, 1).
	ErrSignificanceLevel = errors.New("significance level must be in (0, 1)")
)

// An ANOVAResult is the result of a one-way analysis of variance.
//
// The degrees of freedom are integers, but they are stored as
// float64s because every use of them here is in real arithmetic.
type ANOVAResult struct {
	// SSB and SSE are the between-group and within-group (error)
	// sums of squared deviations. SSB + SSE equals the total sum
	// of squared deviations from the grand mean.
	SSB, SSE float64

	// DFB and DFE are the degrees of freedom of SSB and SSE: one
	// less than the number of groups, and the number of
	// observations less the number of groups, respectively.
	DFB, DFE float64

	// MSB and MSE are the between-group and within-group mean
	// squares, SSB/DFB and SSE/DFE.
	MSB, MSE float64

	// F is the value of the F statistic, MSB/MSE.
	F float64

	// P is the probability, under the null hypothesis that all
	// group means are equal, of an F statistic at least as large
	// as F. It is the upper tail of the F-distribution with
	// (DFB, DFE) degrees of freedom at F.
	P float64
}

// OneWayANOVA performs a one-way analysis of variance [1] of the null
// hypothesis that all groups are samples from populations with the
// same mean, against the alternative hypothesis that at least one
// population mean differs.
//
// Each element of groups is one independent sample of observations.
// OneWayANOVA does not modify groups, and identical inputs produce
// identical results.
//
// A significant result says some pair of group means differs, but
// not which pair. To localize the difference, pass the result and the
// same groups to TukeyKramer.
//
// This can fail with ErrGroupCount if fewer than two groups are
// given, ErrEmptyGroup if a group has no observations,
// ErrSampleSize if there are no degrees of freedom left to estimate
// the within-group variance (that is, if no group has more than one
// observation), or ErrZeroVariance if every observation equals its
// group mean.
//
// [1] Fisher, Ronald A. (1925). Statistical Methods for Research
// Workers. Edinburgh: Oliver and Boyd.
func OneWayANOVA(groups [][]float64) (*ANOVAResult, error) {
	k := len(groups)
	if k < 2 {
		return nil, ErrGroupCount
	}
	n, total := 0, 0.0
	for _, g := range groups {
		if len(g) == 0 {
			return nil, ErrEmptyGroup
		}
		n += len(g)
		total += floats.Sum(g)
	}
	if n <= k {
		return nil, ErrSampleSize
	}

	grand := total / float64(n)
	ssb, sse := 0.0, 0.0
	for _, g := range groups {
		mean := floats.Sum(g) / float64(len(g))
		d := mean - grand
		ssb += float64(len(g)) * d * d
		for _, x := range g {
			sse += (x - mean) * (x - mean)
		}
	}

	if sse == 0 {
		// MSE would be zero and F undefined or infinite.
		return nil, ErrZeroVariance
	}

	dfb, dfe := float64(k-1), float64(n-k)
	msb, mse := ssb/dfb, sse/dfe
	f := msb / mse
	p := FDist{D1: dfb, D2: dfe}.Survival(f)

	return &ANOVAResult{
		SSB: ssb, SSE: sse,
		DFB: dfb, DFE: dfe,
		MSB: msb, MSE: mse,
		F: f, P: p,
	}, nil
}
