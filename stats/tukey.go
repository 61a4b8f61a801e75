// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultAlpha is the customary family-wise significance level for
// the Tukey-Kramer procedure.
const DefaultAlpha = 0.05

// A GroupPair identifies an unordered pair of sample groups by their
// 1-based positions in the input, with I < J.
type GroupPair struct {
	I, J int
}

// A PairComparison is the Tukey-Kramer comparison of one pair of
// group means.
type PairComparison struct {
	// Pair identifies the two groups being compared.
	Pair GroupPair

	// MeanDiff is the absolute difference of the two group means.
	MeanDiff float64

	// QCrit is the critical value for this pair. It scales the
	// Studentized range quantile by the standard error of the
	// difference of the two group means, so it already accounts
	// for unequal group sizes.
	QCrit float64

	// Significant reports whether MeanDiff exceeds QCrit, that
	// is, whether these two group means differ at the family-wise
	// significance level the comparison was computed for.
	Significant bool
}

// A TukeyKramerResult is the result of a Tukey-Kramer comparison of
// all pairs of group means.
type TukeyKramerResult struct {
	// Alpha is the family-wise significance level the comparisons
	// were computed for. This is simply a copy of the argument to
	// TukeyKramer.
	Alpha float64

	// Pairs holds one comparison for every unordered pair of
	// groups, in lexicographic order of (Pair.I, Pair.J). For k
	// groups it has k*(k-1)/2 elements.
	Pairs []PairComparison
}

// Comparison returns the comparison of groups i and j, which may be
// given in either order. It returns false if (i, j) is not a pair of
// distinct valid group indexes.
func (r *TukeyKramerResult) Comparison(i, j int) (PairComparison, bool) {
	if j < i {
		i, j = j, i
	}
	for _, c := range r.Pairs {
		if c.Pair.I == i && c.Pair.J == j {
			return c, true
		}
	}
	return PairComparison{}, false
}

// TukeyKramer performs the Tukey-Kramer test [1,2], also known as
// Tukey's honestly significant difference test, on every pair of
// groups, localizing which group means differ after a one-way
// analysis of variance.
//
// groups must be the same sample groups that produced r via
// OneWayANOVA; TukeyKramer uses r's error mean square and error
// degrees of freedom and does not check that they match groups.
// alpha is the family-wise significance level, in (0, 1). Callers
// normally pass DefaultAlpha.
//
// The family-wise error rate is controlled across all pairs
// simultaneously: the critical values are drawn from the Studentized
// range distribution for the total number of groups, not for two,
// and the Kramer correction makes them exact for unequal group
// sizes. TukeyKramer does not modify groups, and identical inputs
// produce identical results.
//
// This can fail with ErrGroupCount, ErrEmptyGroup,
// ErrDegreesOfFreedom, ErrMeanSquare, or ErrSignificanceLevel.
//
// [1] Tukey, John W. (1949). "Comparing Individual Means in the
// Analysis of Variance". Biometrics 5 (2): 99–114.
//
// [2] Kramer, Clyde Y. (1956). "Extension of multiple range tests to
// group means with unequal numbers of replications". Biometrics 12
// (3): 307–310.
func TukeyKramer(groups [][]float64, r *ANOVAResult, alpha float64) (*TukeyKramerResult, error) {
	k := len(groups)
	if k < 2 {
		return nil, ErrGroupCount
	}
	for _, g := range groups {
		if len(g) == 0 {
			return nil, ErrEmptyGroup
		}
	}
	if !(r.DFE > 0) {
		return nil, ErrDegreesOfFreedom
	}
	if !(r.MSE >= 0) {
		return nil, ErrMeanSquare
	}
	if !(alpha > 0 && alpha < 1) {
		return nil, ErrSignificanceLevel
	}

	q := StudentizedRangeDist{K: k, V: r.DFE}.InvCDF(1 - alpha)

	means := make([]float64, k)
	for i, g := range groups {
		means[i] = floats.Sum(g) / float64(len(g))
	}

	pairs := make([]PairComparison, 0, k*(k-1)/2)
	for i := 0; i < k-1; i++ {
		for j := i + 1; j < k; j++ {
			diff := math.Abs(means[i] - means[j])
			se := math.Sqrt(r.MSE / 2 * (1/float64(len(groups[i])) + 1/float64(len(groups[j]))))
			crit := q * se
			pairs = append(pairs, PairComparison{
				Pair:        GroupPair{i + 1, j + 1},
				MeanDiff:    diff,
				QCrit:       crit,
				Significant: diff > crit,
			})
		}
	}
	return &TukeyKramerResult{Alpha: alpha, Pairs: pairs}, nil
}
