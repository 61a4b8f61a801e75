// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestTukeyKramer(t *testing.T) {
	groups := [][]float64{
		{1, 2, 5, 9},
		{2, 6, 4, 2, 3, 8},
		{15, 6, 26},
	}
	r, err := OneWayANOVA(groups)
	if err != nil {
		t.Fatal(err)
	}

	// For comparing with R:
	//   x <- c(1,2,5,9, 2,6,4,2,3,8, 15,6,26)
	//   g <- factor(rep(1:3, c(4,6,3)))
	//   TukeyHSD(aov(x ~ g))
	tk, err := TukeyKramer(groups, r, DefaultAlpha)
	if err != nil {
		t.Fatal(err)
	}
	if tk.Alpha != DefaultAlpha {
		t.Errorf("want alpha %v, got %v", DefaultAlpha, tk.Alpha)
	}
	want := []PairComparison{
		{GroupPair{1, 2}, 0.0833333, 9.1647377, false},
		{GroupPair{1, 3}, 11.4166667, 10.8438639, true},
		{GroupPair{2, 3}, 11.5, 10.0394671, true},
	}
	if len(tk.Pairs) != len(want) {
		t.Fatalf("want %d pairs, got %+v", len(want), tk.Pairs)
	}
	for i, w := range want {
		g := tk.Pairs[i]
		if g.Pair != w.Pair || !aeq(w.MeanDiff, g.MeanDiff) || !aeq(w.QCrit, g.QCrit) || g.Significant != w.Significant {
			t.Errorf("pair %d: want %+v, got %+v", i, w, g)
		}
	}

	// Identical input must give bit-identical output.
	tk2, err := TukeyKramer(groups, r, DefaultAlpha)
	if err != nil {
		t.Fatal(err)
	}
	for i := range tk.Pairs {
		if tk.Pairs[i] != tk2.Pairs[i] {
			t.Errorf("results differ between runs: %+v vs %+v", tk.Pairs[i], tk2.Pairs[i])
		}
	}
}

func TestTukeyKramerPairs(t *testing.T) {
	groups := [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	r, err := OneWayANOVA(groups)
	if err != nil {
		t.Fatal(err)
	}
	tk, err := TukeyKramer(groups, r, DefaultAlpha)
	if err != nil {
		t.Fatal(err)
	}

	// Four groups give C(4,2) = 6 pairs, enumerated in
	// lexicographic order.
	wantPairs := []GroupPair{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	if len(tk.Pairs) != len(wantPairs) {
		t.Fatalf("want %d pairs, got %d", len(wantPairs), len(tk.Pairs))
	}
	for i, w := range wantPairs {
		if tk.Pairs[i].Pair != w {
			t.Errorf("pair %d: want %v, got %v", i, w, tk.Pairs[i].Pair)
		}
	}

	// Each comparison must be internally consistent.
	for _, c := range tk.Pairs {
		if c.MeanDiff < 0 || c.QCrit < 0 {
			t.Errorf("%+v: negative difference or critical value", c)
		}
		if c.Significant != (c.MeanDiff > c.QCrit) {
			t.Errorf("%+v: significance flag inconsistent", c)
		}
	}

	// Lookup works in either index order and rejects bad indexes.
	c, ok := tk.Comparison(3, 1)
	if !ok || c.Pair != (GroupPair{1, 3}) {
		t.Errorf("Comparison(3, 1) = %+v, %v", c, ok)
	}
	if _, ok := tk.Comparison(1, 1); ok {
		t.Errorf("Comparison(1, 1) should not exist")
	}
	if _, ok := tk.Comparison(1, 5); ok {
		t.Errorf("Comparison(1, 5) should not exist")
	}
}

func TestTukeyKramerErrors(t *testing.T) {
	groups := [][]float64{{1, 2, 5, 9}, {2, 6, 4, 2, 3, 8}}
	r, err := OneWayANOVA(groups)
	if err != nil {
		t.Fatal(err)
	}

	check := func(groups [][]float64, r *ANOVAResult, alpha float64, want error) {
		t.Helper()
		tk, err := TukeyKramer(groups, r, alpha)
		if err != want {
			t.Errorf("want %v, got %+v, %v", want, tk, err)
		}
	}

	check([][]float64{{1, 2}}, r, DefaultAlpha, ErrGroupCount)
	check([][]float64{{1, 2}, {}}, r, DefaultAlpha, ErrEmptyGroup)
	check(groups, &ANOVAResult{DFE: 0, MSE: 1}, DefaultAlpha, ErrDegreesOfFreedom)
	check(groups, &ANOVAResult{DFE: 10, MSE: -1}, DefaultAlpha, ErrMeanSquare)
	check(groups, &ANOVAResult{DFE: 10, MSE: math.NaN()}, DefaultAlpha, ErrMeanSquare)
	check(groups, r, 0, ErrSignificanceLevel)
	check(groups, r, 1, ErrSignificanceLevel)
	check(groups, r, -0.05, ErrSignificanceLevel)
	check(groups, r, math.NaN(), ErrSignificanceLevel)
}
