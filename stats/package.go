// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats implements one-way analysis of variance and the Tukey-Kramer
// post-hoc comparison of group means, along with the distributions
// needed to evaluate them.
package stats // import "github.com/mlowell/go-oneway/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
