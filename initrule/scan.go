// SPDX-License-Identifier: MIT
// Package: initrule
//
// Purpose:
//   - Provide the single-pass statistic scan shared by all data-informed
//     rules: sum, minimum and visited-entry count over the input matrix V.
//   - Work polymorphically over dense and sparse storage without ever
//     materializing a sparse matrix: sparse types expose DoNonZero and only
//     their stored entries are visited; implicit entries stay absent from
//     the statistic (they are NOT counted as zero contributions).
//   - Derive the scalar offset sqrt((sum/(n*m) - min) / rank) used to bias
//     the uniform fill toward the scale of V.
//
// Determinism & Performance:
//   - Dense fast-path iterates the row-major raw buffer (mat.RawMatrixer);
//     the generic fallback uses At(i,j) in fixed i→j order.
//   - One pass, O(visited entries) time, O(1) space.
//
// Caveats (preserved on purpose, see package doc):
//   - The mean divides by the FULL n*m, not by the number of visited
//     entries. For sparse V this is systematically smaller than the mean of
//     the stored values alone; it encodes "average density" and must not be
//     normalized by count.
//   - A scan that visits nothing leaves min at +Inf; the offset then comes
//     out non-finite and propagates into every produced entry.

package initrule

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// valueStats accumulates the single-pass statistics of one scan over V.
type valueStats struct {
	sum   float64 // Σ value over visited entries
	min   float64 // minimum visited value; +Inf sentinel when nothing visited
	count int     // visited entries; tracked but excluded from the offset formula
	rows  int     // n, full row count of V
	cols  int     // m, full column count of V
}

// scanValues performs the single pass over V's elements.
//
// Dense inputs visit all n*m entries; inputs implementing DoNonZero (sparse
// CSR/COO/DOK and friends) visit only their stored entries. The caller is
// responsible for nil-checking V.
//
// Complexity: O(visited entries), Space O(1).
func scanValues(v mat.Matrix) valueStats {
	n, m := v.Dims()
	st := valueStats{
		min:  math.Inf(1), // sentinel: stays +Inf when nothing is visited
		rows: n,
		cols: m,
	}

	switch vt := v.(type) {
	case nonZeroDoer:
		// Sparse path: stored entries only. Implicit zeros are absent from
		// the statistic, not zero contributions.
		vt.DoNonZero(func(_, _ int, val float64) {
			st.accumulate(val)
		})
	case mat.RawMatrixer:
		// Dense fast-path: walk the row-major raw buffer, honoring Stride.
		rm := vt.RawMatrix()
		var i, j, base int
		for i = 0; i < rm.Rows; i++ {
			base = i * rm.Stride
			for j = 0; j < rm.Cols; j++ {
				st.accumulate(rm.Data[base+j])
			}
		}
	default:
		// Generic fallback: full element iteration in fixed i→j order.
		var i, j int
		var val float64
		for i = 0; i < n; i++ {
			for j = 0; j < m; j++ {
				val = v.At(i, j)
				st.accumulate(val)
			}
		}
	}

	return st
}

// accumulate folds one visited value into the running statistics.
// Complexity: O(1).
func (st *valueStats) accumulate(val float64) {
	st.count++
	st.sum += val
	if val < st.min {
		st.min = val
	}
}

// offset derives the scalar added to every uniformly random entry:
//
//	offset = sqrt((sum/(n*m) - min) / rank)
//
// The mean deliberately divides by the full n*m (see file header). When the
// radicand is negative (mean < min, possible for sparse inputs whose stored
// values all exceed the density-mean) or when nothing was visited (min
// stays +Inf), the result is NaN and the caller propagates it unchanged.
// Complexity: O(1).
func (st valueStats) offset(rank int) float64 {
	mean := st.sum / (float64(st.rows) * float64(st.cols))

	return math.Sqrt((mean - st.min) / float64(rank))
}
