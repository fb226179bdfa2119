// SPDX-License-Identifier: MIT
// Package initrule_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the rule tests.
//   - Keep fast-path vs fallback comparisons honest via the hide wrapper.

package initrule_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// hide wraps any mat.Matrix to mask its concrete type from type switches.
// Scans over hide{X} cannot reach the RawMatrixer fast path or the
// DoNonZero sparse path, so they exercise the generic At fallback.
type hide struct{ mat.Matrix }

// denseBaseline is a 2×2 matrix with sum=10, mean=2.5, min=1,
// so for rank=1 the offset is sqrt(1.5).
func denseBaseline() *mat.Dense {
	return mat.NewDense(2, 2, []float64{1, 2, 3, 4})
}

// offsetBaseline is the exact offset of denseBaseline at rank 1.
var offsetBaseline = math.Sqrt(1.5)

// requireShape fails the test unless m is rows×cols.
func requireShape(t *testing.T, m mat.Matrix, rows, cols int) {
	t.Helper()
	r, c := m.Dims()
	if r != rows || c != cols {
		t.Fatalf("shape mismatch: got %d×%d, want %d×%d", r, c, rows, cols)
	}
}

// requireEntriesIn fails the test unless every entry of m lies in the
// half-open interval [lo, lo+1).
func requireEntriesIn(t *testing.T, m mat.Matrix, lo float64) {
	t.Helper()
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if v < lo || v >= lo+1 {
				t.Fatalf("entry (%d,%d)=%g outside [%g, %g)", i, j, v, lo, lo+1)
			}
		}
	}
}

// requireAllNaN fails the test unless every entry of m is NaN.
func requireAllNaN(t *testing.T, m mat.Matrix) {
	t.Helper()
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !math.IsNaN(m.At(i, j)) {
				t.Fatalf("entry (%d,%d)=%g, want NaN", i, j, m.At(i, j))
			}
		}
	}
}
