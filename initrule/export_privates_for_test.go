// SPDX-License-Identifier: MIT

package initrule

// Test-Bridge (White-Box) for the Private Scan Kernel
//
// Purpose:
//   - Expose the UNEXPORTED single-pass scan and offset derivation to
//     initrule_test ONLY, without widening the production API.
//   - Enable white-box verification of the fast-path (RawMatrixer) vs
//     generic fallback vs DoNonZero sparse path, and of the offset formula
//     identity across Initialize/InitializeOne.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds while
//     granting access to private symbols.

import "gonum.org/v1/gonum/mat"

// StatsSnapshot is a stable, read-only view of the internal scan
// accumulator for tests. Keep in sync with valueStats.
type StatsSnapshot struct {
	Sum   float64
	Min   float64
	Count int
	Rows  int
	Cols  int
}

// ScanValuesSnapshotTestOnly runs the private scan and returns a snapshot.
func ScanValuesSnapshotTestOnly(v mat.Matrix) StatsSnapshot {
	st := scanValues(v)

	return StatsSnapshot{
		Sum:   st.sum,
		Min:   st.min,
		Count: st.count,
		Rows:  st.rows,
		Cols:  st.cols,
	}
}

// OffsetTestOnly runs the private scan and derives the scalar offset.
func OffsetTestOnly(v mat.Matrix, rank int) float64 {
	return scanValues(v).offset(rank)
}

// FillUniformTestOnly exposes the private fill kernel so tests can pin the
// randomness wiring (source type, range bound, NaN propagation) directly.
var FillUniformTestOnly = fillUniform
