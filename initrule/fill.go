// SPDX-License-Identifier: MIT
// Package: initrule
//
// Purpose:
//   - Provide the shared fill kernel: allocate a fresh rows×cols Dense and
//     set every entry to Uniform[0,1) plus a constant offset.
//   - Keep randomness consumption in exactly one place so all rules share
//     the same draw discipline.
//
// Determinism & Performance:
//   - Entries are drawn in row-major order from the configured source, so a
//     seeded source reproduces the exact same matrix.
//   - O(rows*cols) time, one allocation for the backing slice.

package initrule

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// fillUniform returns a fresh rows×cols Dense whose entries are independent
// Uniform[0,1) draws shifted by offset, i.e. every entry lies in
// [offset, offset+1). A NaN offset propagates NaN into every entry; this is
// the documented degenerate behavior, not an error.
//
// src == nil draws from the process-wide default stream.
// Callers must guarantee rows >= 1 and cols >= 1 (ValidateRank plus the
// dimensions of a constructible input matrix already do).
func fillUniform(rows, cols int, offset float64, src rand.Source) *mat.Dense {
	u := distuv.Uniform{Min: 0, Max: 1, Src: src}

	out := mat.NewDense(rows, cols, nil)
	data := out.RawMatrix().Data // fresh Dense ⇒ stride == cols, contiguous
	for i := range data {
		data[i] = u.Rand() + offset
	}

	return out
}
