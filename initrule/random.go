// SPDX-License-Identifier: MIT

// Package initrule: pure-noise sibling of AverageInitialization.
// RandomInitialization fills the factors with Uniform[0,1) draws and no
// data-derived offset. It exists so engines can swap rules behind the same
// contract without changing call sites; it never scans V beyond its
// dimensions, so it accepts degenerate value distributions that would make
// the average rule produce NaN.

package initrule

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// RandomInitialization initializes factor matrices with independent uniform
// noise in [0,1). The zero value is ready to use; NewRandom with
// WithSource/WithSeed gives reproducible fills.
type RandomInitialization struct {
	opts Options
}

// NewRandom constructs a RandomInitialization with the given options.
func NewRandom(opts ...Option) *RandomInitialization {
	return &RandomInitialization{opts: gatherOptions(opts...)}
}

// Initialize produces W (rows(V)×rank) and H (rank×cols(V)) with every
// entry drawn independently from Uniform[0,1).
//
// Errors: ErrNilMatrix, ErrInvalidRank.
func (r *RandomInitialization) Initialize(v mat.Matrix, rank int) (w, h *mat.Dense, err error) {
	if err = ValidateNotNil(v); err != nil {
		return nil, nil, fmt.Errorf("RandomInitialization.Initialize: %w", err)
	}
	if err = ValidateRank(rank); err != nil {
		return nil, nil, fmt.Errorf("RandomInitialization.Initialize: %w", err)
	}

	n, m := v.Dims()
	w = fillUniform(n, rank, 0, r.opts.src)
	h = fillUniform(rank, m, 0, r.opts.src)

	return w, h, nil
}

// InitializeOne produces only the factor selected by which.
//
// Errors: ErrNilMatrix, ErrInvalidRank, ErrInvalidSelector.
func (r *RandomInitialization) InitializeOne(v mat.Matrix, rank int, which Target) (*mat.Dense, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, fmt.Errorf("RandomInitialization.InitializeOne: %w", err)
	}
	if err := ValidateRank(rank); err != nil {
		return nil, fmt.Errorf("RandomInitialization.InitializeOne: %w", err)
	}

	n, m := v.Dims()

	switch which {
	case TargetW:
		return fillUniform(n, rank, 0, r.opts.src), nil
	case TargetH:
		return fillUniform(rank, m, 0, r.opts.src), nil
	default:
		return nil, fmt.Errorf("RandomInitialization.InitializeOne(%v): %w", which, ErrInvalidSelector)
	}
}

// MarshalBinary implements encoding.BinaryMarshaler as a no-op (no state).
func (r *RandomInitialization) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler as a no-op.
func (r *RandomInitialization) UnmarshalBinary(_ []byte) error { return nil }
