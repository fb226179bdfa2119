// SPDX-License-Identifier: MIT
// Package: initrule
//
// Purpose:
//   - AverageInitialization: seed both factors from the distribution of V
//     instead of pure noise. One scan over V yields
//     offset = sqrt((sum/(n*m) - min) / rank), then W and H are filled with
//     Uniform[0,1) + offset.
//   - Subtracting the minimum before dividing by the rank keeps the offset
//     small for well-scaled inputs while still biasing toward V's scale.
//
// Behavior highlights (faithful, not hardened):
//   - Sparse V: only stored entries enter the statistic, yet the mean
//     divides by the full n*m ("average density" semantics).
//   - mean < min (possible for sparse V) or a scan that visits nothing both
//     make the offset NaN; the NaN fills W and H silently. Callers that
//     need finite factors must pre-check their inputs.
//
// Exposed API:
//   - NewAverage(opts...)              -> *AverageInitialization
//   - (*AverageInitialization).Initialize(V, rank)            -> (W, H, error)
//   - (*AverageInitialization).InitializeOne(V, rank, which)  -> (M, error)
//   - no-op MarshalBinary/UnmarshalBinary for persistence frameworks

package initrule

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AverageInitialization initializes factor matrices to the square root of
// the (density-)average of V, perturbed with uniform noise. The zero value
// is ready to use and draws from the process-wide random stream; use
// NewAverage with WithSource/WithSeed for reproducible fills.
//
// The rule is stateless across calls: every call rescans V, so Initialize
// and InitializeOne produce the identical offset for the same V and rank.
type AverageInitialization struct {
	opts Options
}

// NewAverage constructs an AverageInitialization with the given options.
// Complexity: O(len(opts)).
func NewAverage(opts ...Option) *AverageInitialization {
	return &AverageInitialization{opts: gatherOptions(opts...)}
}

// Initialize produces both factors for V at the given rank:
// W is rows(V)×rank, H is rank×cols(V), and every entry of each lies in
// [offset, offset+1) for the offset described in the package docs. W and H
// are filled independently; the offset is computed once and shared.
//
// Errors:
//   - ErrNilMatrix when v is nil.
//   - ErrInvalidRank when rank < 1.
//
// A non-finite offset (degenerate sparse input, negative radicand) is not
// an error: it propagates into every entry of both factors.
//
// Complexity: O(visited entries of V + n*rank + rank*m).
func (a *AverageInitialization) Initialize(v mat.Matrix, rank int) (w, h *mat.Dense, err error) {
	if err = ValidateNotNil(v); err != nil {
		return nil, nil, fmt.Errorf("AverageInitialization.Initialize: %w", err)
	}
	if err = ValidateRank(rank); err != nil {
		return nil, nil, fmt.Errorf("AverageInitialization.Initialize: %w", err)
	}

	n, m := v.Dims()
	off := scanValues(v).offset(rank)

	// Independent uniform fills sharing one scalar offset.
	w = fillUniform(n, rank, off, a.opts.src)
	h = fillUniform(rank, m, off, a.opts.src)

	return w, h, nil
}

// InitializeOne produces only the factor selected by which, e.g. when a
// restart strategy rebuilds a single factor mid-run. The offset is
// recomputed from the same V, so the result is numerically identical to the
// corresponding factor family of Initialize (modulo the random draws).
//
// Errors:
//   - ErrNilMatrix / ErrInvalidRank as for Initialize.
//   - ErrInvalidSelector when which is neither TargetW nor TargetH; no
//     matrix is produced and no randomness is consumed.
func (a *AverageInitialization) InitializeOne(v mat.Matrix, rank int, which Target) (*mat.Dense, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, fmt.Errorf("AverageInitialization.InitializeOne: %w", err)
	}
	if err := ValidateRank(rank); err != nil {
		return nil, fmt.Errorf("AverageInitialization.InitializeOne: %w", err)
	}

	n, m := v.Dims()

	switch which {
	case TargetW:
		return fillUniform(n, rank, scanValues(v).offset(rank), a.opts.src), nil
	case TargetH:
		return fillUniform(rank, m, scanValues(v).offset(rank), a.opts.src), nil
	default:
		return nil, fmt.Errorf("AverageInitialization.InitializeOne(%v): %w", which, ErrInvalidSelector)
	}
}

// MarshalBinary implements encoding.BinaryMarshaler. The rule holds no
// state worth persisting, so the payload is empty; the hook exists so
// configuration-persisting frameworks can treat this rule polymorphically
// alongside stateful alternatives.
func (a *AverageInitialization) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler as a no-op,
// accepting any payload produced by MarshalBinary.
func (a *AverageInitialization) UnmarshalBinary(_ []byte) error { return nil }
