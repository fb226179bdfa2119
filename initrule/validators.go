// SPDX-License-Identifier: MIT
// Package: initrule
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep rule bodies minimal by delegating nil/rank checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite caller follows a fixed sequence (NotNil → Rank) so the
//     first violated precondition is the one reported.

package initrule

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the input matrix reference is non-nil.
//
// Returns ErrNilMatrix (wrapped) if v == nil.
// Complexity: O(1).
func ValidateNotNil(v mat.Matrix) error {
	if v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateRank ensures the factorization rank is strictly positive.
//
// The rank is both a divisor in the offset formula and a dimension of the
// produced factors, so rank < 1 cannot yield a well-formed result.
// Returns ErrInvalidRank (wrapped) on violation.
// Complexity: O(1).
func ValidateRank(rank int) error {
	if rank < 1 {
		return validatorErrorf("ValidateRank", ErrInvalidRank)
	}

	return nil
}
