// SPDX-License-Identifier: MIT
// Package initrule: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// initrule package. All rules MUST return these sentinels and tests MUST
// check them via errors.Is. No rule panics on user-triggered conditions.

package initrule

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "initrule: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the call site; callers still match via errors.Is.

var (
	// ErrNilMatrix indicates that a nil input matrix V was passed to a rule.
	ErrNilMatrix = errors.New("initrule: input matrix is nil")

	// ErrInvalidRank indicates a factorization rank below 1. The rank is a
	// divisor in the offset formula and a matrix dimension, so it must be
	// strictly positive.
	ErrInvalidRank = errors.New("initrule: rank must be >= 1")

	// ErrInvalidSelector indicates that InitializeOne received a Target
	// outside {TargetW, TargetH}. The output matrix is not produced.
	ErrInvalidSelector = errors.New("initrule: selector must be TargetW or TargetH")
)
