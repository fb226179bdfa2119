// SPDX-License-Identifier: MIT

// Package initrule: domain types shared by all initialization rules.
// This file intentionally contains ONLY domain-facing types (the factor
// selector and the rule contract). Errors and options live in dedicated
// files (errors.go, options.go) per the package conventions.
package initrule

import "gonum.org/v1/gonum/mat"

// Target selects which factor matrix a single-matrix initialization
// produces. It replaces the case-insensitive character selector of classic
// AMF implementations with an exhaustively matchable enum; values outside
// the two constants below yield ErrInvalidSelector instead of a fatal stop.
type Target uint8

const (
	// TargetW selects the left factor W (rows(V) × rank).
	TargetW Target = iota

	// TargetH selects the right factor H (rank × cols(V)).
	TargetH
)

// String returns the canonical single-letter name of the target.
// Unknown values render as "?". Complexity: O(1).
func (t Target) String() string {
	switch t {
	case TargetW:
		return "W"
	case TargetH:
		return "H"
	default:
		return "?"
	}
}

// Rule is the capability contract every initialization rule implements so a
// factorization engine can select among rules at configuration time.
//
// Initialize is called once per factorization run, before the alternating
// update loop begins; InitializeOne serves restart strategies that rebuild a
// single factor. Both allocate and return fresh matrices: prior contents of
// any caller-held factors are never read, and the shape contract
// (W: n×rank, H: rank×m) holds regardless of earlier state.
//
// Implementations are stateless aside from their random source; rules that
// also implement encoding.BinaryMarshaler/BinaryUnmarshaler can be persisted
// polymorphically alongside stateful alternatives.
type Rule interface {
	// Initialize produces both factor matrices for V at the given rank.
	Initialize(v mat.Matrix, rank int) (w, h *mat.Dense, err error)

	// InitializeOne produces only the factor selected by which.
	InitializeOne(v mat.Matrix, rank int, which Target) (*mat.Dense, error)
}

// nonZeroDoer is satisfied by sparse matrix types that can enumerate their
// stored entries without materializing the full matrix, e.g. the CSR, COO
// and DOK types of github.com/james-bowman/sparse. Scans treat implicit
// entries of such types as absent from the statistic, not as zeros.
type nonZeroDoer interface {
	DoNonZero(fn func(i, j int, v float64))
}

// Compile-time assertions: both shipped rules satisfy the contract.
var (
	_ Rule = (*AverageInitialization)(nil)
	_ Rule = (*RandomInitialization)(nil)
)
