// Package initrule provides initialization rules for alternating matrix
// factorization: pluggable strategies that produce the starting factor
// matrices W (n×r) and H (r×m) for an input matrix V (n×m) and rank r.
//
// The initrule package provides:
//
//   - AverageInitialization: seeds both factors from V's value distribution.
//     One pass over V accumulates sum and minimum, then every factor entry
//     is Uniform[0,1) + sqrt((sum/(n*m) - min) / r).
//   - RandomInitialization: pure Uniform[0,1) noise, no data scan.
//   - The Rule contract shared by all rules, so a factorization engine can
//     select a rule at configuration time.
//
// Inputs are gonum mat.Matrix values. Sparse types exposing
// DoNonZero(func(i, j int, v float64)), such as the CSR, COO and DOK types
// of github.com/james-bowman/sparse, are scanned over stored entries only,
// without materializing the full matrix. Note the documented caveat: the
// average still divides by the full n*m, so for sparse inputs it reflects
// average density rather than the mean of stored values, and when every
// stored value exceeds that density-mean the offset is NaN and propagates
// into the produced factors unchanged.
//
// Rules are stateless aside from their random source. By default fills draw
// from the process-wide stream; pass WithSource or WithSeed for
// reproducible factors.
//
// See the examples in this package for usage patterns.
package initrule
