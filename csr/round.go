// SPDX-License-Identifier: MIT
// Package: csr
//
// Purpose:
//   - Provide the rounding specialization of the transform engine:
//     round-half-to-even at a configurable decimal digit count, matching
//     standard floating-point rounding semantics.
//
// Numeric policy:
//   - Ties round to the even neighbor (banker's rounding), reducing the
//     statistical bias of always-round-up.
//   - ndigits may be any integer; negative values round to tens,
//     hundreds, and so on.
//   - Non-finite stored values (NaN, ±Inf) pass through unchanged.
//   - Results stay float64; rounding never narrows to an integer type.

package csr

import "math"

// DefaultNDigits is the digit count used by a bare Round call convention:
// round to the nearest integer, ties to even.
const DefaultNDigits = 0

// RoundHalfToEven returns the pure unary function x ↦ round(x, ndigits)
// with ties-to-even semantics. The returned function is total: it never
// fails, and NaN/±Inf pass through unchanged.
//
// Implementation:
//   - ndigits == 0: math.RoundToEven directly.
//   - otherwise: scale by 10^ndigits, round to even, scale back. The
//     scaling inherits ordinary float64 representation error, the same
//     trade-off the host numeric ecosystems make.
//
// Complexity: O(1) per value.
func RoundHalfToEven(ndigits int) UnaryFunc {
	if ndigits == 0 {
		return func(x float64) (float64, error) {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return x, nil // non-finite passthrough
			}
			return math.RoundToEven(x), nil
		}
	}
	scale := math.Pow(10, float64(ndigits))

	return func(x float64) (float64, error) {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return x, nil // non-finite passthrough
		}
		return math.RoundToEven(x*scale) / scale, nil
	}
}

// Round applies round-half-to-even at ndigits decimal digits to every
// stored value of m, returning a new matrix.
// Implementation:
//   - Stage 1: delegate to Apply with the RoundHalfToEven kernel.
//
// Behavior highlights:
//   - Default policy retains explicit zeros, so nnz, colIndex and rowPtr
//     are identical to the input's even when values round to 0; pass
//     WithDropZeros to compact them away.
//   - Idempotent: Round(Round(m, n), n) equals Round(m, n) for all n.
//   - Round(m, 0) is the bare-round convention (nearest integer, ties to
//     even); see DefaultNDigits.
//
// Inputs:
//   - m: source matrix (never mutated).
//   - ndigits: decimal digits to keep; negative rounds to tens/hundreds.
//   - opts: zero-retention policy and worker count, as for Apply.
//
// Returns:
//   - *CSR: rounded matrix; values remain floating-point.
//
// Errors:
//   - ErrNilMatrix. The rounding kernel itself is total, so ErrTransform
//     cannot arise from Round.
//
// Complexity:
//   - Time O(nnz + rows), Space O(nnz + rows).
func Round(m *CSR, ndigits int, opts ...Option) (*CSR, error) {
	return Apply(m, RoundHalfToEven(ndigits), opts...)
}

// RoundInPlace applies the same rounding to m itself, replacing the three
// backing arrays atomically. In-place is an explicit opt-in; Round
// (copying) is the default entry point.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(nnz + rows), Space O(nnz + rows) transient.
func RoundInPlace(m *CSR, ndigits int, opts ...Option) error {
	return ApplyInPlace(m, RoundHalfToEven(ndigits), opts...)
}
