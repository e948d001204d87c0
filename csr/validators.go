// SPDX-License-Identifier: MIT
// Package: csr
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks.
//  - Keep constructors and the transform engine minimal by delegating
//    shape/nil/structure validation here.
//  - Return sentinel errors wrapped with a location tag so call sites and
//    tests can match via errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Full structural validation runs O(nnz + rows), once per boundary
//    (construction, post-transform verification); per-access operations
//    trust the invariants afterwards.

package csr

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given tag.
// Used internally to maintain consistent labeling of violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// structureErrorf wraps ErrInvalidStructure with a human-readable reason.
// The sentinel stays matchable via errors.Is; the reason names the exact
// violated relationship for diagnostics.
func structureErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidStructure, fmt.Sprintf(format, args...))
}

// validateNotNil ensures the CSR reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func validateNotNil(m *CSR) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateShape ensures rows and cols are non-negative.
// Returns ErrBadShape on violation. Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("validateShape", ErrBadShape)
	}

	return nil
}

// validateStructure checks the full CSR invariant set against the given
// shape:
//
//  1. len(values) == len(colIndex) == rowPtr[rows]; len(rowPtr) == rows+1;
//     rowPtr[0] == 0 and rowPtr is monotonically non-decreasing.
//  2. For every row i, colIndex[rowPtr[i]:rowPtr[i+1]] is strictly
//     increasing and every index is in [0, cols).
//
// Explicit zeros in values are legal (compaction is a policy choice, not
// an invariant), so values themselves are not inspected.
//
// Returns nil or ErrInvalidStructure wrapped with the precise violation.
// Complexity: O(nnz + rows). Space O(1).
func validateStructure(rows, cols int, values []float64, colIndex, rowPtr []int) error {
	// Parallel-array length agreement.
	if len(values) != len(colIndex) {
		return structureErrorf("len(values)=%d != len(colIndex)=%d", len(values), len(colIndex))
	}
	// rowPtr must carry exactly one offset per row plus the terminal nnz.
	if len(rowPtr) != rows+1 {
		return structureErrorf("len(rowPtr)=%d, want rows+1=%d", len(rowPtr), rows+1)
	}
	if rowPtr[0] != 0 {
		return structureErrorf("rowPtr[0]=%d, want 0", rowPtr[0])
	}
	if rowPtr[rows] != len(values) {
		return structureErrorf("rowPtr[%d]=%d, want nnz=%d", rows, rowPtr[rows], len(values))
	}

	// Per-row scan: monotonic offsets, in-range and strictly ascending
	// column indices. Deterministic i→k order.
	var i, k, prev int
	for i = 0; i < rows; i++ {
		lo, hi := rowPtr[i], rowPtr[i+1]
		if hi < lo {
			return structureErrorf("rowPtr not monotonic at row %d: %d > %d", i, lo, hi)
		}
		// Guard the scan below: a corrupt interior offset must be caught
		// before it is used as a slice bound.
		if hi > len(values) {
			return structureErrorf("rowPtr[%d]=%d exceeds nnz=%d", i+1, hi, len(values))
		}
		prev = -1 // sentinel below any valid column index
		for k = lo; k < hi; k++ {
			j := colIndex[k]
			if j < 0 || j >= cols {
				return structureErrorf("row %d: column index %d outside [0,%d)", i, j, cols)
			}
			if j <= prev {
				return structureErrorf("row %d: column indices not strictly increasing (%d after %d)", i, j, prev)
			}
			prev = j
		}
	}

	return nil
}

// validateRowIndex bounds-checks a row index against the matrix.
// Returns ErrOutOfRange on violation. Complexity: O(1).
func validateRowIndex(m *CSR, i int) error {
	if i < 0 || i >= m.rows {
		return validatorErrorf("validateRowIndex", ErrOutOfRange)
	}

	return nil
}

// validateColIndex bounds-checks a column index against the matrix.
// Returns ErrOutOfRange on violation. Complexity: O(1).
func validateColIndex(m *CSR, j int) error {
	if j < 0 || j >= m.cols {
		return validatorErrorf("validateColIndex", ErrOutOfRange)
	}

	return nil
}
