// SPDX-License-Identifier: MIT
// Package csr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the csr
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors (option constructors).

package csr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csr: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> structural violations -> index bounds ->
// transform failures.

var (
	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was
	// passed into a public entry point.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or cols at construction).
	ErrBadShape = errors.New("csr: invalid shape")

	// ErrInvalidStructure signals a malformed values/colIndex/rowPtr
	// relationship: mismatched lengths, a non-monotonic rowPtr, column
	// indices out of range, or unsorted/duplicated columns within a row.
	// Construction never returns a half-valid matrix under this error.
	ErrInvalidStructure = errors.New("csr: invalid structure")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds on an access operation. Public accessors MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrInvalidSlice signals malformed slice bounds in SliceRow:
	// a zero step, or start/stop inconsistent with the step direction.
	ErrInvalidSlice = errors.New("csr: invalid slice bounds")

	// ErrTransform is returned when the caller-supplied unary function
	// failed on some stored value. The source matrix is guaranteed
	// unchanged; no partial result is ever returned.
	ErrTransform = errors.New("csr: transform failed")
)
