// SPDX-License-Identifier: MIT

// Package csr: domain types shared by storage, conversions and the
// transform engine. This file intentionally contains ONLY domain-facing
// types; errors and options live in dedicated files (errors.go,
// options.go) per the package conventions.
//
// The sparse "kind" set is closed by design: CSR (the working format),
// COO (assembly/interop format) and Dense (verification format), with
// explicit conversion functions between them in conversions.go. Each
// variant carries only the fields its invariants require; there is no
// open-ended subtyping.
package csr

// UnaryFunc is a pure numeric function applied to every stored value by
// the transform engine. It must be total over the values present in the
// matrix; returning a non-nil error from any entry aborts the whole
// transform with ErrTransform and leaves the source matrix unmodified.
type UnaryFunc func(x float64) (float64, error)

// Entry is a single (row, col, value) coordinate of a COO matrix.
// Duplicate coordinates are legal in COO; FromCOO resolves them with
// last-write-wins semantics.
type Entry struct {
	Row int     // zero-based row index, in [0, Rows)
	Col int     // zero-based column index, in [0, Cols)
	Val float64 // stored value; explicit zeros are legal
}

// COO is a coordinate-list sparse matrix used for assembly and interop.
// It imposes no ordering on Entries; structural validation happens at the
// FromCOO boundary, not on Append.
type COO struct {
	Rows    int     // logical row count (>= 0)
	Cols    int     // logical column count (>= 0)
	Entries []Entry // unordered coordinates; duplicates allowed
}

// NewCOO creates an empty coordinate matrix of the given shape.
// Returns ErrBadShape when rows or cols is negative.
// Complexity: O(1).
func NewCOO(rows, cols int) (*COO, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &COO{Rows: rows, Cols: cols}, nil
}

// Append records one coordinate. Bounds are checked eagerly so a bad
// coordinate is reported at the call site rather than at FromCOO time.
// Returns ErrOutOfRange when (i, j) is outside the shape.
// Complexity: O(1) amortized.
func (c *COO) Append(i, j int, v float64) error {
	if c == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= c.Rows || j < 0 || j >= c.Cols {
		return cooErrorf("Append", i, j, ErrOutOfRange)
	}
	c.Entries = append(c.Entries, Entry{Row: i, Col: j, Val: v})

	return nil
}

// NNZ returns the number of recorded entries, duplicates included.
// Complexity: O(1).
func (c *COO) NNZ() int { return len(c.Entries) }
