// SPDX-License-Identifier: MIT
// Package: csr
//
// Purpose:
//   - Format conversions between the closed variant set: COO → CSR
//     (assembly), Dense ↔ CSR (verification and ingestion), CSR → COO
//     (interop/export).
//
// Determinism & Performance:
//   - FromCOO sorts entries with a stable sort by (row, col) so that
//     duplicate coordinates resolve deterministically: the last appended
//     entry wins.
//   - ToDense is a verification endpoint, not a hot path.

package csr

import (
	"fmt"
	"sort"
)

// cooErrorf wraps an error with a uniform COO context and coordinates.
func cooErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("COO.%s(%d,%d): %w", method, row, col, err)
}

// denseErrorf wraps an error with a uniform Dense context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a fully materialized rows×cols matrix with a flat row-major
// buffer (offset = i*cols + j). It exists as the verification and
// ingestion endpoint of the variant set; it is not a linear-algebra type.
type Dense struct {
	rows, cols int       // logical shape (>= 0)
	data       []float64 // contiguous row-major storage, len == rows*cols
}

// NewDense creates a zero-filled rows×cols dense matrix.
// Returns ErrBadShape when rows or cols is negative.
// Complexity: O(rows*cols).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column count. Complexity: O(1).
func (d *Dense) Cols() int { return d.cols }

// At returns the value at (i, j) or ErrOutOfRange. Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, denseErrorf("At", i, j, ErrOutOfRange)
	}

	return d.data[i*d.cols+j], nil
}

// Set stores v at (i, j) or returns ErrOutOfRange. Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return denseErrorf("Set", i, j, ErrOutOfRange)
	}
	d.data[i*d.cols+j] = v

	return nil
}

// FromCOO assembles a validated CSR matrix from coordinate form.
// Implementation:
//   - Stage 1: validate shape and every coordinate's bounds.
//   - Stage 2: stable-sort a copy of the entries by (row, col); stability
//     keeps equal coordinates in append order, so the last write wins.
//   - Stage 3: single pass builds values/colIndex with duplicates
//     collapsed, then rowPtr via per-row counting.
//
// Behavior highlights:
//   - Last-write-wins on duplicate coordinates (documented policy).
//   - Explicit zeros appended to the COO are kept as explicit zeros.
//   - The input COO is never mutated (the sort operates on a copy).
//
// Inputs:
//   - c: coordinate matrix; entry order is arbitrary.
//
// Returns:
//   - *CSR: validated matrix with all invariants established.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrInvalidStructure (out-of-range
//     coordinate; names the offending entry).
//
// Complexity:
//   - Time O(nnz log nnz), Space O(nnz + rows).
func FromCOO(c *COO) (*CSR, error) {
	if c == nil {
		return nil, validatorErrorf("FromCOO", ErrNilMatrix)
	}
	if err := validateShape(c.Rows, c.Cols); err != nil {
		return nil, fmt.Errorf("FromCOO: %w", err)
	}
	for _, e := range c.Entries {
		if e.Row < 0 || e.Row >= c.Rows || e.Col < 0 || e.Col >= c.Cols {
			return nil, fmt.Errorf("FromCOO: %w", structureErrorf(
				"entry (%d,%d) outside %dx%d", e.Row, e.Col, c.Rows, c.Cols))
		}
	}

	// Stable sort on a copy: append order is preserved within equal
	// coordinates, which is exactly the last-write-wins tiebreak.
	entries := append([]Entry(nil), c.Entries...)
	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].Row != entries[b].Row {
			return entries[a].Row < entries[b].Row
		}
		return entries[a].Col < entries[b].Col
	})

	values := make([]float64, 0, len(entries))
	colIndex := make([]int, 0, len(entries))
	rowPtr := make([]int, c.Rows+1)
	for i := 0; i < c.Rows; i++ {
		rowPtr[i] = len(values) // row i starts here
		for len(entries) > 0 && entries[0].Row == i {
			e := entries[0]
			entries = entries[1:]
			// Collapse duplicates: later entries of the same coordinate
			// overwrite the one just written (last write wins).
			for len(entries) > 0 && entries[0].Row == i && entries[0].Col == e.Col {
				e = entries[0]
				entries = entries[1:]
			}
			values = append(values, e.Val)
			colIndex = append(colIndex, e.Col)
		}
	}
	rowPtr[c.Rows] = len(values)

	return &CSR{
		rows:     c.Rows,
		cols:     c.Cols,
		values:   values,
		colIndex: colIndex,
		rowPtr:   rowPtr,
	}, nil
}

// FromDense builds a CSR matrix from a dense one, storing only non-zero
// positions (a signed zero counts as zero and stays implicit).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(rows*cols), Space O(nnz + rows).
func FromDense(d *Dense) (*CSR, error) {
	if d == nil {
		return nil, validatorErrorf("FromDense", ErrNilMatrix)
	}

	values := []float64{}
	colIndex := []int{}
	rowPtr := make([]int, d.rows+1)
	for i := 0; i < d.rows; i++ {
		base := i * d.cols
		for j := 0; j < d.cols; j++ {
			if v := d.data[base+j]; v != 0 {
				values = append(values, v)
				colIndex = append(colIndex, j)
			}
		}
		rowPtr[i+1] = len(values)
	}

	return &CSR{
		rows:     d.rows,
		cols:     d.cols,
		values:   values,
		colIndex: colIndex,
		rowPtr:   rowPtr,
	}, nil
}

// ToDense materializes the matrix with zeros in unstored positions.
// Verification endpoint, not a hot path.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (m *CSR) ToDense() *Dense {
	d := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, m.rows*m.cols)}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			d.data[base+m.colIndex[k]] = m.values[k]
		}
	}

	return d
}

// ToCOO exports the stored entries in row-major storage order.
// The result shares no buffers with the source.
// Complexity: Time O(nnz + rows), Space O(nnz).
func (m *CSR) ToCOO() *COO {
	out := &COO{Rows: m.rows, Cols: m.cols, Entries: make([]Entry, 0, len(m.values))}
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			out.Entries = append(out.Entries, Entry{Row: i, Col: m.colIndex[k], Val: m.values[k]})
		}
	}

	return out
}
