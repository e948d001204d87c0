// SPDX-License-Identifier: MIT

// Package csr - compressed-row storage & safe accessors.
//
// Purpose:
//   - Own the three parallel arrays (values, colIndex, rowPtr) of a 2-D
//     numeric matrix in compressed-row form and enforce the structural
//     invariants at every public boundary.
//   - Guarantee safety at the public surface: accessors return errors
//     instead of panicking.
//   - Guarantee exclusive buffer ownership: constructors copy caller
//     slices, accessors return copies, and no two matrices ever alias the
//     same storage.
//
// Complexity quicksheet:
//   - New: O(nnz + rows) validation + copy; Rows/Cols/NNZ: O(1);
//     Row: O(row length); At: O(log row length); Clone: O(nnz + rows);
//     GetRow: O(row length); GetCol: O(rows · log max-row-length);
//     SliceRow: O(k · log row length) for k selected columns.

package csr

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"      // constructor tag used in error wrappers
	ctxRow      = "Row"      // accessor tag
	ctxAt       = "At"       // accessor tag
	ctxGetRow   = "GetRow"   // extractor tag
	ctxGetCol   = "GetCol"   // extractor tag
	ctxSliceRow = "SliceRow" // extractor tag
)

// csrErrorf wraps an error with a uniform CSR context and callsite index.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func csrErrorf(method string, idx int, err error) error {
	return fmt.Errorf("CSR.%s(%d): %w", method, idx, err)
}

// CSR is a two-dimensional numeric matrix in compressed sparse row form.
//   - rows, cols hold the logical shape (>= 0).
//   - values is the ordered stored-entry buffer, length nnz.
//   - colIndex holds the column of each stored entry, parallel to values;
//     strictly increasing within each row's slice.
//   - rowPtr has length rows+1: rowPtr[i] is the offset where row i's
//     entries begin, rowPtr[rows] == nnz, monotonically non-decreasing.
//
// The invariants hold before and after every public operation; once a
// matrix exists they are trusted by all accessors (no re-validation on
// every access). Explicit zeros are legal stored entries.
type CSR struct {
	rows, cols int       // logical shape
	values     []float64 // stored entries, len == nnz
	colIndex   []int     // column per stored entry, len == nnz
	rowPtr     []int     // row offsets, len == rows+1
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*CSR)(nil)

// New constructs a validated CSR matrix from three parallel arrays plus
// shape.
// Implementation:
//   - Stage 1: validate shape (rows, cols >= 0).
//   - Stage 2: validate the full structural invariant set (lengths,
//     rowPtr monotonicity, per-row strictly increasing in-range columns).
//   - Stage 3: copy all three arrays into exclusively owned buffers.
//
// Behavior highlights:
//   - Never constructs a half-valid object: any violation returns
//     ErrInvalidStructure (or ErrBadShape) and no matrix.
//   - The caller keeps ownership of its slices; later mutation of the
//     inputs cannot affect the matrix.
//
// Inputs:
//   - rows, cols: logical shape, non-negative.
//   - values, colIndex: parallel stored-entry arrays (nil means empty).
//   - rowPtr: row offsets, length rows+1, rowPtr[rows] == len(values).
//
// Returns:
//   - *CSR: the validated matrix.
//
// Errors:
//   - ErrBadShape, ErrInvalidStructure.
//
// Complexity:
//   - Time O(nnz + rows), Space O(nnz + rows).
func New(rows, cols int, values []float64, colIndex, rowPtr []int) (*CSR, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("CSR.%s: %w", ctxNew, err)
	}
	if err := validateStructure(rows, cols, values, colIndex, rowPtr); err != nil {
		return nil, fmt.Errorf("CSR.%s: %w", ctxNew, err)
	}

	// Deep-copy into exclusively owned buffers (ownership invariant).
	m := &CSR{
		rows:     rows,
		cols:     cols,
		values:   append([]float64(nil), values...),
		colIndex: append([]int(nil), colIndex...),
		rowPtr:   append([]int(nil), rowPtr...),
	}

	return m, nil
}

// Zeros returns an all-implicit-zero matrix of the given shape (nnz == 0).
// Returns ErrBadShape when rows or cols is negative.
// Complexity: O(rows).
func Zeros(rows, cols int) (*CSR, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}

	return &CSR{
		rows:     rows,
		cols:     cols,
		values:   []float64{},
		colIndex: []int{},
		rowPtr:   make([]int, rows+1),
	}, nil
}

// Rows returns the logical row count. Complexity: O(1).
func (m *CSR) Rows() int { return m.rows }

// Cols returns the logical column count. Complexity: O(1).
func (m *CSR) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call. Complexity: O(1).
func (m *CSR) Shape() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of explicitly stored entries (explicit zeros
// included). Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.values) }

// Values returns a copy of the stored-value buffer in storage order.
// The copy preserves the ownership invariant. Complexity: O(nnz).
func (m *CSR) Values() []float64 { return append([]float64(nil), m.values...) }

// ColIndex returns a copy of the column-index buffer in storage order.
// Complexity: O(nnz).
func (m *CSR) ColIndex() []int { return append([]int(nil), m.colIndex...) }

// RowPtr returns a copy of the row-offset buffer (length rows+1).
// Complexity: O(rows).
func (m *CSR) RowPtr() []int { return append([]int(nil), m.rowPtr...) }

// Row returns row i's stored (columns, values) pair as independent copies.
// Implementation:
//   - Stage 1: bounds-check i.
//   - Stage 2: copy the row's slices out of the shared buffers.
//
// Behavior highlights:
//   - Copies, not views: mutating the returned slices cannot violate the
//     matrix invariants (ownership rule; a view API would have to be
//     documented explicitly and none is offered here).
//
// Inputs:
//   - i: row index in [0, rows).
//
// Returns:
//   - cols: strictly increasing column indices of row i.
//   - vals: stored values parallel to cols.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, rows).
//
// Complexity:
//   - Time O(row length), Space O(row length).
func (m *CSR) Row(i int) (cols []int, vals []float64, err error) {
	if err = validateNotNil(m); err != nil {
		return nil, nil, err
	}
	if err = validateRowIndex(m, i); err != nil {
		return nil, nil, csrErrorf(ctxRow, i, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return append([]int(nil), m.colIndex[lo:hi]...),
		append([]float64(nil), m.values[lo:hi]...),
		nil
}

// At returns the logical value at (i, j): the stored entry when present,
// 0 for any unstored (implicit zero) position.
// Implementation:
//   - Stage 1: bounds-check (i, j).
//   - Stage 2: binary-search j within row i's sorted column slice.
//
// Errors:
//   - ErrOutOfRange when (i, j) is outside the shape.
//
// Complexity:
//   - Time O(log row length), Space O(1).
func (m *CSR) At(i, j int) (float64, error) {
	if err := validateNotNil(m); err != nil {
		return 0, err
	}
	if err := validateRowIndex(m, i); err != nil {
		return 0, fmt.Errorf("CSR.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	if err := validateColIndex(m, j); err != nil {
		return 0, fmt.Errorf("CSR.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	// Position of the first stored column >= j within the row.
	k := lo + sort.SearchInts(m.colIndex[lo:hi], j)
	if k < hi && m.colIndex[k] == j {
		return m.values[k], nil
	}

	return 0, nil // implicit zero
}

// GetRow extracts row i as an independent 1×cols CSR matrix.
// Grounded contract: shape (1, cols), the row's entries unchanged,
// rowPtr == [0, k] for k stored entries.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, rows).
//
// Complexity:
//   - Time O(row length), Space O(row length).
func (m *CSR) GetRow(i int) (*CSR, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}
	if err := validateRowIndex(m, i); err != nil {
		return nil, csrErrorf(ctxGetRow, i, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return &CSR{
		rows:     1,
		cols:     m.cols,
		values:   append([]float64(nil), m.values[lo:hi]...),
		colIndex: append([]int(nil), m.colIndex[lo:hi]...),
		rowPtr:   []int{0, hi - lo},
	}, nil
}

// GetCol extracts column j as an independent rows×1 CSR matrix.
// Implementation:
//   - Stage 1: bounds-check j.
//   - Stage 2: binary-search j in every row; rows with a stored (i, j)
//     entry contribute one entry at column 0 of the result.
//
// Errors:
//   - ErrOutOfRange when j is outside [0, cols).
//
// Complexity:
//   - Time O(rows · log max-row-length), Space O(column nnz + rows).
func (m *CSR) GetCol(j int) (*CSR, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}
	if err := validateColIndex(m, j); err != nil {
		return nil, csrErrorf(ctxGetCol, j, ErrOutOfRange)
	}

	out := &CSR{
		rows:     m.rows,
		cols:     1,
		values:   []float64{},
		colIndex: []int{},
		rowPtr:   make([]int, m.rows+1),
	}
	for i := 0; i < m.rows; i++ {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		k := lo + sort.SearchInts(m.colIndex[lo:hi], j)
		if k < hi && m.colIndex[k] == j {
			out.values = append(out.values, m.values[k])
			out.colIndex = append(out.colIndex, 0)
		}
		out.rowPtr[i+1] = len(out.values)
	}

	return out, nil
}

// SliceRow extracts a strided sub-row of row i as a 1×k CSR matrix.
// The selected source columns are start, start+step, start+2·step, ...
// while < stop (step > 0) or while > stop (step < 0); k is the number of
// selected columns. Output position p maps to source column start+p·step,
// so a negative step yields the reversed reading of the row segment.
//
// Implementation:
//   - Stage 1: bounds-check i; validate step != 0 and bounds consistent
//     with the step direction (0 <= start <= stop <= cols for step > 0;
//     -1 <= stop <= start < cols for step < 0).
//   - Stage 2: walk the selected columns in output order, binary-searching
//     each within row i; stored hits become entries of the result.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, rows).
//   - ErrInvalidSlice on a zero step or inconsistent bounds.
//
// Complexity:
//   - Time O(k · log row length), Space O(k).
func (m *CSR) SliceRow(i, start, stop, step int) (*CSR, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}
	if err := validateRowIndex(m, i); err != nil {
		return nil, csrErrorf(ctxSliceRow, i, ErrOutOfRange)
	}
	if step == 0 {
		return nil, fmt.Errorf("CSR.%s: zero step: %w", ctxSliceRow, ErrInvalidSlice)
	}
	if step > 0 && (start < 0 || start > stop || stop > m.cols) {
		return nil, fmt.Errorf("CSR.%s: bounds [%d:%d:%d) for %d cols: %w",
			ctxSliceRow, start, stop, step, m.cols, ErrInvalidSlice)
	}
	if step < 0 && (stop < -1 || stop > start || start >= m.cols) {
		return nil, fmt.Errorf("CSR.%s: bounds [%d:%d:%d) for %d cols: %w",
			ctxSliceRow, start, stop, step, m.cols, ErrInvalidSlice)
	}

	// Number of selected columns: ceil((stop-start)/step) for either sign.
	width := stop - start
	k := (width + step - sign(step)) / step
	if k < 0 {
		k = 0
	}

	out := &CSR{
		rows:     1,
		cols:     k,
		values:   []float64{},
		colIndex: []int{},
		rowPtr:   []int{0, 0},
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	row := m.colIndex[lo:hi]
	for p := 0; p < k; p++ {
		j := start + p*step // source column for output position p
		pos := sort.SearchInts(row, j)
		if pos < len(row) && row[pos] == j {
			out.values = append(out.values, m.values[lo+pos])
			out.colIndex = append(out.colIndex, p)
		}
	}
	out.rowPtr[1] = len(out.values)

	return out, nil
}

// Clone returns a deep copy (fresh buffers, same shape and entries).
// Mutations of the clone never affect the original. Complexity: O(nnz + rows).
func (m *CSR) Clone() *CSR {
	return &CSR{
		rows:     m.rows,
		cols:     m.cols,
		values:   append([]float64(nil), m.values...),
		colIndex: append([]int(nil), m.colIndex...),
		rowPtr:   append([]int(nil), m.rowPtr...),
	}
}

// Validate re-checks the full invariant set on demand. Normal operations
// trust the invariants after construction; this hook exists for callers
// that want an explicit post-transform verification.
// Complexity: O(nnz + rows).
func (m *CSR) Validate() error {
	if err := validateNotNil(m); err != nil {
		return err
	}

	return validateStructure(m.rows, m.cols, m.values, m.colIndex, m.rowPtr)
}

// String renders a compact per-row dump for diagnostics; not a hot path.
// Format: one "i: (j)=v ..." line per non-empty row, prefixed by shape/nnz.
// Complexity: O(nnz + rows).
func (m *CSR) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CSR %dx%d nnz=%d\n", m.rows, m.cols, len(m.values))
	for i := 0; i < m.rows; i++ {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		if lo == hi {
			continue // skip empty rows
		}
		fmt.Fprintf(&b, "%d:", i)
		for k := lo; k < hi; k++ {
			fmt.Fprintf(&b, " (%d)=%g", m.colIndex[k], m.values[k])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// sign returns -1, 0 or +1 matching the sign of x. Complexity: O(1).
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
