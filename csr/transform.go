// SPDX-License-Identifier: MIT
// Package: csr
//
// Purpose:
//   - Apply a caller-supplied pure numeric function to every stored value
//     of a CSR matrix, producing a structurally valid CSR matrix, with a
//     configurable policy on whether results equal to the additive
//     identity (zero) are dropped from storage or retained as explicit
//     zeros.
//
// Design:
//   - An elementwise unary transform never changes row/column membership
//     of the sparsity pattern except through the explicit zero-dropping
//     policy, so the efficient implementation is a single linear pass
//     over the value buffer, with a second (compaction) layout only when
//     zero-dropping is requested. The generally expensive sparse
//     restructuring path is never taken.
//   - The transform is a pure function of its inputs: the parallel path
//     executes over disjoint row ranges with no shared mutable state.
//     Retained-zeros workers write disjoint slices of one preallocated
//     output; compacting workers assemble local arrays whose final
//     offsets are laid out by a prefix sum over per-range nnz.
//
// Determinism & Performance:
//   - Fixed traversal orders (flat 0..nnz-1, or row ranges in ascending
//     order); parallel output is bit-identical to sequential output.
//   - Retain path: O(nnz) time, one output allocation.
//   - Drop path: O(nnz + rows) time.

package csr

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// transformErrorf attaches the failing coordinate to ErrTransform while
// preserving both the sentinel and the callback's cause for errors.Is /
// errors.Unwrap chains. Complexity: O(1).
func transformErrorf(row, col int, cause error) error {
	return fmt.Errorf("CSR.Apply(%d,%d): %w: %v", row, col, ErrTransform, cause)
}

// Apply maps f over every stored value of m and returns a new matrix.
// Implementation:
//   - Stage 1: validate m; resolve options against documented defaults.
//   - Stage 2: run the sequential or parallel kernel, producing three
//     fresh arrays (colIndex/rowPtr are copied unchanged when zeros are
//     retained, recomputed by a compaction pass when dropped).
//   - Stage 3: assemble the result; the source is never touched.
//
// Behavior highlights:
//   - Default policy retains explicit zeros: nnz, colIndex and rowPtr of
//     the result are identical to the input's.
//   - WithDropZeros: every stored value of the result is non-zero and
//     nnz' ≤ nnz, with colIndex and rowPtr recomputed.
//   - Failure containment: if f fails for any entry, the whole operation
//     fails with ErrTransform and no partial result is returned.
//
// Inputs:
//   - m: source matrix (never mutated).
//   - f: pure unary function, total over the stored values.
//   - opts: WithDropZeros / WithKeepZeros / WithWorkers.
//
// Returns:
//   - *CSR: transformed matrix with all invariants re-established.
//
// Errors:
//   - ErrNilMatrix (nil m or f), ErrTransform (f failed; wraps the cause
//     and names the offending coordinate).
//
// Determinism:
//   - Output is identical across worker counts for a given (m, f, policy).
//
// Complexity:
//   - Time O(nnz + rows), Space O(nnz + rows) for the result.
func Apply(m *CSR, f UnaryFunc, opts ...Option) (*CSR, error) {
	if err := validateNotNil(m); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, validatorErrorf("Apply", ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	values, colIndex, rowPtr, err := applyArrays(m, f, o)
	if err != nil {
		return nil, err
	}

	return &CSR{
		rows:     m.rows,
		cols:     m.cols,
		values:   values,
		colIndex: colIndex,
		rowPtr:   rowPtr,
	}, nil
}

// ApplyInPlace maps f over every stored value of m, replacing its backing
// arrays atomically on success.
// Implementation:
//   - Stage 1: compute the full result into fresh buffers (same kernels
//     as Apply).
//   - Stage 2: swap all three arrays at once, success path only.
//
// Behavior highlights:
//   - All-or-nothing: on any f failure m is left observably unchanged;
//     no observer ever sees a partially-updated matrix.
//   - In-place is an explicit opt-in; Apply (copying) is the default
//     entry point, since silent mutation would surprise invariant-holders
//     elsewhere.
//
// Errors:
//   - ErrNilMatrix, ErrTransform (source unchanged).
//
// Complexity:
//   - Time O(nnz + rows), Space O(nnz + rows) transient.
func ApplyInPlace(m *CSR, f UnaryFunc, opts ...Option) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	if f == nil {
		return validatorErrorf("ApplyInPlace", ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	values, colIndex, rowPtr, err := applyArrays(m, f, o)
	if err != nil {
		return err
	}

	// Atomic swap: all three arrays replaced together, only after the
	// whole transform succeeded.
	m.values, m.colIndex, m.rowPtr = values, colIndex, rowPtr

	return nil
}

// applyArrays runs the configured kernel and returns the three result
// arrays. It never mutates m.
func applyArrays(m *CSR, f UnaryFunc, o Options) ([]float64, []int, []int, error) {
	if o.workers > 1 && m.rows > 1 {
		return applyParallel(m, f, o)
	}
	if o.dropZeros {
		return applyDropSequential(m, f)
	}

	return applyRetainSequential(m, f)
}

// applyRetainSequential is the common-case kernel: one linear pass over
// the value buffer; colIndex and rowPtr are copied unchanged.
// Time O(nnz), Space O(nnz + rows).
func applyRetainSequential(m *CSR, f UnaryFunc) ([]float64, []int, []int, error) {
	out := make([]float64, len(m.values))
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			nv, err := f(m.values[k])
			if err != nil {
				return nil, nil, nil, transformErrorf(i, m.colIndex[k], err)
			}
			out[k] = nv
		}
	}

	return out,
		append([]int(nil), m.colIndex...),
		append([]int(nil), m.rowPtr...),
		nil
}

// applyDropSequential transforms and compacts in a single pass, retaining
// only entries where f(v) != 0 and recomputing colIndex and rowPtr to
// skip dropped entries. Time O(nnz + rows), Space O(nnz + rows).
func applyDropSequential(m *CSR, f UnaryFunc) ([]float64, []int, []int, error) {
	values := make([]float64, 0, len(m.values))
	colIndex := make([]int, 0, len(m.values))
	rowPtr := make([]int, m.rows+1)

	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			nv, err := f(m.values[k])
			if err != nil {
				return nil, nil, nil, transformErrorf(i, m.colIndex[k], err)
			}
			if nv == 0 { // additive identity; signed zero compares equal
				continue
			}
			values = append(values, nv)
			colIndex = append(colIndex, m.colIndex[k])
		}
		rowPtr[i+1] = len(values)
	}

	return values, colIndex, rowPtr, nil
}

// applyParallel executes the transform over disjoint row ranges.
// Implementation:
//   - Stage 1: split [0, rows) into o.workers row-aligned ranges.
//   - Stage 2 (retain): workers write disjoint index ranges of one
//     preallocated output buffer; structure arrays are plain copies.
//   - Stage 2 (drop): each worker compacts its range into local arrays;
//     a prefix sum over per-range nnz then lays out the final offsets and
//     the locals are copied into place.
//   - Stage 3: errgroup join; the first callback error aborts the whole
//     operation.
//
// Output is bit-identical to the sequential kernels.
func applyParallel(m *CSR, f UnaryFunc, o Options) ([]float64, []int, []int, error) {
	workers := o.workers
	if workers > m.rows {
		workers = m.rows // never spawn more goroutines than rows
	}
	// Row-aligned ranges of near-equal height.
	chunk := (m.rows + workers - 1) / workers

	if !o.dropZeros {
		out := make([]float64, len(m.values))
		var g errgroup.Group
		for w := 0; w < workers; w++ {
			lo, hi := w*chunk, (w+1)*chunk
			if lo > m.rows {
				lo = m.rows
			}
			if hi > m.rows {
				hi = m.rows
			}
			g.Go(func() error {
				for i := lo; i < hi; i++ {
					for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
						nv, err := f(m.values[k])
						if err != nil {
							return transformErrorf(i, m.colIndex[k], err)
						}
						out[k] = nv // disjoint index range per worker
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, nil, err
		}

		return out,
			append([]int(nil), m.colIndex...),
			append([]int(nil), m.rowPtr...),
			nil
	}

	// Drop-zeros path: per-range local compaction, then prefix-sum layout.
	type local struct {
		values   []float64
		colIndex []int
		rowNNZ   []int // nnz kept per row inside the range
	}
	locals := make([]local, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := w*chunk, (w+1)*chunk
		if lo > m.rows {
			lo = m.rows
		}
		if hi > m.rows {
			hi = m.rows
		}
		g.Go(func() error {
			l := local{rowNNZ: make([]int, hi-lo)}
			for i := lo; i < hi; i++ {
				kept := 0
				for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
					nv, err := f(m.values[k])
					if err != nil {
						return transformErrorf(i, m.colIndex[k], err)
					}
					if nv == 0 {
						continue
					}
					l.values = append(l.values, nv)
					l.colIndex = append(l.colIndex, m.colIndex[k])
					kept++
				}
				l.rowNNZ[i-lo] = kept
			}
			locals[w] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	// Prefix sum over per-range nnz fixes every range's base offset.
	total := 0
	for w := range locals {
		total += len(locals[w].values)
	}
	values := make([]float64, 0, total)
	colIndex := make([]int, 0, total)
	rowPtr := make([]int, m.rows+1)
	for w := range locals {
		lo := w * chunk
		for r, kept := range locals[w].rowNNZ {
			rowPtr[lo+r+1] = rowPtr[lo+r] + kept
		}
		values = append(values, locals[w].values...)
		colIndex = append(colIndex, locals[w].colIndex...)
	}

	return values, colIndex, rowPtr, nil
}
