// SPDX-License-Identifier: MIT
// Package csr_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities shared by the
//     storage, transform and conversion test files.
//   - Keep fixtures well-formed so structural validation never interferes
//     with the property under test.

package csr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsparse/csr"
	"github.com/stretchr/testify/require"
)

// mustCSR constructs a validated matrix or aborts the test.
func mustCSR(t *testing.T, rows, cols int, values []float64, colIndex, rowPtr []int) *csr.CSR {
	t.Helper()
	m, err := csr.New(rows, cols, values, colIndex, rowPtr)
	require.NoError(t, err)

	return m
}

// referenceFixture is the canonical 4×5 matrix used across the suite:
//
//	[[ 1.23, 0   , 4.56, 0    , 0 ],
//	 [ 0   , 7.89, 0   , 0    , 0 ],
//	 [ 0   , 0   , 0   , -1.11, 0 ],
//	 [ 0.49, 0   , 0   , 9.5  , 0 ]]
func referenceFixture(t *testing.T) *csr.CSR {
	t.Helper()

	return mustCSR(t, 4, 5,
		[]float64{1.23, 4.56, 7.89, -1.11, 0.49, 9.5},
		[]int{0, 2, 1, 3, 0, 3},
		[]int{0, 2, 3, 4, 6})
}

// denseRows materializes m as [][]float64 for structural comparison
// (go-cmp friendly; Dense keeps its buffer unexported on purpose).
func denseRows(t *testing.T, m *csr.CSR) [][]float64 {
	t.Helper()
	d := m.ToDense()
	out := make([][]float64, d.Rows())
	for i := range out {
		out[i] = make([]float64, d.Cols())
		for j := range out[i] {
			v, err := d.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// randomCSR builds a deterministic pseudo-random rows×cols matrix with
// roughly density·rows·cols stored entries (explicit zeros included now
// and then, to exercise the retention policy).
func randomCSR(t *testing.T, rows, cols int, density float64, seed int64) *csr.CSR {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	c, err := csr.NewCOO(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() >= density {
				continue
			}
			v := rng.NormFloat64() * 10
			if rng.Intn(16) == 0 {
				v = 0 // occasional explicit zero
			}
			require.NoError(t, c.Append(i, j, v))
		}
	}
	m, err := csr.FromCOO(c)
	require.NoError(t, err)

	return m
}

// snapshot captures the observable state of a matrix for before/after
// containment checks.
type snapshot struct {
	rows, cols int
	values     []float64
	colIndex   []int
	rowPtr     []int
}

func snap(m *csr.CSR) snapshot {
	return snapshot{
		rows:     m.Rows(),
		cols:     m.Cols(),
		values:   m.Values(),
		colIndex: m.ColIndex(),
		rowPtr:   m.RowPtr(),
	}
}

// requireUnchanged asserts that m is observably identical to the snapshot.
func requireUnchanged(t *testing.T, before snapshot, m *csr.CSR) {
	t.Helper()
	require.Equal(t, before.rows, m.Rows())
	require.Equal(t, before.cols, m.Cols())
	require.Equal(t, before.values, m.Values())
	require.Equal(t, before.colIndex, m.ColIndex())
	require.Equal(t, before.rowPtr, m.RowPtr())
}
