// SPDX-License-Identifier: MIT
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsparse/csr"
)

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	m, err := csr.New(4, 5,
		[]float64{1.23, 4.56, 7.89, -1.11, 0.49, 9.5},
		[]int{0, 2, 1, 3, 0, 3},
		[]int{0, 2, 3, 4, 6})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, writeMatrix(path, m))

	back, err := readMatrix(path)
	require.NoError(t, err)
	require.Equal(t, m.Values(), back.Values())
	require.Equal(t, m.ColIndex(), back.ColIndex())
	require.Equal(t, m.RowPtr(), back.RowPtr())
	require.Equal(t, m.Rows(), back.Rows())
	require.Equal(t, m.Cols(), back.Cols())
}

func TestReadMatrix_Document(t *testing.T) {
	t.Parallel()

	doc := `rows: 2
cols: 3
entries:
  - {row: 1, col: 2, val: 2.5}
  - {row: 0, col: 0, val: 1}
  - {row: 0, col: 0, val: 4}
`
	path := filepath.Join(t.TempDir(), "m.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	m, err := readMatrix(path)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	// Duplicate (0,0) resolves last-write-wins during assembly.
	require.Equal(t, []float64{4, 2.5}, m.Values())
	require.Equal(t, []int{0, 2}, m.ColIndex())
}

func TestReadMatrix_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := readMatrix(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rows: [not an int]"), 0o644))
	_, err = readMatrix(bad)
	require.Error(t, err)

	oob := filepath.Join(dir, "oob.yaml")
	require.NoError(t, os.WriteFile(oob, []byte("rows: 1\ncols: 1\nentries:\n  - {row: 5, col: 0, val: 1}\n"), 0o644))
	_, err = readMatrix(oob)
	require.ErrorIs(t, err, csr.ErrInvalidStructure)
}
