// SPDX-License-Identifier: MIT
// Package csr_test contains runnable examples for the godoc page.
package csr_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsparse/csr"
)

// ExampleRound rounds every stored entry of a matrix half-to-even.
// Explicit zeros produced by rounding stay stored by default.
func ExampleRound() {
	m, _ := csr.New(4, 5,
		[]float64{1.23, 4.56, 7.89, -1.11, 0.49, 9.5},
		[]int{0, 2, 1, 3, 0, 3},
		[]int{0, 2, 3, 4, 6})

	out, _ := csr.Round(m, 0)
	fmt.Print(out)
	// Output:
	// CSR 4x5 nnz=6
	// 0: (0)=1 (2)=5
	// 1: (1)=8
	// 2: (3)=-1
	// 3: (0)=0 (3)=10
}

// ExampleRound_dropZeros compacts entries that round to exact zero.
func ExampleRound_dropZeros() {
	m, _ := csr.New(4, 5,
		[]float64{1.23, 4.56, 7.89, -1.11, 0.49, 9.5},
		[]int{0, 2, 1, 3, 0, 3},
		[]int{0, 2, 3, 4, 6})

	out, _ := csr.Round(m, 0, csr.WithDropZeros())
	fmt.Print(out)
	// Output:
	// CSR 4x5 nnz=5
	// 0: (0)=1 (2)=5
	// 1: (1)=8
	// 2: (3)=-1
	// 3: (3)=10
}

// ExampleFromCOO assembles a matrix from coordinate triplets; on
// duplicate coordinates the last appended value wins.
func ExampleFromCOO() {
	c, _ := csr.NewCOO(2, 3)
	_ = c.Append(0, 0, 1)
	_ = c.Append(1, 2, 2.5)
	_ = c.Append(0, 0, 4) // overwrites the first (0,0) entry

	m, _ := csr.FromCOO(c)
	fmt.Print(m)
	// Output:
	// CSR 2x3 nnz=2
	// 0: (0)=4
	// 1: (2)=2.5
}

// ExampleApply runs a caller-supplied transform over the stored entries.
func ExampleApply() {
	m, _ := csr.New(2, 2,
		[]float64{1.5, -2},
		[]int{0, 1},
		[]int{0, 1, 2})

	out, _ := csr.Apply(m, func(x float64) (float64, error) { return x * x, nil })
	fmt.Print(out)
	// Output:
	// CSR 2x2 nnz=2
	// 0: (0)=2.25
	// 1: (1)=4
}
