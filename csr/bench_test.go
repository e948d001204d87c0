// SPDX-License-Identifier: MIT
// Package csr_test contains micro-benchmarks for the hot paths:
// transform application (both retention policies, sequential and
// parallel) and COO assembly.
package csr_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsparse/csr"
)

// Sinks prevent the compiler from eliding the benchmarked work.
var (
	sinkCSR *csr.CSR
	sinkErr error
)

// benchCSR builds a deterministic rows×cols matrix for benchmarking.
func benchCSR(b *testing.B, rows, cols int, density float64, seed int64) *csr.CSR {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))

	c, err := csr.NewCOO(rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				if err := c.Append(i, j, rng.NormFloat64()*10); err != nil {
					b.Fatal(err)
				}
			}
		}
	}
	m, err := csr.FromCOO(c)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// benchSizes covers a small, a mid and a large-ish shape; density is held
// at 5% so nnz scales with the area.
var benchSizes = []struct{ rows, cols int }{
	{64, 64},
	{512, 512},
	{2048, 1024},
}

func BenchmarkApply_Retain(b *testing.B) {
	double := func(x float64) (float64, error) { return 2 * x, nil }
	for _, sz := range benchSizes {
		m := benchCSR(b, sz.rows, sz.cols, 0.05, 1)
		b.Run(fmt.Sprintf("%dx%d/nnz=%d", sz.rows, sz.cols, m.NNZ()), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkCSR, sinkErr = csr.Apply(m, double)
			}
		})
	}
}

func BenchmarkApply_DropZeros(b *testing.B) {
	round0 := csr.RoundHalfToEven(0)
	for _, sz := range benchSizes {
		m := benchCSR(b, sz.rows, sz.cols, 0.05, 2)
		b.Run(fmt.Sprintf("%dx%d/nnz=%d", sz.rows, sz.cols, m.NNZ()), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkCSR, sinkErr = csr.Apply(m, round0, csr.WithDropZeros())
			}
		})
	}
}

func BenchmarkApply_Parallel(b *testing.B) {
	round0 := csr.RoundHalfToEven(0)
	m := benchCSR(b, 2048, 1024, 0.05, 3)
	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkCSR, sinkErr = csr.Apply(m, round0, csr.WithWorkers(workers))
			}
		})
	}
}

func BenchmarkRound(b *testing.B) {
	for _, sz := range benchSizes {
		m := benchCSR(b, sz.rows, sz.cols, 0.05, 4)
		b.Run(fmt.Sprintf("%dx%d/ndigits=2", sz.rows, sz.cols), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkCSR, sinkErr = csr.Round(m, 2)
			}
		})
	}
}

func BenchmarkFromCOO(b *testing.B) {
	for _, sz := range benchSizes {
		rng := rand.New(rand.NewSource(5))
		c, err := csr.NewCOO(sz.rows, sz.cols)
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < sz.rows; i++ {
			for j := 0; j < sz.cols; j++ {
				if rng.Float64() < 0.05 {
					if err := c.Append(i, j, rng.NormFloat64()); err != nil {
						b.Fatal(err)
					}
				}
			}
		}
		b.Run(fmt.Sprintf("%dx%d/nnz=%d", sz.rows, sz.cols, c.NNZ()), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkCSR, sinkErr = csr.FromCOO(c)
			}
		})
	}
}
