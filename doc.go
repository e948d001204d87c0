// Package lvlsparse is a compact sparse-matrix toolkit built around the
// Compressed Sparse Row (CSR) layout and elementwise unary transforms.
//
// 🚀 What is lvlsparse?
//
//	A small, deterministic library that brings together:
//		• CSR storage: three parallel arrays, validated at every boundary
//		• Elementwise engine: apply any pure f(x) to the stored values
//		• Rounding: round-half-to-even at any digit count, sparsity-aware
//		• Zero policy: keep explicit zeros (default) or compact them away
//		• Conversions: COO assembly, dense materialization, COO export
//		• Row tools: row/column extraction and strided row slicing
//
// ✨ Why choose lvlsparse?
//
//   - Predictable – sentinel errors, errors.Is everywhere, no panics on
//     user input, parallel output bit-identical to sequential
//   - Safe – matrices exclusively own their buffers; transforms are
//     all-or-nothing, the source is never left half-updated
//   - Pure Go core – the csr package has a single tiny dependency
//     (errgroup) beyond the standard library
//
// Everything lives under two packages:
//
//	csr/           — storage, transform engine, rounding, conversions
//	cmd/lvlsparse/ — a batch CLI to inspect and round matrix files
//
// Quick example:
//
//	m, _ := csr.New(2, 3,
//		[]float64{1.2499999, 2.5000001, -0.5},
//		[]int{0, 2, 1},
//		[]int{0, 2, 3})
//	r, _ := csr.Round(m, 0) // → 1, 3, -0; structure untouched
//
//	go get github.com/katalvlaran/lvlsparse/csr
package lvlsparse
