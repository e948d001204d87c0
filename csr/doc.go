// Package csr implements a Compressed Sparse Row (CSR) matrix engine with
// elementwise unary numeric transforms.
//
// The csr package provides:
//
//   - CSR storage: three parallel arrays (values, colIndex, rowPtr)
//     representing a 2-D float64 matrix in compressed-row form, with the
//     structural invariants validated at construction and re-established
//     after every transform. Explicit zeros are legal stored entries.
//   - A transform engine (Apply / ApplyInPlace) mapping a pure UnaryFunc
//     over the stored-value buffer in a single linear pass, with a
//     configurable policy for results equal to zero: retained by default,
//     compacted away under WithDropZeros. WithWorkers(n) executes the
//     pass over disjoint row ranges with bit-identical output.
//   - Round / RoundInPlace: the rounding specialization with
//     round-half-to-even ties, any integer ndigits (negative rounds to
//     tens, hundreds...), and non-finite passthrough.
//   - Conversions between the closed variant set: FromCOO (stable sort,
//     last-write-wins on duplicate coordinates), FromDense, ToDense,
//     ToCOO.
//   - Row tools recovered from the CSR ecosystem conventions: Row, At,
//     GetRow, GetCol and SliceRow (strided, negative steps allowed).
//
// Error discipline: every failure is one of the package sentinels
// (ErrInvalidStructure, ErrOutOfRange, ErrTransform, ErrBadShape,
// ErrInvalidSlice, ErrNilMatrix), matchable with errors.Is; failed
// transforms never leave a partial result.
//
// The engine is computation-only: no I/O, no global state, no ambient
// rounding modes — the digit count is always an explicit parameter.
package csr
