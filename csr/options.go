// SPDX-License-Identifier: MIT

// Package csr: functional configuration for the transform engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package csr

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDropZeros controls whether transform results equal to the
	// additive identity are compacted away from storage.
	// false ⇒ retain explicit zeros, mirroring the common library
	// convention of not silently restructuring storage on elementwise ops.
	DefaultDropZeros = false

	// DefaultWorkers is the worker count for transform execution.
	// 1 ⇒ sequential single pass over the stored-value buffer.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const panicWorkersInvalid = "csr: WithWorkers: n must be >= 1"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	dropZeros bool // DefaultDropZeros
	workers   int  // DefaultWorkers; >= 1
}

// ---------- Constructors (WithX) ----------

// WithDropZeros compacts away entries whose transformed value equals zero.
// Implementation:
//   - Stage 1: set dropZeros=true.
//
// Behavior highlights:
//   - colIndex and rowPtr are recomputed by a single pass that retains
//     only entries where f(v) != 0; nnz' ≤ nnz.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Exact comparison against 0 is used (signed zero counts as zero);
//     no epsilon is applied.
func WithDropZeros() Option {
	return func(o *Options) { o.dropZeros = true }
}

// WithKeepZeros retains explicit zeros produced by the transform (default).
// Implementation:
//   - Stage 1: set dropZeros=false.
//
// Behavior highlights:
//   - nnz, colIndex and rowPtr of the result are identical to the input's.
//
// Returns:
//   - Option: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithKeepZeros() Option {
	return func(o *Options) { o.dropZeros = false }
}

// WithWorkers executes the transform over disjoint row ranges on n
// goroutines.
// Implementation:
//   - Stage 1: validate n >= 1 (panic otherwise: programmer error).
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - Results are bit-identical to the sequential path for both
//     zero-retention policies: workers assemble output independently and
//     the compaction path lays out final offsets with a prefix sum.
//
// Inputs:
//   - n: worker count, >= 1; 1 selects the sequential path.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Worker ranges are row-aligned; a matrix with fewer rows than
//     workers simply spawns fewer goroutines.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for all public transform facades.
// Last-writer-wins semantics; deterministic for a given setter sequence.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		dropZeros: DefaultDropZeros,
		workers:   DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
