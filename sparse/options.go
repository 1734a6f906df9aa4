// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Each flag impacts behavior and is covered by tests.
//   - Ceilings exist to bound allocation from malformed input; the engine has
//     no cancellation, so size checks are the only resource guard.

package sparse

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIdentity is the largest n accepted by Identity.
	DefaultMaxIdentity = 100000

	// DefaultMaxDim is the largest rows/cols accepted by every constructor
	// taking explicit dimensions (New, FromTriplets, FromEntries, FromCSC,
	// FromDense, FromColumnGenerator).
	DefaultMaxDim = 10000000

	// DefaultRejectNonFinite controls whether NaN/±Inf values are rejected on
	// ingestion and Set. false ⇒ any float64 is stored as given.
	DefaultRejectNonFinite = false
)

// ---------- Internal panic messages ----------

const (
	panicMaxIdentityInvalid = "sparse: WithMaxIdentity: n must be >= 0"
	panicMaxDimInvalid      = "sparse: WithMaxDim: n must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxIdentity     int  // DefaultMaxIdentity
	maxDim          int  // DefaultMaxDim
	rejectNonFinite bool // DefaultRejectNonFinite
}

// WithMaxIdentity sets the ceiling for Identity(n).
// Panics if n < 0.
func WithMaxIdentity(n int) Option {
	if n < 0 {
		panic(panicMaxIdentityInvalid)
	}

	return func(o *Options) { o.maxIdentity = n }
}

// WithMaxDim sets the per-dimension ceiling for every sized constructor.
// Panics if n < 0.
func WithMaxDim(n int) Option {
	if n < 0 {
		panic(panicMaxDimInvalid)
	}

	return func(o *Options) { o.maxDim = n }
}

// WithRejectNonFinite makes constructors (and later Set calls on the
// produced matrix) fail with ErrNaNInf on NaN or ±Inf values. Arithmetic
// results inherit the left operand's policy and are checked the same way.
func WithRejectNonFinite() Option {
	return func(o *Options) { o.rejectNonFinite = true }
}

// WithAllowNonFinite restores the default permissive numeric policy.
func WithAllowNonFinite() Option {
	return func(o *Options) { o.rejectNonFinite = false }
}

// defaultOptions returns Options filled with the documented defaults.
func defaultOptions() Options {
	return Options{
		maxIdentity:     DefaultMaxIdentity,
		maxDim:          DefaultMaxDim,
		rejectNonFinite: DefaultRejectNonFinite,
	}
}

// gatherOptions applies opts in order over the defaults. nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
