// SPDX-License-Identifier: MIT

// Package dense: functional configuration of the precision policy used by
// elimination (Invert, Solve, Determinant).
//
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that starts from the per-scalar defaults.
//
// Design goals:
//   - Deterministic behavior: no global state; every call resolves its own
//     policy from scalar.DefaultPrecision[K] plus the caller's options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package dense

import (
	"math"

	"github.com/katalvlaran/fieldkit/scalar"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularInvalid  = "dense: WithSingularLimit: limit must be finite, non-negative"
	panicAbsoluteInvalid  = "dense: WithAbsoluteLimit: limit must be finite, non-negative"
	panicPrecisionInvalid = "dense: WithPrecision: limits must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective precision policy after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them with gatherOptions.
type Options struct {
	singular float64 // pivot magnitude limit; scalar.DefaultPrecision[K]().Singular
	absolute float64 // closed-form determinant limit; scalar.DefaultPrecision[K]().Absolute
}

// Singular returns the effective pivot limit.
func (o Options) Singular() float64 { return o.singular }

// Absolute returns the effective determinant limit of closed-form paths.
func (o Options) Absolute() float64 { return o.absolute }

// Precision returns the effective policy as a scalar.Precision.
func (o Options) Precision() scalar.Precision {
	return scalar.Precision{Singular: o.singular, Absolute: o.absolute}
}

// WithSingularLimit overrides the pivot magnitude at or below which
// elimination reports ErrSingular (Determinant reports 0 instead).
// Implementation:
//   - Stage 1: validate the limit is finite and ≥ 0.
//   - Stage 2: return a setter that writes it into Options.
//
// Errors:
//   - Panics with a stable message when the limit is invalid.
//
// Notes:
//   - A zero limit treats only exact zero pivots as singular.
//   - Raise it to reject near-singular systems early; lower it for badly
//     scaled but genuinely regular problems.
func WithSingularLimit(limit float64) Option {
	if !validLimit(limit) {
		panic(panicSingularInvalid)
	}

	return func(o *Options) { o.singular = limit }
}

// WithAbsoluteLimit overrides the determinant magnitude at or below which
// the closed-form 1×1 and 2×2 paths of Invert and Solve report ErrSingular.
func WithAbsoluteLimit(limit float64) Option {
	if !validLimit(limit) {
		panic(panicAbsoluteInvalid)
	}

	return func(o *Options) { o.absolute = limit }
}

// WithPrecision replaces both limits at once.
// Panics when p.Validate fails.
func WithPrecision(p scalar.Precision) Option {
	if err := p.Validate(); err != nil {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) {
		o.singular = p.Singular
		o.absolute = p.Absolute
	}
}

// NewOptions resolves option setters against the defaults for K.
// Most callers never need it; it exposes the effective policy for logging
// and tests.
// Complexity: O(len(opts)).
func NewOptions[K scalar.Scalar](opts ...Option) Options {
	return gatherOptions[K](opts...)
}

// gatherOptions applies user setters on top of scalar.DefaultPrecision[K],
// last-writer-wins.
func gatherOptions[K scalar.Scalar](user ...Option) Options {
	def := scalar.DefaultPrecision[K]()
	o := Options{
		singular: def.Singular,
		absolute: def.Absolute,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// validLimit reports whether v is finite and non-negative.
func validLimit(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
