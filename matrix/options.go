// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Jacobi eigensolver.
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
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the per-row convergence tolerance for Jacobi: the solver
	// stops once Σ_{i≠j} A[i,j]² ≤ DefaultTolerance·n.
	DefaultTolerance = 1e-15

	// DefaultMaxSweeps caps Jacobi at DefaultMaxSweeps·n(n−1)/2 rotations.
	// A sweep is one rotation per strict upper-triangle entry.
	DefaultMaxSweeps = 100

	// DefaultSymmetryTolerance bounds |A[i,j]−A[j,i]| on input validation.
	DefaultSymmetryTolerance = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithTolerance: tol must be finite and > 0"
	panicSweepsInvalid    = "matrix: WithMaxSweeps: sweeps must be >= 0"
	panicSymTolInvalid    = "matrix: WithSymmetryTolerance: tol must be finite and >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved Jacobi configuration.
// Fields are unexported; use the WithX constructors.
type Options struct {
	tol       float64 // convergence tolerance per row
	maxSweeps int     // sweep cap; 0 means "validate and report only"
	symTol    float64 // input symmetry tolerance
}

// WithTolerance sets the per-row convergence tolerance.
// Panics if tol is NaN, ±Inf, or ≤ 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxSweeps sets the sweep cap. Zero is legal and makes Jacobi return the
// input diagonal with Converged reporting whether it was already diagonal.
// Panics on negative values.
func WithMaxSweeps(sweeps int) Option {
	if sweeps < 0 {
		panic(panicSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// WithSymmetryTolerance sets the tolerance used by input symmetry validation.
// Panics if tol is NaN, ±Inf, or negative.
func WithSymmetryTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymTolInvalid)
	}

	return func(o *Options) { o.symTol = tol }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:       DefaultTolerance,
		maxSweeps: DefaultMaxSweeps,
		symTol:    DefaultSymmetryTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Tolerance returns the effective convergence tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// MaxSweeps returns the effective sweep cap.
func (o Options) MaxSweeps() int { return o.maxSweeps }

// NewOptions resolves opts against the defaults. Exposed for callers that
// want to inspect the effective configuration.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
