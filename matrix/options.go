// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts a kernel and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance of the symmetry check (|a_ij − a_ji|).
	DefaultEpsilon = 1e-8

	// DefaultRelativeTolerance is the relative part of the symmetry check:
	// |a_ij − a_ji| ≤ eps + rtol·|a_ji|.
	DefaultRelativeTolerance = 1e-5

	// DefaultSingularityScale multiplies the n·ε·max|a| pivot threshold.
	DefaultSingularityScale = 1.0
)

// machineEpsilon is the float64 unit roundoff used by pivot and rank thresholds.
const machineEpsilon = 2.220446049250313e-16

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRelTolInvalid  = "matrix: WithRelativeTolerance: rtol must be finite, non-negative"
	panicScaleInvalid   = "matrix: WithSingularityScale: scale must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options is the resolved numeric policy. Fields are unexported; build it via
// NewOptions or pass ...Option to kernels directly.
type Options struct {
	eps              float64 // absolute symmetry tolerance
	relTol           float64 // relative symmetry tolerance
	singularityScale float64 // multiplier on n·ε·max|a|
}

// WithEpsilon sets the absolute tolerance used by symmetry checks.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelativeTolerance sets the relative tolerance used by symmetry checks.
// Panics if rtol is negative, NaN or Inf.
func WithRelativeTolerance(rtol float64) Option {
	if rtol < 0 || math.IsNaN(rtol) || math.IsInf(rtol, 0) {
		panic(panicRelTolInvalid)
	}

	return func(o *Options) { o.relTol = rtol }
}

// WithSingularityScale scales the pivot threshold below which Inverse and
// SolveSquare report ErrSingular. 0 means "only an exact zero pivot is singular".
func WithSingularityScale(scale float64) Option {
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		panic(panicScaleInvalid)
	}

	return func(o *Options) { o.singularityScale = scale }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the absolute symmetry tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// RelativeTolerance returns the relative symmetry tolerance.
func (o Options) RelativeTolerance() float64 { return o.relTol }

// SingularityScale returns the pivot threshold multiplier.
func (o Options) SingularityScale() float64 { return o.singularityScale }

func defaultOptions() Options {
	return Options{
		eps:              DefaultEpsilon,
		relTol:           DefaultRelativeTolerance,
		singularityScale: DefaultSingularityScale,
	}
}

// gatherOptions applies user options in order; nil entries are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// pivotTolerance returns scale · n · ε · maxAbs, the magnitude at or below
// which a pivot counts as numerically zero.
func (o Options) pivotTolerance(n int, maxAbs float64) float64 {
	return o.singularityScale * float64(n) * machineEpsilon * maxAbs
}
