// SPDX-License-Identifier: MIT

package solve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Class is the solution-count classification of a linear system.
type Class int

const (
	// Unique means exactly one x satisfies A·x = b.
	Unique Class = iota
	// Infinite means A is rank-deficient: a whole affine family solves the
	// system (or best fits it).
	Infinite
	// InconsistentApproximate means no exact solution exists; x is the
	// least-squares approximation.
	InconsistentApproximate
)

// String returns the wire name of the class.
func (c Class) String() string {
	switch c {
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	case InconsistentApproximate:
		return "inconsistent"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// MarshalText encodes the class by its wire name.
func (c Class) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// Messages attached to non-unique classifications.
const (
	MessageInfinite     = "The system is underdetermined (rank < variables); it has infinitely many solutions. Minimum-norm solution provided."
	MessageInconsistent = "The system is overdetermined and inconsistent. Least squares solution provided."
)

// Solution is the outcome of Solve.
type Solution struct {
	X        []float64 // exact, minimum-norm or least-squares solution
	Class    Class
	Rank     int     // numerical rank of A
	Residual float64 // ‖A·x − b‖², only meaningful for InconsistentApproximate
	Message  string  // empty for Unique
}

// IsUnique reports whether the system has exactly one solution.
func (s Solution) IsUnique() bool { return s.Class == Unique }

// DefaultResidualTolerance is the squared residual at or below which a
// least-squares fit counts as exact.
const DefaultResidualTolerance = 1e-8

// Option configures Solve.
type Option func(*options)

type options struct {
	residualTol float64
	matrixOpts  []matrix.Option
}

// WithResidualTolerance overrides DefaultResidualTolerance.
// Panics if tol is negative, NaN or Inf.
func WithResidualTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("solve: WithResidualTolerance: tol must be finite, non-negative")
	}

	return func(o *options) { o.residualTol = tol }
}

// WithMatrixOptions forwards numeric policy (singularity scale) to the kernels.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(user ...Option) options {
	o := options{residualTol: DefaultResidualTolerance}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
