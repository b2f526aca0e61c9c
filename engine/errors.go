// SPDX-License-Identifier: MIT

package engine

import (
	"errors"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/textparse"
)

var (
	// ErrMissingOperand signals that neither the array nor the text form of
	// a required operand was supplied.
	ErrMissingOperand = errors.New("engine: missing operand")

	// ErrMalformedRequest signals a request that could not be decoded.
	ErrMalformedRequest = errors.New("engine: malformed request")

	// ErrUnknownOperation signals a request naming no registered operation.
	ErrUnknownOperation = errors.New("engine: unknown operation")

	// ErrDuplicateOperation is returned by New when two operations share a name.
	ErrDuplicateOperation = errors.New("engine: operation already registered")

	// ErrNonFiniteResult signals a computed value that overflowed to ±Inf or NaN.
	ErrNonFiniteResult = errors.New("engine: result is not finite")

	// ErrPanic wraps a recovered panic from an operation.
	ErrPanic = errors.New("engine: operation panicked")
)

// Kind is the caller-facing error taxonomy.
type Kind string

// Error kinds.
const (
	KindParse               Kind = "ParseError"
	KindDimension           Kind = "DimensionError"
	KindSingular            Kind = "SingularMatrixError"
	KindNotSquare           Kind = "NotSquareError"
	KindNotSymmetric        Kind = "NotSymmetricError"
	KindNotPositiveDefinite Kind = "NotPositiveDefiniteError"
	KindCompute             Kind = "ComputeError"
)

// Classify maps any error onto a Kind. nil yields "".
//
// Precedence follows the validation order of the kernels: input format,
// structure (square, symmetric), shape, then numeric failure. Deadline
// expiry, recovered panics and anything unrecognised are KindCompute.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, textparse.ErrParse),
		errors.Is(err, ErrMissingOperand),
		errors.Is(err, ErrMalformedRequest),
		errors.Is(err, ErrUnknownOperation),
		errors.Is(err, matrix.ErrNaNInf):
		return KindParse
	case errors.Is(err, matrix.ErrNonSquare):
		return KindNotSquare
	case errors.Is(err, matrix.ErrAsymmetry):
		return KindNotSymmetric
	case errors.Is(err, matrix.ErrNotPositiveDefinite):
		return KindNotPositiveDefinite
	case errors.Is(err, matrix.ErrSingular):
		return KindSingular
	case errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrEmpty),
		errors.Is(err, matrix.ErrTooLarge),
		errors.Is(err, matrix.ErrInvalidDimensions):
		return KindDimension
	default:
		return KindCompute
	}
}
