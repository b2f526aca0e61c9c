// SPDX-License-Identifier: MIT

package charpoly

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// Variable is the symbol used by Compute when rendering the polynomial.
const Variable = "λ"

// roundScale gives 4 decimal places.
const roundScale = 1e4

// Method selects how coefficients are derived.
type Method int

const (
	// FromEigenvalues expands the product of (λ − λᵢ).
	FromEigenvalues Method = iota
	// FaddeevLeVerrier uses the trace recursion on matrix products.
	FaddeevLeVerrier
)

// Result bundles every artefact of Compute.
type Result struct {
	Coefficients []float64    // descending powers, Coefficients[0] == 1
	Polynomial   string       // human-readable form in Variable
	Roots        []complex128 // implementation-defined order
}

// Option configures Compute.
type Option func(*options)

type options struct {
	method   Method
	variable string
}

// WithMethod selects the coefficient derivation.
func WithMethod(m Method) Option { return func(o *options) { o.method = m } }

// WithVariable overrides the rendered symbol. Panics on an empty name.
func WithVariable(name string) Option {
	if name == "" {
		panic("charpoly: WithVariable: name must be non-empty")
	}

	return func(o *options) { o.variable = name }
}

// Compute returns the coefficients, the formatted string and the roots of
// the characteristic polynomial of m.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmpty, matrix.ErrNonSquare,
//     matrix.ErrComputeFailed.
func Compute(m matrix.Matrix, opts ...Option) (Result, error) {
	o := options{method: FromEigenvalues, variable: Variable}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	var (
		coeffs []float64
		err    error
	)
	switch o.method {
	case FaddeevLeVerrier:
		coeffs, err = CoefficientsFaddeevLeVerrier(m)
	default:
		coeffs, err = Coefficients(m)
	}
	if err != nil {
		return Result{}, err
	}
	roots, err := Roots(coeffs)
	if err != nil {
		return Result{}, err
	}

	return Result{Coefficients: coeffs, Polynomial: Format(coeffs, o.variable), Roots: roots}, nil
}

func validateSquare(m matrix.Matrix) error {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return fmt.Errorf("CharPoly: %w", err)
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return fmt.Errorf("CharPoly: %w", err)
	}

	return nil
}

// Coefficients returns the monic characteristic polynomial of m in
// descending powers (n+1 entries) by expanding Π(λ − λᵢ).
func Coefficients(m matrix.Matrix) ([]float64, error) {
	if err := validateSquare(m); err != nil {
		return nil, err
	}
	eig, err := matrix.EigenValues(m)
	if err != nil {
		return nil, fmt.Errorf("CharPoly: %w", err)
	}

	// p holds the running product, p[0] is the leading coefficient.
	p := make([]complex128, 1, len(eig)+1)
	p[0] = 1
	for _, e := range eig {
		p = append(p, 0)
		for k := len(p) - 1; k > 0; k-- {
			p[k] -= e * p[k-1]
		}
	}

	out := make([]float64, len(p))
	for i, c := range p {
		out[i] = positiveZero(real(c))
	}

	return out, nil
}

// CoefficientsFaddeevLeVerrier computes the same polynomial with the trace
// recursion. O(n⁴) through n matrix products.
func CoefficientsFaddeevLeVerrier(m matrix.Matrix) ([]float64, error) {
	if err := validateSquare(m); err != nil {
		return nil, err
	}
	n := m.Rows()
	coeffs := make([]float64, n+1)
	coeffs[0] = 1

	mk, err := matrix.NewIdentity(n) // M₁ = I
	if err != nil {
		return nil, err
	}
	var cur matrix.Matrix = mk
	for k := 1; k <= n; k++ {
		am, err := matrix.Mul(m, cur)
		if err != nil {
			return nil, fmt.Errorf("CharPoly: %w", err)
		}
		tr, err := trace(am)
		if err != nil {
			return nil, fmt.Errorf("CharPoly: %w", err)
		}
		coeffs[k] = positiveZero(-tr / float64(k))
		if k == n {
			break
		}
		// M_{k+1} = A·M_k + c·I
		shift, err := matrix.NewIdentity(n)
		if err != nil {
			return nil, err
		}
		scaled, err := matrix.Scale(shift, coeffs[k])
		if err != nil {
			return nil, fmt.Errorf("CharPoly: %w", err)
		}
		if cur, err = matrix.Add(am, scaled); err != nil {
			return nil, fmt.Errorf("CharPoly: %w", err)
		}
	}

	return coeffs, nil
}

// positiveZero maps -0 to +0.
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}

func trace(m matrix.Matrix) (float64, error) {
	var sum float64
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, err
		}
		sum += v
	}

	return sum, nil
}

// Roots returns the roots of the polynomial with descending coefficients
// via the eigenvalues of its companion matrix. Leading zeros are stripped,
// trailing zeros contribute exact zero roots. A constant polynomial has no
// roots.
//
// Errors: matrix.ErrNaNInf for non-finite coefficients, matrix.ErrComputeFailed.
func Roots(coeffs []float64) ([]complex128, error) {
	if err := matrix.ValidateFinite(coeffs); err != nil {
		return nil, fmt.Errorf("Roots: %w", err)
	}
	lo, hi := 0, len(coeffs)
	for lo < hi && coeffs[lo] == 0 {
		lo++
	}
	for hi > lo && coeffs[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return []complex128{}, nil // zero polynomial
	}
	zeros := len(coeffs) - hi
	p := coeffs[lo:hi]
	deg := len(p) - 1

	roots := make([]complex128, 0, deg+zeros)
	if deg > 0 {
		// Companion: ones on the sub-diagonal, −p[1:]/p[0] across the first row.
		comp, err := matrix.NewDense(deg, deg)
		if err != nil {
			return nil, err
		}
		for j := 0; j < deg; j++ {
			_ = comp.Set(0, j, -p[j+1]/p[0])
			if j > 0 {
				_ = comp.Set(j, j-1, 1)
			}
		}
		eig, err := matrix.EigenValues(comp)
		if err != nil {
			return nil, fmt.Errorf("Roots: %w", err)
		}
		roots = append(roots, eig...)
	}
	for i := 0; i < zeros; i++ {
		roots = append(roots, 0)
	}

	return roots, nil
}

// Eval evaluates the polynomial at z with Horner's scheme.
func Eval(coeffs []float64, z complex128) complex128 {
	var acc complex128
	for _, c := range coeffs {
		acc = acc*z + complex(c, 0)
	}

	return acc
}

// Format renders descending coefficients as text in the given variable.
// A polynomial whose terms all round to zero renders as "0".
func Format(coeffs []float64, variable string) string {
	var sb strings.Builder
	n := len(coeffs) - 1
	first := true
	for i, c := range coeffs {
		power := n - i
		r := math.Round(c*roundScale) / roundScale
		if r == 0 {
			continue
		}
		if !first {
			if r > 0 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
				r = -r
			}
		}
		first = false

		if power == 0 || r != 1 {
			sb.WriteString(strconv.FormatFloat(r, 'f', -1, 64))
		}
		switch {
		case power == 1:
			sb.WriteString(variable)
		case power > 1:
			sb.WriteString(variable)
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(power))
		}
	}
	if first {
		return "0"
	}

	return sb.String()
}
