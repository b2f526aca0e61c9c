// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"math"
)

// Complex is the wire form of a possibly complex scalar. Both parts are
// always present, even for real values.
type Complex struct {
	Re float64 `json:"re" yaml:"re"`
	Im float64 `json:"im" yaml:"im"`
}

// EncodeComplex canonicalises c: negative zeros become zeros and non-finite
// parts are rejected with ErrNonFiniteResult.
func EncodeComplex(c complex128) (Complex, error) {
	re, im := real(c), imag(c)
	if !isFinite(re) || !isFinite(im) {
		return Complex{}, fmt.Errorf("complex value %v: %w", c, ErrNonFiniteResult)
	}

	return Complex{Re: positiveZero(re), Im: positiveZero(im)}, nil
}

// EncodeComplexes applies EncodeComplex to every element.
func EncodeComplexes(cs []complex128) ([]Complex, error) {
	out := make([]Complex, len(cs))
	for i, c := range cs {
		v, err := EncodeComplex(c)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// positiveZero maps -0 to +0 so encoders never print "-0".
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}

// finiteScalar rejects a non-finite result and drops the sign of zero.
func finiteScalar(name string, v float64) (float64, error) {
	if !isFinite(v) {
		return 0, fmt.Errorf("%s = %v: %w", name, v, ErrNonFiniteResult)
	}

	return positiveZero(v), nil
}

// finiteVector rejects any non-finite entry, normalising zeros in place.
func finiteVector(name string, v []float64) ([]float64, error) {
	for i := range v {
		if !isFinite(v[i]) {
			return nil, fmt.Errorf("%s[%d] = %v: %w", name, i, v[i], ErrNonFiniteResult)
		}
		v[i] = positiveZero(v[i])
	}

	return v, nil
}
