// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/textparse"
)

// Request carries one operation and its operands. Every operand may be given
// as a structured array or as delimited text; non-empty text wins.
type Request struct {
	Op string `json:"op" yaml:"op"`

	MatrixA     [][]float64 `json:"matrixA,omitempty" yaml:"matrixA,omitempty"`
	MatrixAText string      `json:"matrixAText,omitempty" yaml:"matrixAText,omitempty"`
	MatrixB     [][]float64 `json:"matrixB,omitempty" yaml:"matrixB,omitempty"`
	MatrixBText string      `json:"matrixBText,omitempty" yaml:"matrixBText,omitempty"`

	Matrix     [][]float64 `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	MatrixText string      `json:"matrixText,omitempty" yaml:"matrixText,omitempty"`

	Coefficients     [][]float64 `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`
	CoefficientsText string      `json:"coefficientsText,omitempty" yaml:"coefficientsText,omitempty"`
	Constants        []float64   `json:"constants,omitempty" yaml:"constants,omitempty"`
	ConstantsText    string      `json:"constantsText,omitempty" yaml:"constantsText,omitempty"`

	VectorA     []float64 `json:"vectorA,omitempty" yaml:"vectorA,omitempty"`
	VectorAText string    `json:"vectorAText,omitempty" yaml:"vectorAText,omitempty"`
	VectorB     []float64 `json:"vectorB,omitempty" yaml:"vectorB,omitempty"`
	VectorBText string    `json:"vectorBText,omitempty" yaml:"vectorBText,omitempty"`
}

// matrixOperand resolves one matrix argument.
//
// Steps:
//  1. text != "" → textparse.ParseMatrix; else rows != nil → NewDenseFromRows;
//     else ErrMissingOperand.
//  2. ragged arrays are reported as parse errors, like ragged text.
//  3. empty operands → ErrEmpty; beyond maxDim → ErrTooLarge.
func (e *Engine) matrixOperand(name string, rows [][]float64, text string) (*matrix.Dense, error) {
	var (
		m   *matrix.Dense
		err error
	)
	switch {
	case text != "":
		m, err = textparse.ParseMatrix(text)
	case rows != nil:
		if m, err = matrix.NewDenseFromRows(rows); err != nil {
			err = fmt.Errorf("%w: %w", textparse.ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrMissingOperand)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err = matrix.ValidateNonEmpty(m); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err = matrix.ValidateMaxDimension(m, e.maxDim); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return m, nil
}

// vectorOperand resolves one vector argument with the same precedence rules.
func (e *Engine) vectorOperand(name string, v []float64, text string) ([]float64, error) {
	var (
		out []float64
		err error
	)
	switch {
	case text != "":
		out, err = textparse.ParseVector(text)
	case v != nil:
		out = append([]float64(nil), v...)
		err = matrix.ValidateFinite(out)
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrMissingOperand)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", name, matrix.ErrEmpty)
	}
	if e.maxDim > 0 && len(out) > e.maxDim {
		return nil, fmt.Errorf("%s: length %d exceeds %d: %w", name, len(out), e.maxDim, matrix.ErrTooLarge)
	}

	return out, nil
}

// single resolves the one-matrix operand shared by most operations.
func (e *Engine) single(req *Request) (*matrix.Dense, error) {
	return e.matrixOperand("matrix", req.Matrix, req.MatrixText)
}

// pair resolves matrixA and matrixB.
func (e *Engine) pair(req *Request) (a, b *matrix.Dense, err error) {
	if a, err = e.matrixOperand("matrixA", req.MatrixA, req.MatrixAText); err != nil {
		return nil, nil, err
	}
	if b, err = e.matrixOperand("matrixB", req.MatrixB, req.MatrixBText); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// vectors resolves vectorA and vectorB.
func (e *Engine) vectors(req *Request) (a, b []float64, err error) {
	if a, err = e.vectorOperand("vectorA", req.VectorA, req.VectorAText); err != nil {
		return nil, nil, err
	}
	if b, err = e.vectorOperand("vectorB", req.VectorB, req.VectorBText); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}
