// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// MatrixResult is the payload of add, multiply, inverse and transpose.
type MatrixResult struct {
	Result [][]float64 `json:"result" yaml:"result"`
}

// VectorResult is the payload of cross.
type VectorResult struct {
	Result []float64 `json:"result" yaml:"result"`
}

// ScalarResult is the payload of determinant and dot.
type ScalarResult struct {
	Result float64 `json:"result" yaml:"result"`
}

// RankResult is the payload of rank.
type RankResult struct {
	Result int `json:"result" yaml:"result"`
}

// SolveResult is the payload of solve. Residuals is set only for
// inconsistent systems; Message only for non-unique ones.
type SolveResult struct {
	Solution  []float64 `json:"solution" yaml:"solution"`
	Unique    bool      `json:"unique" yaml:"unique"`
	Class     string    `json:"class" yaml:"class"`
	Rank      int       `json:"rank" yaml:"rank"`
	Message   string    `json:"message,omitempty" yaml:"message,omitempty"`
	Residuals *float64  `json:"residuals,omitempty" yaml:"residuals,omitempty"`
}

// EigenResult is the payload of eigen: Eigenvectors[i] pairs with Eigenvalues[i].
type EigenResult struct {
	Eigenvalues  []Complex   `json:"eigenvalues" yaml:"eigenvalues"`
	Eigenvectors [][]Complex `json:"eigenvectors" yaml:"eigenvectors"`
}

// SVDResult is the payload of svd: thin factors, singular values as a vector.
type SVDResult struct {
	U  [][]float64 `json:"U" yaml:"U"`
	S  []float64   `json:"S" yaml:"S"`
	Vt [][]float64 `json:"Vt" yaml:"Vt"`
}

// SVDFullResult is the payload of svd-full: square U and Vt, S shaped like A.
type SVDFullResult struct {
	U  [][]float64 `json:"U" yaml:"U"`
	S  [][]float64 `json:"S" yaml:"S"`
	Vt [][]float64 `json:"Vt" yaml:"Vt"`
}

// LUResult is the payload of lu (P·A = L·U).
type LUResult struct {
	P [][]float64 `json:"P" yaml:"P"`
	L [][]float64 `json:"L" yaml:"L"`
	U [][]float64 `json:"U" yaml:"U"`
}

// QRResult is the payload of qr (A = Q·R, reduced).
type QRResult struct {
	Q [][]float64 `json:"Q" yaml:"Q"`
	R [][]float64 `json:"R" yaml:"R"`
}

// CholeskyResult is the payload of cholesky (A = L·Lᵀ).
type CholeskyResult struct {
	L [][]float64 `json:"L" yaml:"L"`
}

// CharPolyResult is the payload of characteristic-polynomial.
type CharPolyResult struct {
	Polynomial   string    `json:"polynomial" yaml:"polynomial"`
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Roots        []Complex `json:"roots" yaml:"roots"`
}

// rowsOf materialises m and rejects non-finite entries.
func rowsOf(name string, m matrix.Matrix) ([][]float64, error) {
	rows, err := matrix.ToRows(m)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if _, err = finiteVector(fmt.Sprintf("%s[%d]", name, i), rows[i]); err != nil {
			return nil, err
		}
	}

	return rows, nil
}
