// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/katalvlaran/lvlinalg/charpoly"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/solve"
)

// Built-in operation names.
const (
	OpAdd            = "add"
	OpMultiply       = "multiply"
	OpDeterminant    = "determinant"
	OpInverse        = "inverse"
	OpTranspose      = "transpose"
	OpRank           = "rank"
	OpSolve          = "solve"
	OpEigen          = "eigen"
	OpDot            = "dot"
	OpCross          = "cross"
	OpSVD            = "svd"
	OpSVDFull        = "svd-full"
	OpLU             = "lu"
	OpQR             = "qr"
	OpCholesky       = "cholesky"
	OpCharPolynomial = "characteristic-polynomial"
)

func builtins() []Operation {
	return []Operation{
		{OpAdd, "element-wise sum of matrixA and matrixB", runAdd},
		{OpMultiply, "matrix product matrixA·matrixB", runMultiply},
		{OpDeterminant, "determinant of a square matrix", runDeterminant},
		{OpInverse, "inverse of a non-singular square matrix", runInverse},
		{OpTranspose, "transpose of matrix", runTranspose},
		{OpRank, "numerical rank via singular values", runRank},
		{OpSolve, "solve coefficients·x = constants and classify the solution set", runSolve},
		{OpEigen, "eigenvalues and unit eigenvectors of a square matrix", runEigen},
		{OpDot, "dot product of vectorA and vectorB", runDot},
		{OpCross, "cross product of two 3D vectors", runCross},
		{OpSVD, "thin SVD, singular values as a vector", runSVD},
		{OpSVDFull, "full SVD, singular values zero-padded to the shape of matrix", runSVDFull},
		{OpLU, "partially pivoted LU with P·A = L·U", runLU},
		{OpQR, "reduced Householder QR", runQR},
		{OpCholesky, "Cholesky factor of a symmetric positive-definite matrix", runCholesky},
		{OpCharPolynomial, "characteristic polynomial, its text form and roots", runCharPolynomial},
	}
}

func matrixResult(m matrix.Matrix, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	rows, err := rowsOf("result", m)
	if err != nil {
		return nil, err
	}

	return MatrixResult{Result: rows}, nil
}

func runAdd(e *Engine, req *Request) (any, error) {
	a, b, err := e.pair(req)
	if err != nil {
		return nil, err
	}

	return matrixResult(matrix.Add(a, b))
}

func runMultiply(e *Engine, req *Request) (any, error) {
	a, b, err := e.pair(req)
	if err != nil {
		return nil, err
	}

	return matrixResult(matrix.Mul(a, b))
}

func runTranspose(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}

	return matrixResult(matrix.Transpose(m))
}

func runInverse(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}

	return matrixResult(matrix.Inverse(m, e.matrixOpts...))
}

func runDeterminant(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}
	d, err := matrix.Det(m)
	if err != nil {
		return nil, err
	}
	if d, err = finiteScalar("determinant", d); err != nil {
		return nil, err
	}

	return ScalarResult{Result: d}, nil
}

func runRank(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}
	r, err := matrix.Rank(m)
	if err != nil {
		return nil, err
	}

	return RankResult{Result: r}, nil
}

func runSolve(e *Engine, req *Request) (any, error) {
	a, err := e.matrixOperand("coefficients", req.Coefficients, req.CoefficientsText)
	if err != nil {
		return nil, err
	}
	b, err := e.vectorOperand("constants", req.Constants, req.ConstantsText)
	if err != nil {
		return nil, err
	}
	sol, err := solve.Solve(a, b,
		solve.WithResidualTolerance(e.residualTol),
		solve.WithMatrixOptions(e.matrixOpts...))
	if err != nil {
		return nil, err
	}
	x, err := finiteVector("solution", sol.X)
	if err != nil {
		return nil, err
	}

	out := SolveResult{
		Solution: x,
		Unique:   sol.IsUnique(),
		Class:    sol.Class.String(),
		Rank:     sol.Rank,
		Message:  sol.Message,
	}
	if sol.Class == solve.InconsistentApproximate {
		r, err := finiteScalar("residuals", sol.Residual)
		if err != nil {
			return nil, err
		}
		out.Residuals = &r
	}

	return out, nil
}

func runEigen(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}
	values, vectors, err := matrix.Eigen(m)
	if err != nil {
		return nil, err
	}
	out := EigenResult{Eigenvectors: make([][]Complex, len(vectors))}
	if out.Eigenvalues, err = EncodeComplexes(values); err != nil {
		return nil, err
	}
	for i, v := range vectors {
		if out.Eigenvectors[i], err = EncodeComplexes(v); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func runDot(e *Engine, req *Request) (any, error) {
	a, b, err := e.vectors(req)
	if err != nil {
		return nil, err
	}
	d, err := matrix.Dot(a, b)
	if err != nil {
		return nil, err
	}
	if d, err = finiteScalar("dot", d); err != nil {
		return nil, err
	}

	return ScalarResult{Result: d}, nil
}

func runCross(e *Engine, req *Request) (any, error) {
	a, b, err := e.vectors(req)
	if err != nil {
		return nil, err
	}
	c, err := matrix.Cross(a, b)
	if err != nil {
		return nil, err
	}
	if c, err = finiteVector("result", c); err != nil {
		return nil, err
	}

	return VectorResult{Result: c}, nil
}

func runSVD(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}
	u, s, vt, err := matrix.SVD(m)
	if err != nil {
		return nil, err
	}
	var out SVDResult
	if out.U, err = rowsOf("U", u); err != nil {
		return nil, err
	}
	if out.S, err = finiteVector("S", s); err != nil {
		return nil, err
	}
	if out.Vt, err = rowsOf("Vt", vt); err != nil {
		return nil, err
	}

	return out, nil
}

func runSVDFull(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}
	u, s, vt, err := matrix.SVDFull(m)
	if err != nil {
		return nil, err
	}
	var out SVDFullResult
	if out.U, err = rowsOf("U", u); err != nil {
		return nil, err
	}
	if out.S, err = rowsOf("S", s); err != nil {
		return nil, err
	}
	if out.Vt, err = rowsOf("Vt", vt); err != nil {
		return nil, err
	}

	return out, nil
}

func runLU(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}
	p, l, u, err := matrix.LU(m)
	if err != nil {
		return nil, err
	}
	var out LUResult
	if out.P, err = rowsOf("P", p); err != nil {
		return nil, err
	}
	if out.L, err = rowsOf("L", l); err != nil {
		return nil, err
	}
	if out.U, err = rowsOf("U", u); err != nil {
		return nil, err
	}

	return out, nil
}

func runQR(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}
	q, r, err := matrix.QR(m)
	if err != nil {
		return nil, err
	}
	var out QRResult
	if out.Q, err = rowsOf("Q", q); err != nil {
		return nil, err
	}
	if out.R, err = rowsOf("R", r); err != nil {
		return nil, err
	}

	return out, nil
}

func runCholesky(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}
	l, err := matrix.Cholesky(m, e.matrixOpts...)
	if err != nil {
		return nil, err
	}
	rows, err := rowsOf("L", l)
	if err != nil {
		return nil, err
	}

	return CholeskyResult{L: rows}, nil
}

func runCharPolynomial(e *Engine, req *Request) (any, error) {
	m, err := e.single(req)
	if err != nil {
		return nil, err
	}
	res, err := charpoly.Compute(m)
	if err != nil {
		return nil, err
	}
	out := CharPolyResult{Polynomial: res.Polynomial}
	if out.Coefficients, err = finiteVector("coefficients", res.Coefficients); err != nil {
		return nil, err
	}
	if out.Roots, err = EncodeComplexes(res.Roots); err != nil {
		return nil, err
	}

	return out, nil
}
