// Package lvlinalg is a dense linear-algebra computation engine: parse
// matrices from text or arrays, run one named operation, get back a
// well-formed result or a classified error.
//
// 🚀 What is lvlinalg?
//
//	A small, explicit, concurrency-safe engine that brings together:
//		• Elementary ops: add, multiply, transpose, dot, cross
//		• Rank, determinant and inverse with scaled singularity detection
//		• Decompositions: LU (partial pivoting), QR (Householder), Cholesky, SVD
//		• Eigen: general real matrices, complex-conjugate pairs included
//		• Linear systems: unique / infinite / least-squares classification
//		• Characteristic polynomials with roots
//
// ✨ Why choose lvlinalg?
//
//   - No global state: build an engine.Engine, pass it where it is needed
//   - Every failure is a value: {error, kind}, never a crash
//   - Complex numbers always travel as {re, im} pairs
//   - Observable: logr logging, Prometheus metrics, per-call timeouts
//
// Packages:
//
//	matrix/    — Matrix interface, Dense storage, validators and numeric kernels
//	textparse/ — "1 2; 3 4" text form of matrices and vectors
//	solve/     — linear-system classification on top of LU and least squares
//	charpoly/  — characteristic polynomial coefficients, roots and formatting
//	engine/    — operation registry, operand resolution, result envelopes
//	config/    — YAML / env / flag configuration
//	cmd/linalg — batch NDJSON evaluator
//
// Quick example:
//
//	eng, _ := engine.New()
//	res := eng.Do(ctx, engine.Request{Op: "determinant", MatrixText: "1 2; 3 4"})
//	out, _ := json.Marshal(res) // {"result":-2} up to rounding
//
//	go install github.com/katalvlaran/lvlinalg/cmd/linalg@latest
package lvlinalg
