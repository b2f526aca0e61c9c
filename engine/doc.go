// SPDX-License-Identifier: MIT

// Package engine is the dispatch layer between a transport shell and the
// numeric packages.
//
// 🚦 Flow of one call (Engine.Do):
//
//	Request → operand resolution (text wins over arrays) → size limits →
//	registered Operation → payload with finite values → Result envelope
//
// 📦 Result envelope:
//   - success: an operation-specific payload object (see payloads.go);
//   - failure: {"error": <message>, "kind": <Kind>}.
//
// Every failure, including a panic inside the numeric backend or an expired
// per-call deadline, comes back as a failure envelope. Do never panics and
// never returns a Go error.
//
// 🧵 Concurrency:
//
//	An Engine is immutable after New and safe for concurrent use. Each call
//	works on its own operand copies.
//
// 🧮 Operations:
//
//	add, multiply, determinant, inverse, transpose, rank, solve, eigen, dot,
//	cross, svd, svd-full, lu, qr, cholesky, characteristic-polynomial.
package engine
