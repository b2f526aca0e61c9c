// SPDX-License-Identifier: MIT

// Package textparse converts the delimited text form of operands into
// numeric values.
//
// 📐 Grammar:
//
//	matrix := row { ";" row }
//	row    := { number }          (numbers separated by runs of whitespace)
//	vector := { number }
//
// 🔍 Rules:
//   - Rows that contain no tokens are dropped, so "1 2;;3 4;" is 2×2.
//   - All remaining rows must have the same number of columns.
//   - Every token must parse as a finite float64 (strconv syntax).
//   - Blank input is not an error: it yields a 0×0 matrix or an empty vector;
//     operations downstream reject empty operands.
//
// 🚨 Errors:
//
//	Every failure wraps ErrParse and names the offending row/token.
package textparse
