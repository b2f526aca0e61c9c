// SPDX-License-Identifier: MIT

package textparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// ErrParse is the sentinel for malformed operand text.
var ErrParse = errors.New("textparse: malformed input")

// RowSeparator splits matrix rows.
const RowSeparator = ";"

// parseErrorf wraps ErrParse with positional context.
func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

// parseTokens converts whitespace-separated tokens into finite floats.
func parseTokens(fields []string, where string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, parseErrorf("%s token %d: %q is not a number", where, i+1, tok)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, parseErrorf("%s token %d: %q is not finite", where, i+1, tok)
		}
		out[i] = v
	}

	return out, nil
}

// ParseRows parses "1 2; 3 4" into [][]float64{{1,2},{3,4}}.
// Blank input yields an empty, non-nil slice.
func ParseRows(text string) ([][]float64, error) {
	rows := make([][]float64, 0)
	width := -1
	for i, raw := range strings.Split(text, RowSeparator) {
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue // blank rows are skipped, not rejected
		}
		row, err := parseTokens(fields, fmt.Sprintf("row %d", i+1))
		if err != nil {
			return nil, err
		}
		if width >= 0 && len(row) != width {
			return nil, parseErrorf("row %d has %d columns, want %d (all rows must have the same number of columns)",
				i+1, len(row), width)
		}
		width = len(row)
		rows = append(rows, row)
	}

	return rows, nil
}

// ParseMatrix parses delimited text into a *matrix.Dense.
//
// Example:
//
//	m, err := textparse.ParseMatrix("1 2; 3 4") // 2×2
//
// Errors: ErrParse on non-numeric or non-finite tokens and on ragged rows.
func ParseMatrix(text string) (*matrix.Dense, error) {
	rows, err := ParseRows(text)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		// Unreachable after ParseRows, kept so the sentinel survives.
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return m, nil
}

// ParseVector parses whitespace-separated numbers. Semicolons are not
// accepted in vector text.
func ParseVector(text string) ([]float64, error) {
	if strings.Contains(text, RowSeparator) {
		return nil, parseErrorf("vector text must not contain %q", RowSeparator)
	}

	return parseTokens(strings.Fields(text), "vector")
}
