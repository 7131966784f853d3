// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for bounds checks.
//   - Keep the MatrixN methods minimal by delegating index/field validation here.
//   - Return plain sentinel errors annotated with the offending value; the
//     call sites add the "<Type>.<Op>" tag uniformly via matrixErrorf.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate only on the error path.

package matrix

import "fmt"

// validateIndex ensures 0 <= i < size.
//
// Inputs: i – candidate index; size – exclusive upper bound.
// Returns ErrOutOfRange (annotated) when i is outside [0,size).
// Complexity: O(1).
func validateIndex(i, size int) error {
	if i < 0 || i >= size {
		return fmt.Errorf("index %d not in [0,%d): %w", i, size, ErrOutOfRange)
	}

	return nil
}

// validateCell ensures (r, c) addresses a cell of an n×n matrix.
func validateCell(r, c, n int) error {
	if r < 0 || r >= n || c < 0 || c >= n {
		return fmt.Errorf("cell (%d,%d) not in %dx%d: %w", r, c, n, n, ErrOutOfRange)
	}

	return nil
}

// fieldIndex maps a field name 'a', 'b', ... to its flat row-major index.
// Returns ErrUnknownField for names outside 'a'..'a'+size-1.
func fieldIndex(name byte, size int) (int, error) {
	if name < 'a' || int(name-'a') >= size {
		return 0, fmt.Errorf("field %q: %w", name, ErrUnknownField)
	}

	return int(name - 'a'), nil
}
