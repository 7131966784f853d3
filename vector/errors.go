// SPDX-License-Identifier: MIT

// Package vector: sentinel error set.
// Public indexers (At/Set) MUST return these, never panic and never clamp.

package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates that a component index is outside [0, N).
var ErrOutOfRange = errors.New("vector: index out of range")

// indexErrorf wraps err with the vector type, method and offending index.
func indexErrorf(typ, method string, index int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", typ, method, index, err)
}
