// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public functions return these sentinels wrapped with an operation
// tag, and tests MUST check them via errors.Is. No exported method panics on
// user-triggered error conditions; panics are reserved for Option
// constructors receiving nonsensical values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Public
// entry points wrap with matrixErrorf("<Type>.<Op>", ErrX) so the final text
// reads "Matrix3.Minor: index 12 not in [0,9): matrix: index out of range".

var (
	// ErrOutOfRange indicates that a flat index, row or column is outside
	// valid bounds. Public indexers (At/Set/Index/Minor/...) MUST return
	// this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownField is returned by Field for a name outside 'a'..'a'+N²-1.
	ErrUnknownField = errors.New("matrix: unknown field name")

	// ErrSingular is returned by compound division when the divisor has a
	// determinant of exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix was passed as the target of
	// an in-place operation.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidPlanes signals near < 0 or far < near in Perspective.
	ErrInvalidPlanes = errors.New("matrix: invalid clipping planes")

	// ErrDivisionByZero signals a zero width or height in Perspective.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrNotImplemented marks an intentionally unsupported configuration
	// (e.g., left-handed projection).
	ErrNotImplemented = errors.New("matrix: operation not implemented")
)

// Operation tags used to label wrapped errors.
const (
	opIndex     = "Index"
	opAt        = "At"
	opSet       = "Set"
	opField     = "Field"
	opRow       = "Row"
	opCol       = "Col"
	opSetRow    = "SetRow"
	opSetCol    = "SetCol"
	opMinor     = "Minor"
	opCofactor  = "Cofactor"
	opDetRow    = "DetAlongRow"
	opDetCol    = "DetAlongCol"
	opDivAssign = "DivAssign"

	opPerspective = "Perspective"
)

// Type tags.
const (
	typMatrix2 = "Matrix2"
	typMatrix3 = "Matrix3"
	typMatrix4 = "Matrix4"
)

// matrixErrorf wraps err with "<typ>.<op>: ". An empty typ yields "<op>: ".
func matrixErrorf(typ, op string, err error) error {
	if typ == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s.%s: %w", typ, op, err)
}
