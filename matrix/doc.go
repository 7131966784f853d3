// Package matrix provides fixed-size square matrices (2×2, 3×3 and 4×4)
// over any numbers.Scalar, and the transforms built on them.
//
// # Storage
//
// Every MatrixN holds one row-major [N*N]T array. Named fields ('a'..),
// rows, columns, (row, col) cells and flat indices are accessors over that
// array, so a write through one view is visible through all of them.
// Matrices are plain values: they copy on assignment and compare with ==.
//
// # Algebra
//
// Determinants, cofactors and adjugates are computed by minor expansion:
// a Matrix4's minors are Matrix3 values, whose minors are Matrix2 values,
// whose minor is a scalar. DetAlongRow and DetAlongCol expand along any
// line and agree with Det.
//
// Inverse and division are free functions restricted to numbers.Float:
//
//	inv, ok := matrix.Inverse3(m)     // ok == false iff m.Det() == 0
//	q, ok   := matrix.Div3(a, b)      // a·b⁻¹
//	err     := matrix.DivAssign3(&a, b) // wraps ErrSingular, a unchanged
//
// # Transforms
//
// Translate, Scale, Perspective, LookAt and LookAtBasis build homogeneous
// Matrix4 transforms for column vectors (p' = M·p). MulVec4 keeps the input
// W; MulVec3 promotes with W = 1.
//
// # Errors
//
// All failures are sentinel errors (ErrOutOfRange, ErrUnknownField,
// ErrSingular, ErrNilMatrix, ErrInvalidPlanes, ErrDivisionByZero,
// ErrNotImplemented) wrapped with the failing operation; match them with
// errors.Is. Exported methods never panic on bad indices.
//
// # Options
//
// Perspective and Render accept functional options: WithHandedness,
// WithLayout and WithPrecision.
package matrix
