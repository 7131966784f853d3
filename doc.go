// Package mpml is a small, allocation-free linear-algebra toolkit for
// graphics and geometry: fixed-size vectors, square matrices, quaternions
// and an angle type, all generic over the numeric element type.
//
// Under the hood, everything is organized in subpackages:
//
//	numbers/     Scalar/Float constraints, constants, Fac and CosSeries
//	angle/       radians-backed Angle with degree conversion and trig
//	vector/      Vector2, Vector3 and homogeneous Vector4
//	matrix/      Matrix2/3/4, minors, cofactors, inverse, transforms
//	quaternion/  Quaternion and rotation matrices
//
// Quick start:
//
//	view := matrix.LookAt(eye, center, vector.YAxis3[float64]())
//	proj, err := matrix.Perspective(1280.0, 720, 0.1, 100, angle.FromDegrees(60))
//	if err != nil {
//		// near/far or viewport precondition violated
//	}
//	clip := proj.Mul(view).MulVec4(vector.Point4(1.0, 1, 1))
//
// Every type is a plain value; there is no shared state and nothing to
// lock. Errors are sentinel values matched with errors.Is.
//
// See examples/ for a runnable camera pipeline.
package mpml
