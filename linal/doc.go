// SPDX-License-Identifier: MIT

// Package linal provides generic 3D vectors and 3×3 matrices.
//
// Vector[T] and Matrix[T] are small value types parameterized over
// numeric.Number (signed integers and floats). Every operation is pure and
// O(1); copies are independent and nothing retains a reference to its
// operands, so values may be shared freely between goroutines as long as no
// goroutine mutates them concurrently.
//
// Binary operations come in two forms:
//
//	c := a.Add(b) // returns a new value
//	a.SetAdd(b)   // overwrites the receiver in place
//
// Exact operations (Dot, Cross, Determinant, Transpose, Mul, MulVector) stay
// in T. Operations that need square roots or trigonometry (Magnitude,
// Normalize, Angle, Inverse, Rotation) convert through numeric.ToFloat and
// numeric.FromFloat, which truncates for integer element types.
//
// Degenerate arithmetic is not masked: dividing by a zero scalar, normalizing
// a zero vector, or taking the angle of a zero vector follows Go's rules for T
// (±Inf/NaN for floats, a run-time panic for integers). Inverse is the only
// operation with a designed failure path and reports ErrSingular.
//
// Quick example:
//
//	r := linal.NewVector(1.0, 0, 0).RotateAround(math.Pi/2, linal.ZAxis[float64]())
//	// r ≈ (0, 1, 0)
package linal
