// SPDX-License-Identifier: MIT

// Package numeric defines the element types accepted by linal vectors and
// matrices, together with the float conversion and tolerance policy shared by
// every operation that leaves the element domain.
//
// Two capabilities are layered here:
//
//   - Number: closed + − × ÷, == comparison, a zero value, value copies.
//     Every exact operation (Dot, Cross, Determinant, Transpose, products)
//     needs nothing more.
//   - Float conversion: ToFloat / FromFloat, a single possibly lossy step
//     between an element and float64. Roots and trigonometry (Magnitude,
//     Normalize, Angle, Inverse, Rotation) go through these two functions and
//     nowhere else.
//
// Approximate comparison (Close) is configured with functional options:
//
//	ok := numeric.Close(a, b, numeric.WithAbsTol(1e-6))
package numeric
