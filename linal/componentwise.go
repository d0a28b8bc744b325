// SPDX-License-Identifier: MIT
// Package linal: shared componentwise kernels.
//
// Purpose:
//   - One generic implementation per shape (3 components, 9 cells) for every
//     elementwise binary operator, parameterized by the scalar operator.
//   - Value and in-place forms of Add/Sub/MulScalar/DivScalar are thin
//     wrappers over these kernels.

package linal

import "github.com/katalvlaran/linal3/numeric"

// binaryOp is a closed scalar operator on T.
type binaryOp[T numeric.Number] func(a, b T) T

func add[T numeric.Number](a, b T) T { return a + b }
func sub[T numeric.Number](a, b T) T { return a - b }
func mul[T numeric.Number](a, b T) T { return a * b }
func div[T numeric.Number](a, b T) T { return a / b }

// zip3 combines matching components of a and b.
func zip3[T numeric.Number](a, b Vector[T], op binaryOp[T]) Vector[T] {
	return Vector[T]{
		X: op(a.X, b.X),
		Y: op(a.Y, b.Y),
		Z: op(a.Z, b.Z),
	}
}

// broadcast3 combines every component of a with the scalar s.
func broadcast3[T numeric.Number](a Vector[T], s T, op binaryOp[T]) Vector[T] {
	return zip3(a, VectorScalar(s), op)
}

// zip9 combines matching cells of a and b.
// Fixed row-major order m11..m33.
func zip9[T numeric.Number](a, b Matrix[T], op binaryOp[T]) Matrix[T] {
	ac, bc := a.cells(), b.cells()
	var out [9]T
	for i := range out {
		out[i] = op(ac[i], bc[i])
	}

	return matrixFromCells(out)
}

// broadcast9 combines every cell of a with the scalar s.
func broadcast9[T numeric.Number](a Matrix[T], s T, op binaryOp[T]) Matrix[T] {
	return zip9(a, MatrixScalar(s), op)
}
