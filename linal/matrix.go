// SPDX-License-Identifier: MIT
// Package linal: 3×3 matrix value type.
//
// Layout:
//   - Nine named cells, row-major: M11..M13 row 1, M21..M23 row 2, M31..M33 row 3.
//   - No structural invariants; any grid is a valid Matrix.
//
// Determinism & Performance:
//   - Every operation is a fixed number of scalar operations, O(1).
//   - No allocations; results are returned by value.

package linal

import "github.com/katalvlaran/linal3/numeric"

// Matrix is a 3×3 matrix of T stored as nine row-major cells.
// The zero value is the zero matrix.
type Matrix[T numeric.Number] struct {
	M11, M12, M13 T
	M21, M22, M23 T
	M31, M32, M33 T
}

// NewMatrix returns a matrix from nine cells given row by row.
func NewMatrix[T numeric.Number](m11, m12, m13, m21, m22, m23, m31, m32, m33 T) Matrix[T] {
	return Matrix[T]{
		M11: m11, M12: m12, M13: m13,
		M21: m21, M22: m22, M23: m23,
		M31: m31, M32: m32, M33: m33,
	}
}

// MatrixScalar returns a matrix with every cell set to s.
func MatrixScalar[T numeric.Number](s T) Matrix[T] {
	return NewMatrix(s, s, s, s, s, s, s, s, s)
}

// MatrixZero returns the all-zero matrix.
func MatrixZero[T numeric.Number]() Matrix[T] {
	return Matrix[T]{}
}

// Unity returns the identity matrix (1 on the diagonal, 0 elsewhere).
func Unity[T numeric.Number]() Matrix[T] {
	one := numeric.One[T]()

	return Matrix[T]{M11: one, M22: one, M33: one}
}

// MatrixFromRows builds a matrix whose rows are r1, r2 and r3.
func MatrixFromRows[T numeric.Number](r1, r2, r3 Vector[T]) Matrix[T] {
	return NewMatrix(
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
		r3.X, r3.Y, r3.Z,
	)
}

// Rows returns the three rows of m as vectors.
func (m Matrix[T]) Rows() (r1, r2, r3 Vector[T]) {
	return NewVector(m.M11, m.M12, m.M13),
		NewVector(m.M21, m.M22, m.M23),
		NewVector(m.M31, m.M32, m.M33)
}

// Cols returns the three columns of m as vectors.
func (m Matrix[T]) Cols() (c1, c2, c3 Vector[T]) {
	return m.Transpose().Rows()
}

// Determinant returns det(m) by cofactor expansion along the first row.
// Exact in T.
func (m Matrix[T]) Determinant() T {
	return m.M11*(m.M22*m.M33-m.M23*m.M32) -
		m.M12*(m.M21*m.M33-m.M23*m.M31) +
		m.M13*(m.M21*m.M32-m.M22*m.M31)
}

// Transpose returns mᵀ. Diagonal cells are untouched.
func (m Matrix[T]) Transpose() Matrix[T] {
	return NewMatrix(
		m.M11, m.M21, m.M31,
		m.M12, m.M22, m.M32,
		m.M13, m.M23, m.M33,
	)
}

// Inverse returns m⁻¹ as the adjugate scaled by 1/det(m).
// Implementation:
//   - Stage 1: det == 0 (T's own equality, no epsilon) ⇒ ErrSingular.
//   - Stage 2: invDet = FromFloat(1 / ToFloat(det)).
//   - Stage 3: each adjugate cell × invDet.
//
// Returns:
//   - Matrix[T]: the inverse, or the zero matrix on error.
//   - error    : ErrSingular wrapped with the "Inverse" tag.
//
// Notes:
//   - For integer T the reciprocal truncates, so only det = ±1 yields a
//     meaningful result.
func (m Matrix[T]) Inverse() (Matrix[T], error) {
	var zero T
	det := m.Determinant()
	if det == zero {
		return Matrix[T]{}, linalErrorf(opInverse, ErrSingular)
	}
	invDet := numeric.FromFloat[T](1 / numeric.ToFloat(det))

	adj := NewMatrix(
		m.M22*m.M33-m.M23*m.M32, m.M13*m.M32-m.M12*m.M33, m.M12*m.M23-m.M13*m.M22,
		m.M23*m.M31-m.M21*m.M33, m.M11*m.M33-m.M13*m.M31, m.M21*m.M13-m.M11*m.M23,
		m.M21*m.M32-m.M22*m.M31, m.M12*m.M31-m.M11*m.M32, m.M11*m.M22-m.M12*m.M21,
	)

	return adj.MulScalar(invDet), nil
}

// Mul returns the matrix product m·o (row by column). Not commutative.
func (m Matrix[T]) Mul(o Matrix[T]) Matrix[T] {
	return NewMatrix(
		m.M11*o.M11+m.M12*o.M21+m.M13*o.M31,
		m.M11*o.M12+m.M12*o.M22+m.M13*o.M32,
		m.M11*o.M13+m.M12*o.M23+m.M13*o.M33,

		m.M21*o.M11+m.M22*o.M21+m.M23*o.M31,
		m.M21*o.M12+m.M22*o.M22+m.M23*o.M32,
		m.M21*o.M13+m.M22*o.M23+m.M23*o.M33,

		m.M31*o.M11+m.M32*o.M21+m.M33*o.M31,
		m.M31*o.M12+m.M32*o.M22+m.M33*o.M32,
		m.M31*o.M13+m.M32*o.M23+m.M33*o.M33,
	)
}

// SetMul sets m to m·o.
func (m *Matrix[T]) SetMul(o Matrix[T]) { *m = m.Mul(o) }

// Add returns the cellwise sum m + o.
func (m Matrix[T]) Add(o Matrix[T]) Matrix[T] { return zip9(m, o, add[T]) }

// SetAdd sets m to m + o.
func (m *Matrix[T]) SetAdd(o Matrix[T]) { *m = m.Add(o) }

// Sub returns the cellwise difference m - o.
func (m Matrix[T]) Sub(o Matrix[T]) Matrix[T] { return zip9(m, o, sub[T]) }

// SetSub sets m to m - o.
func (m *Matrix[T]) SetSub(o Matrix[T]) { *m = m.Sub(o) }

// MulScalar returns m with every cell multiplied by s.
func (m Matrix[T]) MulScalar(s T) Matrix[T] { return broadcast9(m, s, mul[T]) }

// SetMulScalar multiplies every cell of m by s in place.
func (m *Matrix[T]) SetMulScalar(s T) { *m = m.MulScalar(s) }

// DivScalar returns m with every cell divided by s.
// s == 0 is not checked: floats yield ±Inf/NaN, integers panic.
func (m Matrix[T]) DivScalar(s T) Matrix[T] { return broadcast9(m, s, div[T]) }

// SetDivScalar divides every cell of m by s in place.
func (m *Matrix[T]) SetDivScalar(s T) { *m = m.DivScalar(s) }

// Equal reports whether m and o are cellwise identical (no tolerance).
func (m Matrix[T]) Equal(o Matrix[T]) bool {
	return m == o
}

// ApproxEqual reports whether every cell of m is numeric.Close to the
// matching cell of o.
func (m Matrix[T]) ApproxEqual(o Matrix[T], opts ...numeric.Option) bool {
	mc, oc := m.cells(), o.cells()

	return numeric.CloseAll(mc[:], oc[:], opts...)
}

// cells flattens m in row-major order.
func (m Matrix[T]) cells() [9]T {
	return [9]T{
		m.M11, m.M12, m.M13,
		m.M21, m.M22, m.M23,
		m.M31, m.M32, m.M33,
	}
}

func matrixFromCells[T numeric.Number](c [9]T) Matrix[T] {
	return NewMatrix(c[0], c[1], c[2], c[3], c[4], c[5], c[6], c[7], c[8])
}
