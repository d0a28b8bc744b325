// SPDX-License-Identifier: MIT
// Package linal: matrix–vector composition.
//
// Purpose:
//   - Apply a Matrix to a Vector (linear map).
//   - Build axis-angle rotation matrices (Rodrigues' formula) and the
//     Vector convenience forms on top of them.
//
// Conventions:
//   - Right-handed, counter-clockwise for positive angles when looking down
//     the axis toward the origin.
//   - Column vectors: v' = R·v.

package linal

import (
	"math"

	"github.com/katalvlaran/linal3/numeric"
)

// MulVector returns m·v, where component i is row_i(m) · v.
func (m Matrix[T]) MulVector(v Vector[T]) Vector[T] {
	return Vector[T]{
		X: m.M11*v.X + m.M12*v.Y + m.M13*v.Z,
		Y: m.M21*v.X + m.M22*v.Y + m.M23*v.Z,
		Z: m.M31*v.X + m.M32*v.Y + m.M33*v.Z,
	}
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Rotation returns the matrix rotating by radians around axis:
//
//	R = cos θ·I + sin θ·[k]× + (1 − cos θ)·k·kᵀ
//
// Implementation:
//   - Stage 1: convert the raw axis components to float64.
//   - Stage 2: evaluate the nine Rodrigues terms in float64.
//   - Stage 3: convert each cell back to T.
//
// Notes:
//   - The axis is used as given; it is not normalized. A non-unit axis
//     yields a scaled/skewed transform, not an error.
//   - For integer T every cell truncates toward zero.
func Rotation[T numeric.Number](radians float64, axis Vector[T]) Matrix[T] {
	x, y, z := numeric.ToFloat(axis.X), numeric.ToFloat(axis.Y), numeric.ToFloat(axis.Z)
	s, c := math.Sincos(radians)
	t := 1 - c

	f := numeric.FromFloat[T]

	return NewMatrix(
		f(c+x*x*t), f(x*y*t-z*s), f(x*z*t+y*s),
		f(y*x*t+z*s), f(c+y*y*t), f(y*z*t-x*s),
		f(z*x*t-y*s), f(z*y*t+x*s), f(c+z*z*t),
	)
}

// RotationDegree is Rotation with the angle given in degrees.
func RotationDegree[T numeric.Number](degrees float64, axis Vector[T]) Matrix[T] {
	return Rotation(DegToRad(degrees), axis)
}

// RotateAround returns v rotated by radians around axis.
// See Rotation for the axis contract.
func (v Vector[T]) RotateAround(radians float64, axis Vector[T]) Vector[T] {
	return Rotation(radians, axis).MulVector(v)
}

// RotateDegreeAround returns v rotated by degrees around axis.
func (v Vector[T]) RotateDegreeAround(degrees float64, axis Vector[T]) Vector[T] {
	return RotationDegree(degrees, axis).MulVector(v)
}
