// SPDX-License-Identifier: MIT

package linal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linal3/numeric"
)

// Vector is a 3D vector or point with X, Y and Z components of type T.
// The zero value is the zero vector.
type Vector[T numeric.Number] struct {
	X T
	Y T
	Z T
}

// NewVector returns a new [Vector] with the given x, y and z components.
func NewVector[T numeric.Number](x, y, z T) Vector[T] {
	return Vector[T]{X: x, Y: y, Z: z}
}

// VectorScalar returns a new [Vector] with all components set to s.
func VectorScalar[T numeric.Number](s T) Vector[T] {
	return Vector[T]{X: s, Y: s, Z: s}
}

// VectorZero returns the zero vector (every component is T's zero value).
func VectorZero[T numeric.Number]() Vector[T] {
	return Vector[T]{}
}

// XAxis returns the unit vector (1, 0, 0).
func XAxis[T numeric.Number]() Vector[T] {
	return Vector[T]{X: numeric.One[T]()}
}

// YAxis returns the unit vector (0, 1, 0).
func YAxis[T numeric.Number]() Vector[T] {
	return Vector[T]{Y: numeric.One[T]()}
}

// ZAxis returns the unit vector (0, 0, 1).
func ZAxis[T numeric.Number]() Vector[T] {
	return Vector[T]{Z: numeric.One[T]()}
}

// Add returns v + o.
func (v Vector[T]) Add(o Vector[T]) Vector[T] { return zip3(v, o, add[T]) }

// SetAdd sets v to v + o.
func (v *Vector[T]) SetAdd(o Vector[T]) { *v = v.Add(o) }

// Sub returns v - o.
func (v Vector[T]) Sub(o Vector[T]) Vector[T] { return zip3(v, o, sub[T]) }

// SetSub sets v to v - o.
func (v *Vector[T]) SetSub(o Vector[T]) { *v = v.Sub(o) }

// MulScalar returns v scaled by s.
func (v Vector[T]) MulScalar(s T) Vector[T] { return broadcast3(v, s, mul[T]) }

// SetMulScalar scales v by s in place.
func (v *Vector[T]) SetMulScalar(s T) { *v = v.MulScalar(s) }

// DivScalar returns v with every component divided by s.
// s == 0 is not checked: floats yield ±Inf/NaN, integers panic.
func (v Vector[T]) DivScalar(s T) Vector[T] { return broadcast3(v, s, div[T]) }

// SetDivScalar divides v by s in place. See DivScalar for s == 0.
func (v *Vector[T]) SetDivScalar(s T) { *v = v.DivScalar(s) }

// Negate returns -v.
func (v Vector[T]) Negate() Vector[T] {
	return Vector[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the inner product x1*x2 + y1*y2 + z1*z2.
func (v Vector[T]) Dot(o Vector[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
// The result is the zero vector when v and o are parallel.
func (v Vector[T]) Cross(o Vector[T]) Vector[T] {
	return Vector[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// MagnitudeSquared returns v·v, computed exactly in T.
func (v Vector[T]) MagnitudeSquared() T {
	return v.Dot(v)
}

// Magnitude returns the Euclidean length of v.
func (v Vector[T]) Magnitude() float64 {
	return math.Sqrt(numeric.ToFloat(v.MagnitudeSquared()))
}

// Normalize returns v divided by its magnitude.
// The magnitude is converted back to T before dividing, so integer vectors
// truncate. A zero vector is not guarded against: floats yield NaN
// components and integers panic.
func (v Vector[T]) Normalize() Vector[T] {
	return v.DivScalar(numeric.FromFloat[T](v.Magnitude()))
}

// Angle returns the angle between v and o in radians, in [0, π].
// The cosine is clamped to [-1, 1] to absorb rounding on (anti)parallel
// inputs. NaN when either vector is zero.
func (v Vector[T]) Angle(o Vector[T]) float64 {
	cos := numeric.ToFloat(v.Dot(o)) / (v.Magnitude() * o.Magnitude())

	return math.Acos(math.Max(-1, math.Min(1, cos)))
}

// Equal reports whether v and o are componentwise identical (no tolerance).
func (v Vector[T]) Equal(o Vector[T]) bool {
	return v == o
}

// ApproxEqual reports whether every component of v is numeric.Close to the
// matching component of o.
func (v Vector[T]) ApproxEqual(o Vector[T], opts ...numeric.Option) bool {
	return numeric.CloseAll(v.components(), o.components(), opts...)
}

// String returns the debug form "Vector { x: 1, y: 2, z: 3 }".
func (v Vector[T]) String() string {
	return fmt.Sprintf("Vector { x: %v, y: %v, z: %v }", v.X, v.Y, v.Z)
}

func (v Vector[T]) components() []T {
	return []T{v.X, v.Y, v.Z}
}
