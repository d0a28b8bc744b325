// SPDX-License-Identifier: MIT

package numeric

// ToFloat converts an element to float64.
// Exact for float32, float64 and integers up to 2^53 in magnitude.
// Complexity: O(1).
func ToFloat[T Number](v T) float64 {
	return float64(v)
}

// FromFloat converts a float64 back to the element type.
// For integer T the fractional part is truncated toward zero; values outside
// T's range follow Go's implementation-specific conversion rules.
// Complexity: O(1).
func FromFloat[T Number](f float64) T {
	return T(f)
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return FromFloat[T](1)
}
