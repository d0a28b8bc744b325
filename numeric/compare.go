// SPDX-License-Identifier: MIT

package numeric

import "math"

// Close reports whether a and b agree within the tolerance policy:
//
//	|a − b| ≤ atol + rtol·|b|
//
// The test runs in float64 regardless of T.
//
// Behavior highlights:
//   - NaN is never close to anything, itself included.
//   - Equal infinities are close; opposite or mixed infinities are not.
//   - Asymmetric in the same way as the matrix AllClose kernel: b is the reference.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func Close[T Number](a, b T, opts ...Option) bool {
	return closeWith(ToFloat(a), ToFloat(b), NewOptions(opts...))
}

// CloseAll reports whether every pair a[i], b[i] is Close under one resolved policy.
// Slices of different length are never close.
func CloseAll[T Number](a, b []T, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := NewOptions(opts...)
	for i := range a {
		if !closeWith(ToFloat(a[i]), ToFloat(b[i]), o) {
			return false
		}
	}

	return true
}

func closeWith(a, b float64, o Options) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= o.atol+o.rtol*math.Abs(b)
}
