// SPDX-License-Identifier: MIT

package numeric

import "golang.org/x/exp/constraints"

// Number is the set of element types usable as vector and matrix components.
// Signed integers and floats only: unsigned types have no additive inverse,
// which Cross and Negate rely on.
type Number interface {
	constraints.Signed | constraints.Float
}

// Float narrows Number to floating-point element types.
// Generic callers that must not truncate (e.g. normalized directions) can
// constrain on Float instead of Number.
type Float interface {
	constraints.Float
}
