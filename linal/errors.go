// SPDX-License-Identifier: MIT
// Package linal: sentinel error set.
// Callers match these via errors.Is; operations wrap them with an operation
// tag ("Inverse: linal: singular matrix"). Panics are reserved for
// programmer errors (bad option values).

package linal

import (
	"errors"
	"fmt"
)

// ErrSingular is returned by Matrix.Inverse when the determinant equals the
// element type's zero value (exact comparison, no epsilon).
var ErrSingular = errors.New("linal: singular matrix")

// Operation name constants for unified error wrapping.
const (
	opInverse = "Inverse"
)

// linalErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func linalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
