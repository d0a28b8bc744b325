// SPDX-License-Identifier: MIT
// Package linal_test contains test helpers.
//
// Purpose:
//   - Provide deterministic fixtures (seeded random vectors/matrices).
//   - Tolerance-aware assertions that print both operands on failure.

package linal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linal3/linal"
	"github.com/katalvlaran/linal3/numeric"
)

// fixtureSeed keeps every randomized property test reproducible.
const fixtureSeed = 20240917

// samples is the number of random operands per property test.
const samples = 64

// loose is the tolerance policy for chains of float64 products.
var loose = []numeric.Option{numeric.WithAbsTol(1e-6), numeric.WithRelTol(1e-9)}

// RequireVectorClose fails the test if got and want differ beyond opts.
func RequireVectorClose[T numeric.Number](t *testing.T, want, got linal.Vector[T], opts ...numeric.Option) {
	t.Helper()
	if !got.ApproxEqual(want, opts...) {
		t.Fatalf("vector mismatch:\n got  %v\n want %v", got, want)
	}
}

// RequireMatrixClose fails the test if got and want differ beyond opts.
func RequireMatrixClose[T numeric.Number](t *testing.T, want, got linal.Matrix[T], opts ...numeric.Option) {
	t.Helper()
	if !got.ApproxEqual(want, opts...) {
		t.Fatalf("matrix mismatch:\n got  %+v\n want %+v", got, want)
	}
}

// newRand returns a deterministic source for fixtures.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(fixtureSeed))
}

// randFloat returns a value in [-10, 10).
func randFloat(r *rand.Rand) float64 {
	return r.Float64()*20 - 10
}

// RandomVector returns a vector with components in [-10, 10).
func RandomVector(r *rand.Rand) linal.Vector[float64] {
	return linal.NewVector(randFloat(r), randFloat(r), randFloat(r))
}

// RandomIntVector returns a vector with components in [-50, 50).
func RandomIntVector(r *rand.Rand) linal.Vector[int] {
	return linal.NewVector(r.Intn(100)-50, r.Intn(100)-50, r.Intn(100)-50)
}

// RandomMatrix returns a matrix with cells in [-10, 10).
func RandomMatrix(r *rand.Rand) linal.Matrix[float64] {
	return linal.MatrixFromRows(RandomVector(r), RandomVector(r), RandomVector(r))
}
