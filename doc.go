// Package linal3 is a small, dependency-light algebra kit for 3D geometry:
// generic vectors, 3×3 matrices and axis-angle rotations over any signed
// integer or floating-point element type.
//
// What is inside?
//
//	numeric/ — element constraints, float conversion, tolerance options (Close)
//	linal/   — Vector[T], Matrix[T], MulVector, Rotation, RotateAround
//	examples/ — a runnable satellite-orbit walkthrough
//
// Every operation is pure, allocation-free and O(1). Values are plain structs:
// copy them, compare them with ==, pass them between goroutines.
//
// Quick example:
//
//	v := linal.NewVector(1.0, 0, 0)
//	r := v.RotateAround(math.Pi/2, linal.ZAxis[float64]()) // ≈ (0, 1, 0)
//
//	go get github.com/katalvlaran/linal3
package linal3
