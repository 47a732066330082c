// Package spatialmath creates and manipulates 3D rotations and rigid-body
// transformations as 3x3 SO(3) and 4x4 SE(3) matrices.
//
// Matrices are gonum dense matrices and 3-vectors are r3.Vector values.
// Angle triples and twists are plain float64 slices of length 3 or 6. All
// functions are pure: inputs are never mutated and results are freshly
// allocated, so values may be shared freely between goroutines.
package spatialmath
