package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Skew maps a 3-vector to its 3x3 skew-symmetric matrix, the inverse of
// Vex. Skew(v) * u equals the cross product v x u.
func Skew(v r3.Vector) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v.Z, v.Y,
		v.Z, 0, -v.X,
		-v.Y, v.X, 0,
	})
}

// Vex maps a 3x3 skew-symmetric matrix back to its 3-vector. The matrix is
// not required to be exactly skew; the lower-triangle entries are taken.
func Vex(S mat.Matrix) (r3.Vector, error) {
	if rows, cols := S.Dims(); rows != 3 || cols != 3 {
		return r3.Vector{}, newShapeError("a 3x3 matrix", S)
	}
	return r3.Vector{X: S.At(2, 1), Y: S.At(0, 2), Z: S.At(1, 0)}, nil
}

// SkewA maps a twist 6-vector [v w] to its 4x4 augmented skew matrix, the
// inverse of VexA.
func SkewA(tw []float64) (*mat.Dense, error) {
	if len(tw) != 6 {
		return nil, newLengthError("a twist 6-vector", len(tw))
	}
	return mat.NewDense(4, 4, []float64{
		0, -tw[5], tw[4], tw[0],
		tw[5], 0, -tw[3], tw[1],
		-tw[4], tw[3], 0, tw[2],
		0, 0, 0, 0,
	}), nil
}

// VexA maps a 4x4 augmented skew matrix back to its twist 6-vector [v w].
func VexA(S mat.Matrix) ([]float64, error) {
	if rows, cols := S.Dims(); rows != 4 || cols != 4 {
		return nil, newShapeError("a 4x4 matrix", S)
	}
	return []float64{
		S.At(0, 3), S.At(1, 3), S.At(2, 3),
		S.At(2, 1), S.At(0, 2), S.At(1, 0),
	}, nil
}
