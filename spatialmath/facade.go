package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// R2X converts an SO(3) matrix to a minimal 3-vector rotation
// representation.
func R2X(R mat.Matrix, representation Representation) ([]float64, error) {
	if order, ok := representation.order(); ok {
		return Tr2RPY(R, Radians, order, false)
	}
	switch representation {
	case RepEul:
		return Tr2Eul(R, Radians, false, false)
	case RepExp:
		if rows, cols := R.Dims(); rows != 3 || cols != 3 {
			return nil, newShapeError("a 3x3 rotation matrix", R)
		}
		return TrLogTwist(R, false)
	}
	return nil, newRepresentationError(representation)
}

// X2R converts a minimal 3-vector rotation representation to an SO(3)
// matrix.
func X2R(r []float64, representation Representation) (*mat.Dense, error) {
	if len(r) != 3 {
		return nil, newLengthError("a representation 3-vector", len(r))
	}
	if order, ok := representation.order(); ok {
		return RPY2R(r, Radians, order)
	}
	switch representation {
	case RepEul:
		return Eul2R(r, Radians)
	case RepExp:
		return Exp2R(r3.Vector{X: r[0], Y: r[1], Z: r[2]}), nil
	}
	return nil, newRepresentationError(representation)
}

// Tr2X converts an SE(3) matrix to a 6-vector analytic representation, the
// translation followed by the minimal rotation representation.
func Tr2X(T mat.Matrix, representation Representation) ([]float64, error) {
	R, t, err := Tr2RT(T)
	if err != nil {
		return nil, err
	}
	r, err := R2X(R, representation)
	if err != nil {
		return nil, err
	}
	return append([]float64{t.X, t.Y, t.Z}, r...), nil
}

// X2Tr converts a 6-vector analytic representation back to an SE(3) matrix.
func X2Tr(x []float64, representation Representation) (*mat.Dense, error) {
	if len(x) != 6 {
		return nil, newLengthError("an analytic 6-vector", len(x))
	}
	R, err := X2R(x[3:], representation)
	if err != nil {
		return nil, err
	}
	return RT2Tr(R, r3.Vector{X: x[0], Y: x[1], Z: x[2]})
}
