package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// TrInterp interpolates between two poses. The rotation is spherically
// interpolated via unit quaternions along the shorter arc and the
// translation linearly. start may be nil, meaning the identity pose. Both
// arguments must be the same shape, SO(3) or SE(3). s must lie in [0, 1].
func TrInterp(start, end mat.Matrix, s float64) (*mat.Dense, error) {
	if s < 0 || s > 1 {
		return nil, errors.Errorf("interpolation fraction %v outside [0, 1]", s)
	}
	rows, cols := end.Dims()
	switch {
	case rows == 4 && cols == 4:
		q1 := quatIdentity()
		p0 := r3.Vector{}
		if start != nil {
			if r, c := start.Dims(); r != 4 || c != 4 {
				return nil, newShapeError("a 4x4 transformation matrix", start)
			}
			var err error
			if q1, err = R2Q(t2r(start), false); err != nil {
				return nil, err
			}
			p0 = translOf(start)
		}
		q2, err := R2Q(t2r(end), false)
		if err != nil {
			return nil, err
		}
		p1 := translOf(end)
		R := Q2R(QSlerp(q1, q2, s))
		p := p0.Mul(1 - s).Add(p1.Mul(s))
		return RT2Tr(R, p)
	case rows == 3 && cols == 3:
		q1 := quatIdentity()
		if start != nil {
			if r, c := start.Dims(); r != 3 || c != 3 {
				return nil, newShapeError("a 3x3 rotation matrix", start)
			}
			var err error
			if q1, err = R2Q(start, false); err != nil {
				return nil, err
			}
		}
		q2, err := R2Q(end, false)
		if err != nil {
			return nil, err
		}
		return Q2R(QSlerp(q1, q2, s)), nil
	}
	return nil, newShapeError("a 3x3 or 4x4 matrix", end)
}

// TrNorm normalizes an SO(3) or SE(3) matrix so that its rotation block is
// orthonormal again, correcting accumulated roundoff from chained
// multiplications. The approach direction (third column) is preserved
// exactly; any translation is carried over unchanged.
func TrNorm(T mat.Matrix) (*mat.Dense, error) {
	rows, cols := T.Dims()
	switch {
	case rows == 4 && cols == 4:
		R, err := trNormR(t2r(T))
		if err != nil {
			return nil, err
		}
		return RT2Tr(R, translOf(T))
	case rows == 3 && cols == 3:
		return trNormR(T)
	}
	return nil, newShapeError("a 3x3 or 4x4 matrix", T)
}

func trNormR(R mat.Matrix) (*mat.Dense, error) {
	o := r3.Vector{X: R.At(0, 1), Y: R.At(1, 1), Z: R.At(2, 1)}
	a := r3.Vector{X: R.At(0, 2), Y: R.At(1, 2), Z: R.At(2, 2)}
	return OA2R(o, a)
}

// TrInv inverts an SE(3) matrix using the group structure, transposing the
// rotation block instead of a general matrix inverse.
func TrInv(T mat.Matrix) (*mat.Dense, error) {
	if rows, cols := T.Dims(); rows != 4 || cols != 4 {
		return nil, newShapeError("a 4x4 transformation matrix", T)
	}
	R := t2r(T)
	Rt := mat.DenseCopyOf(R.T())
	t := matVec3(Rt, translOf(T)).Mul(-1)
	return RT2Tr(Rt, t)
}
