package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/armkit/spatial/utils"
)

// RPY2R builds an SO(3) matrix from roll-pitch-yaw angles in the given axis
// order. angles is [roll, pitch, yaw].
func RPY2R(angles []float64, unit AngleUnit, order RotationOrder) (*mat.Dense, error) {
	if len(angles) != 3 {
		return nil, newLengthError("a roll-pitch-yaw 3-vector", len(angles))
	}
	roll := unit.ToRadians(angles[0])
	pitch := unit.ToRadians(angles[1])
	yaw := unit.ToRadians(angles[2])
	switch order {
	case OrderXYZ:
		return mul(RotX(yaw, Radians), RotY(pitch, Radians), RotZ(roll, Radians)), nil
	case OrderYXZ:
		return mul(RotY(yaw, Radians), RotX(pitch, Radians), RotZ(roll, Radians)), nil
	default:
		return mul(RotZ(yaw, Radians), RotY(pitch, Radians), RotX(roll, Radians)), nil
	}
}

// RPY2Tr builds an SE(3) matrix with zero translation from roll-pitch-yaw
// angles.
func RPY2Tr(angles []float64, unit AngleUnit, order RotationOrder) (*mat.Dense, error) {
	R, err := RPY2R(angles, unit, order)
	if err != nil {
		return nil, err
	}
	return r2t(R), nil
}

// Eul2R builds an SO(3) matrix from ZYZ Euler angles [phi, theta, psi].
func Eul2R(angles []float64, unit AngleUnit) (*mat.Dense, error) {
	if len(angles) != 3 {
		return nil, newLengthError("a ZYZ Euler 3-vector", len(angles))
	}
	phi := unit.ToRadians(angles[0])
	theta := unit.ToRadians(angles[1])
	psi := unit.ToRadians(angles[2])
	return mul(RotZ(phi, Radians), RotY(theta, Radians), RotZ(psi, Radians)), nil
}

// Eul2Tr builds an SE(3) matrix with zero translation from ZYZ Euler angles.
func Eul2Tr(angles []float64, unit AngleUnit) (*mat.Dense, error) {
	R, err := Eul2R(angles, unit)
	if err != nil {
		return nil, err
	}
	return r2t(R), nil
}

// AngVec2R builds an SO(3) matrix from a rotation angle and axis using
// Rodrigues' formula. The axis need not be a unit vector. A zero axis is
// accepted only with a near-zero angle, in which case the identity is
// returned.
func AngVec2R(theta float64, v r3.Vector, unit AngleUnit) (*mat.Dense, error) {
	theta = unit.ToRadians(theta)
	if v.Norm() < 10*floatEps {
		if math.Abs(theta) < 10*floatEps {
			return eye(3), nil
		}
		return nil, errors.New("rotation axis is zero but angle is not")
	}
	return Rodrigues(v.Normalize(), theta), nil
}

// AngVec2Tr builds an SE(3) matrix with zero translation from a rotation
// angle and axis.
func AngVec2Tr(theta float64, v r3.Vector, unit AngleUnit) (*mat.Dense, error) {
	R, err := AngVec2R(theta, v, unit)
	if err != nil {
		return nil, err
	}
	return r2t(R), nil
}

// Exp2R builds an SO(3) matrix from exponential coordinates, a rotation axis
// scaled by the rotation angle. The zero vector gives the identity.
func Exp2R(w r3.Vector) *mat.Dense {
	theta := w.Norm()
	if theta == 0 {
		return eye(3)
	}
	return Rodrigues(w.Mul(1/theta), theta)
}

// Exp2Tr builds an SE(3) matrix with zero translation from exponential
// coordinates.
func Exp2Tr(w r3.Vector) *mat.Dense {
	return r2t(Exp2R(w))
}

// OA2R builds an SO(3) matrix whose Y- and Z-axes are parallel to the given
// orientation and approach vectors. The vectors need not be unit length or
// orthogonal, but they must not be parallel. Only the approach direction is
// preserved exactly.
func OA2R(o, a r3.Vector) (*mat.Dense, error) {
	n := o.Cross(a)
	if IsZeroVec(n, DefaultTol) {
		return nil, errors.New("orientation and approach vectors are parallel")
	}
	o = a.Cross(n)
	n = n.Normalize()
	o = o.Normalize()
	a = a.Normalize()
	return mat.NewDense(3, 3, []float64{
		n.X, o.X, a.X,
		n.Y, o.Y, a.Y,
		n.Z, o.Z, a.Z,
	}), nil
}

// OA2Tr builds an SE(3) matrix with zero translation from orientation and
// approach vectors.
func OA2Tr(o, a r3.Vector) (*mat.Dense, error) {
	R, err := OA2R(o, a)
	if err != nil {
		return nil, err
	}
	return r2t(R), nil
}

// rotBlock accepts an SO(3) or SE(3) matrix and returns the rotation block,
// optionally validating it.
func rotBlock(T mat.Matrix, check bool) (*mat.Dense, error) {
	rows, cols := T.Dims()
	var R *mat.Dense
	switch {
	case rows == 4 && cols == 4:
		R = t2r(T)
	case rows == 3 && cols == 3:
		R = mat.DenseCopyOf(T)
	default:
		return nil, newShapeError("a 3x3 or 4x4 matrix", T)
	}
	if check && !IsR(R, DefaultTol) {
		return nil, errNotSO3
	}
	return R, nil
}

// Tr2Eul recovers ZYZ Euler angles [phi, theta, psi] from an SO(3) or SE(3)
// matrix. At the theta = 0 singularity phi is set to zero and psi absorbs
// the sum. With flip the first angle lies in the left half-plane, selecting
// the second of the two equivalent solutions.
func Tr2Eul(T mat.Matrix, unit AngleUnit, flip, check bool) ([]float64, error) {
	R, err := rotBlock(T, check)
	if err != nil {
		return nil, err
	}
	eul := make([]float64, 3)
	if math.Abs(R.At(0, 2)) < 10*floatEps && math.Abs(R.At(1, 2)) < 10*floatEps {
		eul[0] = 0
		eul[1] = math.Atan2(R.At(0, 2), R.At(2, 2))
		eul[2] = math.Atan2(R.At(1, 0), R.At(1, 1))
	} else {
		if flip {
			eul[0] = math.Atan2(-R.At(1, 2), -R.At(0, 2))
		} else {
			eul[0] = math.Atan2(R.At(1, 2), R.At(0, 2))
		}
		sp, cp := math.Sin(eul[0]), math.Cos(eul[0])
		eul[1] = math.Atan2(cp*R.At(0, 2)+sp*R.At(1, 2), R.At(2, 2))
		eul[2] = math.Atan2(-sp*R.At(0, 0)+cp*R.At(1, 0), -sp*R.At(0, 1)+cp*R.At(1, 1))
	}
	for i := range eul {
		eul[i] = unit.FromRadians(eul[i])
	}
	return eul, nil
}

// dominant returns the index of the entry with the largest magnitude.
func dominant(entries ...float64) int {
	for i := range entries {
		entries[i] = math.Abs(entries[i])
	}
	return floats.MaxIdx(entries)
}

// Tr2RPY recovers roll-pitch-yaw angles [roll, pitch, yaw] from an SO(3) or
// SE(3) matrix in the given axis order. At the pitch singularity roll is
// set to zero and yaw absorbs the sum. Away from the singularity the pitch
// is computed from the best-conditioned matrix entry so the result stays
// accurate near pitch of plus or minus ninety degrees.
func Tr2RPY(T mat.Matrix, unit AngleUnit, order RotationOrder, check bool) ([]float64, error) {
	R, err := rotBlock(T, check)
	if err != nil {
		return nil, err
	}
	rpy := make([]float64, 3)
	switch order {
	case OrderXYZ:
		if math.Abs(math.Abs(R.At(0, 2))-1) < 10*floatEps {
			rpy[0] = 0
			if R.At(0, 2) > 0 {
				rpy[2] = math.Atan2(R.At(2, 1), R.At(1, 1))
			} else {
				rpy[2] = -math.Atan2(R.At(1, 0), R.At(2, 0))
			}
			rpy[1] = math.Asin(utils.Clamp(R.At(0, 2), -1, 1))
		} else {
			rpy[0] = -math.Atan2(R.At(0, 1), R.At(0, 0))
			rpy[2] = -math.Atan2(R.At(1, 2), R.At(2, 2))
			switch dominant(R.At(0, 0), R.At(0, 1), R.At(1, 2), R.At(2, 2)) {
			case 0:
				rpy[1] = math.Atan(R.At(0, 2) * math.Cos(rpy[0]) / R.At(0, 0))
			case 1:
				rpy[1] = -math.Atan(R.At(0, 2) * math.Sin(rpy[0]) / R.At(0, 1))
			case 2:
				rpy[1] = -math.Atan(R.At(0, 2) * math.Sin(rpy[2]) / R.At(1, 2))
			case 3:
				rpy[1] = math.Atan(R.At(0, 2) * math.Cos(rpy[2]) / R.At(2, 2))
			}
		}
	case OrderYXZ:
		if math.Abs(math.Abs(R.At(1, 2))-1) < 10*floatEps {
			rpy[0] = 0
			if R.At(1, 2) < 0 {
				rpy[2] = -math.Atan2(R.At(2, 0), R.At(0, 0))
			} else {
				rpy[2] = math.Atan2(-R.At(2, 0), -R.At(2, 1))
			}
			rpy[1] = -math.Asin(utils.Clamp(R.At(1, 2), -1, 1))
		} else {
			rpy[0] = math.Atan2(R.At(1, 0), R.At(1, 1))
			rpy[2] = math.Atan2(R.At(0, 2), R.At(2, 2))
			switch dominant(R.At(1, 0), R.At(1, 1), R.At(0, 2), R.At(2, 2)) {
			case 0:
				rpy[1] = -math.Atan(R.At(1, 2) * math.Sin(rpy[0]) / R.At(1, 0))
			case 1:
				rpy[1] = -math.Atan(R.At(1, 2) * math.Cos(rpy[0]) / R.At(1, 1))
			case 2:
				rpy[1] = -math.Atan(R.At(1, 2) * math.Sin(rpy[2]) / R.At(0, 2))
			case 3:
				rpy[1] = -math.Atan(R.At(1, 2) * math.Cos(rpy[2]) / R.At(2, 2))
			}
		}
	default: // OrderZYX
		if math.Abs(math.Abs(R.At(2, 0))-1) < 10*floatEps {
			rpy[0] = 0
			if R.At(2, 0) < 0 {
				rpy[2] = -math.Atan2(R.At(0, 1), R.At(0, 2))
			} else {
				rpy[2] = math.Atan2(-R.At(0, 1), -R.At(0, 2))
			}
			rpy[1] = -math.Asin(utils.Clamp(R.At(2, 0), -1, 1))
		} else {
			rpy[0] = math.Atan2(R.At(2, 1), R.At(2, 2))
			rpy[2] = math.Atan2(R.At(1, 0), R.At(0, 0))
			switch dominant(R.At(0, 0), R.At(1, 0), R.At(2, 1), R.At(2, 2)) {
			case 0:
				rpy[1] = -math.Atan(R.At(2, 0) * math.Cos(rpy[2]) / R.At(0, 0))
			case 1:
				rpy[1] = -math.Atan(R.At(2, 0) * math.Sin(rpy[2]) / R.At(1, 0))
			case 2:
				rpy[1] = -math.Atan(R.At(2, 0) * math.Sin(rpy[0]) / R.At(2, 1))
			case 3:
				rpy[1] = -math.Atan(R.At(2, 0) * math.Cos(rpy[0]) / R.At(2, 2))
			}
		}
	}
	for i := range rpy {
		rpy[i] = unit.FromRadians(rpy[i])
	}
	return rpy, nil
}

// Tr2AngVec recovers the rotation angle and unit axis from an SO(3) or
// SE(3) matrix via the matrix logarithm. The identity gives a zero angle
// and a zero axis.
func Tr2AngVec(T mat.Matrix, unit AngleUnit, check bool) (float64, r3.Vector, error) {
	R, err := rotBlock(T, check)
	if err != nil {
		return 0, r3.Vector{}, err
	}
	S, err := TrLog(R, false)
	if err != nil {
		return 0, r3.Vector{}, err
	}
	v, err := Vex(S)
	if err != nil {
		return 0, r3.Vector{}, err
	}
	if IsZeroVec(v, DefaultTol) {
		return 0, r3.Vector{}, nil
	}
	theta := v.Norm()
	return unit.FromRadians(theta), v.Mul(1 / theta), nil
}
