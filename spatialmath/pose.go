package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// SO3 is a rotation, a thin value wrapper around an SO(3) matrix. The zero
// value is not usable; construct with one of the NewSO3 functions.
type SO3 struct {
	m *mat.Dense
}

// NewSO3 returns the identity rotation.
func NewSO3() *SO3 {
	return &SO3{m: eye(3)}
}

// NewSO3FromMatrix wraps a matrix after checking it is a valid member of
// SO(3).
func NewSO3FromMatrix(R mat.Matrix) (*SO3, error) {
	if !IsRot(R, true, DefaultTol) {
		return nil, errNotSO3
	}
	return &SO3{m: mat.DenseCopyOf(R)}, nil
}

// NewSO3RotX returns a rotation of theta about the X-axis.
func NewSO3RotX(theta float64, unit AngleUnit) *SO3 {
	return &SO3{m: RotX(theta, unit)}
}

// NewSO3RotY returns a rotation of theta about the Y-axis.
func NewSO3RotY(theta float64, unit AngleUnit) *SO3 {
	return &SO3{m: RotY(theta, unit)}
}

// NewSO3RotZ returns a rotation of theta about the Z-axis.
func NewSO3RotZ(theta float64, unit AngleUnit) *SO3 {
	return &SO3{m: RotZ(theta, unit)}
}

// NewSO3FromRPY returns a rotation built from roll-pitch-yaw angles.
func NewSO3FromRPY(angles []float64, unit AngleUnit, order RotationOrder) (*SO3, error) {
	R, err := RPY2R(angles, unit, order)
	if err != nil {
		return nil, err
	}
	return &SO3{m: R}, nil
}

// NewSO3FromEul returns a rotation built from ZYZ Euler angles.
func NewSO3FromEul(angles []float64, unit AngleUnit) (*SO3, error) {
	R, err := Eul2R(angles, unit)
	if err != nil {
		return nil, err
	}
	return &SO3{m: R}, nil
}

// NewSO3FromAngVec returns a rotation of theta about the axis v.
func NewSO3FromAngVec(theta float64, v r3.Vector, unit AngleUnit) (*SO3, error) {
	R, err := AngVec2R(theta, v, unit)
	if err != nil {
		return nil, err
	}
	return &SO3{m: R}, nil
}

// Matrix returns a copy of the underlying SO(3) matrix.
func (r *SO3) Matrix() *mat.Dense {
	return mat.DenseCopyOf(r.m)
}

// Mul composes two rotations.
func (r *SO3) Mul(other *SO3) *SO3 {
	return &SO3{m: mul(r.m, other.m)}
}

// Apply rotates a vector.
func (r *SO3) Apply(v r3.Vector) r3.Vector {
	return matVec3(r.m, v)
}

// Inv returns the inverse rotation, the transpose.
func (r *SO3) Inv() *SO3 {
	return &SO3{m: mat.DenseCopyOf(r.m.T())}
}

// RPY returns the roll-pitch-yaw angles of the rotation.
func (r *SO3) RPY(unit AngleUnit, order RotationOrder) []float64 {
	rpy, _ := Tr2RPY(r.m, unit, order, false)
	return rpy
}

// Eul returns the ZYZ Euler angles of the rotation.
func (r *SO3) Eul(unit AngleUnit) []float64 {
	eul, _ := Tr2Eul(r.m, unit, false, false)
	return eul
}

// AngVec returns the rotation angle and unit axis.
func (r *SO3) AngVec(unit AngleUnit) (float64, r3.Vector) {
	theta, v, _ := Tr2AngVec(r.m, unit, false)
	return theta, v
}

// Log returns the so(3) logarithm as a 3-vector.
func (r *SO3) Log() r3.Vector {
	S, _ := TrLog(r.m, false)
	w, _ := Vex(S)
	return w
}

// Interp interpolates from this rotation toward other, s in [0, 1].
func (r *SO3) Interp(other *SO3, s float64) (*SO3, error) {
	R, err := TrInterp(r.m, other.m, s)
	if err != nil {
		return nil, err
	}
	return &SO3{m: R}, nil
}

func (r *SO3) String() string {
	s, _ := TrString(r.m, RepRPYZYX, Radians)
	return s
}

// SE3 is a rigid-body pose, a thin value wrapper around an SE(3) matrix.
// The zero value is not usable; construct with one of the NewSE3
// functions.
type SE3 struct {
	m *mat.Dense
}

// NewSE3 returns the identity pose.
func NewSE3() *SE3 {
	return &SE3{m: eye(4)}
}

// NewSE3FromMatrix wraps a matrix after checking it is a valid member of
// SE(3).
func NewSE3FromMatrix(T mat.Matrix) (*SE3, error) {
	if !IsHom(T, true, DefaultTol) {
		return nil, errNotSE3
	}
	return &SE3{m: mat.DenseCopyOf(T)}, nil
}

// NewSE3Translation returns a pure-translation pose.
func NewSE3Translation(t r3.Vector) *SE3 {
	return &SE3{m: TranslVec(t)}
}

// NewSE3FromRT composes a rotation and a translation into a pose.
func NewSE3FromRT(r *SO3, t r3.Vector) *SE3 {
	T, _ := RT2Tr(r.m, t)
	return &SE3{m: T}
}

// Matrix returns a copy of the underlying SE(3) matrix.
func (p *SE3) Matrix() *mat.Dense {
	return mat.DenseCopyOf(p.m)
}

// Translation returns the translation component.
func (p *SE3) Translation() r3.Vector {
	return translOf(p.m)
}

// Rotation returns the rotation component.
func (p *SE3) Rotation() *SO3 {
	return &SO3{m: t2r(p.m)}
}

// Mul composes two poses.
func (p *SE3) Mul(other *SE3) *SE3 {
	return &SE3{m: mul(p.m, other.m)}
}

// Apply transforms a point by the pose.
func (p *SE3) Apply(v r3.Vector) r3.Vector {
	return matVec3(p.m, v).Add(translOf(p.m))
}

// Inv returns the inverse pose using the group structure.
func (p *SE3) Inv() *SE3 {
	T, _ := TrInv(p.m)
	return &SE3{m: T}
}

// Interp interpolates from this pose toward other, s in [0, 1].
func (p *SE3) Interp(other *SE3, s float64) (*SE3, error) {
	T, err := TrInterp(p.m, other.m, s)
	if err != nil {
		return nil, err
	}
	return &SE3{m: T}, nil
}

// Delta approximates the differential motion from this pose to other.
func (p *SE3) Delta(other *SE3) []float64 {
	d, _ := Tr2Delta(p.m, other.m)
	return d
}

// Adjoint returns the 6x6 adjoint matrix of the pose.
func (p *SE3) Adjoint() *mat.Dense {
	Ad, _ := Tr2Adjoint(p.m)
	return Ad
}

// Jacobian returns the 6x6 velocity-transform Jacobian of the pose.
func (p *SE3) Jacobian() *mat.Dense {
	J, _ := Tr2Jac(p.m)
	return J
}

// Log returns the se(3) logarithm as a twist 6-vector [v w].
func (p *SE3) Log() []float64 {
	tw, _ := TrLogTwist(p.m, false)
	return tw
}

// Norm returns the pose with its rotation block reorthonormalized.
func (p *SE3) Norm() (*SE3, error) {
	T, err := TrNorm(p.m)
	if err != nil {
		return nil, err
	}
	return &SE3{m: T}, nil
}

func (p *SE3) String() string {
	s, _ := TrString(p.m, RepRPYZYX, Radians)
	return s
}
