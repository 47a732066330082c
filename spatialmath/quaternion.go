package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// R2Q converts an SO(3) matrix to a unit quaternion.
func R2Q(R mat.Matrix, check bool) (quat.Number, error) {
	rot, err := rotBlock(R, check)
	if err != nil {
		return quat.Number{}, err
	}
	m := mgl64.Ident4()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, rot.At(i, j))
		}
	}
	q := mgl64.Mat4ToQuat(m)
	return quat.Number{Real: q.W, Imag: q.V.X(), Jmag: q.V.Y(), Kmag: q.V.Z()}, nil
}

// Q2R converts a quaternion to an SO(3) matrix. The quaternion is
// normalized first.
func Q2R(q quat.Number) *mat.Dense {
	m := toMgl(q).Normalize().Mat4()
	R := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.Set(i, j, m.At(i, j))
		}
	}
	return R
}

// QSlerp spherically interpolates between two unit quaternions, taking the
// shorter arc. s=0 gives q1 and s=1 gives q2.
func QSlerp(q1, q2 quat.Number, s float64) quat.Number {
	a, b := toMgl(q1), toMgl(q2)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	q := mgl64.QuatSlerp(a, b, s)
	return quat.Number{Real: q.W, Imag: q.V.X(), Jmag: q.V.Y(), Kmag: q.V.Z()}
}

// Flip negates a quaternion, giving the other representative of the same
// rotation.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

func quatIdentity() quat.Number {
	return quat.Number{Real: 1}
}

func toMgl(q quat.Number) mgl64.Quat {
	return mgl64.Quat{W: q.Real, V: mgl64.Vec3{q.Imag, q.Jmag, q.Kmag}}
}
