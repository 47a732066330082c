package spatialmath

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

func TestQuaternionRoundTrip(t *testing.T) {
	R := mul(RotZ(0.5, Radians), RotY(-0.7, Radians), RotX(1.2, Radians))
	q, err := R2Q(R, true)
	test.That(t, err, test.ShouldBeNil)
	norm := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
	test.That(t, norm, test.ShouldAlmostEqual, 1, 1e-10)

	back := Q2R(q)
	test.That(t, mat.EqualApprox(R, back, 1e-10), test.ShouldBeTrue)

	// q and -q encode the same rotation
	test.That(t, mat.EqualApprox(Q2R(Flip(q)), back, 1e-10), test.ShouldBeTrue)
}

func TestQSlerp(t *testing.T) {
	q1, err := R2Q(RotX(0.2, Radians), false)
	test.That(t, err, test.ShouldBeNil)
	q2, err := R2Q(RotX(1.0, Radians), false)
	test.That(t, err, test.ShouldBeNil)

	// endpoints
	test.That(t, mat.EqualApprox(Q2R(QSlerp(q1, q2, 0)), RotX(0.2, Radians), 1e-10), test.ShouldBeTrue)
	test.That(t, mat.EqualApprox(Q2R(QSlerp(q1, q2, 1)), RotX(1.0, Radians), 1e-10), test.ShouldBeTrue)

	// midpoint bisects the angle
	test.That(t, mat.EqualApprox(Q2R(QSlerp(q1, q2, 0.5)), RotX(0.6, Radians), 1e-10), test.ShouldBeTrue)

	// the shorter arc is taken even when the signs disagree
	mid := QSlerp(q1, Flip(q2), 0.5)
	test.That(t, mat.EqualApprox(Q2R(mid), RotX(0.6, Radians), 1e-10), test.ShouldBeTrue)
}

func TestQ2RNormalizes(t *testing.T) {
	q := quat.Number{Real: 2} // scaled identity
	test.That(t, mat.EqualApprox(Q2R(q), eye(3), 1e-12), test.ShouldBeTrue)
}
