package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestTrLogSO3(t *testing.T) {
	S, err := TrLog(RotX(0.3, Radians), true)
	test.That(t, err, test.ShouldBeNil)
	w, err := Vex(S)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, w.X, test.ShouldAlmostEqual, 0.3, 1e-10)
	test.That(t, w.Y, test.ShouldAlmostEqual, 0, 1e-10)
	test.That(t, w.Z, test.ShouldAlmostEqual, 0, 1e-10)

	// identity maps to the zero element
	S, err = TrLog(eye(3), true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(S, mat.NewDense(3, 3, nil), 1e-12), test.ShouldBeTrue)
}

func TestTrLogPi(t *testing.T) {
	// rotation by pi has trace -1 and needs the special branch
	for _, R := range []*mat.Dense{
		RotX(math.Pi, Radians), RotY(math.Pi, Radians), RotZ(math.Pi, Radians),
	} {
		S, err := TrLog(R, true)
		test.That(t, err, test.ShouldBeNil)
		w, err := Vex(S)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, w.Norm(), test.ShouldAlmostEqual, math.Pi, 1e-10)

		back, err := TrExp(S, false)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, mat.EqualApprox(R, back, 1e-10), test.ShouldBeTrue)
	}
}

func TestTrLogSE3(t *testing.T) {
	T := TRotX(0.3, Radians, r3.Vector{X: 1, Y: 2, Z: 3})
	S, err := TrLog(T, true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, IsSkewA(S, DefaultTol), test.ShouldBeTrue)

	back, err := TrExp(S, false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(T, back, 1e-10), test.ShouldBeTrue)

	// pure translation logs to a translation-only element
	T = Transl(1, 2, 3)
	S, err = TrLog(T, true)
	test.That(t, err, test.ShouldBeNil)
	tw, err := VexA(S)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tw, test.ShouldResemble, []float64{1, 2, 3, 0, 0, 0})

	// identity
	S, err = TrLog(eye(4), true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(S, mat.NewDense(4, 4, nil), 1e-12), test.ShouldBeTrue)
}

func TestTrExpSO3(t *testing.T) {
	R, err := TrExp(Skew(r3.Vector{X: 0.3}), true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(R, RotX(0.3, Radians), 1e-12), test.ShouldBeTrue)

	// unit axis with a separate magnitude
	R, err = TrExp(Skew(r3.Vector{X: 1}), true, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(R, RotX(2, Radians), 1e-12), test.ShouldBeTrue)

	// non-unit axis with a magnitude is rejected
	_, err = TrExp(Skew(r3.Vector{X: 3}), true, 2)
	test.That(t, err, test.ShouldNotBeNil)

	// vector form
	R, err = TrExpVec([]float64{0, 0.4, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(R, RotY(0.4, Radians), 1e-12), test.ShouldBeTrue)
}

func TestTrExpSE3(t *testing.T) {
	// revolute unit twist about X
	T, err := TrExpVec([]float64{0, 0, 0, 1, 0, 0}, 0.3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(T, TRotX(0.3, Radians), 1e-12), test.ShouldBeTrue)

	// prismatic unit twist
	T, err = TrExpVec([]float64{1, 0, 0, 0, 0, 0}, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(T, Transl(2, 0, 0), 1e-12), test.ShouldBeTrue)

	// zero magnitude short-circuits to the identity
	T, err = TrExpVec([]float64{0, 0, 0, 1, 0, 0}, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(T, eye(4), 1e-12), test.ShouldBeTrue)

	// zero twist
	T, err = TrExpVec([]float64{0, 0, 0, 0, 0, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(T, eye(4), 1e-12), test.ShouldBeTrue)

	_, err = TrExpVec([]float64{0, 1, 0, 0.5, 0.5, 0}, 1)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "unit twist")
}

func TestLogExpRoundTrip(t *testing.T) {
	T := mul(
		TRotZ(0.5, Radians, r3.Vector{X: 1}),
		TRotY(-0.7, Radians, r3.Vector{Y: -2}),
		TRotX(1.2, Radians, r3.Vector{Z: 0.5}),
	)
	tw, err := TrLogTwist(T, true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(tw), test.ShouldEqual, 6)

	back, err := TrExpVec(tw)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(T, back, 1e-10), test.ShouldBeTrue)
}

func TestRodrigues(t *testing.T) {
	test.That(t, mat.EqualApprox(Rodrigues(r3.Vector{}, 1.5), eye(3), 1e-12), test.ShouldBeTrue)
	R := Rodrigues(r3.Vector{Z: 1}, 0.9)
	test.That(t, mat.EqualApprox(R, RotZ(0.9, Radians), 1e-12), test.ShouldBeTrue)
}
