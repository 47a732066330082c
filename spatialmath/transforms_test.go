package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestRotations(t *testing.T) {
	test.That(t, mat.EqualApprox(RotX(0, Radians), eye(3), 1e-12), test.ShouldBeTrue)

	R := RotX(math.Pi/2, Radians)
	v := matVec3(R, r3.Vector{Y: 1})
	test.That(t, v.X, test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, v.Y, test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, v.Z, test.ShouldAlmostEqual, 1, 1e-12)

	R = RotY(90, Degrees)
	v = matVec3(R, r3.Vector{Z: 1})
	test.That(t, v.X, test.ShouldAlmostEqual, 1, 1e-12)

	R = RotZ(math.Pi/2, Radians)
	v = matVec3(R, r3.Vector{X: 1})
	test.That(t, v.Y, test.ShouldAlmostEqual, 1, 1e-12)

	// all rotations are proper
	for _, R := range []*mat.Dense{
		RotX(0.3, Radians), RotY(-1.2, Radians), RotZ(2.7, Radians),
	} {
		test.That(t, IsR(R, DefaultTol), test.ShouldBeTrue)
	}
}

func TestTRot(t *testing.T) {
	T := TRotX(0.3, Radians)
	test.That(t, IsHom(T, true, DefaultTol), test.ShouldBeTrue)
	test.That(t, translOf(T), test.ShouldResemble, r3.Vector{})

	T = TRotY(0.3, Radians, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, translOf(T), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	R, err := T2R(T)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(R, RotY(0.3, Radians), 1e-12), test.ShouldBeTrue)

	T = TRotZ(0.3, Radians)
	test.That(t, mat.EqualApprox(t2r(T), RotZ(0.3, Radians), 1e-12), test.ShouldBeTrue)
}

func TestTransl(t *testing.T) {
	T := Transl(1, 2, 3)
	test.That(t, IsHom(T, true, DefaultTol), test.ShouldBeTrue)
	test.That(t, mat.EqualApprox(t2r(T), eye(3), 1e-12), test.ShouldBeTrue)

	v, err := TranslOf(T)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, v, test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})

	_, err = TranslOf(eye(3))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "3x3")
}

func TestConversionsBetweenRAndT(t *testing.T) {
	R := RotX(0.3, Radians)
	T, err := R2T(R)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, T.At(3, 3), test.ShouldEqual, 1)

	R2, err := T2R(T)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(R, R2, 1e-12), test.ShouldBeTrue)

	T2, err := RT2Tr(R, r3.Vector{X: 4, Y: 5, Z: 6})
	test.That(t, err, test.ShouldBeNil)
	R3, tr, err := Tr2RT(T2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mat.EqualApprox(R, R3, 1e-12), test.ShouldBeTrue)
	test.That(t, tr, test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})

	_, err = R2T(eye(4))
	test.That(t, err, test.ShouldNotBeNil)
	_, err = T2R(eye(3))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestMul(t *testing.T) {
	got := mul(RotX(0.1, Radians), RotX(0.2, Radians), RotX(0.3, Radians))
	test.That(t, mat.EqualApprox(got, RotX(0.6, Radians), 1e-12), test.ShouldBeTrue)
}
