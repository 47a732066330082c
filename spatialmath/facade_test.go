package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestR2XRoundTrip(t *testing.T) {
	R := mul(RotZ(0.5, Radians), RotY(-0.4, Radians), RotX(0.3, Radians))
	for _, rep := range []Representation{RepRPYXYZ, RepRPYZYX, RepRPYYXZ, RepEul, RepExp} {
		x, err := R2X(R, rep)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(x), test.ShouldEqual, 3)

		back, err := X2R(x, rep)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, mat.EqualApprox(R, back, 1e-10), test.ShouldBeTrue)
	}
}

func TestTr2XRoundTrip(t *testing.T) {
	T := TRotY(0.6, Radians, r3.Vector{X: 1, Y: -2, Z: 3})
	for _, rep := range []Representation{RepRPYZYX, RepEul, RepExp} {
		x, err := Tr2X(T, rep)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(x), test.ShouldEqual, 6)
		test.That(t, x[0], test.ShouldAlmostEqual, 1, 1e-12)
		test.That(t, x[1], test.ShouldAlmostEqual, -2, 1e-12)
		test.That(t, x[2], test.ShouldAlmostEqual, 3, 1e-12)

		back, err := X2Tr(x, rep)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, mat.EqualApprox(T, back, 1e-10), test.ShouldBeTrue)
	}
}

func TestFacadeBadArgs(t *testing.T) {
	_, err := X2R([]float64{1, 2}, RepEul)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = X2Tr([]float64{1, 2, 3}, RepEul)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = Tr2X(eye(3), RepEul)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParseRepresentation(t *testing.T) {
	for s, want := range map[string]Representation{
		"rpy/xyz": RepRPYXYZ, "arm": RepRPYXYZ,
		"rpy/zyx": RepRPYZYX, "vehicle": RepRPYZYX,
		"rpy/yxz": RepRPYYXZ, "camera": RepRPYYXZ,
		"eul": RepEul, "exp": RepExp,
	} {
		got, err := ParseRepresentation(s)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldEqual, want)
	}
	_, err := ParseRepresentation("quaternion")
	test.That(t, err, test.ShouldNotBeNil)

	for s, want := range map[string]RotationOrder{
		"zyx": OrderZYX, "vehicle": OrderZYX,
		"xyz": OrderXYZ, "arm": OrderXYZ,
		"yxz": OrderYXZ, "camera": OrderYXZ,
	} {
		got, err := ParseRotationOrder(s)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, got, test.ShouldEqual, want)
	}
	_, err = ParseRotationOrder("zxz")
	test.That(t, err, test.ShouldNotBeNil)
}
