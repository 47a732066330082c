package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestSkewVex(t *testing.T) {
	v := r3.Vector{X: 1, Y: 2, Z: 3}
	S := Skew(v)

	// Skew(v) u is the cross product v x u
	u := r3.Vector{X: -2, Y: 0.5, Z: 4}
	got := matVec3(S, u)
	want := v.Cross(u)
	test.That(t, got.X, test.ShouldAlmostEqual, want.X, 1e-12)
	test.That(t, got.Y, test.ShouldAlmostEqual, want.Y, 1e-12)
	test.That(t, got.Z, test.ShouldAlmostEqual, want.Z, 1e-12)

	back, err := Vex(S)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back, test.ShouldResemble, v)

	_, err = Vex(eye(4))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSkewAVexA(t *testing.T) {
	tw := []float64{1, 2, 3, 4, 5, 6}
	S, err := SkewA(tw)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, IsSkewA(S, DefaultTol), test.ShouldBeTrue)

	back, err := VexA(S)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back, test.ShouldResemble, tw)

	_, err = SkewA([]float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "length 3")
}
