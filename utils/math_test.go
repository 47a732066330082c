package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRad(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi, 1e-12)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90, 1e-12)
	test.That(t, RadToDeg(DegToRad(37.5)), test.ShouldAlmostEqual, 37.5, 1e-12)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(0.5, -1, 1), test.ShouldEqual, 0.5)
	test.That(t, Clamp(1.5, -1, 1), test.ShouldEqual, 1.0)
	test.That(t, Clamp(-1.5, -1, 1), test.ShouldEqual, -1.0)
}

func TestAngNorm(t *testing.T) {
	test.That(t, AngNorm(0), test.ShouldEqual, 0.0)
	test.That(t, AngNorm(math.Pi), test.ShouldAlmostEqual, math.Pi, 1e-12)
	test.That(t, AngNorm(3*math.Pi), test.ShouldAlmostEqual, math.Pi, 1e-12)
	test.That(t, AngNorm(-3*math.Pi/2), test.ShouldAlmostEqual, math.Pi/2, 1e-12)
	test.That(t, AngNorm(2*math.Pi+0.1), test.ShouldAlmostEqual, 0.1, 1e-12)
}
