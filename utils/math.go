// Package utils contains small angle and numeric helpers shared by the
// spatial math packages.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Clamp limits value to the interval [min, max].
func Clamp(value, min, max float64) float64 {
	switch {
	case value < min:
		return min
	case value > max:
		return max
	}
	return value
}

// AngNorm normalizes an angle in radians to (-pi, pi].
func AngNorm(ang float64) float64 {
	ang = math.Mod(ang, 2*math.Pi)
	switch {
	case ang <= -math.Pi:
		ang += 2 * math.Pi
	case ang > math.Pi:
		ang -= 2 * math.Pi
	}
	return ang
}
