package spatialmath

import "github.com/armkit/spatial/utils"

// AngleUnit selects the unit of the angle arguments and results of a call.
type AngleUnit int

const (
	// Radians is the conventional unit for all angles.
	Radians AngleUnit = iota
	// Degrees marks angles given or wanted in degrees.
	Degrees
)

// ToRadians converts a in this unit to radians.
func (u AngleUnit) ToRadians(a float64) float64 {
	if u == Degrees {
		return utils.DegToRad(a)
	}
	return a
}

// FromRadians converts a in radians to this unit.
func (u AngleUnit) FromRadians(a float64) float64 {
	if u == Degrees {
		return utils.RadToDeg(a)
	}
	return a
}

func (u AngleUnit) String() string {
	if u == Degrees {
		return "deg"
	}
	return "rad"
}
