package spatialmath

import "github.com/pkg/errors"

// RotationOrder selects the axis sequence for roll-pitch-yaw angles.
type RotationOrder int

const (
	// OrderZYX rotates by yaw about Z, then pitch about the new Y, then
	// roll about the new X. Convention for a vehicle with the X-axis
	// forward and the Y-axis sideways.
	OrderZYX RotationOrder = iota
	// OrderXYZ rotates by yaw about X, then pitch about the new Y, then
	// roll about the new Z. Convention for a gripper with the Z-axis
	// forward and the Y-axis between the fingers.
	OrderXYZ
	// OrderYXZ rotates by yaw about Y, then pitch about the new X, then
	// roll about the new Z. Convention for a camera with the Z-axis along
	// the optic axis and the X-axis along the pixel rows.
	OrderYXZ
)

// ParseRotationOrder maps an external order string, including the
// "arm"/"vehicle"/"camera" aliases, onto a RotationOrder.
func ParseRotationOrder(s string) (RotationOrder, error) {
	switch s {
	case "zyx", "vehicle":
		return OrderZYX, nil
	case "xyz", "arm":
		return OrderXYZ, nil
	case "yxz", "camera":
		return OrderYXZ, nil
	}
	return 0, errors.Errorf("invalid angle order %q", s)
}

func (o RotationOrder) String() string {
	switch o {
	case OrderXYZ:
		return "xyz"
	case OrderYXZ:
		return "yxz"
	default:
		return "zyx"
	}
}

// Representation selects a minimal 3-vector encoding of rotation.
type Representation int

const (
	// RepRPYXYZ is roll-pitch-yaw angles in XYZ order.
	RepRPYXYZ Representation = iota
	// RepRPYZYX is roll-pitch-yaw angles in ZYX order.
	RepRPYZYX
	// RepRPYYXZ is roll-pitch-yaw angles in YXZ order.
	RepRPYYXZ
	// RepEul is ZYZ Euler angles.
	RepEul
	// RepExp is exponential coordinates, a rotation axis scaled by the
	// rotation angle.
	RepExp
)

// ParseRepresentation maps an external representation string
// ("rpy/xyz", "rpy/zyx", "rpy/yxz", "eul", "exp" or the
// "arm"/"vehicle"/"camera" aliases) onto a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch s {
	case "rpy/xyz", "arm":
		return RepRPYXYZ, nil
	case "rpy/zyx", "vehicle":
		return RepRPYZYX, nil
	case "rpy/yxz", "camera":
		return RepRPYYXZ, nil
	case "eul":
		return RepEul, nil
	case "exp":
		return RepExp, nil
	}
	return 0, errors.Errorf("unknown representation %q", s)
}

func (r Representation) String() string {
	switch r {
	case RepRPYXYZ:
		return "rpy/xyz"
	case RepRPYZYX:
		return "rpy/zyx"
	case RepRPYYXZ:
		return "rpy/yxz"
	case RepEul:
		return "eul"
	case RepExp:
		return "exp"
	}
	return "unknown"
}

// order returns the RPY axis order for an RPY representation.
func (r Representation) order() (RotationOrder, bool) {
	switch r {
	case RepRPYXYZ:
		return OrderXYZ, true
	case RepRPYZYX:
		return OrderZYX, true
	case RepRPYYXZ:
		return OrderYXZ, true
	}
	return 0, false
}
