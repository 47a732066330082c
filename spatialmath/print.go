package spatialmath

import (
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// TrString formats an SO(3) or SE(3) matrix as a compact single line. The
// translation is printed first for SE(3) input, followed by the orientation
// in the chosen representation. RepExp prints in angle-axis form, with
// "R = nil" for a zero rotation. Degrees are marked with a degree symbol.
func TrString(T mat.Matrix, orient Representation, unit AngleUnit) (string, error) {
	var b strings.Builder
	rows, cols := T.Dims()
	if rows == 4 && cols == 4 {
		t := translOf(T)
		fmt.Fprintf(&b, "t = %s;", vec2s(false, t.X, t.Y, t.Z))
	} else if rows != 3 || cols != 3 {
		return "", newShapeError("a 3x3 or 4x4 matrix", T)
	}

	deg := unit == Degrees
	switch orient {
	case RepEul:
		angles, err := Tr2Eul(T, unit, false, false)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " eul = %s", vec2s(deg, angles...))
	case RepExp:
		theta, v, err := Tr2AngVec(T, unit, false)
		if err != nil {
			return "", err
		}
		if theta == 0 {
			b.WriteString(" R = nil")
		} else {
			th := fmtNum(theta)
			if deg {
				th += "°"
			}
			fmt.Fprintf(&b, " angvec = (%s | %s)", th, vec2s(false, v.X, v.Y, v.Z))
		}
	default:
		order, _ := orient.order()
		angles, err := Tr2RPY(T, unit, order, false)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " %s = %s", orient, vec2s(deg, angles...))
	}
	return b.String(), nil
}

// TrFprint writes the single-line form of T to w, preceded by an optional
// label.
func TrFprint(w io.Writer, T mat.Matrix, label string, orient Representation, unit AngleUnit) error {
	s, err := TrString(T, orient, unit)
	if err != nil {
		return err
	}
	if label != "" {
		s = label + ": " + s
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func vec2s(deg bool, xs ...float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		// flush display noise to zero
		if math.Abs(x) < 1e-6 {
			x = 0
		}
		parts[i] = fmtNum(x)
		if deg {
			parts[i] += "°"
		}
	}
	return strings.Join(parts, ", ")
}

func fmtNum(x float64) string {
	return fmt.Sprintf("%.3g", x)
}
