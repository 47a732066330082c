package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// eye returns the n x n identity matrix.
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// RotX returns the SO(3) matrix for a rotation of theta about the X-axis.
func RotX(theta float64, unit AngleUnit) *mat.Dense {
	theta = unit.ToRadians(theta)
	ct, st := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, ct, -st,
		0, st, ct,
	})
}

// RotY returns the SO(3) matrix for a rotation of theta about the Y-axis.
func RotY(theta float64, unit AngleUnit) *mat.Dense {
	theta = unit.ToRadians(theta)
	ct, st := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		ct, 0, st,
		0, 1, 0,
		-st, 0, ct,
	})
}

// RotZ returns the SO(3) matrix for a rotation of theta about the Z-axis.
func RotZ(theta float64, unit AngleUnit) *mat.Dense {
	theta = unit.ToRadians(theta)
	ct, st := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		ct, -st, 0,
		st, ct, 0,
		0, 0, 1,
	})
}

// TRotX returns the SE(3) matrix for a rotation of theta about the X-axis,
// with zero translation unless one is supplied.
func TRotX(theta float64, unit AngleUnit, translation ...r3.Vector) *mat.Dense {
	return trot(RotX(theta, unit), translation)
}

// TRotY returns the SE(3) matrix for a rotation of theta about the Y-axis,
// with zero translation unless one is supplied.
func TRotY(theta float64, unit AngleUnit, translation ...r3.Vector) *mat.Dense {
	return trot(RotY(theta, unit), translation)
}

// TRotZ returns the SE(3) matrix for a rotation of theta about the Z-axis,
// with zero translation unless one is supplied.
func TRotZ(theta float64, unit AngleUnit, translation ...r3.Vector) *mat.Dense {
	return trot(RotZ(theta, unit), translation)
}

func trot(r *mat.Dense, translation []r3.Vector) *mat.Dense {
	T := r2t(r)
	if len(translation) > 0 {
		setTranslation(T, translation[0])
	}
	return T
}

// Transl builds a pure-translation SE(3) matrix from three coordinates.
// The classic transl overload is split into Transl, TranslVec and TranslOf
// so that each behavior has an explicit name.
func Transl(x, y, z float64) *mat.Dense {
	return TranslVec(r3.Vector{X: x, Y: y, Z: z})
}

// TranslVec builds a pure-translation SE(3) matrix from a 3-vector.
func TranslVec(t r3.Vector) *mat.Dense {
	T := eye(4)
	setTranslation(T, t)
	return T
}

// TranslOf extracts the translation column of an SE(3) matrix.
func TranslOf(T mat.Matrix) (r3.Vector, error) {
	if rows, cols := T.Dims(); rows != 4 || cols != 4 {
		return r3.Vector{}, newShapeError("a 4x4 transformation matrix", T)
	}
	return translOf(T), nil
}

// R2T embeds an SO(3) matrix into an SE(3) matrix with zero translation.
func R2T(R mat.Matrix) (*mat.Dense, error) {
	if rows, cols := R.Dims(); rows != 3 || cols != 3 {
		return nil, newShapeError("a 3x3 rotation matrix", R)
	}
	return r2t(R), nil
}

// T2R extracts the rotation block of an SE(3) matrix.
func T2R(T mat.Matrix) (*mat.Dense, error) {
	if rows, cols := T.Dims(); rows != 4 || cols != 4 {
		return nil, newShapeError("a 4x4 transformation matrix", T)
	}
	return t2r(T), nil
}

// RT2Tr composes a rotation matrix and a translation into an SE(3) matrix.
func RT2Tr(R mat.Matrix, t r3.Vector) (*mat.Dense, error) {
	if rows, cols := R.Dims(); rows != 3 || cols != 3 {
		return nil, newShapeError("a 3x3 rotation matrix", R)
	}
	T := r2t(R)
	setTranslation(T, t)
	return T, nil
}

// Tr2RT splits an SE(3) matrix into its rotation block and translation.
func Tr2RT(T mat.Matrix) (*mat.Dense, r3.Vector, error) {
	if rows, cols := T.Dims(); rows != 4 || cols != 4 {
		return nil, r3.Vector{}, newShapeError("a 4x4 transformation matrix", T)
	}
	return t2r(T), translOf(T), nil
}

func r2t(r mat.Matrix) *mat.Dense {
	T := eye(4)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T.Set(i, j, r.At(i, j))
		}
	}
	return T
}

func t2r(t mat.Matrix) *mat.Dense {
	R := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			R.Set(i, j, t.At(i, j))
		}
	}
	return R
}

func setTranslation(T *mat.Dense, t r3.Vector) {
	T.Set(0, 3, t.X)
	T.Set(1, 3, t.Y)
	T.Set(2, 3, t.Z)
}

func translOf(T mat.Matrix) r3.Vector {
	return r3.Vector{X: T.At(0, 3), Y: T.At(1, 3), Z: T.At(2, 3)}
}

// matVec3 multiplies the top-left 3x3 block of m by a 3-vector.
func matVec3(m mat.Matrix, v r3.Vector) r3.Vector {
	return r3.Vector{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// mul multiplies matrices left to right.
func mul(ms ...mat.Matrix) *mat.Dense {
	out := mat.DenseCopyOf(ms[0])
	for _, m := range ms[1:] {
		var next mat.Dense
		next.Mul(out, m)
		out = &next
	}
	return out
}

// setBlock copies src into dst starting at (row, col).
func setBlock(dst *mat.Dense, row, col int, src mat.Matrix) {
	rows, cols := src.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst.Set(row+i, col+j, src.At(i, j))
		}
	}
}
