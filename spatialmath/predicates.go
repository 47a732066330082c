package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// floatEps is the machine epsilon for float64.
var floatEps = math.Nextafter(1, 2) - 1

// DefaultTol is the default tolerance for the validity predicates, in
// multiples of machine epsilon.
const DefaultTol = 100

// IsHom reports whether T is an SE(3) matrix. Without check only the shape
// is tested; with check the rotation block must be orthonormal within tol
// machine-epsilon multiples and the bottom row exactly [0 0 0 1]. It never
// errors.
func IsHom(T mat.Matrix, check bool, tol float64) bool {
	if rows, cols := T.Dims(); rows != 4 || cols != 4 {
		return false
	}
	if !check {
		return true
	}
	if T.At(3, 0) != 0 || T.At(3, 1) != 0 || T.At(3, 2) != 0 || T.At(3, 3) != 1 {
		return false
	}
	return IsR(t2r(T), tol)
}

// IsRot reports whether R is an SO(3) matrix. Without check only the shape
// is tested; with check orthonormality within tol machine-epsilon
// multiples as well. It never errors.
func IsRot(R mat.Matrix, check bool, tol float64) bool {
	if rows, cols := R.Dims(); rows != 3 || cols != 3 {
		return false
	}
	return !check || IsR(R, tol)
}

// IsR reports whether R is orthogonal with determinant +1 within tol
// machine-epsilon multiples.
func IsR(R mat.Matrix, tol float64) bool {
	rows, _ := R.Dims()
	var rrt mat.Dense
	rrt.Mul(R, R.T())
	var diff mat.Dense
	diff.Sub(&rrt, eye(rows))
	return mat.Norm(&diff, 2) < tol*floatEps && mat.Det(R) > 0
}

// IsSkew reports whether S is a 3x3 skew-symmetric matrix within tol
// machine-epsilon multiples.
func IsSkew(S mat.Matrix, tol float64) bool {
	if rows, cols := S.Dims(); rows != 3 || cols != 3 {
		return false
	}
	var sum mat.Dense
	sum.Add(S, S.T())
	return mat.Norm(&sum, 2) < tol*floatEps
}

// IsSkewA reports whether S is a 4x4 augmented skew matrix: skew-symmetric
// top-left block and zero bottom row.
func IsSkewA(S mat.Matrix, tol float64) bool {
	if rows, cols := S.Dims(); rows != 4 || cols != 4 {
		return false
	}
	for j := 0; j < 4; j++ {
		if math.Abs(S.At(3, j)) > tol*floatEps {
			return false
		}
	}
	return IsSkew(t2r(S), tol)
}

// IsEye reports whether M is an identity matrix within tol machine-epsilon
// multiples.
func IsEye(M mat.Matrix, tol float64) bool {
	rows, cols := M.Dims()
	if rows != cols {
		return false
	}
	var diff mat.Dense
	diff.Sub(M, eye(rows))
	return mat.Norm(&diff, 2) < tol*floatEps
}

// IsUnitVec reports whether v has unit norm within tol machine-epsilon
// multiples.
func IsUnitVec(v r3.Vector, tol float64) bool {
	return floats.EqualWithinAbs(v.Norm(), 1, tol*floatEps)
}

// IsZeroVec reports whether v is the zero vector within tol machine-epsilon
// multiples.
func IsZeroVec(v r3.Vector, tol float64) bool {
	return v.Norm() < tol*floatEps
}

// IsUnitTwist reports whether the twist 6-vector [v w] is a unit twist:
// either w is a unit vector, or w is zero and v is a unit vector.
func IsUnitTwist(tw []float64, tol float64) bool {
	if len(tw) != 6 {
		return false
	}
	v := r3.Vector{X: tw[0], Y: tw[1], Z: tw[2]}
	w := r3.Vector{X: tw[3], Y: tw[4], Z: tw[5]}
	if IsUnitVec(w, tol) {
		return true
	}
	return IsZeroVec(w, tol) && IsUnitVec(v, tol)
}
