package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Rodrigues computes the rotation matrix for a rotation of theta about the
// unit axis w. A zero axis gives the identity.
func Rodrigues(w r3.Vector, theta float64) *mat.Dense {
	if IsZeroVec(w, 10) {
		return eye(3)
	}
	sk := Skew(w)
	var sk2 mat.Dense
	sk2.Mul(sk, sk)
	R := eye(3)
	var term mat.Dense
	term.Scale(math.Sin(theta), sk)
	R.Add(R, &term)
	term.Scale(1-math.Cos(theta), &sk2)
	R.Add(R, &term)
	return R
}

// TrLog computes the matrix logarithm of an SO(3) or SE(3) matrix in closed
// form. For SO(3) the result is a skew-symmetric so(3) matrix; for SE(3) an
// augmented skew se(3) matrix. The rotation angle is recovered in the range
// [0, pi]; at pi the axis sign is chosen from the largest diagonal entry.
func TrLog(T mat.Matrix, check bool) (*mat.Dense, error) {
	rows, cols := T.Dims()
	switch {
	case rows == 4 && cols == 4:
		if check && !IsHom(T, true, DefaultTol) {
			return nil, errNotSE3
		}
		if IsEye(T, DefaultTol) {
			return mat.NewDense(4, 4, nil), nil
		}
		R, t, err := Tr2RT(T)
		if err != nil {
			return nil, err
		}
		if IsEye(R, DefaultTol) {
			// pure translation
			S := mat.NewDense(4, 4, nil)
			setTranslation(S, t)
			return S, nil
		}
		S, err := TrLog(R, false)
		if err != nil {
			return nil, err
		}
		w, err := Vex(S)
		if err != nil {
			return nil, err
		}
		theta := w.Norm()
		// inverse of the left Jacobian-like V operator used by TrExp
		var S2 mat.Dense
		S2.Mul(S, S)
		Ginv := eye(3)
		var term mat.Dense
		term.Scale(-0.5, S)
		Ginv.Add(Ginv, &term)
		term.Scale((1/theta-1/math.Tan(theta/2)/2)/theta, &S2)
		Ginv.Add(Ginv, &term)
		v := matVec3(Ginv, t)
		out := mat.NewDense(4, 4, nil)
		setBlock(out, 0, 0, S)
		setTranslation(out, v)
		return out, nil
	case rows == 3 && cols == 3:
		if check && !IsR(T, DefaultTol) {
			return nil, errNotSO3
		}
		if IsEye(T, DefaultTol) {
			return mat.NewDense(3, 3, nil), nil
		}
		tr := T.At(0, 0) + T.At(1, 1) + T.At(2, 2)
		if math.Abs(tr+1) < 100*floatEps {
			// rotation by pi, axis from the largest diagonal entry
			k := 0
			for i := 1; i < 3; i++ {
				if T.At(i, i) > T.At(k, k) {
					k = i
				}
			}
			mx := T.At(k, k)
			col := r3.Vector{X: T.At(0, k), Y: T.At(1, k), Z: T.At(2, k)}
			switch k {
			case 0:
				col.X++
			case 1:
				col.Y++
			case 2:
				col.Z++
			}
			w := col.Mul(1 / math.Sqrt(2*(1+mx)))
			S := Skew(w.Mul(math.Pi))
			return S, nil
		}
		theta := math.Acos((tr - 1) / 2)
		var skw mat.Dense
		skw.Sub(T, T.T())
		skw.Scale(theta/(2*math.Sin(theta)), &skw)
		return &skw, nil
	}
	return nil, newShapeError("a 3x3 or 4x4 matrix", T)
}

// TrLogTwist computes the matrix logarithm as a vector: a 3-vector for
// SO(3) input or a twist 6-vector [v w] for SE(3) input.
func TrLogTwist(T mat.Matrix, check bool) ([]float64, error) {
	S, err := TrLog(T, check)
	if err != nil {
		return nil, err
	}
	if rows, _ := S.Dims(); rows == 3 {
		w, err := Vex(S)
		if err != nil {
			return nil, err
		}
		return []float64{w.X, w.Y, w.Z}, nil
	}
	return VexA(S)
}

// TrExp computes the matrix exponential of an so(3) or se(3) matrix in
// closed form. With theta the argument must be a unit so(3) element or
// unit twist, scaled by theta before exponentiation.
func TrExp(S mat.Matrix, check bool, theta ...float64) (*mat.Dense, error) {
	rows, cols := S.Dims()
	switch {
	case rows == 4 && cols == 4:
		if check && !IsSkewA(S, DefaultTol) {
			return nil, errors.New("argument must be a valid se(3) element")
		}
		tw, err := VexA(S)
		if err != nil {
			return nil, err
		}
		return trExpTwist(tw, theta)
	case rows == 3 && cols == 3:
		if check && !IsSkew(S, DefaultTol) {
			return nil, errors.New("argument must be a valid so(3) element")
		}
		w, err := Vex(S)
		if err != nil {
			return nil, err
		}
		return trExpSO3(w, theta)
	}
	return nil, newShapeError("a 3x3 or 4x4 matrix", S)
}

// TrExpVec computes the matrix exponential from a vector argument: a
// 3-vector of exponential coordinates gives SO(3), a twist 6-vector gives
// SE(3). With theta the vector must be a unit axis or unit twist.
func TrExpVec(s []float64, theta ...float64) (*mat.Dense, error) {
	switch len(s) {
	case 3:
		return trExpSO3(r3.Vector{X: s[0], Y: s[1], Z: s[2]}, theta)
	case 6:
		return trExpTwist(s, theta)
	}
	return nil, newLengthError("a 3-vector or twist 6-vector", len(s))
}

func trExpSO3(w r3.Vector, theta []float64) (*mat.Dense, error) {
	if len(theta) == 0 {
		th := w.Norm()
		if th == 0 {
			return eye(3), nil
		}
		return Rodrigues(w.Mul(1/th), th), nil
	}
	if !IsUnitVec(w, DefaultTol) {
		return nil, errors.New("axis must be a unit vector when theta is given")
	}
	return Rodrigues(w, theta[0]), nil
}

func trExpTwist(tw []float64, theta []float64) (*mat.Dense, error) {
	if len(tw) != 6 {
		return nil, newLengthError("a twist 6-vector", len(tw))
	}
	v := r3.Vector{X: tw[0], Y: tw[1], Z: tw[2]}
	w := r3.Vector{X: tw[3], Y: tw[4], Z: tw[5]}
	var th float64
	if len(theta) == 0 {
		if v.Norm() == 0 && w.Norm() == 0 {
			return eye(4), nil
		}
		th = w.Norm()
		if th == 0 {
			// pure translation
			return TranslVec(v), nil
		}
		v = v.Mul(1 / th)
		w = w.Mul(1 / th)
	} else {
		th = theta[0]
		if th == 0 {
			return eye(4), nil
		}
		if !IsUnitTwist(tw, DefaultTol) {
			return nil, errors.New("twist must be a unit twist when theta is given")
		}
		if w.Norm() == 0 {
			return TranslVec(v.Mul(th)), nil
		}
	}

	R := Rodrigues(w, th)

	sk := Skew(w)
	var sk2 mat.Dense
	sk2.Mul(sk, sk)
	V := mat.NewDense(3, 3, nil)
	V.Scale(th, eye(3))
	var term mat.Dense
	term.Scale(1-math.Cos(th), sk)
	V.Add(V, &term)
	term.Scale(th-math.Sin(th), &sk2)
	V.Add(V, &term)

	return RT2Tr(R, matVec3(V, v))
}
