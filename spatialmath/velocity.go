package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Tr2Jac computes the 6x6 Jacobian that maps spatial velocity between the
// two frames related by an SE(3) matrix. It is block-diagonal with the
// rotation block repeated.
func Tr2Jac(T mat.Matrix) (*mat.Dense, error) {
	if !IsHom(T, false, DefaultTol) {
		return nil, newShapeError("a 4x4 transformation matrix", T)
	}
	R := t2r(T)
	J := mat.NewDense(6, 6, nil)
	setBlock(J, 0, 0, R)
	setBlock(J, 3, 3, R)
	return J, nil
}

// Tr2Adjoint computes the adjoint matrix of an SO(3) or SE(3) matrix. For
// SO(3) it is block-diagonal with the rotation repeated; for SE(3) the
// upper-right block couples rotation into translation via the skew of the
// translation.
func Tr2Adjoint(T mat.Matrix) (*mat.Dense, error) {
	rows, cols := T.Dims()
	switch {
	case rows == 3 && cols == 3:
		Ad := mat.NewDense(6, 6, nil)
		setBlock(Ad, 0, 0, T)
		setBlock(Ad, 3, 3, T)
		return Ad, nil
	case rows == 4 && cols == 4:
		R, t, err := Tr2RT(T)
		if err != nil {
			return nil, err
		}
		var skR mat.Dense
		skR.Mul(Skew(t), R)
		Ad := mat.NewDense(6, 6, nil)
		setBlock(Ad, 0, 0, R)
		setBlock(Ad, 0, 3, &skR)
		setBlock(Ad, 3, 3, R)
		return Ad, nil
	}
	return nil, newShapeError("a 3x3 or 4x4 matrix", T)
}

// Eul2Jac computes the 3x3 Jacobian that maps ZYZ Euler angle rates to
// angular velocity at the operating point [phi, theta, psi].
func Eul2Jac(angles []float64) (*mat.Dense, error) {
	if len(angles) != 3 {
		return nil, newLengthError("a ZYZ Euler 3-vector", len(angles))
	}
	phi, theta := angles[0], angles[1]
	cphi, sphi := math.Cos(phi), math.Sin(phi)
	ctheta, stheta := math.Cos(theta), math.Sin(theta)
	return mat.NewDense(3, 3, []float64{
		0, -sphi, cphi * stheta,
		0, cphi, sphi * stheta,
		1, 0, ctheta,
	}), nil
}

// RPY2Jac computes the 3x3 Jacobian that maps roll-pitch-yaw angle rates to
// angular velocity at the operating point [roll, pitch, yaw] for the given
// axis order.
func RPY2Jac(angles []float64, order RotationOrder) (*mat.Dense, error) {
	if len(angles) != 3 {
		return nil, newLengthError("a roll-pitch-yaw 3-vector", len(angles))
	}
	pitch, yaw := angles[1], angles[2]
	cp, sp := math.Cos(pitch), math.Sin(pitch)
	cy, sy := math.Cos(yaw), math.Sin(yaw)
	switch order {
	case OrderXYZ:
		return mat.NewDense(3, 3, []float64{
			sp, 0, 1,
			-cp * sy, cy, 0,
			cp * cy, sy, 0,
		}), nil
	case OrderYXZ:
		return mat.NewDense(3, 3, []float64{
			cp * sy, cy, 0,
			-sp, 0, 1,
			cp * cy, -sy, 0,
		}), nil
	default:
		return mat.NewDense(3, 3, []float64{
			cp * cy, -sy, 0,
			cp * sy, cy, 0,
			-sp, 0, 1,
		}), nil
	}
}

// Exp2Jac computes the 3x3 Jacobian that maps exponential coordinate rates
// to angular velocity at the operating point v. The zero vector gives the
// identity.
func Exp2Jac(v r3.Vector) *mat.Dense {
	theta := v.Norm()
	if theta < 10*floatEps {
		return eye(3)
	}
	sk := Skew(v)
	var sk2 mat.Dense
	sk2.Mul(sk, sk)
	E := eye(3)
	var term mat.Dense
	term.Scale((1-math.Cos(theta))/(theta*theta), sk)
	E.Add(E, &term)
	term.Scale((theta-math.Sin(theta))/(theta*theta*theta), &sk2)
	E.Add(E, &term)
	return E
}

// RotVelXform computes the transform between angular velocity and the rate
// of change of a minimal rotation representation, at the operating point
// gamma. The forward map takes representation rates to angular velocity;
// with inverse the other direction. With full the result is a 6x6 matrix
// acting on spatial velocity, with identity in the translational block.
// Near the origin of exponential coordinates the map degenerates to the
// identity rather than dividing by a vanishing angle. The inverse map is
// singular at the gimbal-lock pitch for the angle representations.
func RotVelXform(gamma []float64, inverse, full bool, representation Representation) (*mat.Dense, error) {
	if len(gamma) != 3 {
		return nil, newLengthError("a representation 3-vector", len(gamma))
	}
	var A *mat.Dense
	switch representation {
	case RepRPYXYZ:
		beta, g := gamma[1], gamma[2]
		cb, sb := math.Cos(beta), math.Sin(beta)
		cg, sg := math.Cos(g), math.Sin(g)
		if !inverse {
			A = mat.NewDense(3, 3, []float64{
				sb, 0, 1,
				-sg * cb, cg, 0,
				cb * cg, sg, 0,
			})
		} else {
			tb := math.Tan(beta)
			A = mat.NewDense(3, 3, []float64{
				0, -sg / cb, cg / cb,
				0, cg, sg,
				1, sg * tb, -cg * tb,
			})
		}
	case RepRPYZYX:
		beta, g := gamma[1], gamma[2]
		cb, sb := math.Cos(beta), math.Sin(beta)
		cg, sg := math.Cos(g), math.Sin(g)
		if !inverse {
			A = mat.NewDense(3, 3, []float64{
				cb * cg, -sg, 0,
				sg * cb, cg, 0,
				-sb, 0, 1,
			})
		} else {
			tb := math.Tan(beta)
			A = mat.NewDense(3, 3, []float64{
				cg / cb, sg / cb, 0,
				-sg, cg, 0,
				cg * tb, sg * tb, 1,
			})
		}
	case RepRPYYXZ:
		beta, g := gamma[1], gamma[2]
		cb, sb := math.Cos(beta), math.Sin(beta)
		cg, sg := math.Cos(g), math.Sin(g)
		if !inverse {
			A = mat.NewDense(3, 3, []float64{
				sg * cb, cg, 0,
				-sb, 0, 1,
				cb * cg, -sg, 0,
			})
		} else {
			tb := math.Tan(beta)
			A = mat.NewDense(3, 3, []float64{
				sg / cb, 0, cg / cb,
				cg, 0, -sg,
				sg * tb, 1, cg * tb,
			})
		}
	case RepEul:
		phi, theta := gamma[0], gamma[1]
		cphi, sphi := math.Cos(phi), math.Sin(phi)
		ctheta, stheta := math.Cos(theta), math.Sin(theta)
		if !inverse {
			A = mat.NewDense(3, 3, []float64{
				0, -sphi, stheta * cphi,
				0, cphi, sphi * stheta,
				1, 0, ctheta,
			})
		} else {
			ttheta := math.Tan(theta)
			A = mat.NewDense(3, 3, []float64{
				-cphi / ttheta, -sphi / ttheta, 1,
				-sphi, cphi, 0,
				cphi / stheta, sphi / stheta, 0,
			})
		}
	case RepExp:
		v := r3.Vector{X: gamma[0], Y: gamma[1], Z: gamma[2]}
		theta := v.Norm()
		if theta < 10*floatEps {
			A = eye(3)
			break
		}
		sk := Skew(v)
		var sk2 mat.Dense
		sk2.Mul(sk, sk)
		A = eye(3)
		var term mat.Dense
		if !inverse {
			term.Scale((1-math.Cos(theta))/(theta*theta), sk)
			A.Add(A, &term)
			term.Scale((theta-math.Sin(theta))/(theta*theta*theta), &sk2)
			A.Add(A, &term)
		} else {
			term.Scale(-0.5, sk)
			A.Add(A, &term)
			term.Scale((1-(theta/2)*math.Sin(theta)/(1-math.Cos(theta)))/(theta*theta), &sk2)
			A.Add(A, &term)
		}
	default:
		return nil, newRepresentationError(representation)
	}
	if full {
		return blockDiagIdentity(A), nil
	}
	return A, nil
}

// RotVelXformInvDot computes the time derivative of the inverse
// transformation of RotVelXform, at the operating point gamma with rates
// gammaD. Used to map spatial acceleration to the second derivative of the
// representation.
func RotVelXformInvDot(gamma, gammaD []float64, full bool, representation Representation) (*mat.Dense, error) {
	if len(gamma) != 3 {
		return nil, newLengthError("a representation 3-vector", len(gamma))
	}
	if len(gammaD) != 3 {
		return nil, newLengthError("a rate 3-vector", len(gammaD))
	}
	var Ad *mat.Dense
	switch representation {
	case RepRPYXYZ:
		beta, g := gamma[1], gamma[2]
		bd, gd := gammaD[1], gammaD[2]
		cb, sb := math.Cos(beta), math.Sin(beta)
		cg, sg := math.Cos(g), math.Sin(g)
		tb := sb / cb
		Ad = mat.NewDense(3, 3, []float64{
			0, -(bd*sb*sg/cb + gd*cg) / cb, (bd*sb*cg/cb - gd*sg) / cb,
			0, -gd * sg, gd * cg,
			0, bd*sg/(cb*cb) + gd*cg*tb, -bd*cg/(cb*cb) + gd*sg*tb,
		})
	case RepRPYZYX:
		beta, g := gamma[1], gamma[2]
		bd, gd := gammaD[1], gammaD[2]
		cb, sb := math.Cos(beta), math.Sin(beta)
		cg, sg := math.Cos(g), math.Sin(g)
		tb := sb / cb
		Ad = mat.NewDense(3, 3, []float64{
			(bd*sb*cg/cb - gd*sg) / cb, (bd*sb*sg/cb + gd*cg) / cb, 0,
			-gd * cg, -gd * sg, 0,
			bd*cg/(cb*cb) - gd*sg*tb, bd*sg/(cb*cb) + gd*cg*tb, 0,
		})
	case RepRPYYXZ:
		beta, g := gamma[1], gamma[2]
		bd, gd := gammaD[1], gammaD[2]
		cb, sb := math.Cos(beta), math.Sin(beta)
		cg, sg := math.Cos(g), math.Sin(g)
		tb := sb / cb
		Ad = mat.NewDense(3, 3, []float64{
			(bd*sb*sg/cb + gd*cg) / cb, 0, (bd*sb*cg/cb - gd*sg) / cb,
			-gd * sg, 0, -gd * cg,
			bd*sg/(cb*cb) + gd*cg*tb, 0, bd*cg/(cb*cb) - gd*sg*tb,
		})
	case RepEul:
		phi, theta := gamma[0], gamma[1]
		pd, td := gammaD[0], gammaD[1]
		cphi, sphi := math.Cos(phi), math.Sin(phi)
		ctheta, stheta := math.Cos(theta), math.Sin(theta)
		cot := ctheta / stheta
		Ad = mat.NewDense(3, 3, []float64{
			pd*sphi*cot + td*cphi/(stheta*stheta), -pd*cphi*cot + td*sphi/(stheta*stheta), 0,
			-pd * cphi, -pd * sphi, 0,
			-(pd*sphi + td*cphi*cot) / stheta, (pd*cphi - td*sphi*cot) / stheta, 0,
		})
	case RepExp:
		v := r3.Vector{X: gamma[0], Y: gamma[1], Z: gamma[2]}
		vd := r3.Vector{X: gammaD[0], Y: gammaD[1], Z: gammaD[2]}
		theta := v.Norm()
		skd := Skew(vd)
		if theta < 10*floatEps {
			Ad = mat.NewDense(3, 3, nil)
			Ad.Scale(-0.5, skd)
			break
		}
		sk := Skew(v)
		thetaDot := v.Dot(vd) / theta
		// f(theta) = 1 - (theta/2) cot(theta/2), so Theta = f/theta^2
		half := theta / 2
		cot := math.Cos(half) / math.Sin(half)
		f := 1 - half*cot
		fDash := -cot/2 + (theta/4)/(math.Sin(half)*math.Sin(half))
		Theta := f / (theta * theta)
		ThetaDot := thetaDot * (fDash/(theta*theta) - 2*f/(theta*theta*theta))

		var sym, t1, t2, sk2 mat.Dense
		t1.Mul(sk, skd)
		t2.Mul(skd, sk)
		sym.Add(&t1, &t2)
		sk2.Mul(sk, sk)

		Ad = mat.NewDense(3, 3, nil)
		Ad.Scale(-0.5, skd)
		var term mat.Dense
		term.Scale(Theta, &sym)
		Ad.Add(Ad, &term)
		term.Scale(ThetaDot, &sk2)
		Ad.Add(Ad, &term)
	default:
		return nil, newRepresentationError(representation)
	}
	if full {
		return blockDiagIdentity(Ad), nil
	}
	return Ad, nil
}

// blockDiagIdentity embeds a 3x3 block into a 6x6 matrix with identity in
// the translational block.
func blockDiagIdentity(A mat.Matrix) *mat.Dense {
	out := mat.NewDense(6, 6, nil)
	for i := 0; i < 3; i++ {
		out.Set(i, i, 1)
	}
	setBlock(out, 3, 3, A)
	return out
}

// Tr2Delta approximates the differential motion from pose T0 to pose T1,
// expressed in the T0 frame, as a 6-vector [dx dy dz dRx dRy dRz]. With T1
// nil the motion is from the world frame to T0. Valid only for small
// displacements.
func Tr2Delta(T0, T1 mat.Matrix) ([]float64, error) {
	if !IsHom(T0, false, DefaultTol) {
		return nil, newShapeError("a 4x4 transformation matrix", T0)
	}
	var Td mat.Matrix
	if T1 == nil {
		Td = T0
	} else {
		if !IsHom(T1, false, DefaultTol) {
			return nil, newShapeError("a 4x4 transformation matrix", T1)
		}
		inv, err := TrInv(T0)
		if err != nil {
			return nil, err
		}
		Td = mul(inv, T1)
	}
	t := translOf(Td)
	return []float64{
		t.X, t.Y, t.Z,
		Td.At(2, 1), Td.At(0, 2), Td.At(1, 0),
	}, nil
}

// Delta2Tr converts a differential motion 6-vector back to an SE(3) matrix,
// to first order.
func Delta2Tr(delta []float64) (*mat.Dense, error) {
	S, err := SkewA(delta)
	if err != nil {
		return nil, err
	}
	T := eye(4)
	T.Add(T, S)
	return T, nil
}
