package spatialmath

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	errNotSO3 = errors.New("matrix is not a valid member of SO(3)")
	errNotSE3 = errors.New("matrix is not a valid member of SE(3)")
)

func newShapeError(want string, m mat.Matrix) error {
	rows, cols := m.Dims()
	return errors.Errorf("expected %s, got a %dx%d matrix", want, rows, cols)
}

func newLengthError(want string, n int) error {
	return errors.Errorf("expected %s, got length %d", want, n)
}

func newRepresentationError(r Representation) error {
	return errors.Errorf("unknown representation %d", int(r))
}
