package momasolver

import "errors"

// ErrNilData is returned when Solve is called with a nil data matrix.
var ErrNilData = errors.New("momasolver: data matrix must not be nil")

// ErrConstraintShape is returned when Su or Sv does not match X's
// corresponding dimension, and by Deflate when u or v does not.
var ErrConstraintShape = errors.New("momasolver: Su/Sv must be square and match X's dimensions")

// ErrInvalidInit is returned when an explicit InitU/InitV does not match
// X's corresponding dimension.
var ErrInvalidInit = errors.New("momasolver: InitU/InitV length must match X's dimensions")

// ErrUnknownOptimizer is returned for an Optimizer value outside the
// defined enumeration.
var ErrUnknownOptimizer = errors.New("momasolver: unknown optimizer")

// ErrNonFiniteResult is returned when an iterate leaves the finite reals,
// signaling a diverging configuration (e.g. too large a lambda relative
// to the step size for a non-convex penalty).
var ErrNonFiniteResult = errors.New("momasolver: iterate became non-finite")
