package numeric

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("numeric: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("numeric: index out of bounds")

// ErrDimensionMismatch indicates two operands have incompatible shapes.
var ErrDimensionMismatch = errors.New("numeric: dimension mismatch")

// ErrNonSquare signals that a square matrix was required but the input wasn't.
var ErrNonSquare = errors.New("numeric: matrix is not square")

// ErrNotConverged indicates that an iterative numeric routine (Jacobi sweep,
// SVD) failed to reach its tolerance within the allotted iterations.
var ErrNotConverged = errors.New("numeric: routine did not converge")

// ErrNonFinite indicates a NaN or ±Inf value was encountered where finite
// values are required.
var ErrNonFinite = errors.New("numeric: NaN or Inf encountered")
