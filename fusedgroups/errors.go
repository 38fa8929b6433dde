package fusedgroups

import "errors"

// ErrEmptyInput indicates Solve was called with a zero-length vector.
var ErrEmptyInput = errors.New("fusedgroups: empty input")

// ErrNegativeLambda indicates a negative target lambda was requested;
// the prox contract requires lambda >= 0.
var ErrNegativeLambda = errors.New("fusedgroups: lambda must be >= 0")
