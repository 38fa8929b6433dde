package fusionprox

import "errors"

// ErrTooFewNodes is returned when n <= 2; the chain solver in package
// fusedgroups already covers that case exactly and more cheaply.
var ErrTooFewNodes = errors.New("fusionprox: need at least 3 nodes, use fusedgroups for n<=2")

// ErrWeightShape is returned when the weight matrix is not square or does
// not match the requested dimension.
var ErrWeightShape = errors.New("fusionprox: weight matrix must be square and match n")

// ErrWeightNegative is returned when any upper-triangular off-diagonal
// weight entry is negative; the lower triangle is not read.
var ErrWeightNegative = errors.New("fusionprox: edge weights must be non-negative")

// ErrWeightDiagonal is returned when a diagonal entry of the weight matrix is non-zero.
var ErrWeightDiagonal = errors.New("fusionprox: weight matrix diagonal must be zero")

// ErrAccelRequiresAMA is returned when Accel is requested together with
// ADMM; Nesterov acceleration here is only defined for the AMA dual
// iteration (see doc.go), so this combination is unsupported rather than
// silently ignored.
var ErrAccelRequiresAMA = errors.New("fusionprox: acceleration is only supported with AMA, not ADMM")
