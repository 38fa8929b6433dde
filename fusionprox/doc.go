// Package fusionprox implements the graph-fused (unordered-fusion) lasso
// proximal operator:
//
//	argmin_b ½‖b−x‖² + λ·Σ_{i<j} W_ij|b_i−b_j|
//
// over an arbitrary weighted edge set W (upper-triangular, non-negative,
// zero diagonal). Two splittings are offered, selected by Config.ADMM:
// a standard ADMM (primal b, splitting variable z per edge, scaled dual
// u per edge) and an AMA dual-projected-gradient variant with optional
// Nesterov acceleration.
//
// By design, the iterate state that needs to survive between calls
// against the same graph (B/Z/U for ADMM, Dual/DualPrev/Alpha for AMA)
// lives in an explicit Cache owned by the enclosing solve (momasolver)
// and passed into Solve, rather than cached as a hidden field on the
// solver — this is what makes the warm start independently testable
// (see TestSolveWarmStartReusesCache in fusionprox_test.go).
package fusionprox
