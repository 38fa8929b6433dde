// Package numeric provides the small dense-vector and dense-matrix kernels
// shared by the penalty, fusedgroups, fusionprox and momasolver packages.
//
// It is deliberately narrow: the problems this module solves size X, Ω_u
// and Ω_v fully in memory, so a flat row-major Dense type with O(1)
// At/Set and a handful of O(n) vector kernels (dot, norm, axpy, scale)
// cover every numeric need of the core.
//
// The one operation deliberately routed through a third-party library is
// TopSingularVectors, treated as an externally supplied primitive rather
// than part of the core; it is backed by gonum.org/v1/gonum/mat.
package numeric
