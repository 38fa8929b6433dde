// Package momasolver implements the outer biconvex alternating
// proximal-gradient loop that finds one penalized, generalized-norm
// constrained rank-one factor of a data matrix X: argmax over (u,v) of
// uᵀXv - lambda_u*P_u(u) - lambda_v*P_v(v), subject to uᵀS_u u <= 1 and
// vᵀS_v v <= 1.
//
// Each side's proximal gradient step uses a fixed Lipschitz constant
// derived from the spectral radius of its constraint matrix (package
// numeric), and each side's penalty is whatever operator package penalty
// builds for the requested kind. Three optimizer variants are offered:
// plain proximal gradient, single-sequence FISTA acceleration shared
// across both factors, and two independent per-factor FISTA sequences.
// Repeated calls to Solve with Deflate in between extract successive
// rank-one components.
package momasolver
