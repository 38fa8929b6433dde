// Package penalty builds proximal operators for the sparsity/smoothness
// penalties the biconvex solver applies to each factor: the separable
// thresholding families (lasso, SCAD, MCP, group lasso) and the two
// structured-fusion families, which delegate to the exact chain solver
// in package fusedgroups and the graph splitting solver in package
// fusionprox respectively.
//
// A non-negative variant of a separable kind (None, Lasso, SCAD, MCP,
// GroupLasso) is requested by setting Params.NonNeg; it is implemented as
// project-then-prox, clipping the input to the non-negative orthant before
// applying the unconstrained operator, rather than as a distinct kind.
// Make rejects NonNeg for OrderedFused and UnorderedFusion.
package penalty
