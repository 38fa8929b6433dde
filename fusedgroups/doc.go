// Package fusedgroups implements the exact taut-string / fused-groups
// path algorithm for the ordered fused lasso proximal operator:
// argmin_z ½‖z−x‖² + λ·Σ_i |z_{i+1}−z_i|.
//
// The solution is tracked as a piecewise-linear function of λ: indices
// start as singleton groups and merge pairwise as λ grows, exactly at the
// λ where two adjacent groups' linear segments cross. The data structure
// doing the bookkeeping — an array of groups joined by a path-compressed
// union-find forest, plus a positional min-heap keyed by next-merge-λ —
// uses parent arrays over contiguous-range groups and a heap.Interface
// priority queue with true Fix-based decrease/increase-key rather than
// lazy duplicate entries, since deleting and rekeying a specific boundary
// is required here, not merely skipping stale ones.
package fusedgroups
