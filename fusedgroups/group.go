package fusedgroups

import "math"

// slopeEqualTol is the "≈ equal slope" threshold below which two
// segments are treated as parallel, giving a crossing λ of +Inf.
const slopeEqualTol = 1e-10

// solver holds the live state of one taut-string sweep: an array of
// groups indexed by the original position of their head element, linked
// into a doubly-linked chain of currently-live heads, plus the
// union-find parent pointers over the group forest.
//
// A group's (beta, slope, lambdaAt) triple parametrizes its segment of
// the piecewise-linear path as beta + slope*(λ - lambdaAt), valid for any
// λ ≥ lambdaAt; this is what makes crossLambda below correct across
// merges, not only at the initial λ=0 frontier (see DESIGN.md for why
// this generalizes the literal λ*=(β_i−β_j)/(slope_j−slope_i) shorthand
// that only holds at the λ=0 frontier).
type solver struct {
	m int

	beta     []float64
	slope    []float64
	lambdaAt []float64

	tail   []int
	next   []int
	prev   []int
	parent []int

	heap *mergeHeap
}

func newSolver(x []float64) *solver {
	m := len(x)
	s := &solver{
		m:        m,
		beta:     append([]float64(nil), x...),
		slope:    make([]float64, m),
		lambdaAt: make([]float64, m),
		tail:     make([]int, m),
		next:     make([]int, m),
		prev:     make([]int, m),
		parent:   make([]int, m),
		heap:     newMergeHeap(m),
	}
	for i := 0; i < m; i++ {
		s.tail[i] = i
		s.parent[i] = i
		if i+1 < m {
			s.next[i] = i + 1
		} else {
			s.next[i] = -1
		}
		if i > 0 {
			s.prev[i] = i - 1
		} else {
			s.prev[i] = -1
		}
	}
	// Initial per-group slopes: one-sided at the endpoints, missing
	// neighbours contribute 0.
	for i := 0; i < m; i++ {
		var sum float64
		if i > 0 {
			sum += signf(s.beta[i] - s.beta[i-1])
		}
		if i+1 < m {
			sum += signf(s.beta[i] - s.beta[i+1])
		}
		s.slope[i] = -sum
	}
	// Seed the heap with every adjacent boundary.
	for i := 0; i < m-1; i++ {
		s.heap.insert(i, s.crossLambda(i, i+1))
	}
	return s
}

func signf(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// find returns the current head of the group containing original index
// i, path-compressing along the way. Not on the hot path (merges only
// ever touch heads directly), but kept so the union-find-forest invariant
// the union-find-forest invariant is an actual, queryable structure
// rather than implicit.
func (s *solver) find(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i
}

func (s *solver) size(head int) int {
	return s.tail[head] - head + 1
}

// crossLambda returns the λ at which groups i and j's linear segments
// intersect, using each group's own (beta, slope, lambdaAt) frame. At
// λ=0 initialization both lambdaAt are 0 and this collapses exactly to
// the shorthand λ* = (β_i−β_j)/(slope_j−slope_i) that only holds there.
func (s *solver) crossLambda(i, j int) float64 {
	denom := s.slope[i] - s.slope[j]
	if math.Abs(denom) < slopeEqualTol {
		return math.Inf(1)
	}
	num := (s.beta[j] - s.beta[i]) - s.slope[j]*s.lambdaAt[j] + s.slope[i]*s.lambdaAt[i]
	return num / denom
}

// recomputeSlope recomputes the merged group's slope as
// −(1/|G|)·(sign(β_G−β_prev) + sign(β_G−β_next)), missing neighbours
// contributing 0. The neighbours' β values are each read in their own
// (possibly older) frame; that's safe because a boundary only reaches
// this point once its sign has been stable since its last recompute —
// sign(β_G(λ)−β_neighbour(λ)) cannot flip without a merge event firing
// first, by construction of the heap ordering.
func (s *solver) recomputeSlope(head int) {
	var sum float64
	if p := s.prev[head]; p != -1 {
		sum += signf(s.beta[head] - s.beta[p])
	}
	if n := s.next[head]; n != -1 {
		sum += signf(s.beta[head] - s.beta[n])
	}
	s.slope[head] = -sum / float64(s.size(head))
}

// run advances the sweep, merging groups until the heap is empty or the
// next merge λ meets or exceeds lambdaReq.
func (s *solver) run(lambdaReq float64) {
	for {
		top, ok := s.heap.peekMin()
		if !ok || top.lambda >= lambdaReq {
			return
		}
		entry := s.heap.popMin()
		s.merge(entry)
	}
}

func (s *solver) merge(entry boundaryEntry) {
	left := entry.leftHead
	right := s.next[left]

	// Step 2: freeze the left group's β at the merge point.
	s.beta[left] += s.slope[left] * (entry.lambda - s.lambdaAt[left])
	s.lambdaAt[left] = entry.lambda

	// Step 3: union the right group into the left (union-find + chain).
	s.tail[left] = s.tail[right]
	s.next[left] = s.next[right]
	if s.next[left] != -1 {
		s.prev[s.next[left]] = left
	}
	s.parent[right] = left
	s.heap.remove(right) // right's own right-boundary, if any, is gone

	// Step 4: recompute the merged group's slope.
	s.recomputeSlope(left)

	// Step 5: rekey the at-most-two surviving adjacent boundaries.
	if p := s.prev[left]; p != -1 {
		s.heap.update(p, s.crossLambda(p, left))
	}
	if n := s.next[left]; n != -1 {
		s.heap.update(left, s.crossLambda(left, n))
	} else {
		s.heap.remove(left)
	}
}

// readout evaluates every surviving group's segment at lambdaReq and
// expands it back out to per-index output.
func (s *solver) readout(lambdaReq float64) []float64 {
	out := make([]float64, s.m)
	for head := 0; head != -1; head = s.next[head] {
		v := s.beta[head] + s.slope[head]*(lambdaReq-s.lambdaAt[head])
		for k := head; k <= s.tail[head]; k++ {
			out[k] = v
		}
	}
	return out
}

// Solve computes the exact ordered-fused-lasso proximal operator
// argmin_z ½‖z−x‖² + λ·Σ_i|z_{i+1}−z_i| for the requested λ.
func Solve(x []float64, lambda float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if lambda < 0 {
		return nil, ErrNegativeLambda
	}
	if len(x) == 1 || lambda == 0 {
		return append([]float64(nil), x...), nil
	}
	s := newSolver(x)
	s.run(lambda)
	return s.readout(lambda), nil
}
