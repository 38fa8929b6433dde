package momasolver

import "math"

// momentumClock advances the standard FISTA t-sequence
// t_{k+1} = (1 + sqrt(1+4*t_k^2)) / 2
// and exposes the extrapolation coefficient beta_k = (t_{k-1}-1)/t_k.
// It carries no vector state of its own; callers supply the current and
// previous iterate to extrapolate, which is what lets
// OptimizerTwoWayAccel run two of these against two different vectors
// while OptimizerAccelFista runs one against both.
type momentumClock struct {
	tPrev, tCur float64
}

func newMomentumClock() *momentumClock {
	return &momentumClock{tPrev: 1, tCur: 1}
}

func (m *momentumClock) beta() float64 {
	return (m.tPrev - 1) / m.tCur
}

func (m *momentumClock) advance() {
	m.tPrev = m.tCur
	m.tCur = (1 + math.Sqrt(1+4*m.tPrev*m.tPrev)) / 2
}

// extrapolate returns cur + beta*(cur-prev) without mutating either
// input.
func extrapolate(cur, prev []float64, beta float64) []float64 {
	out := make([]float64, len(cur))
	for i := range cur {
		out[i] = cur[i] + beta*(cur[i]-prev[i])
	}
	return out
}
