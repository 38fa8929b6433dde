package fusionprox

import (
	"math"

	"github.com/katalvlaran/moma/logging"
	"github.com/katalvlaran/moma/numeric"
)

// solveAMA runs the dual-projected-gradient (alternating minimization
// algorithm) splitting for the same objective as solveADMM, optionally
// with Nesterov acceleration of the dual sequence.
func solveAMA(x []float64, es []edge, lambda float64, cfg Config, cache *Cache) []float64 {
	n := len(x)
	m := len(es)
	cache.ensureAMA(m)
	adj := buildAdjacency(n, es)

	maxEdgeDeg := 1
	for _, e := range es {
		if d := len(adj[e.i]) + len(adj[e.j]); d > maxEdgeDeg {
			maxEdgeDeg = d
		}
	}
	denom := n
	if maxEdgeDeg < denom {
		denom = maxEdgeDeg
	}
	nu := 1.0 / float64(denom)

	b := make([]float64, n)
	prevB := make([]float64, n)
	y := make([]float64, m)
	copy(y, cache.Dual)

	bFromDual := func(dual []float64, out []float64) {
		copy(out, x)
		for i := 0; i < n; i++ {
			for _, a := range adj[i] {
				if a.isLeft {
					out[i] += dual[a.edgeIdx]
				} else {
					out[i] -= dual[a.edgeIdx]
				}
			}
		}
	}

	for iter := 0; iter < cfg.maxIter(); iter++ {
		if cfg.Accel {
			alphaPrev := cache.Alpha
			cache.Alpha = (1 + math.Sqrt(1+4*alphaPrev*alphaPrev)) / 2
			momentum := (alphaPrev - 1) / cache.Alpha
			for k := range y {
				y[k] = cache.Dual[k] + momentum*(cache.Dual[k]-cache.DualPrev[k])
			}
		} else {
			copy(y, cache.Dual)
		}

		bFromDual(y, b)
		copy(prevB, b)

		next := make([]float64, m)
		for k, e := range es {
			bound := lambda * e.w
			v := y[k] - nu*(b[e.i]-b[e.j])
			next[k] = clamp(v, -bound, bound)
		}

		copy(cache.DualPrev, cache.Dual)
		copy(cache.Dual, next)

		bFromDual(cache.Dual, b)
		if numeric.RelChange(b, prevB) < cfg.proxEps() {
			return b
		}
	}
	logging.Warn(cfg.Logger, "fusionprox: AMA reached max iterations without converging", "maxIter", cfg.maxIter())
	return b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

