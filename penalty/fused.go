package penalty

import (
	"github.com/katalvlaran/moma/fusedgroups"
	"github.com/katalvlaran/moma/fusionprox"
)

func makeOrderedFused(p Params) ProxOp {
	return func(x []float64) ([]float64, error) {
		return withNonNeg(x, p.NonNeg, func(y []float64) ([]float64, error) {
			return fusedgroups.Solve(y, p.Lambda)
		})
	}
}

// makeUnorderedFusion delegates to the graph-splitting solver, keeping
// one warm-started cache per ProxOp closure so repeated calls against the
// same factor (successive outer iterations) reuse the previous solver
// state (primal/dual for ADMM, dual for AMA).
func makeUnorderedFusion(p Params) ProxOp {
	cfg := fusionprox.NewConfig(
		fusionprox.WithWeight(p.Weight),
		fusionprox.WithADMM(p.ADMM),
		fusionprox.WithAccel(p.Accel),
		fusionprox.WithProxEps(p.ProxEps),
		fusionprox.WithMaxIter(p.MaxIter),
		fusionprox.WithLogger(p.Logger),
	)
	cache := &fusionprox.Cache{}
	return func(x []float64) ([]float64, error) {
		return withNonNeg(x, p.NonNeg, func(y []float64) ([]float64, error) {
			return fusionprox.Solve(y, p.Lambda, cfg, cache)
		})
	}
}
