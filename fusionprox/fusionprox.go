package fusionprox

// Solve computes the graph-fused-lasso proximal operator
//
//	argmin_b 0.5*||b-x||^2 + lambda*sum_{i<j} W_ij*|b_i-b_j|
//
// for an arbitrary weighted edge set given by cfg.Weight. If cache is
// non-nil its primal/dual state is used as a warm start and updated in
// place for the next call against the same graph; pass a fresh &Cache{}
// (or nil) for a cold start.
func Solve(x []float64, lambda float64, cfg Config, cache *Cache) ([]float64, error) {
	n := len(x)
	if err := cfg.validate(n); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = &Cache{}
	}
	es := edges(cfg.Weight)
	if lambda == 0 || len(es) == 0 {
		return append([]float64(nil), x...), nil
	}
	if cfg.ADMM {
		out := solveADMM(x, es, lambda, cfg, cache)
		return append([]float64(nil), out...), nil
	}
	out := solveAMA(x, es, lambda, cfg, cache)
	return append([]float64(nil), out...), nil
}
