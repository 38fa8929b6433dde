package fusionprox

// Cache holds the primal/dual state that is warm-started across
// successive Solve calls against the same graph, so the outer biconvex
// loop does not pay a cold-start iteration count every pass. Zero value
// is a valid, unwarmed cache.
type Cache struct {
	// B is the ADMM primal iterate, one entry per node.
	B []float64
	// Z and U are the ADMM per-edge auxiliary and scaled-dual vectors,
	// indexed in the same order as edges(Config.Weight).
	Z []float64
	U []float64

	// Dual is the AMA per-edge dual variable lambda_ij, same edge order.
	Dual []float64
	// DualPrev and Alpha hold the Nesterov extrapolation state for
	// accelerated AMA; Alpha starts at 1.
	DualPrev []float64
	Alpha    float64
}

func (c *Cache) ensureADMM(n, m int) {
	if len(c.B) != n {
		c.B = make([]float64, n)
	}
	if len(c.Z) != m {
		c.Z = make([]float64, m)
	}
	if len(c.U) != m {
		c.U = make([]float64, m)
	}
}

func (c *Cache) ensureAMA(m int) {
	if len(c.Dual) != m {
		c.Dual = make([]float64, m)
	}
	if c.Alpha == 0 {
		c.Alpha = 1
	}
	if len(c.DualPrev) != m {
		c.DualPrev = make([]float64, m)
		copy(c.DualPrev, c.Dual)
	}
}
