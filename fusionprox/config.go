package fusionprox

import "github.com/katalvlaran/moma/logging"

// Config parametrizes a graph-fused-lasso prox solve.
type Config struct {
	// Weight holds edge weights W_ij for i<j; only the upper triangle is
	// read, the diagonal must be zero and every upper-triangular entry
	// non-negative. A
	// zero entry means "no edge" (equivalently, weight 0).
	Weight [][]float64

	// ADMM selects the ADMM splitting; false selects AMA.
	ADMM bool

	// Accel enables Nesterov acceleration of the AMA dual iterate. It is
	// rejected when combined with ADMM (ErrAccelRequiresAMA).
	Accel bool

	// ProxEps is the relative-change stopping tolerance on the primal
	// iterate. Zero selects DefaultProxEps.
	ProxEps float64

	// MaxIter caps the number of splitting iterations. Zero selects
	// DefaultMaxIter.
	MaxIter int

	// Logger receives a Warn call if MaxIter is reached without
	// convergence. Nil disables logging.
	Logger logging.Logger
}

// DefaultProxEps is used when Config.ProxEps is zero.
const DefaultProxEps = 1e-8

// DefaultMaxIter is used when Config.MaxIter is zero.
const DefaultMaxIter = 10000

// Option configures a Config via functional options, matching the pattern
// used throughout this module for solver configuration.
type Option func(*Config)

// WithWeight sets the edge-weight matrix.
func WithWeight(w [][]float64) Option {
	return func(c *Config) { c.Weight = w }
}

// WithADMM selects the ADMM splitting (the default is AMA).
func WithADMM(enabled bool) Option {
	return func(c *Config) { c.ADMM = enabled }
}

// WithAccel enables Nesterov acceleration (AMA only).
func WithAccel(enabled bool) Option {
	return func(c *Config) { c.Accel = enabled }
}

// WithProxEps overrides the convergence tolerance.
func WithProxEps(eps float64) Option {
	return func(c *Config) { c.ProxEps = eps }
}

// WithMaxIter overrides the iteration cap.
func WithMaxIter(n int) Option {
	return func(c *Config) { c.MaxIter = n }
}

// WithLogger attaches a logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// NewConfig builds a Config from options, filling in defaults.
func NewConfig(opts ...Option) Config {
	c := Config{ProxEps: DefaultProxEps, MaxIter: DefaultMaxIter}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) validate(n int) error {
	if n <= 2 {
		return ErrTooFewNodes
	}
	if len(c.Weight) != n {
		return ErrWeightShape
	}
	for i := 0; i < n; i++ {
		if len(c.Weight[i]) != n {
			return ErrWeightShape
		}
	}
	for i := 0; i < n; i++ {
		if c.Weight[i][i] != 0 {
			return ErrWeightDiagonal
		}
		for j := i + 1; j < n; j++ {
			if c.Weight[i][j] < 0 {
				return ErrWeightNegative
			}
		}
	}
	if c.Accel && c.ADMM {
		return ErrAccelRequiresAMA
	}
	return nil
}

func (c Config) proxEps() float64 {
	if c.ProxEps > 0 {
		return c.ProxEps
	}
	return DefaultProxEps
}

func (c Config) maxIter() int {
	if c.MaxIter > 0 {
		return c.MaxIter
	}
	return DefaultMaxIter
}

// edge is one (i,j) pair with i<j and positive weight.
type edge struct {
	i, j int
	w    float64
}

// edges enumerates the positive-weight upper-triangular entries of w.
func edges(w [][]float64) []edge {
	var out []edge
	for i := range w {
		for j := i + 1; j < len(w); j++ {
			if w[i][j] > 0 {
				out = append(out, edge{i: i, j: j, w: w[i][j]})
			}
		}
	}
	return out
}

