package momasolver

import (
	"github.com/katalvlaran/moma/logging"
	"github.com/katalvlaran/moma/numeric"
	"github.com/katalvlaran/moma/penalty"
)

// Optimizer selects the outer-loop update rule.
type Optimizer int

const (
	// OptimizerProxGrad takes a plain proximal-gradient step each
	// factor, no momentum.
	OptimizerProxGrad Optimizer = iota
	// OptimizerAccelFista extrapolates both factors from a single,
	// shared FISTA momentum sequence each outer iteration.
	OptimizerAccelFista
	// OptimizerTwoWayAccel gives each factor its own independent FISTA
	// momentum sequence, advancing on its own schedule.
	OptimizerTwoWayAccel
)

func (o Optimizer) String() string {
	switch o {
	case OptimizerProxGrad:
		return "prox_grad"
	case OptimizerAccelFista:
		return "accel_fista"
	case OptimizerTwoWayAccel:
		return "two_way_accel"
	default:
		return "unknown"
	}
}

// DefaultEpsReg is the nugget added to the spectral radius when building
// the step-size Lipschitz constant.
const DefaultEpsReg = 1e-8

// DefaultMaxIter bounds the outer alternating loop (MAX_outer in §4.4).
const DefaultMaxIter = 500

// DefaultTol is the outer relative-change convergence threshold
// (EPS_outer) applied to the sum of both factors' relative change.
const DefaultTol = 1e-6

// DefaultEpsInner is the relative-change convergence threshold (EPS_inner)
// applied within a single side's GRAD->PROX->[MOMENTUM]->TEST loop.
const DefaultEpsInner = 1e-8

// DefaultMaxInner bounds the inner loop for a single side (MAX_inner).
const DefaultMaxInner = 100

// Config parametrizes one rank-one Solve call.
type Config struct {
	// Su, Sv are the generalized-eigenvalue norm matrices; nil selects
	// the identity (plain Euclidean norm constraint) for that side.
	Su, Sv *numeric.Dense
	EpsReg float64

	PenaltyU penalty.Kind
	ParamsU  penalty.Params
	PenaltyV penalty.Kind
	ParamsV  penalty.Params

	Optimizer Optimizer
	// MaxIter and Tol bound and threshold the outer alternating loop
	// (MAX_outer/EPS_outer).
	MaxIter int
	Tol     float64

	// EpsInner and MaxInner bound and threshold each side's inner
	// GRAD->PROX->[MOMENTUM]->TEST loop (EPS_inner/MAX_inner). Zero
	// selects the package defaults.
	EpsInner float64
	MaxInner int

	// InitU, InitV override the default SVD-based initialization when
	// non-nil; each must match X's corresponding dimension.
	InitU, InitV []float64

	Logger logging.Logger
}

// Option configures a Config via functional options.
type Option func(*Config)

func WithSu(s *numeric.Dense) Option { return func(c *Config) { c.Su = s } }
func WithSv(s *numeric.Dense) Option { return func(c *Config) { c.Sv = s } }
func WithEpsReg(eps float64) Option  { return func(c *Config) { c.EpsReg = eps } }

func WithPenaltyU(kind penalty.Kind, params penalty.Params) Option {
	return func(c *Config) { c.PenaltyU, c.ParamsU = kind, params }
}

func WithPenaltyV(kind penalty.Kind, params penalty.Params) Option {
	return func(c *Config) { c.PenaltyV, c.ParamsV = kind, params }
}

func WithOptimizer(o Optimizer) Option { return func(c *Config) { c.Optimizer = o } }
func WithMaxIter(n int) Option         { return func(c *Config) { c.MaxIter = n } }
func WithTol(tol float64) Option       { return func(c *Config) { c.Tol = tol } }
func WithEpsInner(eps float64) Option  { return func(c *Config) { c.EpsInner = eps } }
func WithMaxInner(n int) Option        { return func(c *Config) { c.MaxInner = n } }

func WithInit(u, v []float64) Option {
	return func(c *Config) { c.InitU, c.InitV = u, v }
}

func WithLogger(l logging.Logger) Option { return func(c *Config) { c.Logger = l } }

// NewConfig builds a Config from options, filling in defaults.
func NewConfig(opts ...Option) Config {
	c := Config{EpsReg: DefaultEpsReg, MaxIter: DefaultMaxIter, Tol: DefaultTol}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) epsReg() float64 {
	if c.EpsReg > 0 {
		return c.EpsReg
	}
	return DefaultEpsReg
}

func (c Config) maxIter() int {
	if c.MaxIter > 0 {
		return c.MaxIter
	}
	return DefaultMaxIter
}

func (c Config) tol() float64 {
	if c.Tol > 0 {
		return c.Tol
	}
	return DefaultTol
}

func (c Config) epsInner() float64 {
	if c.EpsInner > 0 {
		return c.EpsInner
	}
	return DefaultEpsInner
}

func (c Config) maxInner() int {
	if c.MaxInner > 0 {
		return c.MaxInner
	}
	return DefaultMaxInner
}
