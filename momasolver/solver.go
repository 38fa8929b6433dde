package momasolver

import (
	"errors"
	"math"

	"github.com/katalvlaran/moma/fusionprox"
	"github.com/katalvlaran/moma/logging"
	"github.com/katalvlaran/moma/momaerr"
	"github.com/katalvlaran/moma/numeric"
	"github.com/katalvlaran/moma/penalty"
)

// penaltyErrClass classifies a penalty.Make failure: a rejected
// non-negative fusion request is UNSUPPORTED per §7's error taxonomy,
// everything else (bad gamma, negative lambda, unknown kind) is a plain
// construction-time INVALID_CONFIG.
func penaltyErrClass(err error) momaerr.Class {
	if errors.Is(err, penalty.ErrNonNegFusionUnsupported) {
		return momaerr.Unsupported
	}
	return momaerr.InvalidConfig
}

// Result is one rank-one factorization pass.
type Result struct {
	U, V       []float64
	D          float64
	Iterations int
	Converged  bool
}

// Solve finds one penalized, norm-constrained rank-one factorization of
// x via alternating proximal gradient ascent.
func Solve(x *numeric.Dense, cfg Config) (Result, error) {
	if x == nil {
		return Result{}, momaerr.Wrap(momaerr.InvalidInput, ErrNilData)
	}
	n, p := x.Rows(), x.Cols()

	su := cfg.Su
	if su == nil {
		var err error
		su, err = numeric.Identity(n)
		if err != nil {
			return Result{}, momaerr.Wrap(momaerr.InvalidConfig, err)
		}
	} else if su.Rows() != n || su.Cols() != n {
		return Result{}, momaerr.Wrap(momaerr.InvalidInput, ErrConstraintShape)
	}

	sv := cfg.Sv
	if sv == nil {
		var err error
		sv, err = numeric.Identity(p)
		if err != nil {
			return Result{}, momaerr.Wrap(momaerr.InvalidConfig, err)
		}
	} else if sv.Rows() != p || sv.Cols() != p {
		return Result{}, momaerr.Wrap(momaerr.InvalidInput, ErrConstraintShape)
	}

	lu, err := numeric.StepSizeL(su, cfg.epsReg())
	if err != nil {
		return Result{}, momaerr.Wrap(momaerr.InvalidConfig, err)
	}
	lv, err := numeric.StepSizeL(sv, cfg.epsReg())
	if err != nil {
		return Result{}, momaerr.Wrap(momaerr.InvalidConfig, err)
	}

	u, v, err := initFactors(x, cfg, n, p)
	if err != nil {
		return Result{}, err
	}

	paramsU := cfg.ParamsU
	paramsU.Lambda = paramsU.Lambda / lu
	paramsU.Logger = cfg.Logger
	proxU, err := penalty.Make(cfg.PenaltyU, paramsU)
	if err != nil {
		return Result{}, momaerr.Wrap(penaltyErrClass(err), err)
	}

	paramsV := cfg.ParamsV
	paramsV.Lambda = paramsV.Lambda / lv
	paramsV.Logger = cfg.Logger
	proxV, err := penalty.Make(cfg.PenaltyV, paramsV)
	if err != nil {
		return Result{}, momaerr.Wrap(penaltyErrClass(err), err)
	}

	u, err = normalize(u, su, cfg.Logger)
	if err != nil {
		return Result{}, momaerr.Wrap(momaerr.InvalidInput, err)
	}
	v, err = normalize(v, sv, cfg.Logger)
	if err != nil {
		return Result{}, momaerr.Wrap(momaerr.InvalidInput, err)
	}

	switch cfg.Optimizer {
	case OptimizerProxGrad, OptimizerAccelFista, OptimizerTwoWayAccel:
	default:
		return Result{}, momaerr.Wrap(momaerr.InvalidConfig, ErrUnknownOptimizer)
	}

	result, err := runOuterLoop(x, cfg, su, sv, lu, lv, proxU, proxV, u, v)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

func initFactors(x *numeric.Dense, cfg Config, n, p int) ([]float64, []float64, error) {
	if cfg.InitU != nil || cfg.InitV != nil {
		if len(cfg.InitU) != n || len(cfg.InitV) != p {
			return nil, nil, momaerr.Wrap(momaerr.InvalidInput, ErrInvalidInit)
		}
		return numeric.Copy(cfg.InitU), numeric.Copy(cfg.InitV), nil
	}
	u, v, err := numeric.TopSingularVectors(x)
	if err != nil {
		return nil, nil, momaerr.Wrap(momaerr.InvalidInput, err)
	}
	return u, v, nil
}

// normalize enforces xᵀSx=1 by scaling, or returns the zero vector when
// xᵀSx degenerates to <= 0 (the documented degenerate-output rule). The
// zeroing is silent in the original but this module additionally logs it
// at debug level, since it's exactly the kind of silent numerical event
// worth surfacing without it being an error.
func normalize(x []float64, s *numeric.Dense, log logging.Logger) ([]float64, error) {
	m2, err := s.Quadratic(x)
	if err != nil {
		return nil, err
	}
	if m2 <= 0 {
		logging.Debug(log, "momasolver: normalization denominator non-positive, zeroing iterate", "m2", m2)
		return numeric.Zeros(len(x)), nil
	}
	out := numeric.Copy(x)
	numeric.Scale(out, 1/math.Sqrt(m2))
	return out, nil
}

// innerResult is the outcome of one side's GRAD->PROX->[MOMENTUM]->TEST
// loop, before normalization.
type innerResult struct {
	point      []float64
	iterations int
	converged  bool
}

// runInnerLoop runs the §4.4 inner update for one side, holding the
// other side fixed through fixedGrad (X*v for the u-side, Xᵀ*u for the
// v-side): repeatedly (1) gradient step u <- u + (1/L)*(fixedGrad -
// S*u), (2) proximal step, (3) an optional momentum combination when
// clock is non-nil, (4) a relative-change convergence test against the
// iterate from before this round — until EPS_inner is met or MAX_inner
// rounds elapse. Normalization is the caller's job, applied once after
// this loop returns, per §4.4.
func runInnerLoop(start, fixedGrad []float64, s *numeric.Dense, l float64, prox penalty.ProxOp, clock *momentumClock, epsInner float64, maxInner int) (innerResult, error) {
	cur := numeric.Copy(start)
	iter := 0
	converged := false
	for ; iter < maxInner; iter++ {
		prevIter := cur

		sCur, err := s.MatVec(prevIter)
		if err != nil {
			return innerResult{}, err
		}
		grad := numeric.Sub(fixedGrad, sCur)
		tilde := numeric.Copy(prevIter)
		numeric.AXPY(1/l, grad, tilde)

		proxed, err := prox(tilde)
		if err != nil {
			return innerResult{}, err
		}

		next := proxed
		if clock != nil {
			next = extrapolate(proxed, prevIter, clock.beta())
			clock.advance()
		}
		if !numeric.AllFinite(next) {
			return innerResult{}, ErrNonFiniteResult
		}

		change := numeric.RelChange(next, prevIter)
		cur = next
		if change < epsInner {
			converged = true
			iter++
			break
		}
	}
	return innerResult{point: cur, iterations: iter, converged: converged}, nil
}

// classifyInnerErr maps an error surfaced by runInnerLoop to its §7
// error class: a diverging iterate is a NUMERICAL_WARNING, an
// accelerated-ADMM fusion request is UNSUPPORTED, anything else (a
// dimension mismatch that validation should have already caught) is an
// INVALID_CONFIG.
func classifyInnerErr(err error) error {
	if errors.Is(err, ErrNonFiniteResult) {
		return momaerr.Wrap(momaerr.NumericalWarning, err)
	}
	if errors.Is(err, fusionprox.ErrAccelRequiresAMA) {
		return momaerr.Wrap(momaerr.Unsupported, err)
	}
	return momaerr.Wrap(momaerr.InvalidConfig, err)
}

// runOuterLoop drives U_STEP -> V_STEP -> TEST per §4.4: each outer
// iteration runs u's inner loop to convergence against the current v,
// normalizes u, then runs v's inner loop against the now-updated u and
// normalizes v, before testing the outer relative-change tolerance.
func runOuterLoop(
	x *numeric.Dense,
	cfg Config,
	su, sv *numeric.Dense,
	lu, lv float64,
	proxU, proxV penalty.ProxOp,
	u, v []float64,
) (Result, error) {
	epsInner, maxInner := cfg.epsInner(), cfg.maxInner()
	maxOuter := cfg.maxIter()

	uOuterPrev, vOuterPrev := numeric.Copy(u), numeric.Copy(v)
	converged := false
	innerCapped := false
	outerIter := 0

	for ; outerIter < maxOuter; outerIter++ {
		var clockShared, clockU, clockV *momentumClock
		switch cfg.Optimizer {
		case OptimizerAccelFista:
			clockShared = newMomentumClock()
		case OptimizerTwoWayAccel:
			clockU = newMomentumClock()
			clockV = newMomentumClock()
		}
		var uClock, vClock *momentumClock
		switch cfg.Optimizer {
		case OptimizerAccelFista:
			uClock, vClock = clockShared, clockShared
		case OptimizerTwoWayAccel:
			uClock, vClock = clockU, clockV
		}

		xv, err := x.MatVec(v)
		if err != nil {
			return Result{}, momaerr.Wrap(momaerr.InvalidInput, err)
		}
		uRes, err := runInnerLoop(u, xv, su, lu, proxU, uClock, epsInner, maxInner)
		if err != nil {
			return Result{}, classifyInnerErr(err)
		}
		if !uRes.converged {
			innerCapped = true
		}
		newU, err := normalize(uRes.point, su, cfg.Logger)
		if err != nil {
			return Result{}, momaerr.Wrap(momaerr.InvalidInput, err)
		}

		xtu, err := x.MatVecT(newU)
		if err != nil {
			return Result{}, momaerr.Wrap(momaerr.InvalidInput, err)
		}
		vRes, err := runInnerLoop(v, xtu, sv, lv, proxV, vClock, epsInner, maxInner)
		if err != nil {
			return Result{}, classifyInnerErr(err)
		}
		if !vRes.converged {
			innerCapped = true
		}
		newV, err := normalize(vRes.point, sv, cfg.Logger)
		if err != nil {
			return Result{}, momaerr.Wrap(momaerr.InvalidInput, err)
		}

		changeU := numeric.RelChange(newU, uOuterPrev)
		changeV := numeric.RelChange(newV, vOuterPrev)
		u, v = newU, newV
		uOuterPrev, vOuterPrev = numeric.Copy(u), numeric.Copy(v)

		if changeU+changeV < cfg.tol() {
			converged = true
			outerIter++
			break
		}
	}
	if innerCapped {
		logging.Warn(cfg.Logger, "momasolver: inner loop reached max iterations without converging on at least one outer step", "maxInner", maxInner)
	}
	if !converged {
		logging.Warn(cfg.Logger, "momasolver: outer loop reached max iterations without converging", "maxOuter", maxOuter)
	}

	duv, err := directionalValue(x, u, v)
	if err != nil {
		return Result{}, momaerr.Wrap(momaerr.InvalidInput, err)
	}

	return Result{U: u, V: v, D: duv, Iterations: outerIter, Converged: converged}, nil
}

func directionalValue(x *numeric.Dense, u, v []float64) (float64, error) {
	xv, err := x.MatVec(v)
	if err != nil {
		return 0, err
	}
	return numeric.Dot(u, xv), nil
}

// Deflate subtracts the rank-one component d*u*vᵀ from x in place on a
// clone, returning the deflated matrix; x itself is left untouched.
func Deflate(x *numeric.Dense, u, v []float64, d float64) (*numeric.Dense, error) {
	n, p := x.Rows(), x.Cols()
	if len(u) != n || len(v) != p {
		return nil, momaerr.Wrap(momaerr.InvalidInput, ErrConstraintShape)
	}
	out := x.Clone()
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			cur, err := out.At(i, j)
			if err != nil {
				return nil, err
			}
			if err := out.Set(i, j, cur-d*u[i]*v[j]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
