package penalty

import (
	"math"

	"github.com/katalvlaran/moma/numeric"
)

// mcpProx evaluates the proximal operator of the minimax concave penalty
// coordinate-wise, for gamma>1:
//
//	|x| <= gamma*lambda: S(x,lambda) * gamma/(gamma-1)
//	|x| >  gamma*lambda: x
//
// As gamma -> infinity this reduces to the lasso soft-threshold.
func mcpProx(x []float64, lambda, gamma float64) []float64 {
	out := make([]float64, len(x))
	scale := gamma / (gamma - 1)
	for i, v := range x {
		if math.Abs(v) <= gamma*lambda {
			out[i] = numeric.SoftThresholdScalar(v, lambda) * scale
		} else {
			out[i] = v
		}
	}
	return out
}

func makeMCP(p Params) (ProxOp, error) {
	// gamma==1 puts the scale factor's (gamma-1) denominator at zero;
	// rejected rather than treated as the boundary of gamma>=1.
	if p.Gamma <= 1 {
		return nil, ErrInvalidGamma
	}
	return func(x []float64) ([]float64, error) {
		return withNonNeg(x, p.NonNeg, func(y []float64) ([]float64, error) {
			return mcpProx(y, p.Lambda, p.Gamma), nil
		})
	}, nil
}
