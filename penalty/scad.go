package penalty

import (
	"math"

	"github.com/katalvlaran/moma/numeric"
)

// scadProx evaluates the proximal operator of the SCAD penalty
// coordinate-wise, for gamma>2:
//
//	|x| <= 2*lambda:              S(x,lambda)
//	2*lambda < |x| <= gamma*lambda: ((gamma-1)*x - sign(x)*gamma*lambda) / (gamma-2)
//	|x| > gamma*lambda:           x
//
// As gamma -> infinity the middle and outer branches vanish and this
// reduces to the lasso soft-threshold everywhere.
func scadProx(x []float64, lambda, gamma float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		a := math.Abs(v)
		switch {
		case a <= 2*lambda:
			out[i] = numeric.SoftThresholdScalar(v, lambda)
		case a <= gamma*lambda:
			out[i] = ((gamma-1)*v - signOf(v)*gamma*lambda) / (gamma - 2)
		default:
			out[i] = v
		}
	}
	return out
}

func signOf(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func makeSCAD(p Params) (ProxOp, error) {
	// gamma==2 puts the middle branch's (gamma-2) denominator at zero;
	// rejected rather than treated as the boundary of gamma>=2.
	if p.Gamma <= 2 {
		return nil, ErrInvalidGamma
	}
	return func(x []float64) ([]float64, error) {
		return withNonNeg(x, p.NonNeg, func(y []float64) ([]float64, error) {
			return scadProx(y, p.Lambda, p.Gamma), nil
		})
	}, nil
}
