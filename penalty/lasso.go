package penalty

import "github.com/katalvlaran/moma/numeric"

func makeLasso(p Params) ProxOp {
	return func(x []float64) ([]float64, error) {
		return withNonNeg(x, p.NonNeg, func(y []float64) ([]float64, error) {
			return numeric.SoftThreshold(y, p.Lambda), nil
		})
	}
}
