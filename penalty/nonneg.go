package penalty

import "github.com/katalvlaran/moma/numeric"

// withNonNeg applies the project-then-prox non-negative variant: when
// requested, the input is clipped to the non-negative orthant before the
// unconstrained operator runs.
func withNonNeg(x []float64, nonNeg bool, op func([]float64) ([]float64, error)) ([]float64, error) {
	if !nonNeg {
		return op(x)
	}
	return op(numeric.ProjectNonNeg(x))
}
