package penalty

import "github.com/katalvlaran/moma/numeric"

// groupLassoProx applies the block soft-threshold to each group
// independently: a group g is zeroed if ||x_g||_2 <= lambda, otherwise
// scaled by (1 - lambda/||x_g||_2).
func groupLassoProx(x []float64, groups [][]int, lambda float64) []float64 {
	out := append([]float64(nil), x...)
	for _, g := range groups {
		vals := make([]float64, len(g))
		for k, idx := range g {
			vals[k] = x[idx]
		}
		norm := numeric.Norm2(vals)
		if norm <= lambda {
			for _, idx := range g {
				out[idx] = 0
			}
			continue
		}
		scale := 1 - lambda/norm
		for _, idx := range g {
			out[idx] = x[idx] * scale
		}
	}
	return out
}

func validateGroups(groups [][]int, n int) error {
	if len(groups) == 0 {
		return ErrInvalidGroups
	}
	seen := make([]bool, n)
	for _, g := range groups {
		if len(g) == 0 {
			return ErrInvalidGroups
		}
		for _, idx := range g {
			if idx < 0 || idx >= n || seen[idx] {
				return ErrInvalidGroups
			}
			seen[idx] = true
		}
	}
	for _, ok := range seen {
		if !ok {
			return ErrInvalidGroups
		}
	}
	return nil
}

func makeGroupLasso(p Params) ProxOp {
	return func(x []float64) ([]float64, error) {
		if err := validateGroups(p.Groups, len(x)); err != nil {
			return nil, err
		}
		return withNonNeg(x, p.NonNeg, func(y []float64) ([]float64, error) {
			return groupLassoProx(y, p.Groups, p.Lambda), nil
		})
	}
}
