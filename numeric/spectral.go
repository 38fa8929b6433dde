package numeric

import "math"

// defaultEigenTol and defaultEigenMaxIter bound the Jacobi iteration used
// by SpectralRadius below; defaultEigenMaxIter counts sweeps of
// n(n-1)/2 rotations each. S_u/S_v are small, well-conditioned (symmetric
// positive definite by construction) matrices, so a handful of
// sweeps always suffices in practice.
const (
	defaultEigenTol     = 1e-10
	defaultEigenMaxIter = 100
)

// SpectralRadius returns ρ(S), the largest-magnitude eigenvalue of the
// symmetric matrix S, via a Jacobi rotation sweep, narrowed to the one
// quantity the solver's step-size rule actually needs.
//
// Complexity: O(n²) per rotation (largest-pivot search), so O(n⁴) per
// sweep, worst-case O(maxIter·n⁴).
func SpectralRadius(s *Dense) (float64, error) {
	if !s.IsSquare() {
		return 0, ErrNonSquare
	}
	if !s.IsSymmetric(1e-8) {
		return 0, ErrNonFinite
	}

	n := s.rows
	a := s.Clone()

	maxRot := defaultEigenMaxIter * max(1, n*(n-1)/2)
	var iter int
	for iter = 0; iter < maxRot; iter++ {
		p, q, maxOff := 0, 1, 0.0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				off := math.Abs(a.data[i*n+j])
				if off > maxOff {
					maxOff = off
					p, q = i, j
				}
			}
		}
		if maxOff < defaultEigenTol {
			break
		}

		app := a.data[p*n+p]
		aqq := a.data[q*n+q]
		apq := a.data[p*n+q]

		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		sn := t * c

		for i := 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip := a.data[i*n+p]
			aiq := a.data[i*n+q]
			a.data[i*n+p] = c*aip - sn*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+q] = sn*aip + c*aiq
			a.data[q*n+i] = a.data[i*n+q]
		}
		a.data[p*n+p] = c*c*app - 2*c*sn*apq + sn*sn*aqq
		a.data[q*n+q] = sn*sn*app + 2*c*sn*apq + c*c*aqq
		a.data[p*n+q] = 0
		a.data[q*n+p] = 0
	}
	if iter == maxRot {
		return 0, ErrNotConverged
	}

	var maxEig float64
	for i := 0; i < n; i++ {
		if v := math.Abs(a.data[i*n+i]); v > maxEig {
			maxEig = v
		}
	}
	return maxEig, nil
}

// StepSizeL returns L = ρ(S) + epsReg, the Lipschitz constant the solver
// uses for both the gradient step (1/L) and the proximal step (λ/L); see
// the gradient step. epsReg is the nugget guarding against ill
// conditioning near-singular S.
func StepSizeL(s *Dense, epsReg float64) (float64, error) {
	rho, err := SpectralRadius(s)
	if err != nil {
		return 0, err
	}
	return rho + epsReg, nil
}
