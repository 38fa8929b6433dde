package numeric

import "gonum.org/v1/gonum/mat"

// TopSingularVectors returns the top left and right singular vectors
// (u⁰, v⁰) of the n×p matrix X, used by momasolver to initialize its
// alternating iteration.
//
// SVD initialization is treated as an externally supplied primitive
// rather than part of the core; this is the one seam in the module
// backed by gonum.org/v1/gonum instead of the hand-rolled numeric
// kernels above.
func TopSingularVectors(x *Dense) (u, v []float64, err error) {
	n, p := x.Rows(), x.Cols()
	gx := mat.NewDense(n, p, Copy(x.data))

	var svd mat.SVD
	if ok := svd.Factorize(gx, mat.SVDThin); !ok {
		return nil, nil, ErrNotConverged
	}

	var um, vm mat.Dense
	svd.UTo(&um)
	svd.VTo(&vm)

	u = make([]float64, n)
	for i := 0; i < n; i++ {
		u[i] = um.At(i, 0)
	}
	v = make([]float64, p)
	for j := 0; j < p; j++ {
		v[j] = vm.At(j, 0)
	}
	return u, v, nil
}
