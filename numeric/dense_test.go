package numeric_test

import (
	"testing"

	"github.com/katalvlaran/moma/numeric"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows, cols int) *numeric.Dense {
	t.Helper()
	m, err := numeric.NewDense(rows, cols)
	require.NoError(t, err)
	return m
}

func TestNewDenseZeroed(t *testing.T) {
	m := mustDense(t, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := numeric.NewDense(0, 3)
	require.ErrorIs(t, err, numeric.ErrInvalidDimensions)
}

func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)
	_, err := m.At(2, 0)
	require.ErrorIs(t, err, numeric.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, -1, 1), numeric.ErrIndexOutOfBounds)
}

func TestIdentity(t *testing.T) {
	id, err := numeric.Identity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := id.At(i, j)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Zero(t, v)
			}
		}
	}
}

func TestMatVec(t *testing.T) {
	m, err := numeric.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	y, err := m.MatVec([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 7}, y)
}

func TestMatVecDimensionMismatch(t *testing.T) {
	m := mustDense(t, 2, 3)
	_, err := m.MatVec([]float64{1, 2})
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
}

func TestMatVecT(t *testing.T) {
	m, err := numeric.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	y, err := m.MatVecT([]float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, y)
}

func TestMatVecTDimensionMismatch(t *testing.T) {
	m := mustDense(t, 2, 3)
	_, err := m.MatVecT([]float64{1, 2, 3})
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
}

func TestBuildSNilOmegaIsIdentity(t *testing.T) {
	s, err := numeric.BuildS(4, 0.5, nil)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, _ := s.At(i, j)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Zero(t, v)
			}
		}
	}
}

func TestBuildSComposesIdentityPlusScaledOmega(t *testing.T) {
	omega, err := numeric.NewDenseFrom(2, 2, []float64{2, 0, 0, 2})
	require.NoError(t, err)
	s, err := numeric.BuildS(2, 0.5, omega)
	require.NoError(t, err)
	// S = I + n*alpha*Omega = I + 2*0.5*diag(2,2) = I + diag(2,2) = diag(3,3)
	v, _ := s.At(0, 0)
	require.InDelta(t, 3.0, v, 1e-12)
	off, _ := s.At(0, 1)
	require.Zero(t, off)
}

func TestQuadratic(t *testing.T) {
	m, err := numeric.NewDenseFrom(2, 2, []float64{2, 0, 0, 3})
	require.NoError(t, err)
	q, err := m.Quadratic([]float64{1, 2})
	require.NoError(t, err)
	require.InDelta(t, 2*1*1+3*2*2, q, 1e-12)
}
