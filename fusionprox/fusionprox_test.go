package fusionprox_test

import (
	"testing"

	"github.com/katalvlaran/moma/fusionprox"
	"github.com/stretchr/testify/require"
)

func completeWeight(n int) [][]float64 {
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := i + 1; j < n; j++ {
			w[i][j] = 1
		}
	}
	return w
}

func TestSolveTooFewNodes(t *testing.T) {
	_, err := fusionprox.Solve([]float64{1, 2}, 1, fusionprox.NewConfig(fusionprox.WithWeight(completeWeight(2))), nil)
	require.ErrorIs(t, err, fusionprox.ErrTooFewNodes)
}

func TestSolveRejectsBadWeightShape(t *testing.T) {
	cfg := fusionprox.NewConfig(fusionprox.WithWeight([][]float64{{0, 1}, {1, 0}}))
	_, err := fusionprox.Solve([]float64{1, 2, 3}, 1, cfg, nil)
	require.ErrorIs(t, err, fusionprox.ErrWeightShape)
}

func TestSolveRejectsNegativeWeight(t *testing.T) {
	w := completeWeight(3)
	w[0][1] = -1
	cfg := fusionprox.NewConfig(fusionprox.WithWeight(w))
	_, err := fusionprox.Solve([]float64{1, 2, 3}, 1, cfg, nil)
	require.ErrorIs(t, err, fusionprox.ErrWeightNegative)
}

func TestSolveRejectsNonzeroDiagonal(t *testing.T) {
	w := completeWeight(3)
	w[1][1] = 2
	cfg := fusionprox.NewConfig(fusionprox.WithWeight(w))
	_, err := fusionprox.Solve([]float64{1, 2, 3}, 1, cfg, nil)
	require.ErrorIs(t, err, fusionprox.ErrWeightDiagonal)
}

func TestSolveRejectsAccelWithADMM(t *testing.T) {
	cfg := fusionprox.NewConfig(
		fusionprox.WithWeight(completeWeight(3)),
		fusionprox.WithADMM(true),
		fusionprox.WithAccel(true),
	)
	_, err := fusionprox.Solve([]float64{1, 2, 3}, 1, cfg, nil)
	require.ErrorIs(t, err, fusionprox.ErrAccelRequiresAMA)
}

func TestSolveZeroLambdaIsIdentity(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	cfg := fusionprox.NewConfig(fusionprox.WithWeight(completeWeight(4)))
	out, err := fusionprox.Solve(x, 0, cfg, nil)
	require.NoError(t, err)
	require.Equal(t, x, out)
}

// Scenario (F): a complete graph with uniform unit weights and a large
// lambda fuses every entry to the input's mean, under both splittings.
func TestSolveCompleteGraphLargeLambdaFusesToMean(t *testing.T) {
	x := []float64{0, 0, 10, 10}
	w := completeWeight(4)

	amaCfg := fusionprox.NewConfig(fusionprox.WithWeight(w), fusionprox.WithProxEps(1e-10), fusionprox.WithMaxIter(20000))
	amaOut, err := fusionprox.Solve(x, 50, amaCfg, nil)
	require.NoError(t, err)
	for _, v := range amaOut {
		require.InDelta(t, 5.0, v, 1e-3)
	}

	admmCfg := fusionprox.NewConfig(fusionprox.WithWeight(w), fusionprox.WithADMM(true), fusionprox.WithProxEps(1e-10), fusionprox.WithMaxIter(20000))
	admmOut, err := fusionprox.Solve(x, 50, admmCfg, nil)
	require.NoError(t, err)
	for _, v := range admmOut {
		require.InDelta(t, 5.0, v, 1e-3)
	}
}

// ADMM and AMA must agree closely on the same problem when run to a tight
// tolerance.
func TestSolveADMMAndAMAAgree(t *testing.T) {
	x := []float64{2, -1, 3, 0, -2}
	w := completeWeight(5)
	lambda := 0.7

	amaCfg := fusionprox.NewConfig(fusionprox.WithWeight(w), fusionprox.WithProxEps(1e-10), fusionprox.WithMaxIter(20000))
	amaOut, err := fusionprox.Solve(x, lambda, amaCfg, nil)
	require.NoError(t, err)

	admmCfg := fusionprox.NewConfig(fusionprox.WithWeight(w), fusionprox.WithADMM(true), fusionprox.WithProxEps(1e-10), fusionprox.WithMaxIter(20000))
	admmOut, err := fusionprox.Solve(x, lambda, admmCfg, nil)
	require.NoError(t, err)

	for i := range amaOut {
		require.InDelta(t, admmOut[i], amaOut[i], 1e-4)
	}
}

func TestSolveAccelConvergesToSameAnswer(t *testing.T) {
	x := []float64{5, 1, 1, 5, 5}
	w := completeWeight(5)
	lambda := 1.2

	plain := fusionprox.NewConfig(fusionprox.WithWeight(w), fusionprox.WithProxEps(1e-10), fusionprox.WithMaxIter(20000))
	plainOut, err := fusionprox.Solve(x, lambda, plain, nil)
	require.NoError(t, err)

	accel := fusionprox.NewConfig(fusionprox.WithWeight(w), fusionprox.WithAccel(true), fusionprox.WithProxEps(1e-10), fusionprox.WithMaxIter(20000))
	accelOut, err := fusionprox.Solve(x, lambda, accel, nil)
	require.NoError(t, err)

	for i := range plainOut {
		require.InDelta(t, plainOut[i], accelOut[i], 1e-3)
	}
}

func TestSolveWarmStartReusesCache(t *testing.T) {
	w := completeWeight(4)
	cfg := fusionprox.NewConfig(fusionprox.WithWeight(w), fusionprox.WithProxEps(1e-10))
	cache := &fusionprox.Cache{}

	first, err := fusionprox.Solve([]float64{1, 2, 3, 4}, 0.3, cfg, cache)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	// The default AMA splitting leaves one dual entry per edge (6 for K4)
	// in the cache for the next call to start from.
	require.Len(t, cache.Dual, 6)

	second, err := fusionprox.Solve([]float64{1.01, 2.01, 2.99, 3.99}, 0.3, cfg, cache)
	require.NoError(t, err)
	require.Len(t, second, 4)
}
