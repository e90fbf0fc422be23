package bench_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowlab/bench"
)

func TestMedian(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5.0, bench.Median([]float64{5}))
	require.Equal(t, 2.0, bench.Median([]float64{3, 1, 2}))
	// Lower median by the empirical-quantile convention.
	require.Equal(t, 2.0, bench.Median([]float64{4, 1, 3, 2}))
	require.True(t, math.IsNaN(bench.Median(nil)))

	// Input must not be reordered.
	in := []float64{9, 1, 5}
	_ = bench.Median(in)
	require.Equal(t, []float64{9, 1, 5}, in)
}

func TestBootstrapCI95Median(t *testing.T) {
	t.Parallel()

	low, high := bench.BootstrapCI95Median(nil, 0)
	require.True(t, math.IsNaN(low))
	require.True(t, math.IsNaN(high))

	low, high = bench.BootstrapCI95Median([]float64{3.5}, 0)
	require.Equal(t, 3.5, low)
	require.Equal(t, 3.5, high)

	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 9}
	low, high = bench.BootstrapCI95Median(values, 0)
	require.LessOrEqual(t, low, bench.Median(values))
	require.GreaterOrEqual(t, high, bench.Median(values))
	require.GreaterOrEqual(t, low, 1.0)
	require.LessOrEqual(t, high, 9.0)

	// Deterministic for a fixed seed.
	low2, high2 := bench.BootstrapCI95Median(values, 0)
	require.Equal(t, low, low2)
	require.Equal(t, high, high2)
}
