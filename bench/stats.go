package bench

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Resample count used for every bootstrap interval.
const bootstrapResamples = 2000

// Median returns the empirical median: the smallest sample at or above
// the 0.5 quantile (lower median for even-length input).
// Returns NaN on empty input.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// BootstrapCI95Median estimates a 95% confidence interval for the
// median by resampling with replacement: bootstrapResamples resamples,
// a median each, and the empirical 2.5/97.5 quantiles of those medians.
// Deterministic for a fixed seed. Degenerate inputs collapse: empty →
// (NaN, NaN), single value → (v, v).
func BootstrapCI95Median(values []float64, seed int64) (low, high float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	if len(values) == 1 {
		return values[0], values[0]
	}

	rng := rand.New(rand.NewSource(seed))
	medians := make([]float64, bootstrapResamples)
	resample := make([]float64, len(values))
	for r := 0; r < bootstrapResamples; r++ {
		for i := range resample {
			resample[i] = values[rng.Intn(len(values))]
		}
		medians[r] = Median(resample)
	}

	sort.Float64s(medians)
	low = stat.Quantile(0.025, stat.Empirical, medians, nil)
	high = stat.Quantile(0.975, stat.Empirical, medians, nil)
	return low, high
}
