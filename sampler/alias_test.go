package sampler_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/rewire/sampler"
)

func TestNewValidation(t *testing.T) {
	_, err := sampler.New([]string{}, []float64{})
	require.ErrorIs(t, err, sampler.ErrNoItems)

	_, err = sampler.New([]string{"a", "b"}, []float64{1})
	require.ErrorIs(t, err, sampler.ErrLengthMismatch)

	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.5} {
		_, err = sampler.New([]string{"a"}, []float64{w})
		require.ErrorIs(t, err, sampler.ErrBadWeight)
	}

	_, err = sampler.New([]string{"a", "b"}, []float64{0, 0})
	require.ErrorIs(t, err, sampler.ErrZeroTotal)
}

func TestSingleItem(t *testing.T) {
	a, err := sampler.New([]int{42}, []float64{3.5})
	require.NoError(t, err)
	require.Equal(t, 1, a.Len())

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		require.Equal(t, 42, a.Sample(r))
	}
}

func TestZeroWeightItemNeverDrawn(t *testing.T) {
	a, err := sampler.New([]string{"never", "always"}, []float64{0, 1})
	require.NoError(t, err)

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 10_000; i++ {
		require.Equal(t, "always", a.Sample(r))
	}
}

// TestSkewedDistribution draws from a skewed distribution and applies a
// chi-square goodness-of-fit test against the target weights.
func TestSkewedDistribution(t *testing.T) {
	items := []int{0, 1, 2, 3}
	weights := []float64{1, 2, 3, 4}
	a, err := sampler.New(items, weights)
	require.NoError(t, err)

	const draws = 100_000
	r := rand.New(rand.NewSource(3))
	counts := make([]float64, len(items))
	for i := 0; i < draws; i++ {
		counts[a.Sample(r)]++
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	var chi2 float64
	for i, w := range weights {
		expected := draws * w / total
		diff := counts[i] - expected
		chi2 += diff * diff / expected
	}

	// With 3 degrees of freedom, reject only far out in the tail; a correct
	// sampler fails this with probability 1e-3.
	dist := distuv.ChiSquared{K: float64(len(items) - 1)}
	require.Less(t, dist.CDF(chi2), 0.999, "chi2=%v counts=%v", chi2, counts)
}

// TestDeterministicConstruction verifies two samplers built from identical
// input produce identical streams under identical random sources.
func TestDeterministicConstruction(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	weights := []float64{0.1, 0.9, 2, 0.5, 1.5}

	a1, err := sampler.New(items, weights)
	require.NoError(t, err)
	a2, err := sampler.New(items, weights)
	require.NoError(t, err)

	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		require.Equal(t, a1.Sample(r1), a2.Sample(r2))
	}
}

// TestInputSlicesNotRetained ensures New copies its inputs.
func TestInputSlicesNotRetained(t *testing.T) {
	items := []string{"x", "y"}
	a, err := sampler.New(items, []float64{1, 1})
	require.NoError(t, err)

	items[0] = "mutated"
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		got := a.Sample(r)
		require.Contains(t, []string{"x", "y"}, got)
	}
}
