package rss

import (
	"errors"
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestRelErr(t *testing.T) {
	assert.Equal(t, 0.0, RelErr(0, 0))
	assert.InDelta(t, 1.0, RelErr(1, 0), 1e-15)
	assert.InDelta(t, 0.5/1.5, RelErr(1, 0.5), 1e-15)
	assert.Equal(t, RelErr(3, -2), RelErr(-2, 3))

	got := RelErrTo(nil, []float64{1, 2}, []float64{1, 0})
	assert.InDeltaSlice(t, []float64{0, 1}, got, 1e-15)
}

func TestMaxRelErrIdentity(t *testing.T) {
	alphaDist := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewPCG(5, 6)}
	rDist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(7, 8)}

	alpha := make([]float64, 100)
	r := make([]float64, 100)
	for i := range alpha {
		alpha[i], r[i] = alphaDist.Rand(), rDist.Rand()
	}
	alpha[3], r[4] = 0, 0

	got, err := MaxRelErr(alpha, alpha, r, r)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestMaxRelErr(t *testing.T) {
	alpha := []float64{0.5, 0.9, 0.2}
	alpha0 := []float64{0.5, 0.6, 0.2}
	r := []float64{1, 1, 2}
	r0 := []float64{1, 1, 1}

	got, err := MaxRelErr(alpha, alpha0, r, r0)
	require.NoError(t, err)
	// alpha[1]: 0.3/1.5 = 0.2, r[2]: 1/3
	assert.InDelta(t, 1.0/3, got, 1e-15)
}

func TestMaxRelErrSkipsNegligibleCurrentValues(t *testing.T) {
	// only the current arrays decide what is negligible, even when the
	// previous iterate was large
	alpha := []float64{0, 1e-7, 0.5}
	alpha0 := []float64{0.9, 0.8, 0.5}
	r := []float64{0, 0, 1}
	r0 := []float64{0.3, 5, 1}

	got, err := MaxRelErr(alpha, alpha0, r, r0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestMaxRelErrIndependentTerms(t *testing.T) {
	// index 0 has a large r error while its alpha is negligible; index 1 has
	// a negligible r and unchanged alpha. Neither term leaks into the other.
	alpha := []float64{1e-9, 0.4}
	alpha0 := []float64{0.7, 0.4}
	r := []float64{0.2, 1e-9}
	r0 := []float64{0.1, 0.9}

	got, err := MaxRelErr(alpha, alpha0, r, r0)
	require.NoError(t, err)
	assert.InDelta(t, 0.1/0.3, got, 1e-15)
}

func TestMaxRelErrDimensions(t *testing.T) {
	_, err := MaxRelErr([]float64{1, 2}, []float64{1}, []float64{1, 2}, []float64{1, 2})
	var de *DimensionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "alpha0", de.Name)

	_, err = MaxRelErr(nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func reestimate(t *testing.T, alpha []float64) float64 {
	t.Helper()
	lo, err := ReestimateLogOdds(alpha)
	require.NoError(t, err)
	return lo
}

func TestReestimateLogOdds(t *testing.T) {
	assert.InDelta(t, 0, reestimate(t, []float64{0.2, 0.8}), 1e-12)
	assert.InDelta(t, math.Log(0.25/0.75), reestimate(t, []float64{0, 0.5, 0.25, 0.25}), 1e-12)

	low := reestimate(t, []float64{0, 0, 0})
	high := reestimate(t, []float64{1, 1, 1})
	assert.False(t, math.IsInf(low, 0) || math.IsNaN(low))
	assert.False(t, math.IsInf(high, 0) || math.IsNaN(high))
	assert.Less(t, low, -30.0)
	assert.Greater(t, high, 30.0)

	_, err := ReestimateLogOdds(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReestimateLogOddsMonotone(t *testing.T) {
	dist := distuv.Uniform{Min: 0, Max: 1, Src: rand.NewPCG(9, 10)}
	means := make([]float64, 50)
	for i := range means {
		means[i] = dist.Rand()
	}
	sort.Float64s(means)

	prev := math.Inf(-1)
	for _, m := range means {
		// alpha vectors with the given mean but uneven entries
		got := reestimate(t, []float64{m * m, 2*m - m*m})
		require.Greater(t, got, prev, "mean %g", m)
		prev = got
	}
}
