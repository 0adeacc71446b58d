package rss

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// negligible is the magnitude below which a variable is left out of MaxRelErr.
const negligible = 1e-6

// RelErr returns |p0-p1| / (|p0|+|p1|+Epsilon).
func RelErr(p0, p1 float64) float64 {
	return math.Abs(p0-p1) / (math.Abs(p0) + math.Abs(p1) + Epsilon)
}

// RelErrTo computes RelErr elementwise into dst and returns it.
func RelErrTo(dst, p0, p1 []float64) []float64 {
	if len(p0) != len(p1) {
		panic(ErrLength)
	}
	if dst == nil {
		dst = make([]float64, len(p0))
	}
	for i := range p0 {
		dst[i] = RelErr(p0[i], p1[i])
	}
	return dst
}

// MaxRelErr returns the largest relative change between two successive
// iterates of alpha and r. A variable contributes its alpha error only when
// |alpha[i]| > 1e-6 and its r error only when |r[i]| > 1e-6; the two terms
// are evaluated independently for every index.
func MaxRelErr(alpha, alpha0, r, r0 []float64) (float64, error) {
	err := checkLengths(len(alpha),
		namedSlice{"alpha0", alpha0},
		namedSlice{"r", r},
		namedSlice{"r0", r0},
	)
	if err != nil {
		return 0, err
	}

	var maxErr float64
	for i := range alpha {
		if math.Abs(alpha[i]) > negligible {
			maxErr = math.Max(maxErr, RelErr(alpha[i], alpha0[i]))
		}
		if math.Abs(r[i]) > negligible {
			maxErr = math.Max(maxErr, RelErr(r[i], r0[i]))
		}
	}
	return maxErr, nil
}

// ReestimateLogOdds returns the prior inclusion log-odds implied by the mean
// inclusion probability, log((mean+Epsilon)/(1-mean+Epsilon)).
func ReestimateLogOdds(alpha []float64) (float64, error) {
	if len(alpha) == 0 {
		return 0, ErrEmpty
	}
	pi := stat.Mean(alpha, nil)
	return math.Log((pi + Epsilon) / (1 - pi + Epsilon)), nil
}
