package rss

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// IntKLBeta returns the coefficient part of the evidence lower bound: minus
// the KL divergence of the slab N(mu, sigmaSquare) from the prior slab
// N(0, sigmaBetaSquare), weighted by alpha, plus the entropy of the inclusion
// indicators. Summed over all variables. The result is finite for alpha in
// [0, 1], sigmaSquare >= 0 and sigmaBetaSquare > 0.
func IntKLBeta(alpha, mu, sigmaSquare []float64, sigmaBetaSquare float64) float64 {
	if len(alpha) != len(mu) || len(alpha) != len(sigmaSquare) {
		panic(ErrLength)
	}
	var logRatio, quad, ent1, ent0 float64
	for i, a := range alpha {
		s := sigmaSquare[i]
		// 0*log(0) is taken as 0; a zero posterior variance is floored at Epsilon.
		if a != 0 {
			logRatio += a * math.Log(math.Max(s/sigmaBetaSquare, Epsilon))
		}
		quad += a * (s + mu[i]*mu[i])
		ent1 += a * math.Log(a+Epsilon)
		ent0 += (1 - a) * math.Log(1-a+Epsilon)
	}
	t := floats.Sum(alpha) + logRatio
	return 0.5*(t-quad/sigmaBetaSquare) - ent1 - ent0
}

// IntGamma returns the inclusion prior part of the evidence lower bound,
// sum of (alpha_i-1)*logodds + log(sigmoid(logodds)).
func IntGamma(logodds float64, alpha []float64) float64 {
	p := float64(len(alpha))
	return logodds*(floats.Sum(alpha)-p) + p*LogSigmoid(logodds)
}

// KLDivergence returns the KL divergence of the variational spike-and-slab
// posterior from the spike-and-slab prior with slab variance sigmaBetaSquare
// and inclusion log-odds logodds. It is non-negative up to the Epsilon floor.
func KLDivergence(alpha, mu, sigmaSquare []float64, sigmaBetaSquare, logodds float64) float64 {
	return -(IntKLBeta(alpha, mu, sigmaSquare, sigmaBetaSquare) + IntGamma(logodds, alpha))
}
