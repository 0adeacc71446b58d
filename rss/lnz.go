package rss

import (
	"gonum.org/v1/gonum/floats"
)

// LnZ returns the variational lower bound on the log evidence.
//
// q is betahat/se^2, r is alpha*mu, siRiSr is SiRiS*r, seSquare holds the
// squared standard errors and s the conditional posterior variances. sigmaBeta
// and logodds are the prior slab standard deviation and inclusion log-odds.
func LnZ(q, r, siRiSr []float64, logodds float64, seSquare, alpha, mu, s []float64, sigmaBeta float64) (float64, error) {
	err := checkLengths(len(q),
		namedSlice{"r", r},
		namedSlice{"SiRiSr", siRiSr},
		namedSlice{"se_square", seSquare},
		namedSlice{"alpha", alpha},
		namedSlice{"mu", mu},
		namedSlice{"s", s},
	)
	if err != nil {
		return 0, err
	}

	lnz := floats.Dot(q, r) - 0.5*floats.Dot(r, siRiSr) + IntGamma(logodds, alpha)

	var penalty float64
	for i, se2 := range seSquare {
		penalty += BetaVar(alpha[i], mu[i], s[i]) / se2
	}
	lnz -= 0.5 * penalty

	lnz += IntKLBeta(alpha, mu, s, sigmaBeta*sigmaBeta)
	return lnz, nil
}
