// Package rss implements the inner numerical engine of mean-field variational
// Bayes for sparse regression from summary statistics (RSS): the
// per-coordinate update, the coordinate ascent sweep, the evidence lower
// bound and the convergence helpers that an outer loop drives.
//
// All posterior buffers are owned by the caller and mutated in place. The
// package keeps no state between calls and does not log.
package rss

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Epsilon is the float64 machine epsilon. It floors the arguments of log and
// the denominators of relative errors so that probabilities of exactly 0 or 1
// stay finite.
const Epsilon = 0x1p-52

// Sigmoid returns 1/(1+exp(-x)) without overflow for large |x|.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// LogSigmoid returns log(Sigmoid(x)) = -log(1+exp(-x)) without overflow for large |x|.
func LogSigmoid(x float64) float64 {
	if x >= 0 {
		return -math.Log1p(math.Exp(-x))
	}
	return x - math.Log1p(math.Exp(x))
}

// BetaVar returns the variance of a spike-and-slab coefficient with inclusion
// probability p, conditional mean mu and conditional variance s.
func BetaVar(p, mu, s float64) float64 {
	return p * (s + (1-p)*mu*mu)
}

// BetaVarTo computes BetaVar elementwise into dst and returns it.
// If dst is nil a new slice is allocated.
func BetaVarTo(dst, p, mu, s []float64) []float64 {
	if len(p) != len(mu) || len(p) != len(s) {
		panic(ErrLength)
	}
	if dst == nil {
		dst = make([]float64, len(p))
	}
	if len(dst) != len(p) {
		panic(ErrLength)
	}
	for i := range p {
		dst[i] = BetaVar(p[i], mu[i], s[i])
	}
	return dst
}

// PosteriorVariance returns the conditional posterior variance of a
// coefficient with standard error se under a N(0, sigmaBeta^2) slab.
func PosteriorVariance(se, sigmaBeta float64) float64 {
	se2 := se * se
	sb2 := sigmaBeta * sigmaBeta
	return (se2 * sb2) / (se2 + sb2)
}

// PosteriorVarianceTo computes PosteriorVariance elementwise into dst.
func PosteriorVarianceTo(dst, se, sigmaBeta []float64) []float64 {
	if len(se) != len(sigmaBeta) {
		panic(ErrLength)
	}
	if dst == nil {
		dst = make([]float64, len(se))
	}
	for i := range se {
		dst[i] = PosteriorVariance(se[i], sigmaBeta[i])
	}
	return dst
}

// Q computes betahat/se^2 into dst, the linear term of the RSS likelihood.
func Q(dst, betahat, se []float64) []float64 {
	if len(betahat) != len(se) {
		panic(ErrLength)
	}
	if dst == nil {
		dst = make([]float64, len(se))
	}
	floats.MulTo(dst, se, se)
	floats.DivTo(dst, betahat, dst)
	return dst
}
