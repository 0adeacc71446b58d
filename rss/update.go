package rss

import (
	"math"

	"github.com/n0madic/go-rss-varbvs/sparse"
)

// Coordinate holds the inputs of a single coordinate update.
type Coordinate struct {
	Betahat   float64 // effect estimate
	SE        float64 // standard error, > 0
	SigmaBeta float64 // prior slab standard deviation, > 0
	LogOdds   float64 // prior inclusion log-odds
	Alpha     float64 // current inclusion probability
	Mu        float64 // current conditional posterior mean
	SiRiSr    float64 // current entry of SiRiS*r for this variable
}

// CoordinateUpdate performs the mean-field update of one variable and returns
// its new inclusion probability and conditional mean. col is the variable's
// column of SiRiS. siRiSr is updated in place on the support of col so that it
// equals SiRiS*r for the new r.
//
// SE and SigmaBeta must be positive; this is not checked.
func CoordinateUpdate(c Coordinate, col sparse.Vector, siRiSr []float64) (alpha, mu float64) {
	se2 := c.SE * c.SE
	sb2 := c.SigmaBeta * c.SigmaBeta
	s := (se2 * sb2) / (se2 + sb2)

	// r/se2 adds back the variable's own term that SiRiSr already contains.
	r := c.Alpha * c.Mu
	mu = s * (c.Betahat/se2 + r/se2 - c.SiRiSr)

	ssr := mu * mu / s
	alpha = Sigmoid(c.LogOdds + 0.5*(math.Log(s/sb2)+ssr))

	col.AddScaledTo(siRiSr, alpha*mu-r)
	return alpha, mu
}
