package rss

import (
	"github.com/n0madic/go-rss-varbvs/sparse"
)

// Correlation is the column access the sweep needs from SiRiS, the
// correlation matrix of the summary statistics scaled by their standard
// errors. *sparse.CSC and *sparse.DenseColumns implement it.
type Correlation interface {
	Dims() (r, c int)
	Column(j int) sparse.Vector
}

type sweepConfig struct {
	reverse     bool
	domainCheck bool
}

// Option configures a Sweep.
type Option func(*sweepConfig)

// WithReverse visits variables from p-1 down to 0 instead of 0 up to p-1.
func WithReverse(reverse bool) Option {
	return func(c *sweepConfig) {
		c.reverse = reverse
	}
}

// WithDomainCheck enables or disables validation of se, sigma_beta, logodds
// and alpha before the sweep. Enabled by default.
func WithDomainCheck(check bool) Option {
	return func(c *sweepConfig) {
		c.domainCheck = check
	}
}

// Sweep runs one pass of coordinate ascent over all variables, updating post
// in place. Each update sees the SiRiSr corrections of the updates before it.
//
// post.SiRiSr must equal SiRiS*r for the starting alpha and mu (all zeros for
// a cold start, see Posterior.Refresh for a warm one). Arguments are checked
// before anything is modified; on error post is left untouched.
func Sweep(siRiS Correlation, betahat, se, sigmaBeta, logodds []float64, post *Posterior, opts ...Option) error {
	cfg := sweepConfig{domainCheck: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := len(betahat)
	if post == nil {
		return ErrNilPosterior
	}
	err := checkLengths(p,
		namedSlice{"se", se},
		namedSlice{"sigma_beta", sigmaBeta},
		namedSlice{"logodds", logodds},
		namedSlice{"alpha", post.Alpha},
		namedSlice{"mu", post.Mu},
		namedSlice{"SiRiSr", post.SiRiSr},
	)
	if err != nil {
		return err
	}
	if err := checkSquare(siRiS, p); err != nil {
		return err
	}
	if cfg.domainCheck {
		if err := validateSweep(betahat, se, sigmaBeta, logodds, post); err != nil {
			return err
		}
	}

	for j := 0; j < p; j++ {
		i := j
		if cfg.reverse {
			i = p - 1 - j
		}
		post.Alpha[i], post.Mu[i] = CoordinateUpdate(Coordinate{
			Betahat:   betahat[i],
			SE:        se[i],
			SigmaBeta: sigmaBeta[i],
			LogOdds:   logodds[i],
			Alpha:     post.Alpha[i],
			Mu:        post.Mu[i],
			SiRiSr:    post.SiRiSr[i],
		}, siRiS.Column(i), post.SiRiSr)
	}
	return nil
}

func validateSweep(betahat, se, sigmaBeta, logodds []float64, post *Posterior) error {
	if err := checkFinite("betahat", betahat); err != nil {
		return err
	}
	if err := checkPositive("se", se); err != nil {
		return err
	}
	if err := checkPositive("sigma_beta", sigmaBeta); err != nil {
		return err
	}
	if err := checkFinite("logodds", logodds); err != nil {
		return err
	}
	if err := checkProbability("alpha", post.Alpha); err != nil {
		return err
	}
	if err := checkFinite("mu", post.Mu); err != nil {
		return err
	}
	return checkFinite("SiRiSr", post.SiRiSr)
}
