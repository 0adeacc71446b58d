package rss

import (
	"encoding/gob"
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
)

// Posterior holds the variational parameters mutated by Sweep.
type Posterior struct {
	Alpha  []float64 // inclusion probabilities
	Mu     []float64 // conditional posterior means
	SiRiSr []float64 // SiRiS * (Alpha .* Mu)
}

// NewPosterior returns a cold-start posterior for p variables: alpha, mu and
// SiRiSr all zero.
func NewPosterior(p int) *Posterior {
	return &Posterior{
		Alpha:  make([]float64, p),
		Mu:     make([]float64, p),
		SiRiSr: make([]float64, p),
	}
}

// Len returns the number of variables.
func (p *Posterior) Len() int {
	return len(p.Alpha)
}

// R computes the posterior mean effects alpha*mu into dst and returns it.
func (p *Posterior) R(dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(p.Alpha))
	}
	return floats.MulTo(dst, p.Alpha, p.Mu)
}

// Refresh recomputes SiRiSr = SiRiS*r from alpha and mu. Use it after setting
// alpha and mu directly, or to discard accumulated rounding drift.
func (p *Posterior) Refresh(siRiS Correlation) error {
	n := p.Len()
	if err := checkLengths(n, namedSlice{"mu", p.Mu}, namedSlice{"SiRiSr", p.SiRiSr}); err != nil {
		return err
	}
	if err := checkSquare(siRiS, n); err != nil {
		return err
	}
	r := p.R(nil)
	for i := range p.SiRiSr {
		p.SiRiSr[i] = 0
	}
	for j, rj := range r {
		siRiS.Column(j).AddScaledTo(p.SiRiSr, rj)
	}
	return nil
}

// Clone returns a deep copy of p.
func (p *Posterior) Clone() *Posterior {
	return &Posterior{
		Alpha:  append([]float64(nil), p.Alpha...),
		Mu:     append([]float64(nil), p.Mu...),
		SiRiSr: append([]float64(nil), p.SiRiSr...),
	}
}

// PosteriorState is the serializable form of a Posterior.
type PosteriorState struct {
	Version int       `gob:"version"`
	P       int       `gob:"p"`
	Alpha   []float64 `gob:"alpha"`
	Mu      []float64 `gob:"mu"`
	SiRiSr  []float64 `gob:"siris_r"`
}

// Save serializes the posterior to gob format.
func (p *Posterior) Save(w io.Writer) error {
	state := PosteriorState{
		Version: 1,
		P:       p.Len(),
		Alpha:   p.Alpha,
		Mu:      p.Mu,
		SiRiSr:  p.SiRiSr,
	}
	return gob.NewEncoder(w).Encode(state)
}

// LoadPosterior deserializes a posterior written by Save.
func LoadPosterior(r io.Reader) (*Posterior, error) {
	var state PosteriorState
	if err := gob.NewDecoder(r).Decode(&state); err != nil {
		return nil, fmt.Errorf("rss: decode posterior: %w", err)
	}
	if state.Version != 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, state.Version)
	}

	if state.P <= 0 {
		return nil, fmt.Errorf("%w: snapshot has p = %d", ErrEmpty, state.P)
	}
	for _, f := range []struct {
		name string
		data []float64
	}{
		{"alpha", state.Alpha},
		{"mu", state.Mu},
		{"SiRiSr", state.SiRiSr},
	} {
		if len(f.data) != state.P {
			return nil, &DimensionError{Name: f.name, Got: len(f.data), Want: state.P}
		}
	}
	return &Posterior{Alpha: state.Alpha, Mu: state.Mu, SiRiSr: state.SiRiSr}, nil
}
