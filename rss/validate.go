package rss

import "math"

type namedSlice struct {
	name string
	data []float64
}

// checkLengths verifies that every slice has length p and that p is positive.
func checkLengths(p int, args ...namedSlice) error {
	if p == 0 {
		return ErrEmpty
	}
	for _, a := range args {
		if len(a.data) != p {
			return &DimensionError{Name: a.name, Got: len(a.data), Want: p}
		}
	}
	return nil
}

// checkPositive verifies that every value is finite and strictly positive.
func checkPositive(name string, x []float64) error {
	for i, v := range x {
		if !(v > 0) || math.IsInf(v, 0) {
			return &DomainError{Name: name, Index: i, Value: v, Rule: "0 < x < Inf"}
		}
	}
	return nil
}

// checkFinite verifies that every value is finite.
func checkFinite(name string, x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &DomainError{Name: name, Index: i, Value: v, Rule: "finite"}
		}
	}
	return nil
}

// checkProbability verifies that every value lies in [0, 1].
func checkProbability(name string, x []float64) error {
	for i, v := range x {
		if !(v >= 0 && v <= 1) {
			return &DomainError{Name: name, Index: i, Value: v, Rule: "0 <= x <= 1"}
		}
	}
	return nil
}

// checkSquare verifies that m is p x p.
func checkSquare(m Correlation, p int) error {
	if m == nil {
		return ErrNilCorrelation
	}
	r, c := m.Dims()
	if r != p {
		return &DimensionError{Name: "SiRiS rows", Got: r, Want: p}
	}
	if c != p {
		return &DimensionError{Name: "SiRiS columns", Got: c, Want: p}
	}
	return nil
}
