package rss

import (
	"errors"
	"fmt"
)

var (
	// ErrLength is the panic value of the elementwise helpers on mismatched slices.
	ErrLength = errors.New("rss: slice length mismatch")
	// ErrEmpty is returned when an operation receives zero variables.
	ErrEmpty = errors.New("rss: no variables")
	// ErrNilPosterior is returned when a sweep is given no posterior buffers.
	ErrNilPosterior = errors.New("rss: nil posterior")
	// ErrNilCorrelation is returned when no SiRiS matrix is given.
	ErrNilCorrelation = errors.New("rss: nil correlation matrix")
	// ErrUnsupportedVersion is returned when loading a snapshot of an unknown version.
	ErrUnsupportedVersion = errors.New("rss: unsupported snapshot version")
)

// DimensionError reports an argument whose length does not match the number
// of variables.
type DimensionError struct {
	Name string // argument name
	Got  int    // observed length
	Want int    // expected length
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("rss: %s has length %d, want %d", e.Name, e.Got, e.Want)
}

// DomainError reports a value outside the domain the update rule is defined on.
type DomainError struct {
	Name  string  // argument name
	Index int     // variable index
	Value float64 // offending value
	Rule  string  // violated condition
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("rss: %s[%d] = %g violates %s", e.Name, e.Index, e.Value, e.Rule)
}
