package transect

import (
	"errors"
	"fmt"
)

// Rejection reasons. A rejected interval never reaches the Store.
var (
	// ErrInvalidRange: end is not strictly greater than start.
	ErrInvalidRange = errors.New("invalid range")
	// ErrOutOfBounds: start below zero or end beyond the transect length.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrMissingSpecies: no species label was given.
	ErrMissingSpecies = errors.New("missing species")
)

// RejectionError carries the candidate that failed validation. It matches
// its Reason with errors.Is.
type RejectionError struct {
	Reason  error
	Species string
	Start   float64
	End     float64
	Length  float64
}

func (e *RejectionError) Error() string {
	switch e.Reason {
	case ErrInvalidRange:
		return fmt.Sprintf("%v: end %g must be greater than start %g", e.Reason, e.End, e.Start)
	case ErrOutOfBounds:
		return fmt.Sprintf("%v: [%g, %g) must lie within [0, %g]", e.Reason, e.Start, e.End, e.Length)
	default:
		return e.Reason.Error()
	}
}

func (e *RejectionError) Unwrap() error {
	return e.Reason
}

// Reason returns the sentinel behind err, or nil when err is not a
// validation rejection.
func Reason(err error) error {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason
	}
	return nil
}
