// Package transect holds the line-intercept model: recorded intervals, the
// validator that admits them, the gap-filler that infers bare ground and the
// aggregator that turns either view into per-species coverage.
package transect

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultLength is the transect length in metres used when no configuration
// overrides it.
const DefaultLength = 50.0

// BareGround labels transect length not covered by any recorded interval.
const BareGround = "Bare Ground"

// Interval is one observation: Species was seen along [Start, End) metres.
type Interval struct {
	Species string  `json:"species" yaml:"species"`
	Start   float64 `json:"start" yaml:"start"`
	End     float64 `json:"end" yaml:"end"`
}

func (i Interval) Length() float64 {
	return i.End - i.Start
}

// RoundedLength is the length as displayed and exported, 2 decimals.
func (i Interval) RoundedLength() float64 {
	return Round(i.Length())
}

func (i Interval) Span() Span {
	return Span{Start: i.Start, End: i.End}
}

// IsBareGround reports whether the interval carries the bare-ground label.
// User-entered bare ground is indistinguishable from the inferred kind.
func (i Interval) IsBareGround() bool {
	return i.Species == BareGround
}

func (i Interval) String() string {
	return fmt.Sprintf("%s [%g, %g)", i.Species, i.Start, i.End)
}

// Round rounds to the 2 decimals used for every displayed length and
// percentage. It is never applied to interval boundaries.
func Round(x float64) float64 {
	return scalar.Round(x, 2)
}
