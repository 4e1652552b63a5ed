package transect

import "fmt"

// [Start, End).
// A Span is a stretch of transect that is occupied by at least one
// interval, regardless of species.
//
// Consider:
//
// [0, 10) and [10, 20) touch, so their union is [0, 20)
//
// [0, 10) and [12, 20) do not, leaving [10, 12) uncovered
type Span struct {
	Start, End float64
}

func (s Span) Len() float64 {
	return s.End - s.Start
}

func (s Span) IsEmpty() bool {
	return s.Start >= s.End
}

// touches reports whether o starts inside s or exactly at its end.
func (s Span) touches(o Span) bool {
	return o.Start <= s.End
}

func (s Span) union(o Span) Span {
	if s.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return s
	}
	return Span{min(s.Start, o.Start), max(s.End, o.End)}
}

func (s Span) String() string {
	return fmt.Sprintf("[%g, %g)", s.Start, s.End)
}
