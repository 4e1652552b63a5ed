package transect

import (
	"cmp"
	"slices"
)

// Merge returns the maximal occupied runs covered by any interval, left to
// right. Intervals that merely touch (end == next start) share a run.
// The input is not reordered.
func Merge(intervals []Interval) []Span {
	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		return cmp.Compare(a.Start, b.Start)
	})

	var runs []Span
	for _, iv := range sorted {
		sp := iv.Span()
		if n := len(runs); n > 0 && runs[n-1].touches(sp) {
			runs[n-1] = runs[n-1].union(sp)
			continue
		}
		runs = append(runs, sp)
	}
	return runs
}

// Gaps synthesizes a bare-ground interval for every stretch of [0, length]
// left uncovered by intervals. With no intervals the whole transect is one
// gap.
func Gaps(intervals []Interval, length float64) []Interval {
	var gaps []Interval
	cursor := 0.0
	for _, run := range Merge(intervals) {
		if run.Start > cursor {
			gaps = append(gaps, Interval{Species: BareGround, Start: cursor, End: run.Start})
		}
		cursor = max(cursor, run.End)
	}
	if cursor < length {
		gaps = append(gaps, Interval{Species: BareGround, Start: cursor, End: length})
	}
	return gaps
}

// Normalize returns intervals, in their original order, followed by the
// synthesized bare-ground gaps. The occupied runs plus the gaps always
// cover exactly [0, length]; the plain sum of the result exceeds length by
// whatever the recorded intervals overlap each other.
func Normalize(intervals []Interval, length float64) []Interval {
	gaps := Gaps(intervals, length)
	out := make([]Interval, 0, len(intervals)+len(gaps))
	out = append(out, intervals...)
	return append(out, gaps...)
}
