package transect

import (
	"math"
	"slices"

	"github.com/biogo/store/interval"
)

// centimetres per metre; the tree works on whole centimetres.
const resolution = 100

// floorCM and ceilCM widen a range outward so the tree never misses a
// candidate; exact answers come from the float check in collect.
func floorCM(m float64) int {
	return int(math.Floor(m * resolution))
}

func ceilCM(m float64) int {
	return int(math.Ceil(m * resolution))
}

// indexed is an interval as stored in the tree. UID is the position of the
// interval in the slice the index was built from.
type indexed struct {
	Start, End int
	UID        uintptr
}

func (i indexed) Overlap(b interval.IntRange) bool {
	// Half-open interval indexing.
	return i.End > b.Start && i.Start < b.End
}

func (i indexed) ID() uintptr {
	return i.UID
}

func (i indexed) Range() interval.IntRange {
	return interval.IntRange{Start: i.Start, End: i.End}
}

type window interval.IntRange

func (w window) Overlap(b interval.IntRange) bool {
	return b.End > w.Start && b.Start < w.End
}

// Index answers which intervals lie at a position along the transect.
type Index struct {
	tree      interval.IntTree
	intervals []Interval
}

func NewIndex(intervals []Interval) *Index {
	idx := &Index{intervals: slices.Clone(intervals)}
	for i, iv := range idx.intervals {
		start, end := floorCM(iv.Start), ceilCM(iv.End)
		if end <= start {
			end = start + 1
		}
		// Fast insertion with a single range adjustment below; errors only
		// arise from inverted ranges, which are excluded above.
		_ = idx.tree.Insert(indexed{Start: start, End: end, UID: uintptr(i)}, true)
	}
	idx.tree.AdjustRanges()
	return idx
}

// At returns the intervals covering pos, in recording order.
func (idx *Index) At(pos float64) []Interval {
	cm := floorCM(pos)
	return idx.collect(window{Start: cm, End: cm + 1}, func(iv Interval) bool {
		return iv.Start <= pos && pos < iv.End
	})
}

// Overlapping returns the intervals sharing any length with [start, end).
func (idx *Index) Overlapping(start, end float64) []Interval {
	if !(end > start) {
		return nil
	}
	return idx.collect(window{Start: floorCM(start), End: ceilCM(end)}, func(iv Interval) bool {
		return iv.End > start && iv.Start < end
	})
}

func (idx *Index) Len() int {
	return idx.tree.Len()
}

func (idx *Index) collect(q window, keep func(Interval) bool) []Interval {
	if q.End <= q.Start {
		return nil
	}
	hits := idx.tree.Get(q)
	ids := make([]int, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, int(h.ID()))
	}
	slices.Sort(ids)
	out := make([]Interval, 0, len(ids))
	for _, id := range ids {
		if iv := idx.intervals[id]; keep(iv) {
			out = append(out, iv)
		}
	}
	return out
}
