package transect

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SummaryRow is the coverage of one species label over a set of intervals.
type SummaryRow struct {
	Species         string  `json:"species" yaml:"species"`
	TotalLength     float64 `json:"total_length" yaml:"total_length"`
	Count           int     `json:"count" yaml:"count"`
	CoveragePercent float64 `json:"coverage_percent" yaml:"coverage_percent"`
	MeanLength      float64 `json:"mean_length" yaml:"mean_length"`
}

// Summarize groups intervals by exact species label. TotalLength is the sum
// of lengths, so overlapping intervals of one species count twice.
//
// Rows are ordered by Count descending, then CoveragePercent descending;
// remaining ties keep the order in which species first appear.
func Summarize(intervals []Interval, length float64) []SummaryRow {
	var order []string
	lengths := make(map[string][]float64)
	for _, iv := range intervals {
		if _, seen := lengths[iv.Species]; !seen {
			order = append(order, iv.Species)
		}
		lengths[iv.Species] = append(lengths[iv.Species], iv.Length())
	}

	rows := make([]SummaryRow, 0, len(order))
	for _, species := range order {
		ls := lengths[species]
		total := Round(floats.Sum(ls))
		rows = append(rows, SummaryRow{
			Species:         species,
			TotalLength:     total,
			Count:           len(ls),
			CoveragePercent: Percent(total, length),
			MeanLength:      Round(stat.Mean(ls, nil)),
		})
	}

	slices.SortStableFunc(rows, func(a, b SummaryRow) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(b.CoveragePercent, a.CoveragePercent)
	})
	return rows
}

// Percent expresses part as a rounded percentage of the transect length.
func Percent(part, length float64) float64 {
	if length <= 0 {
		return 0
	}
	return Round(part / length * 100)
}

// Rollup splits the transect into vegetation and bare ground. bare is the
// total of the bare-ground row, user-entered and synthesized alike;
// vegetation is what remains of length.
func Rollup(rows []SummaryRow, length float64) (vegetation, bare float64) {
	for _, row := range rows {
		if row.Species == BareGround {
			bare = row.TotalLength
			break
		}
	}
	return Round(length - bare), bare
}
