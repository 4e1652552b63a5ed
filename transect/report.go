package transect

import "slices"

// Report is a snapshot of everything the renderers and exporters show.
// It owns copies of its data; later Store changes do not affect it.
type Report struct {
	Length     float64      `json:"length" yaml:"length"`
	Intervals  []Interval   `json:"intervals" yaml:"intervals"`
	Raw        []SummaryRow `json:"raw_summary" yaml:"raw_summary"`
	Normalized []SummaryRow `json:"normalized_summary" yaml:"normalized_summary"`
	Vegetation float64      `json:"vegetation_total" yaml:"vegetation_total"`
	BareGround float64      `json:"bare_ground_total" yaml:"bare_ground_total"`
	// Timeline is the normalized interval set: recorded intervals in entry
	// order followed by inferred bare ground.
	Timeline []Interval `json:"timeline" yaml:"timeline"`
	Occupied []Span     `json:"-" yaml:"-"`
}

// BuildReport derives a Report from intervals. It has no side effects and
// can be called as often as needed.
func BuildReport(intervals []Interval, length float64) Report {
	normalized := Normalize(intervals, length)
	rows := Summarize(normalized, length)
	vegetation, bare := Rollup(rows, length)
	return Report{
		Length:     length,
		Intervals:  slices.Clone(intervals),
		Raw:        Summarize(intervals, length),
		Normalized: rows,
		Vegetation: vegetation,
		BareGround: bare,
		Timeline:   normalized,
		Occupied:   Merge(intervals),
	}
}
