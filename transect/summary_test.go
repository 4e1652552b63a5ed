package transect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeOverlapDoubleCounts(t *testing.T) {
	rows := Summarize([]Interval{iv("Jarilla", 0, 5), iv("Jarilla", 3, 8)}, DefaultLength)
	require.Len(t, rows, 1)
	assert.Equal(t, SummaryRow{
		Species:         "Jarilla",
		TotalLength:     10,
		Count:           2,
		CoveragePercent: 20,
		MeanLength:      5,
	}, rows[0])
}

func TestSummarizeCaseSensitive(t *testing.T) {
	rows := Summarize([]Interval{iv("jarilla", 0, 1), iv("Jarilla", 1, 2), iv("Jarilla ", 2, 3)}, DefaultLength)
	assert.Len(t, rows, 3)
}

func TestSummarizeOrdering(t *testing.T) {
	rows := Summarize([]Interval{
		iv("Broza", 0, 1),
		iv("Coirón", 1, 5),
		iv("Jarilla", 5, 6),
		iv("Jarilla", 6, 7),
		iv("Flechilla", 7, 8),
	}, DefaultLength)

	var got []string
	for _, r := range rows {
		got = append(got, r.Species)
	}
	// Jarilla has the most occurrences; among single occurrences the larger
	// coverage wins and equal coverage keeps first appearance.
	assert.Equal(t, []string{"Jarilla", "Coirón", "Broza", "Flechilla"}, got)
}

func TestSummarizeRounding(t *testing.T) {
	rows := Summarize([]Interval{iv("A", 0, 0.1), iv("A", 0.1, 0.3), iv("A", 10, 10.333)}, DefaultLength)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.63, rows[0].TotalLength)
	assert.Equal(t, 1.26, rows[0].CoveragePercent)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, Summarize(nil, DefaultLength))
}

func TestRollup(t *testing.T) {
	veg, b := Rollup([]SummaryRow{{Species: "A", TotalLength: 12}}, DefaultLength)
	assert.Equal(t, 50.0, veg)
	assert.Equal(t, 0.0, b)

	veg, b = Rollup([]SummaryRow{{Species: "A", TotalLength: 12}, {Species: BareGround, TotalLength: 38}}, DefaultLength)
	assert.Equal(t, 12.0, veg)
	assert.Equal(t, 38.0, b)
}

func TestUserBareGroundSumsWithSynthesized(t *testing.T) {
	rows := Summarize(Normalize([]Interval{bare(0, 10), iv("Broza", 10, 20)}, DefaultLength), DefaultLength)
	var b SummaryRow
	for _, r := range rows {
		if r.Species == BareGround {
			b = r
		}
	}
	assert.Equal(t, 40.0, b.TotalLength)
	assert.Equal(t, 2, b.Count)
}

func TestPercentZeroLength(t *testing.T) {
	assert.Equal(t, 0.0, Percent(10, 0))
}
