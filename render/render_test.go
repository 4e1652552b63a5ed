package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transecta/transect"
)

func scenario() transect.Report {
	return transect.BuildReport([]transect.Interval{
		{Species: "Jarilla", Start: 0, End: 10},
		{Species: "Coirón", Start: 20, End: 30},
	}, transect.DefaultLength)
}

func TestLanes(t *testing.T) {
	lanes := Lanes(scenario().Timeline, 50, 10)
	require.Len(t, lanes, 3)

	assert.Equal(t, "Jarilla", lanes[0].Species)
	assert.Equal(t, "##........", lanes[0].Bar('#', '.'))
	assert.Equal(t, "....##....", lanes[1].Bar('#', '.'))
	assert.Equal(t, transect.BareGround, lanes[2].Species)
	assert.Equal(t, "..##..####", lanes[2].Bar('#', '.'))
}

func TestLanesTinyIntervalVisible(t *testing.T) {
	lanes := Lanes([]transect.Interval{{Species: "A", Start: 49.99, End: 50}}, 50, 10)
	assert.Equal(t, ".........#", lanes[0].Bar('#', '.'))
	assert.Nil(t, Lanes(nil, 50, 0))
}

func TestAxis(t *testing.T) {
	ruler, labels := Axis(50, 5, 20)
	assert.Equal(t, 21, len([]rune(ruler)))
	assert.True(t, strings.HasPrefix(labels, "0 "))
	assert.Contains(t, labels, "50")
	assert.Equal(t, '┼', []rune(ruler)[0])
	assert.Equal(t, '┼', []rune(ruler)[20])
}

func TestSummaryTablePlain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 50)
	require.NoError(t, r.Summary(scenario(), true))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "non-terminal output must be plain")
	assert.Contains(t, out, "Coverage (with bare ground)")
	assert.Contains(t, out, "Bare Ground")
	assert.Contains(t, out, "60.00")
	assert.Contains(t, out, "30.00")
	assert.Contains(t, out, "Vegetation")
}

func TestDocument(t *testing.T) {
	lat, lon := -36.62, -64.29
	var buf bytes.Buffer
	err := New(&buf, 40).Document(Document{
		Site: transect.Site{
			Name:      "Lote 4",
			Observer:  "field team",
			Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Latitude:  &lat,
			Longitude: &lon,
		},
		SessionID:  "abc",
		Report:     scenario(),
		Normalized: true,
	})
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{
		"Site: Lote 4",
		"Date: 2024-03-01",
		"Coordinates: -36.620000, -64.290000",
		"Transect length: 50.00 m",
		"Occupied: 20.00 m in 2 runs",
		"Intervals with bare ground",
		"Coirón",
	} {
		assert.Contains(t, out, want)
	}
}

func TestTableEmpty(t *testing.T) {
	out := SummaryTable("Empty", nil).View(New(&bytes.Buffer{}, 10).Styles())
	assert.Contains(t, out, "(no data)")
}

func TestMetres(t *testing.T) {
	assert.Equal(t, "0.30", Metres(0.1+0.2))
	assert.Equal(t, "39.55", Metres(50-10.45))
}
