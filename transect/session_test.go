package transect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRemoveLastEmpty(t *testing.T) {
	s := NewStore()
	_, ok := s.RemoveLast()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStoreOrderAndCopy(t *testing.T) {
	s := NewStore()
	s.Append(iv("B", 10, 20))
	s.Append(iv("A", 0, 10))

	all := s.All()
	all[0].Species = "mutated"
	assert.Equal(t, []Interval{iv("B", 10, 20), iv("A", 0, 10)}, s.All())

	last, ok := s.RemoveLast()
	require.True(t, ok)
	assert.Equal(t, iv("A", 0, 10), last)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, ok = s.Last()
	assert.False(t, ok)
}

func TestSessionEndToEnd(t *testing.T) {
	cat := &fakeCatalog{}
	s := NewSession(DefaultLength, cat, nil)

	_, err := s.Record("Jarilla", 0, 10)
	require.NoError(t, err)
	_, err = s.Record("Coirón", 20, 30)
	require.NoError(t, err)

	normalized := s.Normalized()
	assert.Equal(t, []Interval{
		iv("Jarilla", 0, 10),
		iv("Coirón", 20, 30),
		bare(10, 20),
		bare(30, 50),
	}, normalized)

	r := s.Report()
	assert.Equal(t, []SummaryRow{
		{Species: BareGround, TotalLength: 30, Count: 2, CoveragePercent: 60, MeanLength: 15},
		{Species: "Jarilla", TotalLength: 10, Count: 1, CoveragePercent: 20, MeanLength: 10},
		{Species: "Coirón", TotalLength: 10, Count: 1, CoveragePercent: 20, MeanLength: 10},
	}, r.Normalized)
	assert.Equal(t, 20.0, r.Vegetation)
	assert.Equal(t, 30.0, r.BareGround)
	assert.Len(t, r.Raw, 2)
	assert.Equal(t, []Span{{0, 10}, {20, 30}}, r.Occupied)
	assert.Equal(t, normalized, r.Timeline)
	assert.Equal(t, []string{"Jarilla", "Coirón"}, cat.names)
}

func TestSessionRejectionLeavesStore(t *testing.T) {
	s := NewSession(DefaultLength, nil, nil)
	_, err := s.Record("Jarilla", 0, 10)
	require.NoError(t, err)

	_, err = s.Record("Jarilla", 10, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Equal(t, 1, s.Len())
}

func TestSessionUndoAndSuggestions(t *testing.T) {
	s := NewSession(DefaultLength, nil, nil)
	assert.Equal(t, 0.0, s.SuggestStart())

	_, ok := s.Undo()
	assert.False(t, ok)

	_, err := s.Record("Broza", 0, 12.5)
	require.NoError(t, err)
	assert.Equal(t, 12.5, s.SuggestStart())
	assert.Equal(t, 13.0, s.SuggestEnd(12.5, 0.5))
	assert.Equal(t, 50.0, s.SuggestEnd(49.8, 0.5))

	undone, ok := s.Undo()
	require.True(t, ok)
	assert.Equal(t, "Broza", undone.Species)
	assert.Equal(t, 0, s.Len())
}

func TestReportIsSnapshot(t *testing.T) {
	s := NewSession(DefaultLength, nil, nil)
	_, err := s.Record("Broza", 0, 5)
	require.NoError(t, err)

	r := s.Report()
	s.Clear()

	assert.Len(t, r.Intervals, 1)
	assert.Equal(t, []Interval{bare(0, 50)}, s.Normalized())
	assert.NotEmpty(t, s.ID)
}

func TestSiteCoordinates(t *testing.T) {
	lat, lon := -36.6, -64.3
	assert.False(t, Site{Latitude: &lat}.HasCoordinates())
	assert.True(t, Site{Latitude: &lat, Longitude: &lon}.HasCoordinates())
}
