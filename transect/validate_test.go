package transect

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog records Add calls.
type fakeCatalog struct {
	names []string
}

func (c *fakeCatalog) Add(name string) bool {
	if c.Contains(name) {
		return false
	}
	c.names = append(c.names, name)
	return true
}

func (c *fakeCatalog) Contains(name string) bool {
	for _, n := range c.names {
		if n == name {
			return true
		}
	}
	return false
}

func (c *fakeCatalog) All() []string { return c.names }

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name       string
		species    string
		start, end float64
		want       error
	}{
		{"end before start", "X", 10, 5, ErrInvalidRange},
		{"zero length", "X", 5, 5, ErrInvalidRange},
		{"NaN start", "X", math.NaN(), 5, ErrInvalidRange},
		{"NaN end", "X", 0, math.NaN(), ErrInvalidRange},
		{"negative start", "X", -1, 5, ErrOutOfBounds},
		{"past the end", "X", 45, 50.01, ErrOutOfBounds},
		{"infinite end", "X", 0, math.Inf(1), ErrOutOfBounds},
		{"empty species", "", 0, 5, ErrMissingSpecies},
		{"range checked before species", "", 10, 5, ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &fakeCatalog{}
			_, err := Validate(tt.species, tt.start, tt.end, DefaultLength, cat)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
			assert.Equal(t, tt.want, Reason(err))
			assert.Empty(t, cat.names, "catalog must not grow on rejection")
		})
	}
}

func TestValidateAcceptsBoundsAndExtendsCatalog(t *testing.T) {
	cat := &fakeCatalog{names: []string{"Jarilla"}}

	got, err := Validate("Jarilla", 0, 50, DefaultLength, cat)
	require.NoError(t, err)
	assert.Equal(t, iv("Jarilla", 0, 50), got)
	assert.Equal(t, []string{"Jarilla"}, cat.names)

	_, err = Validate("Molle", 1, 2, DefaultLength, cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jarilla", "Molle"}, cat.names)
}

func TestValidateNilCatalog(t *testing.T) {
	_, err := Validate("Molle", 1, 2, DefaultLength, nil)
	assert.NoError(t, err)
}

func TestRejectionErrorMessage(t *testing.T) {
	_, err := Validate("X", -1, 5, DefaultLength, nil)
	assert.EqualError(t, err, "out of bounds: [-1, 5) must lie within [0, 50]")
	assert.Nil(t, Reason(errors.New("other")))
}
