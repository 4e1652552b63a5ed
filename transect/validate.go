package transect

import "math"

// Catalog is the species list the validator consults. Unknown species are
// added, never rejected.
type Catalog interface {
	Add(name string) bool
	Contains(name string) bool
	All() []string
}

// Validate admits a candidate interval or explains why it cannot be
// recorded. Checks run in order: range, bounds, species. Overlap with
// already recorded intervals is always allowed.
//
// On success a species missing from catalog is added to it. catalog may be
// nil.
func Validate(species string, start, end, length float64, catalog Catalog) (Interval, error) {
	reject := func(reason error) (Interval, error) {
		return Interval{}, &RejectionError{Reason: reason, Species: species, Start: start, End: end, Length: length}
	}

	// negated so NaN on either side lands here
	if !(end > start) {
		return reject(ErrInvalidRange)
	}
	if start < 0 || end > length || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return reject(ErrOutOfBounds)
	}
	if species == "" {
		return reject(ErrMissingSpecies)
	}

	if catalog != nil && !catalog.Contains(species) {
		catalog.Add(species)
	}
	return Interval{Species: species, Start: start, End: end}, nil
}
