// Package species keeps the list of labels offered when recording an
// interval.
package species

import (
	"slices"
	"strings"
)

// Seed is the starting list used when no configuration provides one.
var Seed = []string{"Suelo Desnudo", "Broza", "Jarilla", "Coirón", "Flechilla"}

// Catalog is an ordered set of unique, case-sensitive species names. It only
// grows. When sorted is set the names are kept in lexical order, otherwise
// in insertion order.
type Catalog struct {
	names  []string
	sorted bool
}

func New(sorted bool, names ...string) *Catalog {
	c := &Catalog{sorted: sorted}
	for _, n := range names {
		c.Add(n)
	}
	return c
}

// Add inserts name and reports whether it was new. Blank names are ignored.
func (c *Catalog) Add(name string) bool {
	if strings.TrimSpace(name) == "" || c.Contains(name) {
		return false
	}
	c.names = append(c.names, name)
	if c.sorted {
		slices.Sort(c.names)
	}
	return true
}

func (c *Catalog) Contains(name string) bool {
	return slices.Contains(c.names, name)
}

func (c *Catalog) All() []string {
	return slices.Clone(c.names)
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// At returns the name at position i, wrapping around in both directions.
// It is used to cycle through the list from the keyboard.
func (c *Catalog) At(i int) string {
	if len(c.names) == 0 {
		return ""
	}
	i %= len(c.names)
	if i < 0 {
		i += len(c.names)
	}
	return c.names[i]
}

func (c *Catalog) IndexOf(name string) int {
	return slices.Index(c.names, name)
}
