package ui

import (
	"math"
	"strconv"
	"strings"

	"transecta/transect"
)

type field int

const (
	speciesField field = iota
	startField
	endField
	fieldCount
)

var fieldNames = [fieldCount]string{"Species", "Start (m)", "End (m)"}

// form is the entry line. Values are kept as text so partial numbers can
// be typed; they are parsed on submit.
type form struct {
	values [fieldCount]string
	focus  field
}

func formatMetres(v float64) string {
	return strconv.FormatFloat(transect.Round(v), 'f', -1, 64)
}

func (f *form) next() {
	f.focus = (f.focus + 1) % fieldCount
}

func (f *form) prev() {
	f.focus = (f.focus + fieldCount - 1) % fieldCount
}

func (f *form) insert(r rune) {
	if f.focus != speciesField && !strings.ContainsRune("0123456789.,-", r) {
		return
	}
	if r == ',' {
		r = '.'
	}
	f.values[f.focus] += string(r)
}

func (f *form) backspace() {
	v := []rune(f.values[f.focus])
	if len(v) > 0 {
		f.values[f.focus] = string(v[:len(v)-1])
	}
}

// step nudges a numeric field by delta, keeping it inside [0, length].
func (f *form) step(delta, length float64) {
	if f.focus == speciesField {
		return
	}
	v, _ := strconv.ParseFloat(f.values[f.focus], 64)
	v = min(max(transect.Round(v+delta), 0), length)
	f.values[f.focus] = formatMetres(v)
}

func (f *form) setRange(start, end float64) {
	f.values[startField] = formatMetres(start)
	f.values[endField] = formatMetres(end)
}

func (f *form) species() string {
	return strings.TrimSpace(f.values[speciesField])
}

// parse reads the numeric fields. An unparsable value becomes NaN, which
// the validator rejects as an invalid range.
func (f *form) parse() (start, end float64) {
	parse := func(s string) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}
	return parse(f.values[startField]), parse(f.values[endField])
}
