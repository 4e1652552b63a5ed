package render

import (
	"math"
	"strconv"
	"strings"

	"transecta/transect"
)

// TimelineRow is one species lane of the timeline chart. Cells[i] is set
// when any interval of the species touches column i.
type TimelineRow struct {
	Species string
	Cells   []bool
}

// column maps a position in metres onto [0, width].
func column(pos, length float64, width int) int {
	c := int(math.Round(pos / length * float64(width)))
	return min(max(c, 0), width)
}

// Lanes lays intervals out on width columns spanning [0, length]. Lanes
// appear in order of first occurrence, with bare ground always last.
func Lanes(intervals []transect.Interval, length float64, width int) []TimelineRow {
	if width <= 0 || length <= 0 {
		return nil
	}
	var rows []TimelineRow
	lane := make(map[string]int)
	var bare *TimelineRow

	for _, iv := range intervals {
		var row *TimelineRow
		if iv.IsBareGround() {
			if bare == nil {
				bare = &TimelineRow{Species: iv.Species, Cells: make([]bool, width)}
			}
			row = bare
		} else {
			i, ok := lane[iv.Species]
			if !ok {
				i = len(rows)
				lane[iv.Species] = i
				rows = append(rows, TimelineRow{Species: iv.Species, Cells: make([]bool, width)})
			}
			row = &rows[i]
		}

		from, to := column(iv.Start, length, width), column(iv.End, length, width)
		// anything recorded gets at least one visible cell
		if to == from {
			if to < width {
				to++
			} else {
				from--
			}
		}
		for c := from; c < to; c++ {
			row.Cells[c] = true
		}
	}
	if bare != nil {
		rows = append(rows, *bare)
	}
	return rows
}

// Axis renders a ruler of width columns with a tick and label every tick
// metres, e.g. "0    5    10".
func Axis(length, tick float64, width int) (ruler, labels string) {
	if width <= 0 || length <= 0 || tick <= 0 {
		return "", ""
	}
	r := []rune(strings.Repeat("─", width+1))
	l := []rune(strings.Repeat(" ", width+8))
	last := -1
	for m := 0.0; m <= length+1e-9; m += tick {
		c := column(m, length, width)
		r[c] = '┼'
		label := strconv.FormatFloat(m, 'f', -1, 64)
		if c <= last {
			continue
		}
		copy(l[c:], []rune(label))
		last = c + len(label)
	}
	return string(r), strings.TrimRight(string(l), " ")
}

func (row TimelineRow) Bar(on, off rune) string {
	var sb strings.Builder
	for _, set := range row.Cells {
		if set {
			sb.WriteRune(on)
		} else {
			sb.WriteRune(off)
		}
	}
	return sb.String()
}
