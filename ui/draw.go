package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"transecta/layout"
)

var (
	DefaultStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	LightStyle   = DefaultStyle.Foreground(tcell.ColorGray)
	TitleStyle   = DefaultStyle.Bold(true)
	FocusStyle   = DefaultStyle.Reverse(true)
	ErrorStyle   = DefaultStyle.Foreground(tcell.ColorRed)
	OKStyle      = DefaultStyle.Foreground(tcell.ColorGreen)
)

// drawText writes text row by row inside the rectangle, wrapping at x2 and
// stopping at y2. It returns the position after the last rune.
func drawText(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, text string) (int, int) {
	row, col := y1, x1
	for _, r := range text {
		if r == '\n' {
			row++
			col = x1
			if row > y2 {
				break
			}
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if col+w-1 > x2 {
			row++
			col = x1
		}
		if row > y2 {
			break
		}
		s.SetContent(col, row, r, nil, style)
		col += w
	}
	return col, row
}

// drawLine writes a single line clipped to width cells.
func drawLine(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	if width <= 0 {
		return
	}
	text = runewidth.Truncate(text, width, "…")
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

// drawBox draws a border around the area with title in the top edge and
// returns the inner area.
func drawBox(s tcell.Screen, dim layout.Dimensions, style tcell.Style, title string) layout.Dimensions {
	x1, y1 := dim.Origin.X, dim.Origin.Y
	x2, y2 := x1+dim.Width-1, y1+dim.Height-1
	if x2 <= x1 || y2 <= y1 {
		return layout.Dimensions{Origin: dim.Origin}
	}

	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)

	if title != "" {
		drawLine(s, x1+2, y1, dim.Width-4, TitleStyle, " "+title+" ")
	}
	return layout.Dimensions{
		Origin: layout.Point{X: x1 + 1, Y: y1 + 1},
		Width:  dim.Width - 2,
		Height: dim.Height - 2,
	}
}

func fill(s tcell.Screen, dim layout.Dimensions, style tcell.Style) {
	for y := dim.Origin.Y; y < dim.Origin.Y+dim.Height; y++ {
		for x := dim.Origin.X; x < dim.Origin.X+dim.Width; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}
