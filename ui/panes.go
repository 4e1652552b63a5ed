package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"transecta/layout"
	"transecta/render"
	"transecta/transect"
)

func (app *Application) formBox(dim layout.Dimensions) {
	title := fmt.Sprintf("Transect %s m · %d intervals", strconv.FormatFloat(app.session.Length, 'f', -1, 64), app.session.Len())
	if name := app.session.Site.Name; name != "" {
		title += " · " + name
	}
	inner := drawBox(app.screen, dim, DefaultStyle, title)
	if inner.Height <= 0 {
		return
	}

	x, y := inner.Origin.X, inner.Origin.Y
	right := inner.Origin.X + inner.Width
	for f := field(0); f < fieldCount; f++ {
		label := fieldNames[f] + ": "
		drawLine(app.screen, x, y, right-x, LightStyle, label)
		x += runewidth.StringWidth(label)

		width := 8
		if f == speciesField {
			width = 20
		}
		value := app.form.values[f]
		width = min(max(width, runewidth.StringWidth(value)+1), right-x)
		if width <= 0 {
			app.fieldAreas[f] = layout.Dimensions{}
			continue
		}
		area := layout.Dimensions{Origin: layout.Point{X: x, Y: y}, Width: width, Height: 1}
		app.fieldAreas[f] = area

		style := DefaultStyle.Underline(true)
		if f == app.form.focus && !app.commandMode {
			style = FocusStyle
		}
		fill(app.screen, area, style)
		drawLine(app.screen, x, y, width, style, value)
		if f == app.form.focus && !app.commandMode {
			app.screen.ShowCursor(min(x+runewidth.StringWidth(value), x+width-1), y)
		}
		x += width + 2
	}
}

// intervalBox lists recorded intervals, newest at the bottom.
func (app *Application) intervalBox(dim layout.Dimensions) {
	intervals := app.report.Intervals
	inner := drawBox(app.screen, dim, DefaultStyle, "Intervals")
	if inner.Height <= 0 {
		return
	}
	if len(intervals) == 0 {
		drawLine(app.screen, inner.Origin.X, inner.Origin.Y, inner.Width, LightStyle, "Nothing recorded yet")
		return
	}

	first := max(len(intervals)-inner.Height, 0)
	for i, iv := range intervals[first:] {
		line := fmt.Sprintf("%3d %-14s %6s %6s %6s", first+i+1, iv.Species,
			render.Metres(iv.Start), render.Metres(iv.End), render.Metres(iv.Length()))
		drawLine(app.screen, inner.Origin.X, inner.Origin.Y+i, inner.Width, DefaultStyle, line)
	}
}

// summaryBox shows normalized coverage, or the command list while help is
// toggled on.
func (app *Application) summaryBox(dim layout.Dimensions) {
	if app.showHelp {
		inner := drawBox(app.screen, dim, DefaultStyle, "Commands")
		if inner.Height <= 0 {
			return
		}
		text := strings.Join(app.commands.Usage(), "\n") +
			"\n\nTab/Shift-Tab field · Up/Down step · Enter record\nCtrl-Z undo · Ctrl-E export · : command · Esc quit"
		drawText(app.screen, inner.Origin.X, inner.Origin.Y,
			inner.Origin.X+inner.Width-1, inner.Origin.Y+inner.Height-1, DefaultStyle, text)
		return
	}

	rep := app.report
	inner := drawBox(app.screen, dim, DefaultStyle, "Coverage")
	if inner.Height <= 0 {
		return
	}
	x, y, w := inner.Origin.X, inner.Origin.Y, inner.Width
	bottom := inner.Origin.Y + inner.Height

	drawLine(app.screen, x, y, w, TitleStyle, fmt.Sprintf("%-16s %8s %5s %7s", "Species", "Total m", "n", "%"))
	y++
	for _, row := range rep.Normalized {
		if y >= bottom-2 {
			break
		}
		style := DefaultStyle
		if row.Species == transect.BareGround {
			style = LightStyle
		}
		drawLine(app.screen, x, y, w, style, fmt.Sprintf("%-16s %8s %5d %7s",
			row.Species, render.Metres(row.TotalLength), row.Count, render.Metres(row.CoveragePercent)))
		y++
	}

	y = max(y, bottom-2)
	if y < bottom {
		drawLine(app.screen, x, y, w, DefaultStyle, fmt.Sprintf("Vegetation %s m (%s%%)",
			render.Metres(rep.Vegetation), render.Metres(transect.Percent(rep.Vegetation, rep.Length))))
	}
	if y+1 < bottom {
		drawLine(app.screen, x, y+1, w, LightStyle, fmt.Sprintf("Bare ground %s m (%s%%)",
			render.Metres(rep.BareGround), render.Metres(transect.Percent(rep.BareGround, rep.Length))))
	}
}

func (app *Application) timelineBox(dim layout.Dimensions) {
	rep := app.report
	inner := drawBox(app.screen, dim, DefaultStyle, "Timeline")
	if inner.Height < 2 {
		return
	}

	labelWidth := 0
	for _, name := range app.catalog.All() {
		labelWidth = max(labelWidth, runewidth.StringWidth(name))
	}
	labelWidth = min(labelWidth, 16, inner.Width/3)
	width := inner.Width - labelWidth - 2
	if width <= 0 {
		return
	}

	lanes := render.Lanes(rep.Timeline, rep.Length, width)
	x := inner.Origin.X + labelWidth + 1
	rows := inner.Height - 2
	for i, lane := range lanes {
		if i >= rows {
			break
		}
		color := tcell.GetColor(string(render.Palette[i%len(render.Palette)]))
		if lane.Species == transect.BareGround {
			color = tcell.GetColor(string(render.BareColor))
		}
		y := inner.Origin.Y + i
		drawLine(app.screen, inner.Origin.X, y, labelWidth, DefaultStyle, lane.Species)
		drawLine(app.screen, x, y, width, DefaultStyle.Foreground(color), lane.Bar('█', '·'))
	}

	ruler, labels := render.Axis(rep.Length, render.Tick(rep.Length), width)
	bottom := inner.Origin.Y + inner.Height
	drawLine(app.screen, x, bottom-2, width+1, LightStyle, ruler)
	drawLine(app.screen, x, bottom-1, inner.Width-labelWidth-1, LightStyle, labels)
}

func (app *Application) statusBox(dim layout.Dimensions) {
	fill(app.screen, dim, DefaultStyle)
	x, y := dim.Origin.X, dim.Origin.Y
	switch {
	case app.commandMode:
		line := ":" + app.cmdline
		drawLine(app.screen, x, y, dim.Width, DefaultStyle, line)
		app.screen.ShowCursor(min(x+runewidth.StringWidth(line), x+dim.Width-1), y)
	case app.status != "":
		drawLine(app.screen, x, y, dim.Width, app.statusStyle, app.status)
	default:
		drawLine(app.screen, x, y, dim.Width, LightStyle, ":help for commands · Esc to quit")
	}
}
