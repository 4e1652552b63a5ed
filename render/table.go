// Package render turns transect reports into text: coverage tables, the
// vegetation/bare-ground rollup and a timeline chart. Styling goes through a
// lipgloss renderer bound to the destination, so files get plain text and
// terminals get colour.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"transecta/transect"
)

// Chart colours, one per species lane, reused cyclically.
var Palette = []lipgloss.Color{
	lipgloss.Color("#8BC34A"),
	lipgloss.Color("#4db6ac"),
	lipgloss.Color("#e57373"),
	lipgloss.Color("#ffd54f"),
	lipgloss.Color("#ff8a65"),
	lipgloss.Color("#2196F3"),
}

// BareColor is used for the bare-ground lane.
var BareColor = lipgloss.Color("#a1887f")

type Styles struct {
	Title lipgloss.Style
	Bold  lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Lane  func(i int, species string) lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38")).Underline(true),
		Bold:  r.NewStyle().Bold(true),
		Body:  r.NewStyle(),
		Muted: r.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Lane: func(i int, species string) lipgloss.Style {
			if species == transect.BareGround {
				return r.NewStyle().Foreground(BareColor)
			}
			return r.NewStyle().Foreground(Palette[i%len(Palette)])
		},
	}
}

// Table is a static table with a title, sized to its content.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// Right-aligned columns, by index.
	Numeric map[int]bool
}

func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

func (t *Table) View(styles Styles) string {
	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// padding on both sides
	for i := range widths {
		widths[i] += 2
	}

	cell := func(style lipgloss.Style, i int, s string) string {
		style = style.Padding(0, 1).Width(widths[i])
		if t.Numeric[i] {
			style = style.Align(lipgloss.Right)
		}
		return style.Render(s)
	}
	sep := styles.Muted.Render("|")

	for i, h := range t.Headers {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(cell(styles.Bold, i, h))
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	if len(t.Rows) == 0 {
		sb.WriteString(styles.Muted.Render(" (no data)"))
		sb.WriteString("\n")
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(cell(styles.Body, i, c))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Metres formats a length or position the way every report shows it.
func Metres(v float64) string {
	return strconv.FormatFloat(transect.Round(v), 'f', 2, 64)
}

func SummaryTable(title string, rows []transect.SummaryRow) *Table {
	t := &Table{
		Title:   title,
		Headers: []string{"Species", "Length (m)", "Count", "Mean (m)", "Coverage %"},
		Numeric: map[int]bool{1: true, 2: true, 3: true, 4: true},
	}
	for _, r := range rows {
		t.AddRow(r.Species, Metres(r.TotalLength), strconv.Itoa(r.Count), Metres(r.MeanLength), Metres(r.CoveragePercent))
	}
	return t
}

func IntervalTable(title string, intervals []transect.Interval) *Table {
	t := &Table{
		Title:   title,
		Headers: []string{"#", "Species", "Start (m)", "End (m)", "Length (m)"},
		Numeric: map[int]bool{0: true, 2: true, 3: true, 4: true},
	}
	for i, iv := range intervals {
		t.AddRow(strconv.Itoa(i+1), iv.Species, Metres(iv.Start), Metres(iv.End), Metres(iv.RoundedLength()))
	}
	return t
}

func RollupTable(r transect.Report) *Table {
	t := &Table{
		Title:   "Vegetation vs. bare ground",
		Headers: []string{"Category", "Length (m)", "Coverage %"},
		Numeric: map[int]bool{1: true, 2: true},
	}
	t.AddRow("Vegetation", Metres(r.Vegetation), Metres(transect.Percent(r.Vegetation, r.Length)))
	t.AddRow(transect.BareGround, Metres(r.BareGround), Metres(transect.Percent(r.BareGround, r.Length)))
	return t
}

// TimelineView draws the normalized intervals as coloured lanes over a
// 5 m ruler.
func TimelineView(styles Styles, r transect.Report, width int) string {
	lanes := Lanes(r.Timeline, r.Length, width)
	labelWidth := 0
	for _, l := range lanes {
		labelWidth = max(labelWidth, lipgloss.Width(l.Species))
	}

	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("Timeline (0-%sm)", strconv.FormatFloat(r.Length, 'f', -1, 64))))
	sb.WriteString("\n")
	for i, l := range lanes {
		label := styles.Body.Width(labelWidth).Render(l.Species)
		sb.WriteString(label + " " + styles.Lane(i, l.Species).Render(l.Bar('█', '·')) + "\n")
	}
	ruler, labels := Axis(r.Length, Tick(r.Length), width)
	pad := strings.Repeat(" ", labelWidth+1)
	sb.WriteString(pad + styles.Muted.Render(ruler) + "\n")
	sb.WriteString(pad + styles.Muted.Render(labels) + "\n")
	return sb.String()
}

// Tick keeps the 5 m ticks of a 50 m transect and scales for others.
func Tick(length float64) float64 {
	if length <= 50 {
		return 5
	}
	return length / 10
}

// Renderer writes report sections to one destination.
type Renderer struct {
	w      io.Writer
	styles Styles
	width  int
}

// New binds a renderer to w. Colour is used only when w is a terminal.
func New(w io.Writer, chartWidth int) *Renderer {
	return &Renderer{w: w, styles: NewStyles(lipgloss.NewRenderer(w)), width: chartWidth}
}

func (r *Renderer) Styles() Styles {
	return r.styles
}

func (r *Renderer) Write(sections ...string) error {
	for _, s := range sections {
		if _, err := io.WriteString(r.w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Summary prints the coverage table, rollup and timeline.
func (r *Renderer) Summary(rep transect.Report, normalized bool) error {
	rows, title := rep.Raw, "Coverage (recorded intervals)"
	if normalized {
		rows, title = rep.Normalized, "Coverage (with bare ground)"
	}
	return r.Write(
		SummaryTable(title, rows).View(r.styles),
		RollupTable(rep).View(r.styles),
		TimelineView(r.styles, rep, r.width),
	)
}
