package render

import (
	"fmt"
	"strings"

	"transecta/transect"
)

// Document is everything a printed transect report contains.
type Document struct {
	Site       transect.Site
	SessionID  string
	Report     transect.Report
	Normalized bool
}

func (r *Renderer) Document(doc Document) error {
	rep := doc.Report
	detail, detailTitle := rep.Intervals, "Recorded intervals"
	if doc.Normalized {
		detail, detailTitle = rep.Timeline, "Intervals with bare ground"
	}
	return r.Write(
		r.header(doc),
		SummaryTable("Coverage (recorded intervals)", rep.Raw).View(r.styles),
		SummaryTable("Coverage (with bare ground)", rep.Normalized).View(r.styles),
		RollupTable(rep).View(r.styles),
		IntervalTable(detailTitle, detail).View(r.styles),
		TimelineView(r.styles, rep, r.width),
	)
}

func (r *Renderer) header(doc Document) string {
	var sb strings.Builder
	sb.WriteString(r.styles.Title.Render("Line-intercept transect report"))
	sb.WriteString("\n")

	field := func(name, value string) {
		if value == "" {
			return
		}
		sb.WriteString(r.styles.Bold.Render(name+":") + " " + value + "\n")
	}
	site := doc.Site
	field("Site", site.Name)
	field("Observer", site.Observer)
	if !site.Date.IsZero() {
		field("Date", site.Date.Format("2006-01-02"))
	}
	if site.HasCoordinates() {
		field("Coordinates", fmt.Sprintf("%.6f, %.6f", *site.Latitude, *site.Longitude))
	}
	field("Transect length", Metres(doc.Report.Length)+" m")
	field("Intervals", fmt.Sprint(len(doc.Report.Intervals)))
	if runs := doc.Report.Occupied; len(runs) > 0 {
		occupied := 0.0
		for _, run := range runs {
			occupied += run.Len()
		}
		field("Occupied", fmt.Sprintf("%s m in %d runs", Metres(occupied), len(runs)))
	}
	field("Session", doc.SessionID)
	return sb.String()
}
