package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"transecta/render"
	"transecta/transect"
)

var header = []string{"species", "start", "end", "length"}

// aliases accepts the Spanish headers of older field sheets.
var aliases = map[string]string{
	"especie": "species",
	"inicio":  "start",
	"fin":     "end",
}

func writeCSV(w io.Writer, doc render.Document) error {
	rows := doc.Report.Intervals
	if doc.Normalized {
		rows = doc.Report.Timeline
	}
	return WriteIntervals(w, rows)
}

// WriteIntervals writes one CSV row per interval, in the given order, under
// a species,start,end,length header.
func WriteIntervals(w io.Writer, intervals []transect.Interval) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, iv := range intervals {
		record := []string{
			iv.Species,
			strconv.FormatFloat(iv.Start, 'f', -1, 64),
			strconv.FormatFloat(iv.End, 'f', -1, 64),
			render.Metres(iv.Length()),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RowError reports a CSV line that could not be recorded.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Recorder is what an import feeds rows into; *transect.Session satisfies
// it.
type Recorder interface {
	Record(species string, start, end float64) (transect.Interval, error)
}

// ReadIntervals loads a CSV written by WriteIntervals into rec. Columns are
// found by header name, so extra columns and any order are accepted; the
// length column is ignored and recomputed. Rows that fail to parse or
// validate are skipped and returned; an error is returned only when the
// input itself cannot be read.
func ReadIntervals(r io.Reader, rec Recorder) (recorded int, rejected []RowError, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil, nil
	}
	if err != nil {
		return 0, nil, fmt.Errorf("import: %w", err)
	}
	col := make(map[string]int, len(head))
	for i, h := range head {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if alias, ok := aliases[name]; ok {
			name = alias
		}
		col[name] = i
	}
	for _, name := range header[:3] {
		if _, ok := col[name]; !ok {
			return 0, nil, fmt.Errorf("import: missing %q column", name)
		}
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				rejected = append(rejected, RowError{Line: perr.Line, Err: perr.Err})
				continue
			}
			return recorded, rejected, fmt.Errorf("import: %w", err)
		}
		line, _ := cr.FieldPos(0)

		field := func(name string) string {
			if i := col[name]; i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		start, err := strconv.ParseFloat(field("start"), 64)
		if err != nil {
			rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("start: %w", err)})
			continue
		}
		end, err := strconv.ParseFloat(field("end"), 64)
		if err != nil {
			rejected = append(rejected, RowError{Line: line, Err: fmt.Errorf("end: %w", err)})
			continue
		}
		if _, err := rec.Record(field("species"), start, end); err != nil {
			rejected = append(rejected, RowError{Line: line, Err: err})
			continue
		}
		recorded++
	}
	return recorded, rejected, nil
}

// ReadFile imports the CSV at path.
func ReadFile(path string, rec Recorder) (int, []RowError, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer file.Close()
	return ReadIntervals(file, rec)
}
