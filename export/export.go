// Package export writes transect reports to files in the formats the field
// team exchanges: CSV interval lists, a printable text report, and YAML or
// JSON snapshots of the whole report. It also reads CSV lists back.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"transecta/render"
	"transecta/transect"
)

// chart width used by the text report
const documentWidth = 60

// Writer renders doc to w in one format.
type Writer func(w io.Writer, doc render.Document) error

var writers = map[string]Writer{}

// Register adds or replaces the writer for format.
func Register(format string, fn Writer) {
	writers[format] = fn
}

func init() {
	Register("csv", writeCSV)
	Register("text", writeText)
	Register("summary", writeSummary)
	Register("yaml", writeYAML)
	Register("json", writeJSON)
}

// Formats lists the registered format names.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extension is the file suffix conventionally used for format.
func Extension(format string) string {
	if format == "text" || format == "summary" {
		return ".txt"
	}
	return "." + format
}

func Write(format string, w io.Writer, doc render.Document) error {
	fn, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown export format %q (known: %v)", format, Formats())
	}
	return fn(w, doc)
}

// WriteFile exports doc to path. The file is written next to its final
// location and renamed into place, so a failed export never leaves a
// truncated file behind.
func WriteFile(path, format string, doc render.Document) error {
	if _, ok := writers[format]; !ok {
		return fmt.Errorf("unknown export format %q (known: %v)", format, Formats())
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	tmp := file.Name()
	defer os.Remove(tmp)

	if err := Write(format, file, doc); err != nil {
		file.Close()
		return fmt.Errorf("export %s: %w", format, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func writeText(w io.Writer, doc render.Document) error {
	return render.New(w, documentWidth).Document(doc)
}

// writeSummary is the short text form: coverage, rollup and timeline
// without the site header or interval detail.
func writeSummary(w io.Writer, doc render.Document) error {
	return render.New(w, documentWidth).Summary(doc.Report, doc.Normalized)
}

type snapshot struct {
	Session string          `json:"session,omitempty" yaml:"session,omitempty"`
	Site    transect.Site   `json:"site" yaml:"site"`
	Report  transect.Report `json:"report" yaml:"report"`
}

func newSnapshot(doc render.Document) snapshot {
	return snapshot{Session: doc.SessionID, Site: doc.Site, Report: doc.Report}
}

func writeYAML(w io.Writer, doc render.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newSnapshot(doc)); err != nil {
		return err
	}
	return enc.Close()
}

func writeJSON(w io.Writer, doc render.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newSnapshot(doc))
}
