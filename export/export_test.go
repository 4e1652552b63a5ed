package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"transecta/render"
	"transecta/transect"
)

func scenarioDoc(normalized bool) render.Document {
	rep := transect.BuildReport([]transect.Interval{
		{Species: "Jarilla", Start: 0, End: 10},
		{Species: "Coirón", Start: 20, End: 30},
	}, transect.DefaultLength)
	return render.Document{SessionID: "s1", Site: transect.Site{Name: "Lote 4"}, Report: rep, Normalized: normalized}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("csv", &buf, scenarioDoc(false)))
	assert.Equal(t, "species,start,end,length\nJarilla,0,10,10.00\nCoirón,20,30,10.00\n", buf.String())
}

func TestWriteCSVNormalized(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("csv", &buf, scenarioDoc(true)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Bare Ground,10,20,10.00", lines[3])
	assert.Equal(t, "Bare Ground,30,50,20.00", lines[4])
}

func TestWriteCSVQuotesLabels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIntervals(&buf, []transect.Interval{{Species: "Larrea, sp.", Start: 0.25, End: 1}}))
	assert.Equal(t, "species,start,end,length\n\"Larrea, sp.\",0.25,1,0.75\n", buf.String())
}

func TestWriteStructured(t *testing.T) {
	var y bytes.Buffer
	require.NoError(t, Write("yaml", &y, scenarioDoc(true)))
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &fromYAML))
	assert.Equal(t, "s1", fromYAML["session"])

	var j bytes.Buffer
	require.NoError(t, Write("json", &j, scenarioDoc(true)))
	var fromJSON struct {
		Report struct {
			BareGround float64 `json:"bare_ground_total"`
			Timeline   []any   `json:"timeline"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(j.Bytes(), &fromJSON))
	assert.Equal(t, 30.0, fromJSON.Report.BareGround)
	assert.Len(t, fromJSON.Report.Timeline, 4)
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write("pdf", &bytes.Buffer{}, scenarioDoc(false))
	assert.ErrorContains(t, err, `unknown export format "pdf"`)
	assert.Equal(t, []string{"csv", "json", "summary", "text", "yaml"}, Formats())
	assert.Equal(t, ".txt", Extension("text"))
	assert.Equal(t, ".txt", Extension("summary"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "transecta_intervalos.csv")
	require.NoError(t, WriteFile(path, "csv", scenarioDoc(false)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "species,start,end,length\n"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")

	assert.Error(t, WriteFile(filepath.Join(dir, "x.pdf"), "pdf", scenarioDoc(false)))
	_, err = os.Stat(filepath.Join(dir, "x.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("text", &buf, scenarioDoc(false)))
	assert.Contains(t, buf.String(), "Site: Lote 4")
	assert.Contains(t, buf.String(), "Recorded intervals")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("summary", &buf, scenarioDoc(true)))
	out := buf.String()
	assert.Contains(t, out, "Coverage (with bare ground)")
	assert.Contains(t, out, "Vegetation")
	assert.Contains(t, out, "Timeline")
	assert.NotContains(t, out, "Site: Lote 4")
	assert.NotContains(t, out, "Intervals with bare ground")
}

func TestReadIntervalsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	doc := scenarioDoc(false)
	require.NoError(t, Write("csv", &buf, doc))

	s := transect.NewSession(transect.DefaultLength, nil, nil)
	n, rejected, err := ReadIntervals(&buf, s)
	require.NoError(t, err)
	assert.Empty(t, rejected)
	assert.Equal(t, 2, n)
	assert.Equal(t, doc.Report.Intervals, s.Intervals())
}

func TestReadIntervalsRejectsRows(t *testing.T) {
	in := "Especie,Inicio,Fin,Longitud (m)\n" +
		"Jarilla,0,10,10\n" +
		"Broza,ten,12,2\n" +
		"Coirón,30,20,-10\n" +
		",1,2,1\n" +
		"Flechilla,45,60,15\n"
	s := transect.NewSession(transect.DefaultLength, nil, nil)
	n, rejected, err := ReadIntervals(strings.NewReader(in), s)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, rejected, 4)

	assert.Equal(t, 3, rejected[0].Line)
	assert.ErrorIs(t, rejected[1], transect.ErrInvalidRange)
	assert.ErrorIs(t, rejected[2], transect.ErrMissingSpecies)
	assert.ErrorIs(t, rejected[3], transect.ErrOutOfBounds)
	assert.Equal(t, 1, s.Len())
}

func TestReadIntervalsHeader(t *testing.T) {
	s := transect.NewSession(transect.DefaultLength, nil, nil)
	_, _, err := ReadIntervals(strings.NewReader("name,from\n"), s)
	assert.ErrorContains(t, err, `missing "species" column`)

	n, rejected, err := ReadIntervals(strings.NewReader(""), s)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, rejected)
}

func TestReadFileMissing(t *testing.T) {
	_, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), transect.NewSession(50, nil, nil))
	assert.Error(t, err)
}
