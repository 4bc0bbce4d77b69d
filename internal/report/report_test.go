package report

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projectdiscovery/inspector"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReports(t *testing.T) []*inspector.LineReport {
	t.Helper()
	c, err := inspector.New(nil)
	require.Nil(t, err)
	first := c.CheckLine("a.docx", "你好，世界", "こんにちは世界")
	second := c.CheckLine("b.docx", "你好", "こんにちは,")
	require.NotNil(t, first)
	require.NotNil(t, second)
	return []*inspector.LineReport{first, second}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	sink, err := NewCSV(nopCloser{&buf}, true)
	require.Nil(t, err)
	for _, r := range sampleReports(t) {
		require.Nil(t, sink.Write(r))
	}
	require.Nil(t, sink.Close())

	records, err := csv.NewReader(&buf).ReadAll()
	require.Nil(t, err)
	require.Len(t, records, 3)
	require.Equal(t, Header, records[0])
	require.Equal(t, []string{"你好，世界", "こんにちは世界", "， 1 > 0 (target) inconsistent\n", "a.docx"}, records[1])
}

func TestJSONL(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONL(nopCloser{&buf})
	for _, r := range sampleReports(t) {
		require.Nil(t, sink.Write(r))
	}
	require.Nil(t, sink.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var got inspector.LineReport
	require.Nil(t, json.Unmarshal([]byte(lines[1]), &got))
	require.Equal(t, "b.docx", got.DocumentID)
	require.Equal(t, []string{","}, got.WidthViolations)
}

func TestXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")
	sink, err := NewXLSX(path, false)
	require.Nil(t, err)
	reports := sampleReports(t)
	for _, r := range reports {
		require.Nil(t, sink.Write(r))
	}
	require.Nil(t, sink.Close())

	f, err := excelize.OpenFile(path)
	require.Nil(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.Nil(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, reports[0].Columns(), rows[0])
	require.Equal(t, reports[1].Columns(), rows[1])
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	sink, err := Open(&Options{Output: dir})
	require.Nil(t, err)
	_, ok := sink.(*XLSX)
	require.True(t, ok)
	require.Nil(t, sink.Close())
	require.FileExists(t, filepath.Join(dir, DefaultFileName))

	sink, err = Open(&Options{Output: filepath.Join(dir, "out.csv")})
	require.Nil(t, err)
	_, ok = sink.(*CSV)
	require.True(t, ok)
	require.Nil(t, sink.Close())

	sink, err = Open(&Options{Output: filepath.Join(dir, "out.txt"), Format: "JSONL"})
	require.Nil(t, err)
	_, ok = sink.(*JSONL)
	require.True(t, ok)
	require.Nil(t, sink.Close())

	_, err = Open(&Options{Format: "xlsx"})
	require.NotNil(t, err)
	_, err = Open(&Options{Output: filepath.Join(dir, "out.pdf"), Format: "pdf"})
	require.NotNil(t, err)
}

type memorySink struct {
	reports []*inspector.LineReport
	closed  bool
}

func (m *memorySink) Write(r *inspector.LineReport) error {
	m.reports = append(m.reports, r)
	return nil
}

func (m *memorySink) Close() error {
	m.closed = true
	return nil
}

func TestDeduped(t *testing.T) {
	reports := sampleReports(t)
	again := *reports[0]
	again.DocumentID = "c.docx"

	mem := &memorySink{}
	sink := NewDeduped(mem, 0)
	require.Nil(t, sink.Write(reports[0]))
	require.Nil(t, sink.Write(reports[1]))
	require.Nil(t, sink.Write(&again))
	require.Nil(t, sink.Close())

	require.True(t, mem.closed)
	require.Equal(t, reports, mem.reports)
	require.Equal(t, 1, sink.Dropped())
}
