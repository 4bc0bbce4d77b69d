package document

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeDOCX writes a minimal .docx whose body holds the given tables
func writeDOCX(t *testing.T, path string, tables ...[][]string) {
	t.Helper()
	var body strings.Builder
	for _, tbl := range tables {
		body.WriteString("<w:tbl><w:tblPr/>")
		for _, row := range tbl {
			body.WriteString("<w:tr>")
			for _, cell := range row {
				body.WriteString("<w:tc><w:tcPr/>")
				for _, para := range strings.Split(cell, "\n") {
					fmt.Fprintf(&body, `<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, para)
				}
				body.WriteString("</w:tc>")
			}
			body.WriteString("</w:tr>")
		}
		body.WriteString("</w:tbl><w:p/>")
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() +
		`</w:body></w:document>`

	f, err := os.Create(path)
	require.Nil(t, err)
	defer f.Close()
	zw := zip.NewWriter(f)
	w, err := zw.Create(documentPart)
	require.Nil(t, err)
	_, err = w.Write([]byte(doc))
	require.Nil(t, err)
	require.Nil(t, zw.Close())
}

func reviewForm() [][][]string {
	return [][][]string{
		{{"meta"}},
		{{"#", "源文", "訳文"}, {"1", "标题，一", "タイトル一"}},
		{{"#", "源文", "訳文"}, {"1", "你好，世界", "こんにちは世界"}, {"2", "第二\n段落", "第二"}},
		{{"notes"}},
		{{"sign"}},
	}
}

func TestDOCXRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.docx")
	writeDOCX(t, path, reviewForm()...)

	pairs, err := NewDOCX(nil).Read(context.Background(), path)
	require.Nil(t, err)
	require.Equal(t, []Pair{
		{Source: "标题，一", Target: "タイトル一", Table: 2, Row: 2},
		{Source: "你好，世界", Target: "こんにちは世界", Table: 3, Row: 2},
		{Source: "第二\n段落", Target: "第二", Table: 3, Row: 3},
	}, pairs)
}

func TestDOCXUnexpectedLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.docx")
	writeDOCX(t, path, reviewForm()[:3]...)

	_, err := NewDOCX(nil).Read(context.Background(), path)
	require.EqualError(t, err, "there are 3 tables")

	layout := DefaultLayout
	layout.Tables = 0
	pairs, err := NewDOCX(&layout).Read(context.Background(), path)
	require.Nil(t, err)
	require.Len(t, pairs, 3)

	layout.SourceColumn = 7
	_, err = NewDOCX(&layout).Read(context.Background(), path)
	require.NotNil(t, err)
}

func TestDOCXNotADocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	require.Nil(t, os.WriteFile(path, []byte("not a zip"), 0644))
	_, err := NewDOCX(nil).Read(context.Background(), path)
	require.NotNil(t, err)
}

func TestXLSXRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.Nil(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"source", "target"}))
	require.Nil(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"你好，世界", "こんにちは世界"}))
	require.Nil(t, f.SetSheetRow(sheet, "A4", &[]interface{}{"只有源文"}))
	require.Nil(t, f.SaveAs(path))
	require.Nil(t, f.Close())

	pairs, err := NewXLSX(nil).Read(context.Background(), path)
	require.Nil(t, err)
	require.Equal(t, []Pair{
		{Source: "你好，世界", Target: "こんにちは世界", Row: 2},
		{Source: "只有源文", Target: "", Row: 4},
	}, pairs)
}

func TestTSVRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pairs.tsv")
	require.Nil(t, os.WriteFile(path, []byte("\ufeff你好，世界\tこんにちは世界\r\n\n公司\t会社\n"), 0644))

	pairs, err := NewTSV().Read(context.Background(), path)
	require.Nil(t, err)
	require.Equal(t, []Pair{
		{Source: "你好，世界", Target: "こんにちは世界", Row: 1},
		{Source: "公司", Target: "会社", Row: 3},
	}, pairs)

	bad := filepath.Join(dir, "bad.tsv")
	require.Nil(t, os.WriteFile(bad, []byte("a\tb\tc\n"), 0644))
	_, err = NewTSV().Read(context.Background(), bad)
	require.NotNil(t, err)
}

func TestReadersDispatch(t *testing.T) {
	readers := NewReaders(nil, nil)
	require.Equal(t, []string{".docx", ".tsv", ".xlsx"}, readers.Extensions())
	require.True(t, readers.Supports("A.DOCX"))
	require.False(t, readers.Supports("a.doc"))

	_, err := readers.Read(context.Background(), "a.pdf")
	require.NotNil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = readers.Read(ctx, "a.tsv")
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"a.docx",
		"nested/b.xlsx",
		"nested/deeper/c.tsv",
		"nested/~$a.docx",
		"nested/.hidden.docx",
		".git/d.docx",
		"notes.txt",
		"old.doc",
	}
	for _, name := range files {
		path := filepath.Join(dir, name)
		require.Nil(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.Nil(t, os.WriteFile(path, []byte("x"), 0644))
	}

	readers := NewReaders(nil, nil)
	got, err := readers.Discover([]string{dir, filepath.Join(dir, "a.docx")})
	require.Nil(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.docx"),
		filepath.Join(dir, "nested/b.xlsx"),
		filepath.Join(dir, "nested/deeper/c.tsv"),
	}, got)
	require.Equal(t, 3, TotalSize(got))

	_, err = readers.Discover([]string{filepath.Join(dir, "missing")})
	require.NotNil(t, err)
	_, err = readers.Discover([]string{filepath.Join(dir, "notes.txt")})
	require.NotNil(t, err)
}
