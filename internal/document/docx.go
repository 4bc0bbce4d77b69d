package document

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const documentPart = "word/document.xml"

// Layout describes where the bilingual pairs live in a .docx document.
// All indexes are 1-based.
type Layout struct {
	// Tables is the expected number of top level tables (0 = any)
	Tables int `yaml:"tables"`
	// HeaderTable holds a single pair at HeaderRow (0 = none)
	HeaderTable int `yaml:"header-table"`
	HeaderRow   int `yaml:"header-row"`
	// BodyTable holds one pair per row starting at BodyStartRow
	BodyTable    int `yaml:"body-table"`
	BodyStartRow int `yaml:"body-start-row"`
	SourceColumn int `yaml:"source-column"`
	TargetColumn int `yaml:"target-column"`
}

// DefaultLayout is the review form layout: five tables, the title pair in
// the second table and the body pairs in the third, with source and target
// in the second and third column
var DefaultLayout = Layout{
	Tables:       5,
	HeaderTable:  2,
	HeaderRow:    2,
	BodyTable:    3,
	BodyStartRow: 2,
	SourceColumn: 2,
	TargetColumn: 3,
}

// DOCX reads Office Open XML word processing documents
type DOCX struct {
	layout Layout
}

// NewDOCX returns a .docx reader, a nil layout uses DefaultLayout
func NewDOCX(layout *Layout) *DOCX {
	if layout == nil {
		return &DOCX{layout: DefaultLayout}
	}
	return &DOCX{layout: *layout}
}

// Read returns the header pair followed by the body pairs
func (d *DOCX) Read(ctx context.Context, path string) ([]Pair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		tables, err := parseTables(rc)
		if err != nil {
			return nil, fmt.Errorf("could not parse %v: %w", documentPart, err)
		}
		return d.layout.pairs(tables)
	}
	return nil, fmt.Errorf("%v not found", documentPart)
}

// table rows hold the plain text of each cell
type table [][]string

func (t table) cell(row, col int) (string, bool) {
	if row < 1 || row > len(t) || col < 1 || col > len(t[row-1]) {
		return "", false
	}
	return t[row-1][col-1], true
}

func (l Layout) pairs(tables []table) ([]Pair, error) {
	if l.Tables > 0 && len(tables) != l.Tables {
		return nil, fmt.Errorf("there are %d tables", len(tables))
	}
	var pairs []Pair
	if l.HeaderTable > 0 {
		p, err := l.pair(tables, l.HeaderTable, l.HeaderRow)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	if l.BodyTable > 0 {
		if l.BodyTable > len(tables) {
			return nil, fmt.Errorf("table %d not found", l.BodyTable)
		}
		for row := l.BodyStartRow; row <= len(tables[l.BodyTable-1]); row++ {
			p, err := l.pair(tables, l.BodyTable, row)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, p)
		}
	}
	return pairs, nil
}

func (l Layout) pair(tables []table, tableNo, row int) (Pair, error) {
	if tableNo < 1 || tableNo > len(tables) {
		return Pair{}, fmt.Errorf("table %d not found", tableNo)
	}
	t := tables[tableNo-1]
	source, ok := t.cell(row, l.SourceColumn)
	if !ok {
		return Pair{}, fmt.Errorf("table %d has no cell (%d,%d)", tableNo, row, l.SourceColumn)
	}
	target, ok := t.cell(row, l.TargetColumn)
	if !ok {
		return Pair{}, fmt.Errorf("table %d has no cell (%d,%d)", tableNo, row, l.TargetColumn)
	}
	return Pair{
		Source: trimCellMarks(source),
		Target: trimCellMarks(target),
		Table:  tableNo,
		Row:    row,
	}, nil
}

// trimCellMarks drops end of cell marks left by documents converted from .doc
func trimCellMarks(s string) string {
	return strings.TrimRight(s, "\r\a")
}

// parseTables collects the cell text of all top level tables.
// Text of nested tables is folded into the enclosing cell, paragraphs
// are separated by a newline.
func parseTables(r io.Reader) ([]table, error) {
	var (
		tables     []table
		row        []string
		cell       strings.Builder
		depth      int
		inCell     bool
		inRun      bool
		inText     bool
		paragraphs int
	)
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "tbl":
				depth++
				if depth == 1 {
					tables = append(tables, table{})
				}
			case "tr":
				if depth == 1 {
					row = []string{}
				}
			case "tc":
				if depth == 1 {
					cell.Reset()
					inCell = true
					paragraphs = 0
				}
			case "p":
				if inCell {
					if paragraphs > 0 {
						cell.WriteByte('\n')
					}
					paragraphs++
				}
			case "r":
				inRun = true
			case "t":
				inText = inCell && inRun
			case "tab":
				if inCell && inRun {
					cell.WriteByte('\t')
				}
			case "br", "cr":
				if inCell && inRun {
					cell.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "tbl":
				depth--
			case "tr":
				if depth == 1 {
					tables[len(tables)-1] = append(tables[len(tables)-1], row)
				}
			case "tc":
				if depth == 1 {
					row = append(row, cell.String())
					inCell = false
				}
			case "r":
				inRun = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cell.Write(el)
			}
		}
	}
	return tables, nil
}
