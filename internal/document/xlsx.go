package document

import (
	"context"

	"github.com/xuri/excelize/v2"
)

// Sheet describes where the bilingual pairs live in a .xlsx workbook.
// All indexes are 1-based.
type Sheet struct {
	// Name of the sheet, empty selects the first sheet
	Name         string `yaml:"name"`
	StartRow     int    `yaml:"start-row"`
	SourceColumn int    `yaml:"source-column"`
	TargetColumn int    `yaml:"target-column"`
}

// DefaultSheet expects a header row followed by source and target in
// the first two columns
var DefaultSheet = Sheet{
	StartRow:     2,
	SourceColumn: 1,
	TargetColumn: 2,
}

// XLSX reads bilingual spreadsheets
type XLSX struct {
	sheet Sheet
}

// NewXLSX returns a .xlsx reader, a nil sheet uses DefaultSheet
func NewXLSX(sheet *Sheet) *XLSX {
	if sheet == nil {
		return &XLSX{sheet: DefaultSheet}
	}
	return &XLSX{sheet: *sheet}
}

// Read returns one pair per non-empty row
func (x *XLSX) Read(ctx context.Context, path string) ([]Pair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := x.sheet.Name
	if name == "" {
		name = f.GetSheetName(0)
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, err
	}

	start := x.sheet.StartRow
	if start < 1 {
		start = 1
	}
	var pairs []Pair
	for i := start - 1; i < len(rows); i++ {
		source := column(rows[i], x.sheet.SourceColumn)
		target := column(rows[i], x.sheet.TargetColumn)
		if source == "" && target == "" {
			continue
		}
		pairs = append(pairs, Pair{Source: source, Target: target, Row: i + 1})
	}
	return pairs, nil
}

// column returns the 1-based column of row, trailing empty cells are
// not part of rows returned by excelize
func column(row []string, col int) string {
	if col < 1 || col > len(row) {
		return ""
	}
	return row[col-1]
}
