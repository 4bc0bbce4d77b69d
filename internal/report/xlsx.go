package report

import (
	"github.com/projectdiscovery/inspector"
	"github.com/xuri/excelize/v2"
)

// XLSX writes reports as rows of a spreadsheet
type XLSX struct {
	path   string
	file   *excelize.File
	stream *excelize.StreamWriter
	style  int
	row    int
}

// NewXLSX creates a workbook that is written to path on Close
func NewXLSX(path string, header bool) (*XLSX, error) {
	f := excelize.NewFile()
	stream, err := f.NewStreamWriter(f.GetSheetName(0))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	// column widths have to be set before the first row
	if err := stream.SetColWidth(1, 3, 60); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err := stream.SetColWidth(4, 4, 40); err != nil {
		_ = f.Close()
		return nil, err
	}
	x := &XLSX{path: path, file: f, stream: stream, style: style}
	if header {
		if err := x.writeRow(Header); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return x, nil
}

func (x *XLSX) Write(report *inspector.LineReport) error {
	return x.writeRow(report.Columns())
}

func (x *XLSX) writeRow(columns []string) error {
	x.row++
	cells := make([]interface{}, len(columns))
	for i, v := range columns {
		cells[i] = excelize.Cell{StyleID: x.style, Value: v}
	}
	axis, err := excelize.CoordinatesToCellName(1, x.row)
	if err != nil {
		return err
	}
	return x.stream.SetRow(axis, cells)
}

// Close flushes all rows and saves the workbook
func (x *XLSX) Close() error {
	defer x.file.Close()
	if err := x.stream.Flush(); err != nil {
		return err
	}
	return x.file.SaveAs(x.path)
}
