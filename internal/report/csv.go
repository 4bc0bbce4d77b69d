package report

import (
	"encoding/csv"
	"io"

	"github.com/projectdiscovery/inspector"
)

// CSV writes reports as comma separated rows
type CSV struct {
	closer io.Closer
	writer *csv.Writer
}

// NewCSV writes to w, Close closes w
func NewCSV(w io.WriteCloser, header bool) (*CSV, error) {
	c := &CSV{closer: w, writer: csv.NewWriter(w)}
	if header {
		if err := c.writer.Write(Header); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *CSV) Write(report *inspector.LineReport) error {
	return c.writer.Write(report.Columns())
}

func (c *CSV) Close() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		_ = c.closer.Close()
		return err
	}
	return c.closer.Close()
}
