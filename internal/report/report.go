// Package report writes line reports to persistent outputs.
package report

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/projectdiscovery/inspector"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

// Supported output formats
const (
	FormatXLSX  = "xlsx"
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// DefaultFileName is used when the output is a folder
const DefaultFileName = "result.xlsx"

// Header is the optional first row of tabular outputs
var Header = []string{"Source", "Target", "Issues", "Document"}

// Sink receives line reports. Implementations are not safe for
// concurrent use, callers funnel all reports through one goroutine.
type Sink interface {
	// Write appends a report
	Write(report *inspector.LineReport) error
	// Close flushes and seals the output
	Close() error
}

// Options for opening a sink
type Options struct {
	// Output file or folder, empty writes to stdout
	Output string
	// Format of the output, inferred from the extension when empty
	Format string
	// Header writes Header as first row of tabular outputs
	Header bool
}

// Open creates the sink described by opts
func Open(opts *Options) (Sink, error) {
	output := opts.Output
	if output != "" && fileutil.FolderExists(output) {
		output = filepath.Join(output, DefaultFileName)
	}
	format, err := resolveFormat(output, opts.Format)
	if err != nil {
		return nil, err
	}
	if format == FormatXLSX {
		if output == "" {
			return nil, errorutil.NewWithTag("report", "xlsx output requires an output file")
		}
		return NewXLSX(output, opts.Header)
	}

	var w io.WriteCloser = nopCloser{os.Stdout}
	if output != "" {
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, errorutil.NewWithTag("report", "failed to open output file %v got %v", output, err)
		}
		w = f
	}
	switch format {
	case FormatCSV:
		return NewCSV(w, opts.Header)
	default:
		return NewJSONL(w), nil
	}
}

func resolveFormat(output, format string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".xlsx":
			return FormatXLSX, nil
		case ".csv":
			return FormatCSV, nil
		default:
			return FormatJSONL, nil
		}
	}
	switch format = strings.ToLower(format); format {
	case FormatXLSX, FormatCSV, FormatJSONL:
		return format, nil
	}
	return "", errorutil.NewWithTag("report", "unsupported format %v (must be xlsx, csv or jsonl)", format)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
