package report

import (
	"bufio"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/projectdiscovery/inspector"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONL writes one JSON object per report
type JSONL struct {
	closer  io.Closer
	buf     *bufio.Writer
	encoder *jsoniter.Encoder
}

// NewJSONL writes to w, Close closes w
func NewJSONL(w io.WriteCloser) *JSONL {
	buf := bufio.NewWriter(w)
	return &JSONL{closer: w, buf: buf, encoder: json.NewEncoder(buf)}
}

func (j *JSONL) Write(report *inspector.LineReport) error {
	return j.encoder.Encode(report)
}

func (j *JSONL) Close() error {
	if err := j.buf.Flush(); err != nil {
		_ = j.closer.Close()
		return err
	}
	return j.closer.Close()
}
