package report

import (
	"strings"

	"github.com/projectdiscovery/inspector"
	"github.com/projectdiscovery/inspector/internal/dedupe"
)

// Deduped drops reports whose source, target and issues were already
// written, regardless of the document they came from
type Deduped struct {
	sink    Sink
	backend dedupe.Backend
	dropped int
}

// NewDeduped wraps sink, byteLen estimates the input size to pick a backend
func NewDeduped(sink Sink, byteLen int) *Deduped {
	return &Deduped{sink: sink, backend: dedupe.NewBackend(byteLen)}
}

func (d *Deduped) Write(report *inspector.LineReport) error {
	key := strings.Join([]string{report.Source, report.Target, report.Issues}, "\x00")
	if d.backend.Seen(key) {
		d.dropped++
		return nil
	}
	return d.sink.Write(report)
}

// Dropped returns the number of duplicate reports skipped so far
func (d *Deduped) Dropped() int {
	return d.dropped
}

func (d *Deduped) Close() error {
	d.backend.Cleanup()
	return d.sink.Close()
}
