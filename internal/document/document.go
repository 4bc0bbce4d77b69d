// Package document extracts bilingual source/target pairs from documents.
package document

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	errorutil "github.com/projectdiscovery/utils/errors"
	mapsutil "github.com/projectdiscovery/utils/maps"
)

// Pair is one source/target cell pair in document order
type Pair struct {
	Source string
	Target string
	// Table and Row are 1-based positions of the pair (Table is 0 for
	// formats without tables)
	Table int
	Row   int
}

// Reader returns the pairs of a document
type Reader interface {
	Read(ctx context.Context, path string) ([]Pair, error)
}

// Readers dispatches to a Reader by lower case file extension
type Readers map[string]Reader

// NewReaders returns the readers of all supported formats
func NewReaders(layout *Layout, sheet *Sheet) Readers {
	return Readers{
		".docx": NewDOCX(layout),
		".xlsx": NewXLSX(sheet),
		".tsv":  NewTSV(),
	}
}

// Extensions returns the supported extensions, sorted
func (r Readers) Extensions() []string {
	exts := mapsutil.GetKeys(r)
	sort.Strings(exts)
	return exts
}

// Supports reports whether path has a supported extension
func (r Readers) Supports(path string) bool {
	_, ok := r[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Read reads path with the reader registered for its extension
func (r Readers) Read(ctx context.Context, path string) ([]Pair, error) {
	reader, ok := r[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, errorutil.NewWithTag("document", "unsupported document format %v", filepath.Ext(path))
	}
	return reader.Read(ctx, path)
}
