package document

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TSV reads `<source>\t<target>` lines
type TSV struct{}

// NewTSV returns a tab separated reader
func NewTSV() *TSV {
	return &TSV{}
}

// Read returns one pair per non-empty line
func (t *TSV) Read(ctx context.Context, path string) ([]Pair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var pairs []Pair
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 tab separated fields got %d", lineNo, len(fields))
		}
		pairs = append(pairs, Pair{Source: fields[0], Target: fields[1], Row: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
