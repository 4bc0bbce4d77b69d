package inspector

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultMatchTimeout bounds a single pattern evaluation
var DefaultMatchTimeout = time.Second

// MappingRule pairs a source pattern with the target pattern expected
// to occur equally often in the translation
type MappingRule struct {
	Source string `json:"source"`
	Target string `json:"target"`

	source *regexp2.Regexp
	target *regexp2.Regexp
}

// NewMappingRule compiles both patterns of a rule
func NewMappingRule(source, target string) (*MappingRule, error) {
	if source == "" || target == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	sre, err := compilePattern(source)
	if err != nil {
		return nil, fmt.Errorf("invalid source pattern `%v`: %w", source, err)
	}
	tre, err := compilePattern(target)
	if err != nil {
		return nil, fmt.Errorf("invalid target pattern `%v`: %w", target, err)
	}
	return &MappingRule{Source: source, Target: target, source: sre, target: tre}, nil
}

func compilePattern(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = DefaultMatchTimeout
	return re, nil
}

// MappingMismatch is produced when a rule matches the source text
// a different number of times than the target text
type MappingMismatch struct {
	Rule        *MappingRule `json:"rule"`
	SourceCount int          `json:"source_count"`
	TargetCount int          `json:"target_count"`
}

// RuleWarning describes a line of the mapping file that was skipped
type RuleWarning struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

func (w RuleWarning) Error() string {
	return fmt.Sprintf("mapping line %d: %s: %q", w.Line, w.Reason, w.Text)
}

// RuleSet is a loaded mapping configuration.
// It is read-only after loading and safe for concurrent use.
type RuleSet struct {
	Rules    []*MappingRule
	Warnings []RuleWarning
}

// Len returns the number of usable rules
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rules)
}

// LoadMappingRules reads a tab separated mapping file.
// A missing file is not an error and yields an empty rule set.
// An unreadable file yields an empty rule set together with the error.
func LoadMappingRules(path string) (*RuleSet, error) {
	if path == "" || !fileutil.FileExists(path) {
		return &RuleSet{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return &RuleSet{}, errorutil.NewWithTag("inspector", "could not open mapping file %v: %v", path, err)
	}
	defer f.Close()

	rs, err := ParseMappingRules(f)
	if err != nil {
		return &RuleSet{}, errorutil.NewWithTag("inspector", "could not read mapping file %v: %v", path, err)
	}
	return rs, nil
}

// ParseMappingRules parses `<source>\t<target>` lines from r.
// Empty lines are ignored, other malformed lines and patterns that do
// not compile are recorded as warnings and skipped.
func ParseMappingRules(r io.Reader) (*RuleSet, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rs := &RuleSet{}
	seen := map[string]int{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			rs.warn(lineNo, line, fmt.Sprintf("expected 2 tab separated fields got %d", len(fields)))
			continue
		}
		if first, ok := seen[fields[0]]; ok {
			rs.warn(lineNo, line, fmt.Sprintf("duplicate source pattern, keeping line %d", first))
			continue
		}
		rule, err := NewMappingRule(fields[0], fields[1])
		if err != nil {
			rs.warn(lineNo, line, err.Error())
			continue
		}
		seen[fields[0]] = lineNo
		rs.Rules = append(rs.Rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rs, nil
}

func (rs *RuleSet) warn(line int, text, reason string) {
	rs.Warnings = append(rs.Warnings, RuleWarning{Line: line, Text: text, Reason: reason})
}

// Apply evaluates every rule against the raw source and target text.
// Rules that never match the source are not reported.
func (rs *RuleSet) Apply(source, target string) []MappingMismatch {
	if rs == nil {
		return nil
	}
	var mismatches []MappingMismatch
	for _, rule := range rs.Rules {
		sc := countMatches(rule.source, source)
		if sc == 0 {
			continue
		}
		tc := countMatches(rule.target, target)
		if sc != tc {
			mismatches = append(mismatches, MappingMismatch{Rule: rule, SourceCount: sc, TargetCount: tc})
		}
	}
	return mismatches
}

// countMatches counts non-overlapping matches of re in s
func countMatches(re *regexp2.Regexp, s string) int {
	count := 0
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		count++
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		gologger.Warning().Msgf("pattern `%v` aborted after %d matches: %v", re.String(), count, err)
	}
	return count
}
