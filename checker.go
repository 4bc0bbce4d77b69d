package inspector

import (
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// Checker Options
type Options struct {
	// Classifier used to tokenize both sides
	// if nil DefaultClassifier is used
	Classifier *Classifier
	// Rules are the mapping rules applied to the raw text (optional)
	Rules *RuleSet
	// Messages used to describe issues
	// if nil DefaultMessages are used
	Messages *Messages
}

// Checker compares source and target text of a bilingual line.
// It holds no per-line state and is safe for concurrent use.
type Checker struct {
	classifier *Classifier
	rules      *RuleSet
	messages   *Messages
}

// LineReport describes all issues found in one source/target pair
type LineReport struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	Issues     string `json:"issues"`
	DocumentID string `json:"document"`

	Mismatches        []Mismatch        `json:"mismatches,omitempty"`
	WidthViolations   []string          `json:"width_violations,omitempty"`
	MappingMismatches []MappingMismatch `json:"mapping_mismatches,omitempty"`
}

// Columns returns the four report columns in their output order
func (r *LineReport) Columns() []string {
	return []string{r.Source, r.Target, r.Issues, r.DocumentID}
}

// New creates and returns new checker instance from options
func New(opts *Options) (*Checker, error) {
	if opts == nil {
		opts = &Options{}
	}
	c := &Checker{
		classifier: opts.Classifier,
		rules:      opts.Rules,
		messages:   opts.Messages,
	}
	if c.classifier == nil {
		c.classifier = DefaultClassifier
	}
	if c.rules == nil {
		c.rules = &RuleSet{}
	}
	if c.messages == nil {
		c.messages = DefaultMessages()
	} else {
		merged := *c.messages
		merged.Merge(DefaultMessages())
		c.messages = &merged
	}
	if err := c.messages.Validate(); err != nil {
		return nil, errorutil.NewWithTag("inspector", "invalid messages: %v", err)
	}
	for _, w := range c.rules.Warnings {
		gologger.Verbose().Msgf("skipped %v", w.Error())
	}
	return c, nil
}

// CheckLine compares source and target and returns a report,
// or nil when the pair has no issues.
func (c *Checker) CheckLine(documentID, source, target string) *LineReport {
	sourceTokens := c.classifier.Extract(source)
	targetTokens := c.classifier.Extract(target)

	report := &LineReport{
		Source:     source,
		Target:     target,
		DocumentID: documentID,
	}
	var issues strings.Builder

	report.Mismatches = Compare(sourceTokens, targetTokens)
	for _, mm := range report.Mismatches {
		issues.WriteString(c.messages.countMismatch(mm))
	}

	// only the target side has to follow the full-width convention
	for _, token := range targetTokens {
		if IsHalfWidthString(token) {
			report.WidthViolations = append(report.WidthViolations, token)
			issues.WriteString(c.messages.widthViolation(token))
		}
	}

	report.MappingMismatches = c.rules.Apply(source, target)
	for _, mm := range report.MappingMismatches {
		issues.WriteString(c.messages.mappingMismatch(mm))
	}

	if issues.Len() == 0 {
		return nil
	}
	report.Issues = issues.String()
	return report
}

// Rules returns the mapping rules used by the checker
func (c *Checker) Rules() *RuleSet {
	return c.rules
}
