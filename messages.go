package inspector

import (
	"fmt"
	"sort"

	"github.com/projectdiscovery/fasttemplate"
	mapsutil "github.com/projectdiscovery/utils/maps"
)

// Template variables available to each message kind
var (
	CountMismatchVars   = []string{"key", "source_count", "op", "target_count"}
	WidthViolationVars  = []string{"token"}
	MappingMismatchVars = []string{"source_pattern", "target_pattern", "source_count", "op", "target_count"}
)

// Messages holds the templates used to describe issues in a report.
// Every rendered message is terminated by a newline.
type Messages struct {
	// Whitespace is shown instead of tokens made of spaces only
	Whitespace      string `yaml:"whitespace"`
	CountMismatch   string `yaml:"count-mismatch"`
	WidthViolation  string `yaml:"width-violation"`
	MappingMismatch string `yaml:"mapping-mismatch"`
}

// Locales are the built-in message presets
var Locales = map[string]Messages{
	"en": {
		Whitespace:      "whitespace",
		CountMismatch:   "{{key}} {{source_count}} {{op}} {{target_count}} (target) inconsistent",
		WidthViolation:  "{{token}} (target) not full-width",
		MappingMismatch: "{{source_pattern}} => {{target_pattern}} {{source_count}} {{op}} {{target_count}} (source vs target) inconsistent",
	},
	"zh": {
		Whitespace:      "空格",
		CountMismatch:   "{{key}} {{source_count}} (中) {{op}} {{target_count}} (日) 不一致",
		WidthViolation:  "{{token}} (日)不是全角",
		MappingMismatch: "{{source_pattern}} => {{target_pattern}} {{source_count}}(中) {{op}} {{target_count}}(日) 不一致",
	},
}

// DefaultLocale is used when no locale is configured
const DefaultLocale = "en"

// DefaultMessages returns a copy of the default locale
func DefaultMessages() *Messages {
	m := Locales[DefaultLocale]
	return &m
}

// MessagesFor returns a copy of the named locale preset
func MessagesFor(locale string) (*Messages, error) {
	if locale == "" {
		return DefaultMessages(), nil
	}
	m, ok := Locales[locale]
	if !ok {
		return nil, fmt.Errorf("unknown locale `%v` (available: %v)", locale, localeNames())
	}
	return &m, nil
}

// Merge fills empty templates of m from fallback
func (m *Messages) Merge(fallback *Messages) {
	if m.Whitespace == "" {
		m.Whitespace = fallback.Whitespace
	}
	if m.CountMismatch == "" {
		m.CountMismatch = fallback.CountMismatch
	}
	if m.WidthViolation == "" {
		m.WidthViolation = fallback.WidthViolation
	}
	if m.MappingMismatch == "" {
		m.MappingMismatch = fallback.MappingMismatch
	}
}

// Validate checks that all templates compile and only use known variables
func (m *Messages) Validate() error {
	templates := []struct {
		name     string
		template string
		vars     []string
	}{
		{"count-mismatch", m.CountMismatch, CountMismatchVars},
		{"width-violation", m.WidthViolation, WidthViolationVars},
		{"mapping-mismatch", m.MappingMismatch, MappingMismatchVars},
	}
	for _, v := range templates {
		if v.template == "" {
			return fmt.Errorf("%v message is empty", v.name)
		}
		if _, err := fasttemplate.NewTemplate(v.template, ParenthesisOpen, ParenthesisClose); err != nil {
			return fmt.Errorf("%v message: %w", v.name, err)
		}
		if err := checkUnknown(v.template, v.vars...); err != nil {
			return fmt.Errorf("%v message: %w", v.name, err)
		}
	}
	return nil
}

func (m *Messages) display(token string) string {
	if IsWhitespaceString(token) {
		return m.Whitespace
	}
	return token
}

func (m *Messages) countMismatch(mm Mismatch) string {
	return Replace(m.CountMismatch, map[string]interface{}{
		"key":          m.display(mm.Key),
		"source_count": mm.SourceCount,
		"op":           comparison(mm.SourceCount, mm.TargetCount),
		"target_count": mm.TargetCount,
	}) + "\n"
}

func (m *Messages) widthViolation(token string) string {
	return Replace(m.WidthViolation, map[string]interface{}{
		"token": m.display(token),
	}) + "\n"
}

func (m *Messages) mappingMismatch(mm MappingMismatch) string {
	return Replace(m.MappingMismatch, map[string]interface{}{
		"source_pattern": mm.Rule.Source,
		"target_pattern": mm.Rule.Target,
		"source_count":   mm.SourceCount,
		"op":             comparison(mm.SourceCount, mm.TargetCount),
		"target_count":   mm.TargetCount,
	}) + "\n"
}

func localeNames() []string {
	names := mapsutil.GetKeys(Locales)
	sort.Strings(names)
	return names
}
