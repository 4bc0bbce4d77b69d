package inspector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, opts *Options) *Checker {
	t.Helper()
	c, err := New(opts)
	require.Nil(t, err)
	return c
}

func TestCheckLineEmpty(t *testing.T) {
	c := newTestChecker(t, nil)
	require.Nil(t, c.CheckLine("doc", "", ""))
}

func TestCheckLineCountMismatch(t *testing.T) {
	c := newTestChecker(t, nil)
	report := c.CheckLine("doc.docx", "你好，世界", "こんにちは世界")
	require.NotNil(t, report)
	require.Equal(t, []Mismatch{{Key: "，", SourceCount: 1, TargetCount: 0}}, report.Mismatches)
	require.Equal(t, "， 1 > 0 (target) inconsistent\n", report.Issues)
	require.Equal(t, []string{"你好，世界", "こんにちは世界", "， 1 > 0 (target) inconsistent\n", "doc.docx"}, report.Columns())
}

func TestCheckLineWidthViolation(t *testing.T) {
	c := newTestChecker(t, nil)

	// same count after normalization, only the width is wrong
	report := c.CheckLine("doc", "你好，世界", "こんにちは,世界")
	require.NotNil(t, report)
	require.Empty(t, report.Mismatches)
	require.Equal(t, []string{","}, report.WidthViolations)
	require.Equal(t, ", (target) not full-width\n", report.Issues)

	report = c.CheckLine("doc", "你好世界", "こんにちは,世界")
	require.NotNil(t, report)
	require.Equal(t, "， 0 < 1 (target) inconsistent\n, (target) not full-width\n", report.Issues)
}

func TestCheckLineSourceWidthIgnored(t *testing.T) {
	c := newTestChecker(t, nil)
	require.Nil(t, c.CheckLine("doc", "你好,世界", "こんにちは，世界"))
}

func TestCheckLineWhitespaceLabel(t *testing.T) {
	c := newTestChecker(t, nil)
	report := c.CheckLine("doc", "你 好", "こんにちは")
	require.NotNil(t, report)
	require.Equal(t, "whitespace 1 > 0 (target) inconsistent\n", report.Issues)

	report = c.CheckLine("doc", "你　好", "こん にちは")
	require.NotNil(t, report)
	require.Equal(t, "whitespace (target) not full-width\n", report.Issues)
}

func TestCheckLineMapping(t *testing.T) {
	rs, err := ParseMappingRules(strings.NewReader("公司\t会社\n"))
	require.Nil(t, err)
	c := newTestChecker(t, &Options{Rules: rs})

	report := c.CheckLine("doc", "公司公司", "会社")
	require.NotNil(t, report)
	require.Len(t, report.MappingMismatches, 1)
	require.Equal(t, "公司 => 会社 2 > 1 (source vs target) inconsistent\n", report.Issues)

	require.Nil(t, c.CheckLine("doc", "没有", "会社"))
}

func TestCheckLineBalancedParentheses(t *testing.T) {
	c := newTestChecker(t, nil)
	require.Nil(t, c.CheckLine("doc", "(你好)", "（こんにちは）"))
}

func TestCheckLineDeterministic(t *testing.T) {
	rs, err := ParseMappingRules(strings.NewReader("公司\t会社\n股份\t株式\n"))
	require.Nil(t, err)
	c := newTestChecker(t, &Options{Rules: rs})

	source := "公司股份，API (v2) 公司!"
	target := "会社株式, API（v2）株式"
	first := c.CheckLine("doc", source, target)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, c.CheckLine("doc", source, target))
	}
}

func TestCheckLineLocale(t *testing.T) {
	messages, err := MessagesFor("zh")
	require.Nil(t, err)
	c := newTestChecker(t, &Options{Messages: messages})

	report := c.CheckLine("doc", "你好，世界", "こんにちは世界")
	require.NotNil(t, report)
	require.Equal(t, "， 1 (中) > 0 (日) 不一致\n", report.Issues)

	report = c.CheckLine("doc", "你好", "こん にちは")
	require.NotNil(t, report)
	require.Contains(t, report.Issues, "空格 (日)不是全角\n")
}

func TestNewInvalidMessages(t *testing.T) {
	_, err := New(&Options{Messages: &Messages{CountMismatch: "{{nope}} {{key}}"}})
	require.NotNil(t, err)

	_, err = MessagesFor("fr")
	require.NotNil(t, err)
}

func TestNewPartialMessages(t *testing.T) {
	c := newTestChecker(t, &Options{Messages: &Messages{WidthViolation: "half-width {{token}}"}})
	report := c.CheckLine("doc", "你好，", "こんにちは,")
	require.NotNil(t, report)
	require.Equal(t, "half-width ,\n", report.Issues)
}
