package inspector

const (
	// IdeographLow is the first code point of the CJK Unified Ideographs block
	IdeographLow = 0x4E00

	// IdeographHigh is the last code point of the CJK Unified Ideographs block
	IdeographHigh = 0x9FFF

	// LegacyIdeographHigh is the narrower upper bound older tools used
	LegacyIdeographHigh = 0x9FBB

	hiraganaLow  = 0x3040
	katakanaHigh = 0x30FF

	ideographicSpace = '\u3000'
)

// Default character tables
var (
	DefaultHalfWidthPunctuation = `,?!;":`
	DefaultFullWidthPunctuation = "。、“”？！，；："
	DefaultHalfWidthTerminators = ")"
	DefaultFullWidthTerminators = "）"
)

// Classifier holds the character tables used while tokenizing.
// A Classifier is immutable once created and safe for concurrent use.
type Classifier struct {
	ideographLow  rune
	ideographHigh rune
	halfPunct     runeSet
	fullPunct     runeSet
	halfTerm      runeSet
	fullTerm      runeSet
}

// ClassifierOptions overrides the default character tables.
// Zero values fall back to the defaults.
type ClassifierOptions struct {
	IdeographLow         rune
	IdeographHigh        rune
	HalfWidthPunctuation string
	FullWidthPunctuation string
	HalfWidthTerminators string
	FullWidthTerminators string
}

// DefaultClassifier uses the full CJK Unified Ideographs block and the
// default punctuation tables
var DefaultClassifier = NewClassifier(nil)

// NewClassifier returns a classifier built from opts
func NewClassifier(opts *ClassifierOptions) *Classifier {
	if opts == nil {
		opts = &ClassifierOptions{}
	}
	c := &Classifier{
		ideographLow:  valueOr(opts.IdeographLow, IdeographLow),
		ideographHigh: valueOr(opts.IdeographHigh, IdeographHigh),
		halfPunct:     newRuneSet(stringOr(opts.HalfWidthPunctuation, DefaultHalfWidthPunctuation)),
		fullPunct:     newRuneSet(stringOr(opts.FullWidthPunctuation, DefaultFullWidthPunctuation)),
		halfTerm:      newRuneSet(stringOr(opts.HalfWidthTerminators, DefaultHalfWidthTerminators)),
		fullTerm:      newRuneSet(stringOr(opts.FullWidthTerminators, DefaultFullWidthTerminators)),
	}
	return c
}

// IsIdeograph reports whether r is inside the configured ideograph range
func (c *Classifier) IsIdeograph(r rune) bool {
	return r >= c.ideographLow && r <= c.ideographHigh
}

// IsKana reports whether r is hiragana or katakana
func (c *Classifier) IsKana(r rune) bool {
	return r >= hiraganaLow && r <= katakanaHigh
}

// IsPunctuation reports whether r is a single-token punctuation mark.
// Half-width runes are looked up in the half-width table only and
// everything else in the full-width table.
func (c *Classifier) IsPunctuation(r rune) bool {
	if IsHalfWidth(r) {
		return c.halfPunct.has(r)
	}
	return c.fullPunct.has(r)
}

// IsRunTerminator reports whether r closes a run
func (c *Classifier) IsRunTerminator(r rune) bool {
	if IsHalfWidth(r) {
		return c.halfTerm.has(r)
	}
	return c.fullTerm.has(r)
}

// excluded runes never show up in the token stream
func (c *Classifier) excluded(r rune) bool {
	return c.IsIdeograph(r) || c.IsKana(r)
}

// IsHalfWidth reports whether r is below DEL
func IsHalfWidth(r rune) bool {
	return r < 127
}

// IsHalfWidthString reports whether every rune of s is half-width
func IsHalfWidthString(s string) bool {
	for _, r := range s {
		if !IsHalfWidth(r) {
			return false
		}
	}
	return true
}

// IsWhitespace reports whether r is an ASCII or ideographic space
func IsWhitespace(r rune) bool {
	return r == ' ' || r == ideographicSpace
}

// IsWhitespaceString reports whether s consists of whitespace only.
// The empty string counts as whitespace.
func IsWhitespaceString(s string) bool {
	for _, r := range s {
		if !IsWhitespace(r) {
			return false
		}
	}
	return true
}

// IsControl reports whether r is a C0 control character
func IsControl(r rune) bool {
	return r >= 0 && r <= 31
}

type runeSet map[rune]struct{}

func newRuneSet(s string) runeSet {
	set := make(runeSet, len(s))
	for _, r := range s {
		set[r] = struct{}{}
	}
	return set
}

func (s runeSet) has(r rune) bool {
	_, ok := s[r]
	return ok
}

func valueOr(v, fallback rune) rune {
	if v == 0 {
		return fallback
	}
	return v
}

func stringOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
