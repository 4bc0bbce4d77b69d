package inspector

// Extract splits text into comparable tokens using the DefaultClassifier.
func Extract(text string) []string {
	return DefaultClassifier.Extract(text)
}

// Extract splits text into comparable tokens.
//
// ALGORITHM:
//  1. control runes, ideographs and kana are dropped
//  2. punctuation and whitespace runes become single-rune tokens
//  3. anything else starts a run which stops before the next
//     punctuation, whitespace, control, ideograph, kana or run terminator
//  4. a run terminator stopping a run is appended to it, so a closing
//     bracket sticks to the run it closes
//
// EXAMPLE:
//
//	"你好，world 2)" → ["，", "world", " ", "2)"]
//	"(你好)"         → ["(", ")"]
func (c *Classifier) Extract(text string) []string {
	runes := []rune(text)
	tokens := make([]string, 0)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case IsControl(r), c.excluded(r):
			continue
		case c.IsPunctuation(r), IsWhitespace(r):
			tokens = append(tokens, string(r))
			continue
		}

		end := i
		for end < len(runes) && !c.stopsRun(runes[end]) {
			end++
		}
		if end < len(runes) && c.IsRunTerminator(runes[end]) {
			end++
		}
		tokens = append(tokens, string(runes[i:end]))
		i = end - 1
	}
	return tokens
}

func (c *Classifier) stopsRun(r rune) bool {
	return c.IsRunTerminator(r) ||
		IsWhitespace(r) ||
		c.IsPunctuation(r) ||
		IsControl(r) ||
		c.excluded(r)
}
