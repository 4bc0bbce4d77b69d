package inspector

import "strings"

// offset between a visible ASCII rune and its full-width form
const widthOffset = 65248

// ToFullWidthRune converts a half-width rune to its full-width form.
// Space maps to U+3000, visible ASCII is shifted into the
// Halfwidth and Fullwidth Forms block and anything else is returned as is.
func ToFullWidthRune(r rune) rune {
	switch {
	case r == ' ':
		return ideographicSpace
	case r >= 33 && r <= 126:
		return r + widthOffset
	default:
		return r
	}
}

// ToHalfWidthRune is the inverse of ToFullWidthRune
func ToHalfWidthRune(r rune) rune {
	switch {
	case r == ideographicSpace:
		return ' '
	case r > 65280 && r < 65375:
		return r - widthOffset
	default:
		return r
	}
}

// ToFullWidth converts every rune of s with ToFullWidthRune
func ToFullWidth(s string) string {
	return strings.Map(ToFullWidthRune, s)
}

// ToHalfWidth converts every rune of s with ToHalfWidthRune
func ToHalfWidth(s string) string {
	return strings.Map(ToHalfWidthRune, s)
}

// NormalizedKey returns the width-insensitive identity of a token
func NormalizedKey(token string) string {
	return ToFullWidth(token)
}
