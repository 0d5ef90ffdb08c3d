package books

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRx = regexp.MustCompile(`\s+`)
	// whitespace directly in front of a digit, e.g. "song 1" or " 1"
	spaceBeforeDigitRx = regexp.MustCompile(`\s+(\d)`)
	// leading digit group separated from the following word, e.g. "1 mos"
	leadingDigitSpaceRx = regexp.MustCompile(`^(\d+)\s+(\pL)`)
	// leading digit group glued to the following word, e.g. "1mos"
	leadingDigitWordRx = regexp.MustCompile(`^(\d+)(\pL)`)
)

// Normalize folds a book name for comparison: NFC, lowercase, periods
// removed, whitespace collapsed to single spaces and trimmed.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	s = whitespaceRx.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CompactKey returns the normalized form of s with the whitespace around a
// leading digit group removed, so "1 Mos", "1. Mos" and "1mos" all become
// "1mos".
func CompactKey(s string) string {
	k := Normalize(s)
	k = spaceBeforeDigitRx.ReplaceAllString(k, "$1")
	return leadingDigitSpaceRx.ReplaceAllString(k, "$1$2")
}

// SpacedKey re-inserts a single space after the leading digit group of a
// compact key ("1mos" -> "1 mos"). Keys without a leading digit group
// directly followed by a letter are returned unchanged.
func SpacedKey(compact string) string {
	return leadingDigitWordRx.ReplaceAllString(compact, "$1 $2")
}
