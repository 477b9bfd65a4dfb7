package segment

import "strings"

// trailingPunct are sentence punctuation characters the URL pattern may
// swallow at the end of a match.
const trailingPunct = ".,!?;:"

// cleanURL trims sentence punctuation and at most one unbalanced
// closing parenthesis or bracket from the end of a raw URL match.
//
// Steps, in order: strip the trailing run of ". , ! ? ; :"; then drop
// one trailing ) when the match holds more ) than (; then drop one
// trailing ] when it holds more ] than [. Balanced pairs that belong to
// the path, like /page(2), survive untouched. Counting is local to the
// single match string, not the surrounding input.
//
// The removed suffix is returned alongside the cleaned address so the
// caller can re-emit it as plain text.
func cleanURL(match string) (cleaned, stripped string) {
	cut := len(match)
	for cut > 0 && strings.ContainsRune(trailingPunct, rune(match[cut-1])) {
		cut--
	}
	s := match[:cut]

	if strings.HasSuffix(s, ")") && strings.Count(s, ")") > strings.Count(s, "(") {
		s = s[:len(s)-1]
	}
	if strings.HasSuffix(s, "]") && strings.Count(s, "]") > strings.Count(s, "[") {
		s = s[:len(s)-1]
	}
	return s, match[len(s):]
}
