package taxonomy

import (
	"regexp"
	"strings"
)

// wordChars is the character class a whole-word match may not touch on either side
const wordChars = `\p{L}\p{N}_`

// WholeWord compiles a case-insensitive pattern that matches term only as a complete token or phrase.
// The term itself is captured as submatch 1, so symbol-bearing terms like "c++" and "node.js"
// keep the same boundary rule as plain words.
func WholeWord(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^` + wordChars + `])(` + regexp.QuoteMeta(term) + `)(?:[^` + wordChars + `]|$)`)
}

// locate returns the byte offsets of the first whole-word occurrence matched by re
func locate(re *regexp.Regexp, text string) (int, int, bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[2], loc[3], true
}

// ContainsWord reports whether term appears in text as a whole word, ignoring case
func ContainsWord(text, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return false
	}
	return WholeWord(term).MatchString(text)
}
