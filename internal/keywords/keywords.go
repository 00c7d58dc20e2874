// Package keywords mines ranked keyword candidates from free text such as job descriptions.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// MaxRanked is the number of frequency-ranked words kept before pattern hits are added
const MaxRanked = 25

// minTokenLength is the shortest word considered a keyword
const minTokenLength = 2

// stopWords filters function words and generic job-posting vocabulary
var stopWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true, "in": true, "on": true, "at": true,
	"to": true, "for": true, "of": true, "with": true, "by": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true, "must": true,
	"can": true, "shall": true, "a": true, "an": true, "this": true, "that": true,
	"these": true, "those": true, "we": true, "you": true, "they": true, "he": true,
	"she": true, "it": true, "i": true, "me": true, "my": true, "your": true, "our": true,
	"their": true, "him": true, "her": true, "us": true, "them": true, "looking": true,
	"seeking": true, "required": true, "preferred": true, "experience": true, "years": true,
	"work": true, "working": true, "position": true, "role": true, "job": true,
	"candidate": true, "responsibilities": true, "duties": true, "requirements": true,
	"qualifications": true, "skills": true, "ability": true, "knowledge": true,
	"include": true, "including": true, "such": true, "well": true, "good": true,
	"strong": true, "excellent": true,
}

// wordPattern matches a token starting with a letter that may carry + # . - inside it
var wordPattern = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9+#.-]*\b`)

// techPatterns pick up acronyms, x.js frameworks, hyphenated compounds and C++-style names.
// They run against the original-case text.
var techPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]{2,10}\b`),
	regexp.MustCompile(`\b\w+[.]js\b`),
	regexp.MustCompile(`\b\w+[-]\w+\b`),
	regexp.MustCompile(`\b\w+[+][+]?\b`),
}

// IsStopWord reports whether word is filtered from keyword mining
func IsStopWord(word string) bool {
	return stopWords[strings.ToLower(word)]
}

// Extract returns an ordered, duplicate-free keyword list for text.
// The first part holds up to MaxRanked non-stop-words ranked by frequency,
// ties broken by first occurrence; pattern hits follow in scan order, lower-cased.
func Extract(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	ranked := rankWords(strings.ToLower(text))

	seen := make(map[string]bool, len(ranked))
	result := make([]string, 0, len(ranked))
	for _, w := range ranked {
		seen[w] = true
		result = append(result, w)
	}

	for _, re := range techPatterns {
		for _, m := range re.FindAllString(text, -1) {
			m = strings.ToLower(m)
			if !seen[m] {
				seen[m] = true
				result = append(result, m)
			}
		}
	}

	return result
}

type wordCount struct {
	word  string
	count int
	first int
}

// rankWords counts non-stop-word tokens and returns the top MaxRanked by frequency
func rankWords(lower string) []string {
	counts := make(map[string]*wordCount)
	order := 0
	for _, tok := range wordPattern.FindAllString(lower, -1) {
		if len(tok) < minTokenLength || stopWords[tok] {
			continue
		}
		if wc, ok := counts[tok]; ok {
			wc.count++
			continue
		}
		counts[tok] = &wordCount{word: tok, count: 1, first: order}
		order++
	}

	list := make([]*wordCount, 0, len(counts))
	for _, wc := range counts {
		list = append(list, wc)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].count != list[j].count {
			return list[i].count > list[j].count
		}
		return list[i].first < list[j].first
	})

	if len(list) > MaxRanked {
		list = list[:MaxRanked]
	}
	words := make([]string, len(list))
	for i, wc := range list {
		words[i] = wc.word
	}
	return words
}

// MatchIn returns the keywords that occur in text as case-insensitive substrings, in keyword order
func MatchIn(keywords []string, text string) []string {
	lower := strings.ToLower(text)
	matched := make([]string, 0)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	return matched
}
