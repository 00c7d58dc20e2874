package resume

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-screener/internal/logger"
)

// UnknownName is returned when no strategy produces a candidate name
const UnknownName = "Unknown"

const (
	entityWindow   = 500
	emailWindow    = 1000
	nameLineWindow = 10
	maxNameWords   = 5
	minNameLength  = 2
	maxNameLength  = 50
	minAlphaRatio  = 0.7
	upperCaseWords = 2
)

// Lines that are exactly one of these are document titles or section labels, not names.
var nameHeaderLines = map[string]bool{
	"curriculum vitae": true, "resume": true, "cv": true, "professional resume": true,
	"personal resume": true, "contact": true, "contact information": true,
	"objective": true, "summary": true, "professional summary": true,
	"personal information": true, "personal details": true, "address": true,
	"profile": true, "about me": true, "career objective": true, "career summary": true,
	"email": true, "phone": true, "linkedin": true, "information": true, "details": true,
	"education": true, "experience": true, "skills": true, "certification": true,
}

// Tokens that label contact fields and never belong to a name.
var nameNoiseTokens = map[string]bool{
	"email": true, "phone": true, "address": true, "name": true, "tel": true,
	"mobile": true, "fax": true, "candidate": true, "telephone": true, "contact": true,
	"cell": true, "gmail": true, "yahoo": true, "hotmail": true, "outlook": true,
}

var nameRejectSubstrings = []string{
	"information", "details", "address", "personal", "contact",
	"profile", "objective", "summary", "education", "experience",
}

var entityRejectWords = map[string]bool{
	"email": true, "phone": true, "address": true, "contact": true,
	"information": true, "details": true,
}

var (
	entityTrailingLabels = trailingPatterns("email", "phone", "address", "name", "tel", "mobile", "fax", "candidate", "contact", "dob", "date")
	lineTrailingLabels   = trailingPatterns("email", "phone", "address", "contact", "tel", "mobile", "name")

	nameUnsafeChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.]`)
	emailLocalNoise = regexp.MustCompile(`[._\d]+`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

type trailingLabel struct {
	word string
	re   *regexp.Regexp
}

func trailingPatterns(words ...string) []trailingLabel {
	out := make([]trailingLabel, len(words))
	for i, w := range words {
		out[i] = trailingLabel{word: w, re: regexp.MustCompile(`(?i)\s+` + regexp.QuoteMeta(w) + `$`)}
	}
	return out
}

// nameStrategy proposes a name for text, reporting false when it has none
type nameStrategy struct {
	name string
	find func(text string) (string, bool)
}

// NameExtractor runs an ordered chain of name strategies and returns the first acceptable result.
type NameExtractor struct {
	recognizer EntityRecognizer
	log        zerolog.Logger
	strategies []nameStrategy
}

// NewNameExtractor builds the strategy chain. The entity strategy is included only when
// recognizer is non-nil.
func NewNameExtractor(recognizer EntityRecognizer, log zerolog.Logger) *NameExtractor {
	e := &NameExtractor{recognizer: recognizer, log: log}
	if recognizer != nil {
		e.strategies = append(e.strategies, nameStrategy{name: "entity", find: e.fromEntities})
	}
	e.strategies = append(e.strategies,
		nameStrategy{name: "leading_lines", find: nameFromLeadingLines},
		nameStrategy{name: "email", find: nameFromEmail},
	)
	return e
}

// ExtractCandidateName returns a best-effort display name for text using the line and
// email strategies, or UnknownName.
func ExtractCandidateName(text string) string {
	return NewNameExtractor(nil, logger.Logger).Extract(text)
}

// Extract returns the first name produced by the strategy chain, or UnknownName.
// A strategy that fails is logged and skipped.
func (e *NameExtractor) Extract(text string) string {
	if strings.TrimSpace(text) == "" {
		return UnknownName
	}
	for _, s := range e.strategies {
		name, ok, err := e.run(s, text)
		if err != nil {
			e.log.Warn().Err(err).Str("strategy", s.name).Msg("name strategy failed")
			continue
		}
		if ok {
			e.log.Debug().Str("strategy", s.name).Msg("candidate name found")
			return name
		}
	}
	return UnknownName
}

func (e *NameExtractor) run(s nameStrategy, text string) (name string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s strategy: %v", s.name, r)
		}
	}()
	name, ok = s.find(text)
	return name, ok, nil
}

func (e *NameExtractor) fromEntities(text string) (string, bool) {
	persons, err := e.recognizer.FindPersonEntities(prefixRunes(text, entityWindow))
	if err != nil {
		e.log.Warn().Err(err).Msg("person entity lookup failed")
		return "", false
	}
	if len(persons) == 0 {
		return "", false
	}

	name := strings.TrimSpace(persons[0])
	for _, l := range entityTrailingLabels {
		name = strings.TrimSpace(l.re.ReplaceAllString(name, ""))
	}

	words := strings.Fields(name)
	if len(words) == 0 || len(words) > maxNameWords || len(name) < minNameLength {
		return "", false
	}
	for _, w := range words {
		if entityRejectWords[strings.ToLower(w)] {
			return "", false
		}
	}
	return titleCase(name), true
}

// nameFromLeadingLines inspects the first non-blank lines for something shaped like a name.
// "Label: value" lines contribute their value only when the label mentions a name.
func nameFromLeadingLines(text string) (string, bool) {
	lines := splitLines(text)
	if len(lines) > nameLineWindow {
		lines = lines[:nameLineWindow]
	}

	for _, line := range lines {
		lower := strings.ToLower(line)
		if nameHeaderLines[lower] {
			continue
		}
		if strings.Contains(line, "@") || strings.Contains(lower, "http") ||
			strings.Contains(lower, "www.") || strings.Contains(lower, ".com") {
			continue
		}

		if label, value, ok := strings.Cut(line, ":"); ok {
			label = strings.ToLower(label)
			value = strings.TrimSpace(value)
			if !strings.Contains(label, "name") || value == "" ||
				strings.Contains(label, "company") || strings.Contains(label, "file") || strings.Contains(label, "user") {
				continue
			}
			line = value
		}

		candidate := cleanNameLine(line)
		if candidate == "" {
			continue
		}
		if plausibleName(candidate) {
			return titleCase(candidate), true
		}
	}
	return "", false
}

// cleanNameLine strips punctuation, contact-label tokens and trailing labels from a line
func cleanNameLine(line string) string {
	line = strings.TrimSpace(nameUnsafeChars.ReplaceAllString(line, " "))

	kept := make([]string, 0, 4)
	for _, w := range strings.Fields(line) {
		if !nameNoiseTokens[strings.ToLower(w)] {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	line = strings.Join(kept, " ")

	for _, l := range lineTrailingLabels {
		line = strings.TrimSpace(l.re.ReplaceAllString(line, ""))
		if strings.EqualFold(line, l.word) {
			return ""
		}
	}
	return line
}

func plausibleName(s string) bool {
	words := strings.Fields(s)
	n := len([]rune(s))
	if len(words) < 1 || len(words) > maxNameWords || n < minNameLength || n > maxNameLength {
		return false
	}
	for _, w := range words {
		if alphaRatio(w) < minAlphaRatio {
			return false
		}
	}
	if len(words) > upperCaseWords && isAllUpper(s) {
		return false
	}
	lower := strings.ToLower(s)
	for _, bad := range nameRejectSubstrings {
		if strings.Contains(lower, bad) {
			return false
		}
	}
	return true
}

// nameFromEmail derives a name from the local part of the first email address
func nameFromEmail(text string) (string, bool) {
	email := emailPattern.FindString(prefixRunes(text, emailWindow))
	if email == "" {
		return "", false
	}
	local, _, _ := strings.Cut(email, "@")
	local = strings.TrimSpace(whitespaceRun.ReplaceAllString(emailLocalNoise.ReplaceAllString(local, " "), " "))
	if len([]rune(local)) < minNameLength {
		return "", false
	}
	return titleCase(local), true
}

func alphaRatio(word string) float64 {
	total, alpha := 0, 0
	for _, r := range word {
		total++
		if unicode.IsLetter(r) {
			alpha++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alpha) / float64(total)
}

// isAllUpper reports whether s has at least one letter and no lower-case letters
func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// titleCase upper-cases the first letter of every letter run and lower-cases the rest,
// so "o'neil" becomes "O'Neil" and "JANE-MARIE" becomes "Jane-Marie".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// prefixRunes returns at most n runes from the start of s
func prefixRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
