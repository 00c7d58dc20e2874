package resume

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	issuerNotSpecified   = "Issuer not specified"
	defaultProficiency   = "Native/Fluent"
	certYearWindow       = 50
	maxCertificationName = 120
)

// extractSkills matches the taxonomy against text and returns sorted, duplicate-free lists
func extractSkills(tax *taxonomy.Taxonomy, text string) types.SkillSet {
	technical := tax.FindTechnical(text)
	soft := tax.FindSoft(text)
	sort.Strings(technical)
	sort.Strings(soft)
	return types.SkillSet{Technical: technical, Soft: soft}
}

// certificationKeywords each accept a trailing plural "s"
var certificationKeywords = []string{"certificate", "certification", "certified", "license"}

var certificationPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(certificationKeywords))
	for i, kw := range certificationKeywords {
		out[i] = regexp.MustCompile(`(?i)\b` + kw + `s?\b`)
	}
	return out
}()

var issuerPhrase = regexp.MustCompile(`(?i)\b(?:issued by|by|from)\s+([^,;()|]+)`)

// knownIssuers are recognised certification bodies, matched case-insensitively
var knownIssuers = []string{
	"Amazon Web Services", "AWS", "Microsoft", "Google Cloud", "Google", "Cisco",
	"CompTIA", "Oracle", "PMI", "Salesforce", "Red Hat", "Linux Foundation",
	"(ISC)²", "ISC2", "ISACA", "Scrum Alliance", "Scrum.org", "HashiCorp", "CNCF",
}

// extractCertifications emits one entry per certification keyword present in text.
// The entry names the line that mentions the keyword; when that line is a bare section
// header the following line is used instead. A year on the named line wins over one
// found near the keyword. Two keywords on the same line yield two entries.
func extractCertifications(text string, orgs []string) []types.Certification {
	certs := make([]types.Certification, 0, len(certificationPatterns))

	for _, re := range certificationPatterns {
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}

		name := certificationLine(text, loc[0])

		year := yearNear(text, loc[0], certYearWindow)
		if y, ok := lastYear(name); ok {
			year = types.IntPtr(y)
		}
		certs = append(certs, types.Certification{
			Name:   name,
			Issuer: certificationIssuer(name, orgs),
			Year:   year,
		})
	}
	return certs
}

// certificationLine returns the trimmed line around offset, skipping past a header-only line
func certificationLine(text string, offset int) string {
	start := strings.LastIndex(text[:offset], "\n") + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end == -1 {
		end = len(text)
	} else {
		end += offset
	}
	line := strings.TrimSpace(text[start:end])

	if isCertificationHeader(line) && end < len(text) {
		for _, next := range strings.Split(text[end+1:], "\n") {
			if next = strings.TrimSpace(next); next != "" {
				line = next
				break
			}
		}
	}

	if r := []rune(line); len(r) > maxCertificationName {
		line = strings.TrimSpace(string(r[:maxCertificationName]))
	}
	return line
}

func isCertificationHeader(line string) bool {
	l := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(line)), ":")
	for _, kw := range certificationKeywords {
		if l == kw || l == kw+"s" {
			return true
		}
	}
	return l == "licenses & certifications" || l == "certifications & licenses"
}

func certificationIssuer(line string, orgs []string) string {
	if m := issuerPhrase.FindStringSubmatch(line); m != nil {
		issuer := strings.TrimSpace(yearPattern.ReplaceAllString(m[1], ""))
		issuer = strings.TrimRight(issuer, " -–.")
		if issuer != "" {
			return issuer
		}
	}
	if org, ok := matchHint(line, orgs); ok {
		return org
	}
	for _, known := range knownIssuers {
		if taxonomy.ContainsWord(line, known) {
			return known
		}
	}
	return issuerNotSpecified
}

// yearNear returns the first four-digit year within window bytes either side of offset
func yearNear(text string, offset, window int) *int {
	from := max(0, offset-window)
	to := min(len(text), offset+window)
	m := yearPattern.FindString(text[from:to])
	if m == "" {
		return nil
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return types.IntPtr(y)
}

var commonLanguages = []string{
	"english", "spanish", "french", "german", "chinese", "japanese",
	"portuguese", "russian", "arabic", "hindi", "italian",
}

var languagePatterns = compileWholeWords(commonLanguages)

// proficiencyLevels are checked in order; CEFR codes are reported verbatim
var proficiencyLevels = []string{
	"native", "bilingual", "fluent", "professional", "proficient", "advanced",
	"intermediate", "conversational", "basic", "beginner", "elementary",
}

var (
	proficiencyPatterns = compileWholeWords(proficiencyLevels)
	cefrLevel           = regexp.MustCompile(`\b[ABC][12]\b`)
	clauseDelimiters    = "\n,;|/"
)

// extractLanguages reports each known language mentioned in text with the proficiency
// stated next to it, falling back to "Native/Fluent".
func extractLanguages(text string) []types.Language {
	langs := make([]types.Language, 0)
	for i, re := range languagePatterns {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		langs = append(langs, types.Language{
			Language:    titleCase(commonLanguages[i]),
			Proficiency: proficiencyAround(text, loc[2], loc[3]),
		})
	}
	return langs
}

// proficiencyAround looks for a proficiency qualifier in the clause after the language
// mention first, then in the clause before it.
func proficiencyAround(text string, start, end int) string {
	after := text[end:]
	if i := strings.IndexAny(after, clauseDelimiters); i >= 0 {
		after = after[:i]
	}
	before := text[:start]
	if i := strings.LastIndexAny(before, clauseDelimiters); i >= 0 {
		before = before[i+1:]
	}

	for _, clause := range []string{after, before} {
		if level, ok := proficiencyIn(clause); ok {
			return level
		}
	}
	return defaultProficiency
}

func proficiencyIn(clause string) (string, bool) {
	if m := cefrLevel.FindString(clause); m != "" {
		return m, true
	}
	for i, re := range proficiencyPatterns {
		if re.MatchString(clause) {
			return titleCase(proficiencyLevels[i]), true
		}
	}
	return "", false
}
