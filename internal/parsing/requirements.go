// Package parsing turns free-text job descriptions into structured JobRequirements using
// the skill taxonomy and fixed phrase vocabularies.
package parsing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	skillContextRunes        = 100
	degreeContextRunes       = 50
	maxExperiencePhraseWords = 4
)

var fieldPatterns = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(fieldsOfStudy))
	for i, f := range fieldsOfStudy {
		out[i] = taxonomy.WholeWord(f)
	}
	return out
}()

// RequirementParser extracts JobRequirements. It holds no mutable state and is safe for concurrent use.
type RequirementParser struct {
	taxonomy *taxonomy.Taxonomy
	log      zerolog.Logger
}

// Option configures a RequirementParser
type Option func(*RequirementParser)

// WithTaxonomy replaces the default skill taxonomy
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(p *RequirementParser) {
		if t != nil {
			p.taxonomy = t
		}
	}
}

// WithLogger sets the logger used for parse diagnostics
func WithLogger(l zerolog.Logger) Option {
	return func(p *RequirementParser) { p.log = l }
}

// NewRequirementParser creates a parser backed by the default taxonomy
func NewRequirementParser(opts ...Option) *RequirementParser {
	p := &RequirementParser{taxonomy: taxonomy.Default(), log: logger.Logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseJobRequirements parses description with the default taxonomy and no title
func ParseJobRequirements(description string) (*types.JobRequirement, error) {
	return NewRequirementParser().Parse("", description)
}

// Parse builds a JobRequirement from a job title and its free-text description.
// Returns *ParseError when the description is blank.
func (p *RequirementParser) Parse(title, description string) (*types.JobRequirement, error) {
	if strings.TrimSpace(description) == "" {
		return nil, &ParseError{Message: "job description is empty"}
	}

	text := strings.ToLower(description)
	req := types.NewJobRequirement(strings.TrimSpace(title), description)

	req.RequiredSkills, req.PreferredSkills = p.classifySkills(text)
	req.EducationRequirements = educationRequirements(text)
	req.ExperienceRequirements = experienceRequirements(text)
	req.SoftSkills = sortedTerms(p.taxonomy.FindSoft(text))
	req.MinExperienceYears, req.MaxExperienceYears = experienceYears(text)

	p.log.Info().
		Str("title", req.Title).
		Int("required_skills", len(req.RequiredSkills)).
		Int("preferred_skills", len(req.PreferredSkills)).
		Int("education", len(req.EducationRequirements)).
		Int("min_years", req.MinExperienceYears).
		Msg("parsed job requirements")
	return req, nil
}

type skillClass int

const (
	classRequired skillClass = iota
	classPreferred
)

// classifySkills splits taxonomy skills mentioned in text into required and preferred.
// Each skill is classified once, so the two lists never overlap.
func (p *RequirementParser) classifySkills(text string) (required, preferred []string) {
	required, preferred = []string{}, []string{}
	for _, skill := range p.taxonomy.TechnicalSkills() {
		start, end, ok := p.taxonomy.Index(text, skill)
		if !ok {
			continue
		}
		if classify(lineWindow(text, start, end, skillContextRunes)) == classPreferred {
			preferred = append(preferred, skill)
		} else {
			required = append(required, skill)
		}
	}

	required = sortedTerms(required)
	isRequired := make(map[string]bool, len(required))
	for _, s := range required {
		isRequired[s] = true
	}
	onlyPreferred := make([]string, 0, len(preferred))
	for _, s := range sortedTerms(preferred) {
		if !isRequired[s] {
			onlyPreferred = append(onlyPreferred, s)
		}
	}
	return required, onlyPreferred
}

// classify reads indicator phrases from a mention's context. Without any indicator a
// skill counts as required.
func classify(context string) skillClass {
	if containsAny(context, preferredIndicators) {
		return classPreferred
	}
	if containsAny(context, requiredIndicators) {
		return classRequired
	}
	return classRequired
}

func containsAny(s string, phrases []string) bool {
	for _, ph := range phrases {
		if strings.Contains(s, ph) {
			return true
		}
	}
	return false
}

func educationRequirements(text string) []string {
	found := make([]string, 0)
	for _, re := range degreePhrasePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if ctx := strings.TrimSpace(lineWindow(text, loc[0], loc[1], degreeContextRunes)); ctx != "" {
				found = append(found, ctx)
			}
		}
	}
	for i, re := range fieldPatterns {
		if re.MatchString(text) {
			found = append(found, "Degree in "+titleWords(fieldsOfStudy[i]))
		}
	}
	return sortedUnique(found)
}

func experienceRequirements(text string) []string {
	found := make([]string, 0)
	seen := make(map[string]bool)
	for _, re := range experiencePhrasePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			words := strings.Fields(m[1])
			if len(words) == 0 || len(words) > maxExperiencePhraseWords {
				continue
			}
			phrase := "Experience in " + strings.Join(words, " ")
			if !seen[phrase] {
				seen[phrase] = true
				found = append(found, phrase)
			}
		}
	}
	return found
}

// experienceYears applies every pattern to the unmodified text. Each match raises the
// minimum to its first number; each range match ("N to M years", "N-M years") also sets
// the maximum to M, so the last range wins.
func experienceYears(text string) (minYears int, maxYears *int) {
	for _, re := range rangeYearsPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			lo, errLo := strconv.Atoi(m[1])
			hi, errHi := strconv.Atoi(m[2])
			if errLo != nil || errHi != nil {
				continue
			}
			minYears = max(minYears, lo)
			maxYears = types.IntPtr(hi)
		}
	}

	for _, re := range minYearsPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				minYears = max(minYears, n)
			}
		}
	}
	return minYears, maxYears
}

// lineWindow returns up to n runes either side of text[start:end] without crossing a line break
func lineWindow(text string, start, end, n int) string {
	lo := start
	for i := 0; i < n && lo > 0; i++ {
		r, size := utf8.DecodeLastRuneInString(text[:lo])
		if r == '\n' {
			break
		}
		lo -= size
	}
	hi := end
	for i := 0; i < n && hi < len(text); i++ {
		r, size := utf8.DecodeRuneInString(text[hi:])
		if r == '\n' {
			break
		}
		hi += size
	}
	return text[lo:hi]
}

// titleWords upper-cases the first letter of every space-separated word
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func sortedTerms(terms []string) []string {
	out := NormalizeTerms(terms)
	sort.Strings(out)
	return out
}

func sortedUnique(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	sort.Strings(out)
	return out
}
