package ranking

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/keywords"
	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

// Flat scores used when the job states nothing for a criterion
const (
	noSkillTermsScore = 30.0
	noEducationScore  = 25.0
	noExperienceScore = 40.0
	noSoftSkillsScore = 50.0
)

const (
	fullMatchScore        = 100.0
	overqualifiedScore    = 85.0
	underqualifiedFloor   = 40.0
	underqualifiedCeiling = 80.0
	skillRateWeight       = 60.0
	keywordPointsPerMatch = 2.0
	maxKeywordBoost       = 30.0
	skillBaseScore        = 15.0
)

type skillMatch struct {
	score    float64
	matched  []string
	missing  []string
	analysis types.SkillAnalysis
}

// skillTerm is a required or preferred skill with its whole-word matcher
type skillTerm struct {
	name     string
	required bool
	re       *regexp.Regexp
}

// compileSkillTerms resolves every requirement skill to a matcher once per requirement.
// Skills known to tax reuse its precompiled patterns.
func compileSkillTerms(tax *taxonomy.Taxonomy, req *types.JobRequirement) []skillTerm {
	terms := make([]skillTerm, 0, len(req.RequiredSkills)+len(req.PreferredSkills))
	add := func(skills []string, required bool) {
		for _, s := range skills {
			name := strings.ToLower(s)
			terms = append(terms, skillTerm{name: name, required: required, re: tax.Matcher(name)})
		}
	}
	add(req.RequiredSkills, true)
	add(req.PreferredSkills, false)
	return terms
}

// computeSkillScore combines keywords mined from the job description with the
// requirement's skill terms. Keywords are searched as substrings of the raw résumé
// text; skill terms match the extracted technical skills or, failing that, appear
// as a whole word in the raw text.
func computeSkillScore(resume *types.ResumeRecord, jobKeywords []string, terms []skillTerm) skillMatch {
	matchedKeywords := keywords.MatchIn(jobKeywords, resume.RawText)

	candidateSkills := make(map[string]bool, len(resume.Skills.Technical))
	for _, s := range resume.Skills.Technical {
		candidateSkills[strings.ToLower(s)] = true
	}

	matchedTerms := make([]string, 0, len(terms))
	for _, term := range terms {
		if candidateSkills[term.name] || (term.re != nil && term.re.MatchString(resume.RawText)) {
			matchedTerms = append(matchedTerms, term.name)
		}
	}

	union := make(map[string]bool, len(matchedKeywords)+len(matchedTerms))
	for _, kw := range matchedKeywords {
		union[strings.ToLower(kw)] = true
	}
	for _, s := range matchedTerms {
		union[s] = true
	}
	matched := make([]string, 0, len(union))
	for s := range union {
		matched = append(matched, s)
	}
	sort.Strings(matched)

	missing := make([]string, 0)
	for _, term := range terms {
		if term.required && !union[term.name] {
			missing = append(missing, term.name)
		}
	}

	total := len(jobKeywords) + len(terms)
	result := skillMatch{
		matched: matched,
		missing: missing,
		analysis: types.SkillAnalysis{
			KeywordMatches:    len(matchedKeywords),
			PredefinedMatches: len(matchedTerms),
			TotalJobTerms:     total,
		},
	}
	if total == 0 {
		result.score = noSkillTermsScore
		return result
	}

	rate := float64(len(matched)) / float64(total)
	boost := math.Min(maxKeywordBoost, float64(len(matchedKeywords))*keywordPointsPerMatch)
	result.analysis.MatchRate = rate
	result.score = math.Min(fullMatchScore, rate*skillRateWeight+boost+skillBaseScore)
	return result
}

// computeExperienceScore applies the experience policy. A maximum of zero is treated as unset.
func computeExperienceScore(years float64, minYears int, maxYears *int) (float64, types.ExperienceAnalysis) {
	analysis := types.ExperienceAnalysis{
		CandidateYears: years,
		MinRequired:    minYears,
		MaxRequired:    maxYears,
		MeetsMinimum:   years >= float64(minYears),
	}

	switch {
	case minYears <= 0:
		return noExperienceScore, analysis
	case years >= float64(minYears):
		if maxYears != nil && *maxYears > 0 && years > float64(*maxYears) {
			return overqualifiedScore, analysis
		}
		return fullMatchScore, analysis
	default:
		return math.Max(underqualifiedFloor, years/float64(minYears)*underqualifiedCeiling), analysis
	}
}

// computeSoftSkillsScore is the share of required soft skills the candidate lists
func computeSoftSkillsScore(candidate, required []string) float64 {
	if len(required) == 0 {
		return noSoftSkillsScore
	}
	have := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		have[strings.ToLower(s)] = true
	}
	matched := 0
	for _, s := range required {
		if have[strings.ToLower(s)] {
			matched++
		}
	}
	return float64(matched) / float64(len(required)) * 100
}

// round2 rounds half away from zero to two decimals
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
