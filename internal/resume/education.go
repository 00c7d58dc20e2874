package resume

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	degreeNotSpecified      = "Degree not specified"
	institutionNotSpecified = "Institution not specified"
)

// educationLookahead lines, starting at the trigger line, are searched for year and institution.
// degreeLookback preceding lines are searched for a degree when only an institution was found.
const (
	educationLookahead = 3
	degreeLookback     = 2
)

// degreeKeywords covers bachelor, master, doctorate and diploma level qualifications
var degreeKeywords = []string{
	"bachelor", "b.s.", "b.a.", "b.sc.", "b.tech", "b.e.", "bs", "ba", "bsc", "btech",
	"master", "m.s.", "m.a.", "m.sc.", "m.tech", "m.e.", "ms", "ma", "msc", "mtech", "mba",
	"phd", "ph.d.", "doctorate", "doctoral", "d.phil",
	"diploma", "certificate", "associate",
}

var institutionKeywords = []string{
	"university", "college", "institute", "school", "academy",
	"polytechnic", "conservatory", "seminary",
}

var (
	degreePatterns = compileWholeWords(degreeKeywords)
	yearPattern    = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	// degreeSeparators split "BSc Computer Science, MIT University" style lines
	degreeSeparators = regexp.MustCompile(`\s*(?:,|;|\||\s-\s|\s–\s|\bat\b)\s*`)
)

func compileWholeWords(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(words))
	for i, w := range words {
		out[i] = taxonomy.WholeWord(w)
	}
	return out
}

func anyWholeWord(patterns []*regexp.Regexp, text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func hasDegreeKeyword(line string) bool {
	return anyWholeWord(degreePatterns, line)
}

func hasInstitutionKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range institutionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// lastYear returns the last four-digit year in line
func lastYear(line string) (int, bool) {
	years := yearPattern.FindAllString(line, -1)
	if len(years) == 0 {
		return 0, false
	}
	y, err := strconv.Atoi(years[len(years)-1])
	if err != nil {
		return 0, false
	}
	return y, true
}

// extractEducation walks the education section and emits one entry per degree or
// institution line. orgs are optional organization-name hints.
func extractEducation(lines []string, orgs []string) []types.EducationEntry {
	section := sectionLines(lines, educationHeaders, educationNextHeaders)
	entries := make([]types.EducationEntry, 0)
	seen := make(map[[2]string]bool)

	for i, line := range section {
		degreeFound := hasDegreeKeyword(line)
		if !degreeFound && !hasInstitutionKeyword(line) {
			continue
		}

		degree := ""
		if degreeFound {
			degree = line
		}
		institution := ""
		var year *int

		end := min(i+educationLookahead, len(section))
		for j := i; j < end; j++ {
			if year == nil {
				if y, ok := lastYear(section[j]); ok {
					year = types.IntPtr(y)
				}
			}
			if institution == "" {
				if hasInstitutionKeyword(section[j]) {
					institution = section[j]
				} else if org, ok := matchHint(section[j], orgs); ok {
					institution = org
				}
			}
		}

		if institution != "" && degree == "" {
			for j := max(0, i-degreeLookback); j < i; j++ {
				if hasDegreeKeyword(section[j]) {
					degree = section[j]
					break
				}
			}
		}

		if degree != "" && degree == institution {
			degree, institution = splitDegreeLine(degree)
		}

		if degree == "" && institution == "" {
			continue
		}
		if degree == "" {
			degree = degreeNotSpecified
		}
		if institution == "" {
			institution = institutionNotSpecified
		}

		key := [2]string{strings.ToLower(degree), strings.ToLower(institution)}
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, types.EducationEntry{Degree: degree, Institution: institution, Year: year})
	}

	return entries
}

// splitDegreeLine separates a line holding both a degree and an institution.
// When the parts cannot be told apart the line is kept on the side its keywords suggest.
func splitDegreeLine(line string) (degree, institution string) {
	parts := degreeSeparators.Split(line, -1)
	if len(parts) > 1 {
		var degreeParts, instParts []string
		for _, p := range parts {
			p = strings.TrimSpace(p)
			switch {
			case strings.TrimSpace(yearPattern.ReplaceAllString(p, "")) == "":
			case hasInstitutionKeyword(p):
				instParts = append(instParts, p)
			default:
				degreeParts = append(degreeParts, p)
			}
		}
		if len(degreeParts) > 0 && len(instParts) > 0 && hasDegreeKeyword(strings.Join(degreeParts, " ")) {
			return strings.Join(degreeParts, ", "), strings.Join(instParts, ", ")
		}
	}

	if hasInstitutionKeyword(line) {
		return "", line
	}
	return line, ""
}
