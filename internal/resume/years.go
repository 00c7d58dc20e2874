package resume

import (
	"regexp"
	"strconv"
	"strings"
)

// statedYearsPatterns match explicit statements such as "5 years of experience" or "Experience: 7 years"
var statedYearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience\s*:\s*(\d+)\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*experience`),
}

// yearsStrategy estimates total experience, reporting false when it has no signal
type yearsStrategy func(text string) (float64, bool)

var yearsStrategies = []yearsStrategy{statedYears, yearSpan}

// totalExperienceYears returns the first estimate produced by the strategy chain, or 0
func totalExperienceYears(text string) float64 {
	for _, s := range yearsStrategies {
		if years, ok := s(text); ok {
			return years
		}
	}
	return 0
}

// statedYears returns the largest explicitly stated number of years
func statedYears(text string) (float64, bool) {
	lower := strings.ToLower(text)
	best, found := 0.0, false
	for _, re := range statedYearsPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if !found || float64(n) > best {
				best, found = float64(n), true
			}
		}
	}
	return best, found
}

// yearSpan returns the distance between the earliest and latest four-digit year in text
func yearSpan(text string) (float64, bool) {
	matches := yearPattern.FindAllString(text, -1)
	if len(matches) < 2 {
		return 0, false
	}
	lo, hi := 0, 0
	for i, m := range matches {
		y, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if i == 0 || y < lo {
			lo = y
		}
		if i == 0 || y > hi {
			hi = y
		}
	}
	return float64(hi - lo), true
}
