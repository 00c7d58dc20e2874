package ranking

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// computeEducationScore is the share of education requirements matched by any degree or
// institution string, comparing case-insensitively with containment in either direction.
func computeEducationScore(entries []types.EducationEntry, required []string) (float64, []string) {
	matched := make([]string, 0, len(required))
	if len(required) == 0 {
		return noEducationScore, matched
	}

	fields := make([]string, 0, 2*len(entries))
	for _, e := range entries {
		for _, f := range []string{e.Degree, e.Institution} {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				fields = append(fields, f)
			}
		}
	}

	for _, req := range required {
		r := strings.ToLower(strings.TrimSpace(req))
		if r == "" {
			continue
		}
		for _, f := range fields {
			if strings.Contains(r, f) || strings.Contains(f, r) {
				matched = append(matched, req)
				break
			}
		}
	}
	return float64(len(matched)) / float64(len(required)) * 100, matched
}
