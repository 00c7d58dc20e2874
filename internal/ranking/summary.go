package ranking

import "github.com/jonathan/resume-screener/internal/types"

// Summarize computes batch statistics. The average is rounded to two decimals and is zero for an empty batch.
func Summarize(results []types.MatchResult) types.Summary {
	var s types.Summary
	s.Total = len(results)
	if s.Total == 0 {
		return s
	}

	var total float64
	for _, r := range results {
		switch r.MatchStatus {
		case types.StatusShortlisted:
			s.Shortlisted++
		case types.StatusRejected:
			s.Rejected++
		}
		total += r.OverallScore
	}
	s.AverageScore = round2(total / float64(s.Total))
	return s
}
