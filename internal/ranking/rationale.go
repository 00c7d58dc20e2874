package ranking

import (
	"fmt"

	"github.com/jonathan/resume-screener/internal/types"
)

// Thresholds for rationale wording. ShortlistThreshold is fixed policy.
const (
	ShortlistThreshold = 50.0
	interviewThreshold = 70.0
	strengthThreshold  = 80.0
	concernThreshold   = 50.0
)

type subScores struct {
	skills     float64
	experience float64
	education  float64
	softSkills float64
}

type rationale struct {
	summary         string
	strengths       []string
	concerns        []string
	recommendations []string
}

func buildRationale(title string, overall float64, s subScores, missingSkills []string) rationale {
	r := rationale{
		summary:         fmt.Sprintf("Candidate shows %.0f%% match for %s position. ", overall, title),
		strengths:       []string{},
		concerns:        []string{},
		recommendations: []string{},
	}

	if s.skills >= strengthThreshold {
		r.strengths = append(r.strengths, "Strong technical skill alignment")
	}
	if s.experience >= strengthThreshold {
		r.strengths = append(r.strengths, "Meets experience requirements")
	}
	if s.education >= strengthThreshold {
		r.strengths = append(r.strengths, "Educational background aligns well")
	}
	if s.softSkills >= strengthThreshold {
		r.strengths = append(r.strengths, "Good soft skills match")
	}

	if s.skills < concernThreshold {
		r.concerns = append(r.concerns, "Missing key technical skills")
	}
	if s.experience < concernThreshold {
		r.concerns = append(r.concerns, "Insufficient relevant experience")
	}
	if s.education < concernThreshold {
		r.concerns = append(r.concerns, "Education requirements not fully met")
	}

	switch {
	case overall >= interviewThreshold:
		r.recommendations = append(r.recommendations, "Proceed with interview scheduling")
	case overall >= ShortlistThreshold:
		r.recommendations = append(r.recommendations, "Consider for phone screening")
		if len(missingSkills) > 0 {
			r.recommendations = append(r.recommendations, "Assess missing technical skills during interview")
		}
	default:
		r.recommendations = append(r.recommendations, "Not recommended for this position")
	}
	return r
}

func classify(overall float64) types.MatchStatus {
	if overall >= ShortlistThreshold {
		return types.StatusShortlisted
	}
	return types.StatusRejected
}
