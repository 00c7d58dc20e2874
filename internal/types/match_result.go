package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MatchStatus is the screening classification of a scored candidate
type MatchStatus string

const (
	StatusShortlisted MatchStatus = "shortlisted"
	StatusRejected    MatchStatus = "rejected"
)

// MatchResult represents the scored outcome of one résumé against one job requirement
type MatchResult struct {
	ID                   uuid.UUID          `json:"id"`
	CandidateID          string             `json:"candidate_id"`
	ScoredBy             string             `json:"scored_by,omitempty"`
	OverallScore         float64            `json:"overall_score"`
	MatchStatus          MatchStatus        `json:"match_status"`
	SkillMatchScore      float64            `json:"skill_match_score"`
	EducationMatchScore  float64            `json:"education_match_score"`
	ExperienceMatchScore float64            `json:"experience_match_score"`
	SoftSkillsScore      float64            `json:"soft_skills_score"`
	MatchedSkills        []string           `json:"matched_skills"`
	MissingSkills        []string           `json:"missing_skills"`
	MatchedEducation     []string           `json:"matched_education"`
	SkillAnalysis        *SkillAnalysis     `json:"skill_analysis,omitempty"`
	ExperienceAnalysis   ExperienceAnalysis `json:"experience_analysis"`
	AISummary            string             `json:"ai_summary"`
	Strengths            []string           `json:"strengths"`
	Concerns             []string           `json:"concerns"`
	Recommendations      []string           `json:"recommendations"`
	ProcessingTimeMs     int64              `json:"processing_time_ms"`
}

// SkillAnalysis records how the skill sub-score was derived
type SkillAnalysis struct {
	KeywordMatches    int     `json:"keyword_matches"`
	PredefinedMatches int     `json:"predefined_matches"`
	TotalJobTerms     int     `json:"total_job_terms"`
	MatchRate         float64 `json:"match_rate"`
}

// ExperienceAnalysis records the inputs of the experience sub-score
type ExperienceAnalysis struct {
	CandidateYears float64 `json:"candidate_years"`
	MinRequired    int     `json:"min_required"`
	MaxRequired    *int    `json:"max_required,omitempty"`
	MeetsMinimum   bool    `json:"meets_minimum"`
}

// Summary holds aggregate statistics over a batch of match results
type Summary struct {
	Total        int     `json:"total"`
	Shortlisted  int     `json:"shortlisted"`
	Rejected     int     `json:"rejected"`
	AverageScore float64 `json:"average_score"`
}

// Weights are the per-criterion multipliers applied to the four sub-scores
type Weights struct {
	Skills     float64 `json:"skills" validate:"gte=0"`
	Experience float64 `json:"experience" validate:"gte=0"`
	Education  float64 `json:"education" validate:"gte=0"`
	SoftSkills float64 `json:"soft_skills" validate:"gte=0"`
}

// Weight names accepted by WeightsFromMap
const (
	WeightSkills     = "skills"
	WeightExperience = "experience"
	WeightEducation  = "education"
	WeightSoftSkills = "soft_skills"
)

// DefaultWeights returns the standard weighting: skills 0.35, experience 0.25, education 0.20, soft skills 0.20
func DefaultWeights() Weights {
	return Weights{
		Skills:     0.35,
		Experience: 0.25,
		Education:  0.20,
		SoftSkills: 0.20,
	}
}

// WeightsFromMap builds Weights from a name → value mapping.
// Names that are absent keep their default value; unknown names are rejected.
func WeightsFromMap(m map[string]float64) (Weights, error) {
	w := DefaultWeights()
	var unknown []string
	for name, value := range m {
		switch name {
		case WeightSkills:
			w.Skills = value
		case WeightExperience:
			w.Experience = value
		case WeightEducation:
			w.Education = value
		case WeightSoftSkills:
			w.SoftSkills = value
		default:
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Weights{}, fmt.Errorf("unknown weight name(s): %s", strings.Join(unknown, ", "))
	}
	return w, w.Validate()
}

// Sum returns the total of all four weights
func (w Weights) Sum() float64 {
	return w.Skills + w.Experience + w.Education + w.SoftSkills
}

// Validate checks that no weight is negative and at least one is positive
func (w Weights) Validate() error {
	validate := validator.New()
	if err := validate.Struct(w); err != nil {
		return err
	}
	if w.Sum() <= 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}
