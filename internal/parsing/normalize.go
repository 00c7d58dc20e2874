package parsing

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// skillAliases maps common skill name variants to the taxonomy spelling
var skillAliases = map[string]string{
	"golang":   "go",
	"go lang":  "go",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"react.js": "react",
	"reactjs":  "react",
	"vue.js":   "vue",
	"vuejs":    "vue",
	"postgres": "postgresql",
	"mongo":    "mongodb",
	"sklearn":  "scikit-learn",
	"ms excel": "excel",
}

// NormalizeSkillName lower-cases and trims a skill name and resolves known aliases
func NormalizeSkillName(skillName string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(skillName), " "))
	if normalized == "" {
		return ""
	}
	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeTerms normalizes every term, dropping empties and duplicates while keeping first-seen order
func NormalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		n := NormalizeSkillName(t)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// NormalizeRequirement normalizes the skill lists of a caller-supplied requirement and
// restores the required/preferred disjointness.
func NormalizeRequirement(req *types.JobRequirement) {
	req.RequiredSkills = NormalizeTerms(req.RequiredSkills)
	req.SoftSkills = NormalizeTerms(req.SoftSkills)

	required := make(map[string]bool, len(req.RequiredSkills))
	for _, s := range req.RequiredSkills {
		required[s] = true
	}
	preferred := make([]string, 0, len(req.PreferredSkills))
	for _, s := range NormalizeTerms(req.PreferredSkills) {
		if !required[s] {
			preferred = append(preferred, s)
		}
	}
	req.PreferredSkills = preferred

	if req.EducationRequirements == nil {
		req.EducationRequirements = []string{}
	}
	if req.ExperienceRequirements == nil {
		req.ExperienceRequirements = []string{}
	}
}

// ValidateRequirement checks the numeric bounds of a requirement
func ValidateRequirement(req *types.JobRequirement) error {
	if req == nil {
		return &ValidationError{Message: "requirement is nil"}
	}
	if req.MinExperienceYears < 0 {
		return &ValidationError{Field: "min_experience_years", Message: "must be >= 0"}
	}
	if req.MaxExperienceYears != nil && *req.MaxExperienceYears < 0 {
		return &ValidationError{Field: "max_experience_years", Message: "must be >= 0"}
	}
	return nil
}
