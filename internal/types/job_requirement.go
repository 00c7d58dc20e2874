package types

// JobRequirement represents structured requirements parsed from a job description.
// RequiredSkills and PreferredSkills never share an entry.
type JobRequirement struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description,omitempty"` // Text the requirement was parsed from, mined for keywords during scoring
	RequiredSkills         []string `json:"required_skills"`
	PreferredSkills        []string `json:"preferred_skills"`
	EducationRequirements  []string `json:"education_requirements"`
	ExperienceRequirements []string `json:"experience_requirements"`
	SoftSkills             []string `json:"soft_skills"`
	MinExperienceYears     int      `json:"min_experience_years"`
	MaxExperienceYears     *int     `json:"max_experience_years,omitempty"`
}

// NewJobRequirement returns an empty requirement with non-nil slices
func NewJobRequirement(title, description string) *JobRequirement {
	return &JobRequirement{
		Title:                  title,
		Description:            description,
		RequiredSkills:         []string{},
		PreferredSkills:        []string{},
		EducationRequirements:  []string{},
		ExperienceRequirements: []string{},
		SoftSkills:             []string{},
	}
}
