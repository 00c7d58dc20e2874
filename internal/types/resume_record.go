// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsingStatus reports whether structured extraction over a résumé succeeded
type ParsingStatus string

const (
	// ParsingCompleted means every field group was extracted (possibly empty)
	ParsingCompleted ParsingStatus = "completed"
	// ParsingFailed means extraction was abandoned and all structured fields are empty
	ParsingFailed ParsingStatus = "failed"
)

// ResumeRecord represents a parsed résumé document
type ResumeRecord struct {
	CandidateName        string            `json:"candidate_name,omitempty"`
	RawText              string            `json:"raw_text"`
	PersonalInfo         PersonalInfo      `json:"personal_info"`
	Education            []EducationEntry  `json:"education"`
	WorkExperience       []ExperienceEntry `json:"work_experience"`
	Skills               SkillSet          `json:"skills"`
	Certifications       []Certification   `json:"certifications"`
	Languages            []Language        `json:"languages"`
	TotalExperienceYears float64           `json:"total_experience_years"`
	ParsingStatus        ParsingStatus     `json:"parsing_status"`
	ParsingError         string            `json:"parsing_error,omitempty"`
	Source               *DocumentSource   `json:"source,omitempty"`
}

// PersonalInfo holds contact details found in the résumé header
type PersonalInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// EducationEntry represents one degree or institution line group
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        *int   `json:"year,omitempty"`
}

// ExperienceEntry represents one position in the work history
type ExperienceEntry struct {
	Position       string `json:"position"`
	Company        string `json:"company"`
	StartYear      *int   `json:"start_year,omitempty"`
	EndYear        *int   `json:"end_year,omitempty"`
	Description    string `json:"description"`
	DurationMonths int    `json:"duration_months"`
}

// SkillSet holds deduplicated, sorted skill names per category
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Certification represents a certification or license mention
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   *int   `json:"year,omitempty"`
}

// Language represents a spoken language and its stated proficiency
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// DocumentSource describes the uploaded document a record was parsed from
type DocumentSource struct {
	Format    string `json:"format"`
	SizeBytes int    `json:"size_bytes"`
	SHA256    string `json:"sha256"`
	Pages     int    `json:"pages,omitempty"`
}

// NewResumeRecord returns a completed record with empty containers for the given text
func NewResumeRecord(rawText string) *ResumeRecord {
	return &ResumeRecord{
		RawText:        rawText,
		Education:      []EducationEntry{},
		WorkExperience: []ExperienceEntry{},
		Skills:         SkillSet{Technical: []string{}, Soft: []string{}},
		Certifications: []Certification{},
		Languages:      []Language{},
		ParsingStatus:  ParsingCompleted,
	}
}

// NewFailedResumeRecord returns the failed shape: empty text and containers plus the error description
func NewFailedResumeRecord(err error) *ResumeRecord {
	rec := NewResumeRecord("")
	rec.ParsingStatus = ParsingFailed
	if err != nil {
		rec.ParsingError = err.Error()
	} else {
		rec.ParsingError = "unknown parsing error"
	}
	return rec
}

// Failed reports whether the record carries the failed status
func (r *ResumeRecord) Failed() bool {
	return r.ParsingStatus == ParsingFailed
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
