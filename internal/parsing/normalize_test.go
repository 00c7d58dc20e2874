package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Golang to go", "Golang", "go"},
		{"go lang to go", "go  lang", "go"},
		{"JS to javascript", "JS", "javascript"},
		{"ts to typescript", "ts", "typescript"},
		{"K8s to kubernetes", "K8s", "kubernetes"},
		{"reactjs to react", "ReactJS", "react"},
		{"postgres to postgresql", "Postgres", "postgresql"},
		{"Python lower-cased", "Python", "python"},
		{"surrounding space trimmed", "  Docker ", "docker"},
		{"multi-word kept", "Distributed   Systems", "distributed systems"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillName(tt.input))
		})
	}
}

func TestNormalizeTerms(t *testing.T) {
	got := NormalizeTerms([]string{"Golang", "Python", "go", "", "python", "K8s"})
	assert.Equal(t, []string{"go", "python", "kubernetes"}, got)

	assert.Empty(t, NormalizeTerms(nil))
	assert.NotNil(t, NormalizeTerms(nil))
}

func TestNormalizeRequirement(t *testing.T) {
	req := &types.JobRequirement{
		RequiredSkills:  []string{"Python", "Golang", "python"},
		PreferredSkills: []string{"go", "Docker", "docker"},
		SoftSkills:      []string{"Teamwork"},
	}

	NormalizeRequirement(req)

	assert.Equal(t, []string{"python", "go"}, req.RequiredSkills)
	assert.Equal(t, []string{"docker"}, req.PreferredSkills, "preferred must not repeat required skills")
	assert.Equal(t, []string{"teamwork"}, req.SoftSkills)
	assert.NotNil(t, req.EducationRequirements)
	assert.NotNil(t, req.ExperienceRequirements)
}

func TestValidateRequirement(t *testing.T) {
	tests := []struct {
		name    string
		req     *types.JobRequirement
		field   string
		wantErr bool
	}{
		{"nil", nil, "", true},
		{"valid", &types.JobRequirement{MinExperienceYears: 3, MaxExperienceYears: types.IntPtr(5)}, "", false},
		{"negative minimum", &types.JobRequirement{MinExperienceYears: -1}, "min_experience_years", true},
		{"negative maximum", &types.JobRequirement{MaxExperienceYears: types.IntPtr(-2)}, "max_experience_years", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequirement(tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}
