package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

func termsFor(req *types.JobRequirement) []skillTerm {
	return compileSkillTerms(taxonomy.Default(), req)
}

func TestComputeSkillScore_KeywordsFromDescription(t *testing.T) {
	rec := types.NewResumeRecord("Built Kafka pipelines for billing")
	req := types.NewJobRequirement("Data Engineer", "Looking for Kafka and Kafka streaming expertise")

	got := computeSkillScore(rec, []string{"kafka", "streaming", "expertise"}, termsFor(req))

	assert.InDelta(t, 37.0, got.score, 1e-9)
	assert.Equal(t, []string{"kafka"}, got.matched)
	assert.Empty(t, got.missing)
	assert.Equal(t, 1, got.analysis.KeywordMatches)
	assert.Equal(t, 0, got.analysis.PredefinedMatches)
	assert.Equal(t, 3, got.analysis.TotalJobTerms)
	assert.InDelta(t, 1.0/3.0, got.analysis.MatchRate, 1e-9)
}

func TestComputeSkillScore_NoJobTerms(t *testing.T) {
	got := computeSkillScore(types.NewResumeRecord("anything"), nil, termsFor(types.NewJobRequirement("", "")))
	assert.Equal(t, noSkillTermsScore, got.score)
	assert.Empty(t, got.matched)
	assert.Zero(t, got.analysis.MatchRate)
}

func TestComputeSkillScore_TaxonomySkills(t *testing.T) {
	rec := types.NewResumeRecord("Wrote services in JavaScript")
	rec.Skills.Technical = []string{"docker"}
	req := types.NewJobRequirement("", "")
	req.RequiredSkills = []string{"docker", "java", "python"}
	req.PreferredSkills = []string{"javascript"}

	got := computeSkillScore(rec, nil, termsFor(req))

	assert.Equal(t, []string{"docker", "javascript"}, got.matched)
	assert.Equal(t, []string{"java", "python"}, got.missing, "java must not match inside javascript")
	assert.Equal(t, 2, got.analysis.PredefinedMatches)
	assert.InDelta(t, 0.5*60+15, got.score, 1e-9)
}

func TestCompileSkillTerms(t *testing.T) {
	req := types.NewJobRequirement("", "")
	req.RequiredSkills = []string{"Python", "COBOL"}
	req.PreferredSkills = []string{"docker"}

	terms := compileSkillTerms(taxonomy.Default(), req)

	require.Len(t, terms, 3)
	assert.Equal(t, "python", terms[0].name)
	assert.True(t, terms[0].required)
	assert.Same(t, taxonomy.Default().Matcher("python"), terms[0].re)
	assert.Equal(t, "cobol", terms[1].name)
	assert.True(t, terms[1].required)
	require.NotNil(t, terms[1].re)
	assert.True(t, terms[1].re.MatchString("maintained COBOL jobs"))
	assert.Equal(t, "docker", terms[2].name)
	assert.False(t, terms[2].required)
}

func TestComputeSkillScore_AdHocTermsMatchWholeWords(t *testing.T) {
	req := types.NewJobRequirement("", "")
	req.RequiredSkills = []string{"cobol", "fortran"}
	terms := termsFor(req)

	for _, text := range []string{"COBOL and JCL", "cobol; fortranic dialects"} {
		got := computeSkillScore(types.NewResumeRecord(text), nil, terms)
		assert.Equal(t, []string{"cobol"}, got.matched, text)
		assert.Equal(t, []string{"fortran"}, got.missing, text)
	}
}

func TestComputeSkillScore_Capped(t *testing.T) {
	kws := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta",
		"iota", "kappa", "lambda", "mu", "nu", "xi", "omicron", "pi"}
	rec := types.NewResumeRecord("alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu nu xi omicron pi")

	got := computeSkillScore(rec, kws, nil)
	assert.Equal(t, fullMatchScore, got.score)
	assert.Equal(t, 16, got.analysis.KeywordMatches)
}

func TestComputeSkillScore_Monotonic(t *testing.T) {
	req := types.NewJobRequirement("", "")
	req.RequiredSkills = []string{"python", "react", "go"}

	narrow := types.NewResumeRecord("experienced engineer")
	narrow.Skills.Technical = []string{"python"}
	wide := types.NewResumeRecord("experienced engineer")
	wide.Skills.Technical = []string{"go", "python", "react"}

	terms := termsFor(req)
	a := computeSkillScore(wide, nil, terms)
	b := computeSkillScore(narrow, nil, terms)
	assert.GreaterOrEqual(t, a.score, b.score)
	assert.InDelta(t, 75.0, a.score, 1e-9)
	assert.InDelta(t, 35.0, b.score, 1e-9)
}

func TestComputeExperienceScore(t *testing.T) {
	tests := []struct {
		name     string
		years    float64
		min      int
		max      *int
		want     float64
		meetsMin bool
	}{
		{"no requirement", 0, 0, nil, 40, true},
		{"exactly the minimum", 5, 5, nil, 100, true},
		{"just under the minimum", 4.99, 5, nil, 79.84, false},
		{"far under floors at 40", 1, 5, nil, 40, false},
		{"within range", 4, 3, types.IntPtr(5), 100, true},
		{"at the maximum", 5, 3, types.IntPtr(5), 100, true},
		{"overqualified", 12, 3, types.IntPtr(8), 85, true},
		{"zero maximum is unset", 12, 3, types.IntPtr(0), 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, analysis := computeExperienceScore(tt.years, tt.min, tt.max)
			assert.InDelta(t, tt.want, round2(got), 1e-9)
			assert.Equal(t, tt.meetsMin, analysis.MeetsMinimum)
			assert.Equal(t, tt.years, analysis.CandidateYears)
			assert.Equal(t, tt.min, analysis.MinRequired)
			assert.Equal(t, tt.max, analysis.MaxRequired)
		})
	}
}

func TestComputeEducationScore(t *testing.T) {
	entries := []types.EducationEntry{
		{Degree: "BSc Computer Science", Institution: "MIT"},
	}

	tests := []struct {
		name        string
		entries     []types.EducationEntry
		required    []string
		wantScore   float64
		wantMatched []string
	}{
		{"no requirements", entries, nil, noEducationScore, []string{}},
		{"requirement inside degree", entries, []string{"computer science", "PhD"}, 50, []string{"computer science"}},
		{"degree inside requirement", entries, []string{"BSc Computer Science or equivalent"}, 100, []string{"BSc Computer Science or equivalent"}},
		{"institution match", entries, []string{"mit"}, 100, []string{"mit"}},
		{"no education entries", nil, []string{"Bachelor's degree in Computer Science"}, 0, []string{}},
		{"empty strings never match", []types.EducationEntry{{}}, []string{"anything"}, 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, matched := computeEducationScore(tt.entries, tt.required)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
			assert.Equal(t, tt.wantMatched, matched)
		})
	}
}

func TestComputeSoftSkillsScore(t *testing.T) {
	assert.Equal(t, noSoftSkillsScore, computeSoftSkillsScore([]string{"teamwork"}, nil))
	assert.InDelta(t, 50.0, computeSoftSkillsScore([]string{"Communication", "teamwork"}, []string{"communication", "leadership"}), 1e-9)
	assert.Zero(t, computeSoftSkillsScore(nil, []string{"leadership"}))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 79.84, round2(4.99/5*80))
	assert.Equal(t, 66.25, round2(66.25))
	assert.Equal(t, 0.01, round2(0.005))
}
