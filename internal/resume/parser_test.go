package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567
Location: Austin, TX

Summary
Backend engineer with 6 years of experience building Python services.

Work Experience
Senior Software Engineer
Acme Corp
2019 - Present
- Built Go microservices on Kubernetes
- Led migration to PostgreSQL
Data Analyst, Globex Systems, 2016 - 2019
Analyzed sales data with SQL

Education
Bachelor of Science in Computer Science
State University, 2016

Certifications
AWS Certified Solutions Architect 2021

Languages
English (Native), Spanish (Intermediate)
`

func fixedClock() time.Time {
	return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func newTestParser(opts ...Option) *Parser {
	opts = append([]Option{WithLogger(logger.Nop()), WithClock(fixedClock)}, opts...)
	return NewParser(opts...)
}

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">` + p + `</w:t></w:r></w:p>`)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParseText_FullResume(t *testing.T) {
	rec := newTestParser().ParseText(sampleResume)

	require.Equal(t, types.ParsingCompleted, rec.ParsingStatus)
	assert.Empty(t, rec.ParsingError)
	assert.Equal(t, sampleResume, rec.RawText)
	assert.Equal(t, "Jane Doe", rec.CandidateName)

	assert.Equal(t, types.PersonalInfo{
		Email:    "jane.doe@example.com",
		Phone:    "(555) 123-4567",
		Location: "Austin, TX",
	}, rec.PersonalInfo)

	require.Len(t, rec.WorkExperience, 2)
	first := rec.WorkExperience[0]
	assert.Equal(t, "Senior Software Engineer", first.Position)
	assert.Equal(t, "Acme Corp", first.Company)
	require.NotNil(t, first.StartYear)
	require.NotNil(t, first.EndYear)
	assert.Equal(t, 2019, *first.StartYear)
	assert.Equal(t, 2024, *first.EndYear)
	assert.Equal(t, 60, first.DurationMonths)
	assert.Equal(t, "- Built Go microservices on Kubernetes - Led migration to PostgreSQL", first.Description)

	second := rec.WorkExperience[1]
	assert.Equal(t, "Data Analyst, Globex Systems, 2016 - 2019", second.Position)
	assert.Equal(t, 36, second.DurationMonths)
	assert.Equal(t, "Analyzed sales data with SQL", second.Description)

	require.Len(t, rec.Education, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science", rec.Education[0].Degree)
	assert.Equal(t, "State University, 2016", rec.Education[0].Institution)
	require.NotNil(t, rec.Education[0].Year)
	assert.Equal(t, 2016, *rec.Education[0].Year)

	assert.Subset(t, rec.Skills.Technical, []string{"aws", "go", "kubernetes", "postgresql", "python", "sql"})
	assert.True(t, sort.StringsAreSorted(rec.Skills.Technical))
	assert.True(t, sort.StringsAreSorted(rec.Skills.Soft))

	require.Len(t, rec.Certifications, 1)
	assert.Equal(t, "AWS Certified Solutions Architect 2021", rec.Certifications[0].Name)
	assert.Equal(t, "AWS", rec.Certifications[0].Issuer)
	require.NotNil(t, rec.Certifications[0].Year)
	assert.Equal(t, 2021, *rec.Certifications[0].Year)

	assert.Equal(t, []types.Language{
		{Language: "English", Proficiency: "Native"},
		{Language: "Spanish", Proficiency: "Intermediate"},
	}, rec.Languages)

	assert.Equal(t, 6.0, rec.TotalExperienceYears)
}

func TestParseText_NoSkillsIsNotAFailure(t *testing.T) {
	rec := newTestParser().ParseText("John Smith\nI enjoy hiking with my dog and reading novels on weekends.")

	assert.Equal(t, types.ParsingCompleted, rec.ParsingStatus)
	assert.Empty(t, rec.Skills.Technical)
	assert.NotNil(t, rec.Skills.Technical)
	assert.Empty(t, rec.Education)
	assert.Empty(t, rec.WorkExperience)
	assert.Equal(t, "John Smith", rec.CandidateName)
}

func TestParseText_EmptyTextFails(t *testing.T) {
	rec := newTestParser().ParseText("   \n ")
	assert.True(t, rec.Failed())
	assert.Equal(t, "could not extract text from document", rec.ParsingError)
	assert.Empty(t, rec.RawText)
}

func TestParseText_PanicBecomesFailedRecord(t *testing.T) {
	p := newTestParser(WithEntityRecognizer(&fakeRecognizer{panicOnUse: true}))
	rec := p.ParseText(sampleResume)

	require.True(t, rec.Failed())
	assert.Contains(t, rec.ParsingError, "parsing failed during education")
	assert.Empty(t, rec.RawText)
	assert.Empty(t, rec.Education)
	assert.Empty(t, rec.Skills.Technical)
	assert.Zero(t, rec.TotalExperienceYears)
}

func TestParseText_OrganizationHints(t *testing.T) {
	p := newTestParser(WithEntityRecognizer(&fakeRecognizer{orgs: []string{"Initech"}}))
	rec := p.ParseText("Experience\nSoftware Developer\nInitech\n2010 - 2012\nWrote TPS reports")

	require.Len(t, rec.WorkExperience, 1)
	assert.Equal(t, "Initech", rec.WorkExperience[0].Company)
	assert.Equal(t, "Wrote TPS reports", rec.WorkExperience[0].Description)
}

func TestParseText_Deterministic(t *testing.T) {
	p := newTestParser()
	first := p.ParseText(sampleResume)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.ParseText(sampleResume))
	}
}

func TestParser_ConcurrentUse(t *testing.T) {
	p := newTestParser()
	want := p.ParseText(sampleResume)

	var wg sync.WaitGroup
	results := make([]*types.ResumeRecord, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.ParseText(sampleResume)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParse_UnsupportedFormat(t *testing.T) {
	for _, ext := range []string{"txt", ".rtf", ""} {
		t.Run(ext, func(t *testing.T) {
			rec, err := newTestParser().Parse([]byte("hello"), ext)
			assert.Nil(t, rec)
			var unsupported *ingestion.UnsupportedFormatError
			require.True(t, errors.As(err, &unsupported))
		})
	}
}

func TestParse_CorruptDocumentsDegrade(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		ext  string
	}{
		{"empty pdf", []byte{}, "pdf"},
		{"garbage pdf", []byte("definitely not a pdf"), "pdf"},
		{"garbage docx", []byte("PK not really"), "docx"},
		{"docx without text", buildDocx(t), "docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := newTestParser().Parse(tt.data, tt.ext)
			require.NoError(t, err)
			require.NotNil(t, rec)
			assert.True(t, rec.Failed())
			assert.NotEmpty(t, rec.ParsingError)
			assert.Empty(t, rec.RawText)
			assert.Nil(t, rec.Source)
		})
	}
}

func TestParse_Docx(t *testing.T) {
	data := buildDocx(t,
		"Jane Doe",
		"jane@example.com",
		"Skills",
		"Python, Docker and Terraform",
		"Languages",
		"French B2",
	)

	rec, err := newTestParser().Parse(data, ".DOCX")
	require.NoError(t, err)
	require.Equal(t, types.ParsingCompleted, rec.ParsingStatus)

	assert.Equal(t, "Jane Doe", rec.CandidateName)
	assert.Equal(t, "jane@example.com", rec.PersonalInfo.Email)
	assert.Equal(t, []string{"docker", "python", "terraform"}, rec.Skills.Technical)
	assert.Equal(t, []types.Language{{Language: "French", Proficiency: "B2"}}, rec.Languages)

	require.NotNil(t, rec.Source)
	assert.Equal(t, "docx", rec.Source.Format)
	assert.Equal(t, len(data), rec.Source.SizeBytes)
	assert.Len(t, rec.Source.SHA256, 64)
}

func TestParser_ExtractCandidateName(t *testing.T) {
	p := newTestParser(WithEntityRecognizer(&fakeRecognizer{persons: []string{"Ada Lovelace"}}))
	assert.Equal(t, "Ada Lovelace", p.ExtractCandidateName("Résumé\nCharles Babbage"))
	assert.Equal(t, UnknownName, p.ExtractCandidateName(""))
}
