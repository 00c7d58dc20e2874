// Package resume turns résumé documents into structured ResumeRecords using
// layout heuristics and the skill taxonomy.
package resume

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

// errNoText is reported when a document yields no usable text
var errNoText = errors.New("could not extract text from document")

// Parser extracts ResumeRecords. A Parser holds no mutable state and is safe for concurrent use
// as long as its EntityRecognizer is.
type Parser struct {
	taxonomy   *taxonomy.Taxonomy
	recognizer EntityRecognizer
	log        zerolog.Logger
	now        func() time.Time
	names      *NameExtractor
}

// Option configures a Parser
type Option func(*Parser)

// WithTaxonomy replaces the default skill taxonomy
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(p *Parser) {
		if t != nil {
			p.taxonomy = t
		}
	}
}

// WithEntityRecognizer enables the named-entity strategies for names and organizations
func WithEntityRecognizer(r EntityRecognizer) Option {
	return func(p *Parser) { p.recognizer = r }
}

// WithLogger sets the logger used for parse diagnostics
func WithLogger(l zerolog.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// WithClock sets the time source used to resolve open-ended date ranges
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// NewParser creates a Parser with the default taxonomy and no entity recognizer
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		taxonomy: taxonomy.Default(),
		log:      logger.Logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.names = NewNameExtractor(p.recognizer, p.log)
	return p
}

// Parse extracts text from a document and parses it.
// Only an unsupported extension is returned as an error; every other failure produces a
// record with ParsingFailed status.
func (p *Parser) Parse(data []byte, ext string) (*types.ResumeRecord, error) {
	format := ingestion.NormalizeExtension(ext)
	if !ingestion.IsSupported(format) {
		return nil, &ingestion.UnsupportedFormatError{Extension: format}
	}

	doc, err := ingestion.Extract(data, format)
	if err != nil {
		var unsupported *ingestion.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return nil, err
		}
		p.log.Warn().Err(err).Str("format", format).Msg("document extraction failed")
		return types.NewFailedResumeRecord(err), nil
	}

	rec := p.ParseText(doc.Text)
	if !rec.Failed() {
		rec.Source = ingestion.NewDocumentSource(doc, data)
	}
	return rec, nil
}

// ParseText runs structured extraction over already-extracted text.
// It never panics; any internal failure yields a failed record.
func (p *Parser) ParseText(text string) (rec *types.ResumeRecord) {
	if strings.TrimSpace(text) == "" {
		p.log.Warn().Msg("resume text is empty")
		return types.NewFailedResumeRecord(errNoText)
	}

	stage := "setup"
	defer func() {
		if r := recover(); r != nil {
			err := &ParsingError{Stage: stage, Cause: fmt.Errorf("%v", r)}
			p.log.Error().Err(err).Msg("resume parsing aborted")
			rec = types.NewFailedResumeRecord(err)
		}
	}()

	rec = types.NewResumeRecord(text)
	lines := splitLines(text)
	currentYear := p.now().Year()

	stages := []struct {
		name string
		run  func()
	}{
		{"candidate_name", func() { rec.CandidateName = p.names.Extract(text) }},
		{"personal_info", func() { rec.PersonalInfo = extractPersonalInfo(text) }},
		{"education", func() {
			orgs := p.sectionOrganizations(lines, educationHeaders, educationNextHeaders)
			rec.Education = extractEducation(lines, orgs)
		}},
		{"work_experience", func() {
			orgs := p.sectionOrganizations(lines, experienceHeaders, experienceNextHeaders)
			rec.WorkExperience = extractExperience(lines, orgs, currentYear)
		}},
		{"skills", func() { rec.Skills = extractSkills(p.taxonomy, text) }},
		{"certifications", func() { rec.Certifications = extractCertifications(text, organizationHints(p.recognizer, text, p.log)) }},
		{"languages", func() { rec.Languages = extractLanguages(text) }},
		{"total_experience_years", func() { rec.TotalExperienceYears = totalExperienceYears(text) }},
	}
	for _, s := range stages {
		stage = s.name
		s.run()
	}

	p.log.Info().
		Str("candidate", rec.CandidateName).
		Int("education", len(rec.Education)).
		Int("experience", len(rec.WorkExperience)).
		Int("technical_skills", len(rec.Skills.Technical)).
		Float64("total_years", rec.TotalExperienceYears).
		Msg("parsed resume")
	return rec
}

// ExtractCandidateName returns a display name for text using this parser's strategy chain
func (p *Parser) ExtractCandidateName(text string) string {
	return p.names.Extract(text)
}

func (p *Parser) sectionOrganizations(lines []string, headers, next []string) []string {
	if p.recognizer == nil {
		return nil
	}
	return organizationHints(p.recognizer, strings.Join(sectionLines(lines, headers, next), "\n"), p.log)
}
