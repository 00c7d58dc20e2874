// Package ranking scores parsed résumés against a job requirement and classifies each
// candidate as shortlisted or rejected.
package ranking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/keywords"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

// Candidate pairs a parsed résumé with the caller's identifier for it
type Candidate struct {
	ID     string
	Resume *types.ResumeRecord
}

// Engine scores candidates. It holds no mutable state after construction and is safe for concurrent use.
type Engine struct {
	weights  types.Weights
	workers  int
	log      zerolog.Logger
	now      func() time.Time
	taxonomy *taxonomy.Taxonomy
}

// Option configures an Engine
type Option func(*Engine)

// WithWeights sets the default criterion weights
func WithWeights(w types.Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithLogger sets the logger used for scoring diagnostics
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithWorkers bounds how many candidates of a batch are scored at once. Values below 1 mean sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = max(1, n) }
}

// WithTaxonomy sets the taxonomy whose precompiled matchers are used for skill terms
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(e *Engine) {
		if t != nil {
			e.taxonomy = t
		}
	}
}

// WithClock replaces the time source used for processing times
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an engine with default weights and sequential batches.
// Returns an error if the configured weights are invalid.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		weights:  types.DefaultWeights(),
		workers:  1,
		log:      logger.Logger,
		now:      time.Now,
		taxonomy: taxonomy.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	return e, nil
}

// Weights returns the engine's default weights
func (e *Engine) Weights() types.Weights {
	return e.weights
}

// Score scores a single résumé with the engine's weights
func (e *Engine) Score(resume *types.ResumeRecord, req *types.JobRequirement) (*types.MatchResult, error) {
	job, err := e.prepare(req)
	if err != nil {
		return nil, err
	}
	return e.score("", resume, job, e.weights)
}

// preparedJob holds what every candidate of a batch is scored against
type preparedJob struct {
	*types.JobRequirement
	keywords []string
	terms    []skillTerm
}

func (e *Engine) prepare(req *types.JobRequirement) (*preparedJob, error) {
	job, err := prepareRequirement(req)
	if err != nil {
		return nil, err
	}
	return &preparedJob{
		JobRequirement: job,
		keywords:       keywords.Extract(job.Description),
		terms:          compileSkillTerms(e.taxonomy, job),
	}, nil
}

// ScoreCandidates scores every candidate against req and returns one result per candidate
// in input order. A candidate that cannot be scored gets a degraded, rejected result; once
// ctx is done no further candidates are started and the remainder are degraded with the
// context error. weights overrides the engine's weights when non-nil.
//
// An error is returned only for an unusable requirement or invalid weights.
func (e *Engine) ScoreCandidates(
	ctx context.Context,
	candidates []Candidate,
	req *types.JobRequirement,
	scoredBy string,
	weights *types.Weights,
) ([]types.MatchResult, error) {
	w := e.weights
	if weights != nil {
		if err := weights.Validate(); err != nil {
			return nil, fmt.Errorf("invalid weights: %w", err)
		}
		w = *weights
	}
	job, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	e.log.Info().
		Str("title", job.Title).
		Int("candidates", len(candidates)).
		Int("workers", e.workers).
		Int("job_keywords", len(job.keywords)).
		Msg("scoring candidates")

	results := make([]types.MatchResult, len(candidates))
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			results[i] = degradedResult(c.ID, scoredBy, err)
			continue
		}
		g.Go(func() error {
			results[i] = e.scoreCandidate(ctx, c, job, w, scoredBy)
			return nil
		})
	}
	_ = g.Wait()

	summary := Summarize(results)
	e.log.Info().
		Str("title", job.Title).
		Int("shortlisted", summary.Shortlisted).
		Int("rejected", summary.Rejected).
		Float64("average_score", summary.AverageScore).
		Msg("scored candidates")
	return results, nil
}

// ScoreResumes scores bare records, identifying them as "1".."N" in input order
func (e *Engine) ScoreResumes(
	ctx context.Context,
	resumes []*types.ResumeRecord,
	req *types.JobRequirement,
	scoredBy string,
	weights *types.Weights,
) ([]types.MatchResult, error) {
	candidates := make([]Candidate, len(resumes))
	for i, r := range resumes {
		candidates[i] = Candidate{ID: strconv.Itoa(i + 1), Resume: r}
	}
	return e.ScoreCandidates(ctx, candidates, req, scoredBy, weights)
}

// scoreCandidate never fails: errors and panics become a degraded result
func (e *Engine) scoreCandidate(
	ctx context.Context,
	c Candidate,
	job *preparedJob,
	w types.Weights,
	scoredBy string,
) (result types.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			err := &ScoringError{CandidateID: c.ID, Message: "panic while scoring", Cause: fmt.Errorf("%v", r)}
			e.log.Error().Err(err).Msg("candidate scoring panicked")
			result = degradedResult(c.ID, scoredBy, err)
		}
	}()

	if err := ctx.Err(); err != nil {
		return degradedResult(c.ID, scoredBy, err)
	}

	scored, err := e.score(c.ID, c.Resume, job, w)
	if err != nil {
		e.log.Error().Err(err).Str("candidate_id", c.ID).Msg("failed to score candidate")
		return degradedResult(c.ID, scoredBy, err)
	}
	scored.ScoredBy = scoredBy
	return *scored
}

func (e *Engine) score(
	candidateID string,
	resume *types.ResumeRecord,
	job *preparedJob,
	w types.Weights,
) (*types.MatchResult, error) {
	if resume == nil {
		return nil, &ScoringError{CandidateID: candidateID, Message: "résumé record is nil"}
	}
	start := e.now()

	skills := computeSkillScore(resume, job.keywords, job.terms)
	education, matchedEducation := computeEducationScore(resume.Education, job.EducationRequirements)
	experience, experienceAnalysis := computeExperienceScore(resume.TotalExperienceYears, job.MinExperienceYears, job.MaxExperienceYears)
	softSkills := computeSoftSkillsScore(resume.Skills.Soft, job.SoftSkills)

	overall := round2(skills.score*w.Skills +
		experience*w.Experience +
		education*w.Education +
		softSkills*w.SoftSkills)

	why := buildRationale(job.Title, overall, subScores{
		skills:     skills.score,
		experience: experience,
		education:  education,
		softSkills: softSkills,
	}, skills.missing)

	e.log.Debug().
		Str("candidate_id", candidateID).
		Float64("skills", skills.score).
		Float64("education", education).
		Float64("experience", experience).
		Float64("soft_skills", softSkills).
		Float64("overall", overall).
		Msg("component scores")

	analysis := skills.analysis
	return &types.MatchResult{
		ID:                   uuid.New(),
		CandidateID:          candidateID,
		OverallScore:         overall,
		MatchStatus:          classify(overall),
		SkillMatchScore:      round2(skills.score),
		EducationMatchScore:  round2(education),
		ExperienceMatchScore: round2(experience),
		SoftSkillsScore:      round2(softSkills),
		MatchedSkills:        skills.matched,
		MissingSkills:        skills.missing,
		MatchedEducation:     matchedEducation,
		SkillAnalysis:        &analysis,
		ExperienceAnalysis:   experienceAnalysis,
		AISummary:            why.summary,
		Strengths:            why.strengths,
		Concerns:             why.concerns,
		Recommendations:      why.recommendations,
		ProcessingTimeMs:     e.now().Sub(start).Milliseconds(),
	}, nil
}

// prepareRequirement returns a normalized copy so caller-built requirements obey the
// same invariants as parsed ones. req itself is left untouched.
func prepareRequirement(req *types.JobRequirement) (*types.JobRequirement, error) {
	if req == nil {
		return nil, &ScoringError{Message: "job requirement is nil"}
	}
	if err := parsing.ValidateRequirement(req); err != nil {
		return nil, &ScoringError{Message: "invalid job requirement", Cause: err}
	}
	job := *req
	parsing.NormalizeRequirement(&job)
	return &job, nil
}

func degradedResult(candidateID, scoredBy string, err error) types.MatchResult {
	return types.MatchResult{
		ID:               uuid.New(),
		CandidateID:      candidateID,
		ScoredBy:         scoredBy,
		MatchStatus:      types.StatusRejected,
		MatchedSkills:    []string{},
		MissingSkills:    []string{},
		MatchedEducation: []string{},
		AISummary:        "Analysis failed: " + err.Error(),
		Strengths:        []string{},
		Concerns:         []string{},
		Recommendations:  []string{},
	}
}
