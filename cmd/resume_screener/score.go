package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/resume"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
	schemafiles "github.com/jonathan/resume-screener/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score résumés against a job and classify each candidate",
	Long: `Score one or more résumés against a job and emit MatchResult JSON in input order.

The job is either a posting (--job file or --job-url, parsed on the fly) or a JobRequirement JSON (--requirement).
Each --resume is a document (.pdf, .doc, .docx) or a ResumeRecord JSON produced by parse-resume.
A summary line is written to stderr.`,
	RunE: runScore,
}

var (
	scoreJobFile          string
	scoreJobURL           string
	scoreRender           bool
	scoreRequirementFile  string
	scoreTitle            string
	scoreResumes          []string
	scoreScoredBy         string
	scoreWorkers          int
	scoreOutput           string
	scoreReport           bool
	scoreWeightSkills     float64
	scoreWeightExperience float64
	scoreWeightEducation  float64
	scoreWeightSoftSkills float64
)

// weight flag name → config weight name
var weightFlags = map[string]string{
	"weight-skills":      types.WeightSkills,
	"weight-experience":  types.WeightExperience,
	"weight-education":   types.WeightEducation,
	"weight-soft-skills": types.WeightSoftSkills,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job posting (.txt, .html)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL of an online job posting")
	scoreCmd.Flags().BoolVar(&scoreRender, "render", false, "Render short pages in headless Chrome (with --job-url)")
	scoreCmd.Flags().StringVarP(&scoreRequirementFile, "requirement", "r", "", "Path to JobRequirement JSON")
	scoreCmd.Flags().StringVarP(&scoreTitle, "title", "t", "", "Job title (with --job)")
	scoreCmd.Flags().StringArrayVar(&scoreResumes, "resume", nil, "Résumé document or ResumeRecord JSON (repeatable)")
	scoreCmd.Flags().StringVar(&scoreScoredBy, "scored-by", "", "Identifier of the reviewer recorded on each result")
	scoreCmd.Flags().IntVarP(&scoreWorkers, "workers", "w", 0, "Candidates scored concurrently (overrides config)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().BoolVar(&scoreReport, "report", false, "Also write a human-readable ranking report to stderr")
	scoreCmd.Flags().Float64Var(&scoreWeightSkills, "weight-skills", 0, "Weight of the skills score")
	scoreCmd.Flags().Float64Var(&scoreWeightExperience, "weight-experience", 0, "Weight of the experience score")
	scoreCmd.Flags().Float64Var(&scoreWeightEducation, "weight-education", 0, "Weight of the education score")
	scoreCmd.Flags().Float64Var(&scoreWeightSoftSkills, "weight-soft-skills", 0, "Weight of the soft skills score")
	scoreCmd.MarkFlagsMutuallyExclusive("job", "job-url", "requirement")
	scoreCmd.MarkFlagsOneRequired("job", "job-url", "requirement")
	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	req, err := loadRequirement(ctx)
	if err != nil {
		return err
	}

	weights, err := scoreWeights(cmd)
	if err != nil {
		return err
	}

	workers := settings.Workers
	if cmd.Flags().Changed("workers") {
		workers = scoreWorkers
	}

	parser := resume.NewParser(resume.WithTaxonomy(skillTaxonomy), resume.WithLogger(*logger.Ctx(ctx)))
	candidates := make([]ranking.Candidate, 0, len(scoreResumes))
	for _, path := range scoreResumes {
		rec, err := loadResume(parser, path)
		if err != nil {
			return err
		}
		candidates = append(candidates, ranking.Candidate{ID: filepath.Base(path), Resume: rec})
	}

	engine, err := ranking.NewEngine(
		ranking.WithWeights(weights),
		ranking.WithWorkers(workers),
		ranking.WithTaxonomy(skillTaxonomy),
		ranking.WithLogger(*logger.Ctx(ctx)),
	)
	if err != nil {
		return err
	}

	results, err := engine.ScoreCandidates(ctx, candidates, req, scoreScoredBy, nil)
	if err != nil {
		return err
	}

	if err := emitJSON(cmd.OutOrStdout(), scoreOutput, results, schemafiles.MatchResults); err != nil {
		return err
	}

	summary := ranking.Summarize(results)
	if scoreReport {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintJobRequirement(req)
		printer.PrintMatchResults(results)
		printer.PrintSummary(summary)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Scored %d candidate(s): %d shortlisted, %d rejected, average score %.2f\n",
		summary.Total, summary.Shortlisted, summary.Rejected, summary.AverageScore)
	return nil
}

func loadRequirement(ctx context.Context) (*types.JobRequirement, error) {
	if scoreRequirementFile != "" {
		data, err := os.ReadFile(scoreRequirementFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read requirement file: %w", err)
		}
		if err := schemas.ValidateEmbedded(schemafiles.JobRequirement, data); err != nil {
			return nil, fmt.Errorf("requirement file is not a valid JobRequirement: %w", err)
		}
		var req types.JobRequirement
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("failed to parse requirement JSON: %w", err)
		}
		return &req, nil
	}

	text, _, err := readJobPosting(ctx, scoreJobFile, scoreJobURL, scoreRender)
	if err != nil {
		return nil, err
	}
	parser := parsing.NewRequirementParser(parsing.WithTaxonomy(skillTaxonomy), parsing.WithLogger(*logger.Ctx(ctx)))
	return parser.Parse(scoreTitle, text)
}

// loadResume reads a ResumeRecord JSON as-is and parses anything else as a document
func loadResume(parser *resume.Parser, path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var rec types.ResumeRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to parse resume record %s: %w", path, err)
		}
		return &rec, nil
	}

	return parser.Parse(data, filepath.Ext(path))
}

// scoreWeights layers --weight-* flags over the configured weights
func scoreWeights(cmd *cobra.Command) (types.Weights, error) {
	overrides := make(map[string]float64, len(settings.Weights)+len(weightFlags))
	for name, v := range settings.Weights {
		overrides[name] = v
	}
	for flag, name := range weightFlags {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		v, err := cmd.Flags().GetFloat64(flag)
		if err != nil {
			return types.Weights{}, err
		}
		overrides[name] = v
	}

	w, err := types.WeightsFromMap(overrides)
	if err != nil {
		return types.Weights{}, fmt.Errorf("invalid weights: %w", err)
	}
	return w, nil
}
