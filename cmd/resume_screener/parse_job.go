package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/parsing"
	schemafiles "github.com/jonathan/resume-screener/schemas"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job posting into structured JobRequirement JSON",
	Long:  "Parse a plain-text or HTML job posting, from a file or a URL, into a JobRequirement that validates against the job_requirement schema.",
	RunE:  runParseJob,
}

var (
	parseJobInput    string
	parseJobURL      string
	parseJobRender   bool
	parseJobTitle    string
	parseJobOutput   string
	parseJobMetadata string
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseJobInput, "in", "i", "", "Path to job posting (.txt, .html)")
	parseJobCmd.Flags().StringVarP(&parseJobURL, "url", "u", "", "URL of an online job posting")
	parseJobCmd.Flags().BoolVar(&parseJobRender, "render", false, "Render short pages in headless Chrome (with --url)")
	parseJobCmd.Flags().StringVarP(&parseJobTitle, "title", "t", "", "Job title")
	parseJobCmd.Flags().StringVarP(&parseJobOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseJobCmd.Flags().StringVar(&parseJobMetadata, "meta", "", "Optional path to write ingestion metadata JSON")
	parseJobCmd.MarkFlagsMutuallyExclusive("in", "url")
	parseJobCmd.MarkFlagsOneRequired("in", "url")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	text, meta, err := readJobPosting(ctx, parseJobInput, parseJobURL, parseJobRender)
	if err != nil {
		return err
	}

	parser := parsing.NewRequirementParser(parsing.WithTaxonomy(skillTaxonomy), parsing.WithLogger(*logger.Ctx(ctx)))
	req, err := parser.Parse(parseJobTitle, text)
	if err != nil {
		return fmt.Errorf("failed to parse job requirements: %w", err)
	}

	if parseJobMetadata != "" {
		metaJSON, err := meta.ToJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(parseJobMetadata, metaJSON, 0644); err != nil {
			return fmt.Errorf("failed to write metadata file: %w", err)
		}
	}

	return emitJSON(cmd.OutOrStdout(), parseJobOutput, req, schemafiles.JobRequirement)
}
