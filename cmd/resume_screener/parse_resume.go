package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/resume"
	schemafiles "github.com/jonathan/resume-screener/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a résumé document into a structured ResumeRecord JSON",
	Long:  "Parse a PDF, DOC or DOCX résumé into a ResumeRecord. Unreadable documents produce a record with parsing_status \"failed\".",
	RunE:  runParseResume,
}

var (
	parseResumeInput  string
	parseResumeOutput string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to résumé document (.pdf, .doc, .docx)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(parseResumeInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	parser := resume.NewParser(resume.WithTaxonomy(skillTaxonomy), resume.WithLogger(*logger.Ctx(ctx)))
	rec, err := parser.Parse(data, filepath.Ext(parseResumeInput))
	if err != nil {
		return err
	}

	return emitJSON(cmd.OutOrStdout(), parseResumeOutput, rec, schemafiles.ResumeRecord)
}
