package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
	schemafiles "github.com/jonathan/resume-screener/schemas"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Aggregate a MatchResult JSON array into summary statistics",
	RunE:  runSummarize,
}

var (
	summarizeInput  string
	summarizeOutput string
)

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeInput, "in", "i", "", "Path to MatchResult JSON array (output of score)")
	summarizeCmd.Flags().StringVarP(&summarizeOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = summarizeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(summarizeInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var results []types.MatchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return fmt.Errorf("failed to parse match results JSON: %w", err)
	}

	return emitJSON(cmd.OutOrStdout(), summarizeOutput, ranking.Summarize(results), schemafiles.Summary)
}
