package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/resume"
)

var extractNameCmd = &cobra.Command{
	Use:   "extract-name",
	Short: "Print the candidate name found in a résumé",
	Long:  "Print the candidate name found in a résumé document or plain-text file. Prints \"Unknown\" when no name is found.",
	RunE:  runExtractName,
}

var extractNameInput string

func init() {
	extractNameCmd.Flags().StringVarP(&extractNameInput, "in", "i", "", "Path to résumé document or text file")
	_ = extractNameCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractNameCmd)
}

func runExtractName(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(extractNameInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text := string(data)
	if ext := filepath.Ext(extractNameInput); ingestion.IsSupported(ext) {
		text, err = ingestion.ExtractText(data, ext)
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), resume.ExtractCandidateName(text))
	return err
}
