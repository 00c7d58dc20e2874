package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/schemas"
	schemafiles "github.com/jonathan/resume-screener/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a JSON Schema",
	Long: fmt.Sprintf(`Validate a JSON file against a JSON Schema file or one of the embedded schemas.

Embedded schemas: %s`, strings.Join(schemafiles.Names(), ", ")),
	RunE: runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Embedded schema name or path to a schema file")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file to validate")
	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	err := validateFile(validateSchema, validateJSON)

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintf(cmd.OutOrStdout(), "Validation failed (%d error(s))\n", len(validationErr.Errors))
		return validationErr
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return err
}

func validateFile(schema, jsonPath string) error {
	for _, name := range schemafiles.Names() {
		if schema != name {
			continue
		}
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return fmt.Errorf("failed to read JSON file: %w", err)
		}
		return schemas.ValidateEmbedded(name, data)
	}
	return schemas.ValidateJSON(schema, jsonPath)
}
