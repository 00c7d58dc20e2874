package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-screener/internal/schemas"
)

// emitJSON writes v as indented JSON to path, or to w when path is empty.
// When output validation is on, v must satisfy the named embedded schema first.
func emitJSON(w io.Writer, path string, v any, schemaName string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if settings.ShouldValidateOutput() {
		if err := schemas.ValidateEmbedded(schemaName, data); err != nil {
			return fmt.Errorf("generated JSON does not validate against %s: %w", schemaName, err)
		}
	}

	if path == "" {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
