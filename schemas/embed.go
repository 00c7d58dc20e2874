// Package schemas embeds the JSON Schemas for every record the screener emits.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names
const (
	ResumeRecord   = "resume_record.schema.json"
	JobRequirement = "job_requirement.schema.json"
	MatchResults   = "match_results.schema.json"
	Summary        = "summary.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Names lists every embedded schema
func Names() []string {
	return []string{ResumeRecord, JobRequirement, MatchResults, Summary}
}

// Read returns the content of an embedded schema
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown schema %q: %w", name, err)
	}
	return data, nil
}
