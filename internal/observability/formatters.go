// Package observability renders human-readable boxes summarizing screening output for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // report output; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit items under a heading, noting how many were left out
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, it := range items[:min(len(items), limit)] {
		sb.WriteString(fmt.Sprintf("  • %s\n", it))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintJobRequirement outputs a human-readable summary of a parsed job requirement.
func (p *Printer) PrintJobRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder
	title := req.Title
	if title == "" {
		title = "(untitled)"
	}
	sb.WriteString(fmt.Sprintf("Role:        %s\n", title))
	experience := fmt.Sprintf("%d+ years", req.MinExperienceYears)
	if req.MaxExperienceYears != nil {
		experience = fmt.Sprintf("%d-%d years", req.MinExperienceYears, *req.MaxExperienceYears)
	}
	sb.WriteString(fmt.Sprintf("Experience:  %s\n\n", experience))

	writeList(&sb, "Required skills", req.RequiredSkills, maxItemsToShow)
	writeList(&sb, "Preferred skills", req.PreferredSkills, 3)
	writeList(&sb, "Education", req.EducationRequirements, 3)
	writeList(&sb, "Soft skills", req.SoftSkills, 3)

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the highest-scoring candidates, best first.
// Equal scores keep their input order.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	ranked := make([]types.MatchResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].OverallScore > ranked[j].OverallScore
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates scored: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i, r := range ranked[:count] {
		sb.WriteString(fmt.Sprintf("#%d  %s  %.2f  [%s]\n", i+1, r.CandidateID, r.OverallScore, r.MatchStatus))
		sb.WriteString(fmt.Sprintf("    skills %.0f · exp %.0f · edu %.0f · soft %.0f\n",
			r.SkillMatchScore, r.ExperienceMatchScore, r.EducationMatchScore, r.SoftSkillsScore))
		if len(r.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Missing: %s\n", strings.Join(r.MissingSkills, ", ")))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs batch statistics.
//
//nolint:errcheck // report output; errors are not recoverable
func (p *Printer) PrintSummary(summary types.Summary) {
	if summary.Total == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO CANDIDATES SCORED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	content := fmt.Sprintf("Total:        %d\nShortlisted:  %d\nRejected:     %d\nAverage:      %.2f",
		summary.Total, summary.Shortlisted, summary.Rejected, summary.AverageScore)
	p.printBox("SCREENING SUMMARY", content)
}
