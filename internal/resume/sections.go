package resume

import "strings"

// Section header vocabularies. A line is a header when, lower-cased, it equals an
// entry or starts with the entry followed by a colon.
var (
	educationHeaders = []string{
		"education", "academic background", "academic qualifications",
		"educational background", "qualifications", "academic history",
		"degrees", "education and training",
	}
	educationNextHeaders = []string{
		"experience", "work", "employment", "skills", "certifications",
		"projects", "awards", "references", "publications", "languages",
		"interests", "hobbies", "professional experience",
	}
	experienceHeaders = []string{
		"work experience", "professional experience", "employment history",
		"work history", "experience", "employment", "professional background",
		"career history", "relevant experience",
	}
	experienceNextHeaders = []string{
		"education", "skills", "certifications", "projects", "awards",
		"references", "publications", "languages", "interests", "hobbies",
	}
)

// splitLines returns the trimmed, non-blank lines of text
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// isHeader reports whether line matches one of the header vocabulary entries
func isHeader(line string, vocabulary []string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, h := range vocabulary {
		if lower == h || strings.HasPrefix(lower, h+":") {
			return true
		}
	}
	return false
}

// findSection locates a block of lines that starts after a header from headers and
// ends before the next line matching nextHeaders (or at the end of lines).
// When no header is found the whole input is the section and found is false.
func findSection(lines []string, headers, nextHeaders []string) (start, end int, found bool) {
	start, end = -1, len(lines)
	for i, line := range lines {
		if start == -1 {
			if isHeader(line, headers) {
				start = i + 1
			}
			continue
		}
		if isHeader(line, nextHeaders) {
			end = i
			break
		}
	}
	if start == -1 {
		return 0, len(lines), false
	}
	return start, end, true
}

// sectionLines returns the lines of the bounded section, or all lines when no header is present
func sectionLines(lines []string, headers, nextHeaders []string) []string {
	start, end, _ := findSection(lines, headers, nextHeaders)
	return lines[start:end]
}
