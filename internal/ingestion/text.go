package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`\s+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes job posting text while preserving line structure:
// line endings become LF, inline runs of whitespace collapse, and at most
// one blank line separates paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses inline whitespace; bullets and headings keep their marker
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	return multiSpace.ReplaceAllString(trimmed, " ")
}

// IngestJobFile reads a job posting from disk and returns cleaned text with metadata.
// HTML files (.html, .htm) are converted to text first; anything else is read as plain text.
func IngestJobFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := string(content)
	format := "text"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		format = "html"
		text, err = HTMLToText(text)
		if err != nil {
			return "", nil, err
		}
	}

	cleaned := CleanText(text)
	metadata := NewMetadata(path, format, content)
	return cleaned, metadata, nil
}
