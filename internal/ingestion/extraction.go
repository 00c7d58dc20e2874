// Package ingestion converts uploaded documents and job postings into plain text.
package ingestion

import (
	"fmt"
	"strings"
)

// Supported document formats
const (
	FormatPDF  = "pdf"
	FormatDOC  = "doc"
	FormatDOCX = "docx"
)

// MaxFileSize is the largest document accepted for extraction (10 MB)
const MaxFileSize = 10 << 20

// SupportedExtensions lists the accepted extensions without leading dots
var SupportedExtensions = []string{FormatPDF, FormatDOC, FormatDOCX}

// Document is the result of extracting one uploaded file
type Document struct {
	Format string   // normalized extension
	Text   string   // trimmed plain text
	Pages  []string // per-page text for PDFs, nil otherwise
}

// NormalizeExtension lower-cases ext and strips surrounding whitespace and a leading dot.
// A full file name is reduced to its extension.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if i := strings.LastIndex(ext, "."); i >= 0 {
		ext = ext[i+1:]
	}
	return ext
}

// IsSupported reports whether ext names a supported document format
func IsSupported(ext string) bool {
	ext = NormalizeExtension(ext)
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Extract dispatches data to the reader for its declared format.
// Returns *UnsupportedFormatError for unknown extensions and *ExtractionError for unreadable documents.
func Extract(data []byte, ext string) (*Document, error) {
	format := NormalizeExtension(ext)
	if !IsSupported(format) {
		return nil, &UnsupportedFormatError{Extension: format}
	}

	if len(data) == 0 {
		return nil, &ExtractionError{Format: format, Message: "document is empty"}
	}
	if len(data) > MaxFileSize {
		return nil, &ExtractionError{
			Format:  format,
			Message: fmt.Sprintf("document is %d bytes, limit is %d", len(data), MaxFileSize),
		}
	}

	doc := &Document{Format: format}
	switch format {
	case FormatPDF:
		pages, err := extractPDFPages(data)
		if err != nil {
			return nil, err
		}
		doc.Pages = pages
		doc.Text = joinPages(pages)
	case FormatDOC, FormatDOCX:
		// legacy binary .doc files fail the zip check and surface as ExtractionError
		text, err := extractWordText(data, format)
		if err != nil {
			return nil, err
		}
		doc.Text = text
	}

	doc.Text = strings.TrimSpace(doc.Text)
	return doc, nil
}

// ExtractText returns the trimmed plain text of a document.
// No normalization beyond trimming is applied; case and spacing are preserved.
func ExtractText(data []byte, ext string) (string, error) {
	doc, err := Extract(data, ext)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

// joinPages concatenates page texts with one newline after each page
func joinPages(pages []string) string {
	var sb strings.Builder
	for _, p := range pages {
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return sb.String()
}
