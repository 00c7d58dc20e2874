package ingestion

import "fmt"

// UnsupportedFormatError is returned when a document's extension is outside the supported set
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Extension == "" {
		return "unsupported file format: missing extension (supported: pdf, doc, docx)"
	}
	return fmt.Sprintf("unsupported file format: %q (supported: pdf, doc, docx)", e.Extension)
}

// ExtractionError represents an unreadable or corrupt document
type ExtractionError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract %s text: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract %s text: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
