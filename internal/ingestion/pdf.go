package ingestion

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// extractPDFPages reads each page's plain text in order.
// Pages without content are skipped. The pdf reader panics on some malformed
// inputs, so panics are converted into an ExtractionError.
func extractPDFPages(data []byte) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = &ExtractionError{
				Format:  FormatPDF,
				Message: "malformed PDF structure",
				Cause:   fmt.Errorf("%v", r),
			}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Format: FormatPDF, Message: "failed to open PDF", Cause: err}
	}

	numPages := reader.NumPage()
	pages = make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, &ExtractionError{
				Format:  FormatPDF,
				Message: fmt.Sprintf("failed to read page %d", i),
				Cause:   err,
			}
		}
		pages = append(pages, text)
	}

	return pages, nil
}
