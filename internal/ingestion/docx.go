package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// wordNamespace is the WordprocessingML main namespace
const wordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// documentPart is the zip entry holding the document body
const documentPart = "word/document.xml"

// extractWordText reads word/document.xml from an Office Open XML package and
// returns the body paragraphs followed by the table rows, one per line.
func extractWordText(data []byte, format string) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: format, Message: "not a valid Office Open XML document", Cause: err}
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", &ExtractionError{Format: format, Message: "no word/document.xml found"}
	}

	rc, err := part.Open()
	if err != nil {
		return "", &ExtractionError{Format: format, Message: "failed to open document body", Cause: err}
	}
	defer func() { _ = rc.Close() }()

	w, err := walkWordBody(rc)
	if err != nil {
		return "", &ExtractionError{Format: format, Message: "failed to parse document body", Cause: err}
	}

	units := append(w.paragraphs, w.rows...)
	return strings.TrimSpace(strings.Join(units, "\n")), nil
}

// bodyWalker accumulates text units while streaming the document XML.
// Paragraphs outside tables become one paragraph unit each; each outermost
// table row becomes one row unit of its non-empty cell texts joined by spaces.
type bodyWalker struct {
	paragraphs []string
	rows       []string
	tableDepth int
	para       strings.Builder
	cell       []string
	row        []string
}

func walkWordBody(r io.Reader) (*bodyWalker, error) {
	dec := xml.NewDecoder(r)
	w := &bodyWalker{}
	inText := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				w.tableDepth++
			case "tr":
				if w.tableDepth == 1 {
					w.row = w.row[:0]
				}
			case "tc":
				if w.tableDepth == 1 {
					w.cell = w.cell[:0]
				}
			case "p":
				w.para.Reset()
			case "t":
				inText = true
			case "tab":
				w.para.WriteString("\t")
			case "br", "cr":
				if w.tableDepth == 0 {
					w.para.WriteString("\n")
				} else {
					w.para.WriteString(" ")
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordNamespace {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				w.endParagraph()
			case "tc":
				if w.tableDepth == 1 {
					if text := strings.TrimSpace(strings.Join(w.cell, " ")); text != "" {
						w.row = append(w.row, text)
					}
				}
			case "tr":
				if w.tableDepth == 1 && len(w.row) > 0 {
					w.rows = append(w.rows, strings.Join(w.row, " "))
				}
			case "tbl":
				if w.tableDepth > 0 {
					w.tableDepth--
				}
			}
		case xml.CharData:
			if inText {
				w.para.Write(t)
			}
		}
	}

	return w, nil
}

func (w *bodyWalker) endParagraph() {
	text := strings.TrimSpace(w.para.String())
	w.para.Reset()
	if text == "" {
		return
	}
	if w.tableDepth == 0 {
		w.paragraphs = append(w.paragraphs, text)
		return
	}
	// nested table content folds into the enclosing outer cell
	w.cell = append(w.cell, text)
}
