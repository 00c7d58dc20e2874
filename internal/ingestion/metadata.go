package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
)

// Metadata describes an ingested file
type Metadata struct {
	Source    string `json:"source,omitempty"` // file path or upload name
	Format    string `json:"format"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the raw bytes
	SizeBytes int    `json:"size_bytes"`
	Pages     int    `json:"pages,omitempty"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(source, format string, raw []byte) *Metadata {
	return &Metadata{
		Source:    source,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(raw),
		SizeBytes: len(raw),
	}
}

// NewDocumentSource describes an extracted document for embedding in a résumé record.
// It carries no timestamp so identical uploads produce identical records.
func NewDocumentSource(doc *Document, raw []byte) *types.DocumentSource {
	return &types.DocumentSource{
		Format:    doc.Format,
		SizeBytes: len(raw),
		SHA256:    computeHash(raw),
		Pages:     len(doc.Pages),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
