package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// shortJDThreshold is the length below which a job description is flagged as short.
const shortJDThreshold = 200

// Metadata contains metadata about an ingested job description
type Metadata struct {
	Source    string `json:"source"`    // File path the text was read from
	Format    Format `json:"format"`    // Detected document format
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
	Chars     int    `json:"chars"`
	Short     bool   `json:"short,omitempty"` // Fewer than 200 characters; analysis will be shallow
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content, source string, format Format) *Metadata {
	chars := utf8.RuneCountInString(content)
	return &Metadata{
		Source:    source,
		Format:    format,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Chars:     chars,
		Short:     chars < shortJDThreshold,
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
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
