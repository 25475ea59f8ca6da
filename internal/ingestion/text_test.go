package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"headings preserved", "# Title\n## Subtitle\nContent here", "# Title\n## Subtitle\nContent here"},
		{"bullets preserved", "- Item 1\n* Item 2\n• Item 3", "- Item 1\n* Item 2\n• Item 3"},
		{"crlf normalized", "Line 1\r\nLine 2\rLine 3", "Line 1\nLine 2\nLine 3"},
		{"inner whitespace collapsed", "Go    and\tSQL", "Go and SQL"},
		{"blank runs collapsed", "A\n\n\n\n\nB", "A\n\nB"},
		{"outer whitespace trimmed", "\n\n  Hello  \n\n", "Hello"},
		{"indented bullet keeps indent", "  - nested", "- nested"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestIsBulletLine(t *testing.T) {
	assert.True(t, isBulletLine("- item"))
	assert.True(t, isBulletLine("  * item"))
	assert.True(t, isBulletLine("• item"))
	assert.False(t, isBulletLine("-item"))
	assert.False(t, isBulletLine("plain"))
}

func TestIngestFromFile_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("Backend Engineer\r\n\r\n\r\n\r\nGo   and SQL required"), 0644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\n\nGo and SQL required", text)
	assert.Equal(t, FormatText, meta.Format)
	assert.Equal(t, path, meta.Source)
	assert.True(t, meta.Short)
	assert.Equal(t, len(text), meta.Chars)
}

func TestIngestFromFile_HTML(t *testing.T) {
	html := `<html><body><nav>Menu</nav>
<div class="job-description"><h1>Senior Engineer</h1><ul><li>Kubernetes</li><li>PostgreSQL</li></ul></div>
<footer>Footer</footer></body></html>`
	path := filepath.Join(t.TempDir(), "posting.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, meta.Format)
	assert.Contains(t, text, "Senior Engineer")
	assert.Contains(t, text, "- Kubernetes")
	assert.NotContains(t, text, "Menu")
	assert.NotContains(t, text, "Footer")
}

func TestIngestFromFile_Missing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n\n \t"), 0644))

	_, _, err := IngestFromFile(path)
	var emptyErr *EmptyDocumentError
	require.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, path, emptyErr.Path)
}

func TestIngestFromFile_BadPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0644))

	_, _, err := IngestFromFile(path)
	var docErr *DocumentError
	require.ErrorAs(t, err, &docErr)
	assert.Equal(t, FormatPDF, docErr.Format)
}

func TestWriteOutput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	meta := NewMetadata("Go and SQL", "jd.txt", FormatText)

	require.NoError(t, WriteOutput(outDir, "Go and SQL", meta))

	cleaned, err := os.ReadFile(filepath.Join(outDir, "jd.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Go and SQL", string(cleaned))

	metaJSON, err := os.ReadFile(filepath.Join(outDir, "jd.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(metaJSON), `"format": "text"`)
	assert.Contains(t, string(metaJSON), meta.Hash)
}
