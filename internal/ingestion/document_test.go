package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"jd.txt", FormatText},
		{"jd.md", FormatText},
		{"jd", FormatText},
		{"posting.HTML", FormatHTML},
		{"posting.htm", FormatHTML},
		{"resume.pdf", FormatPDF},
		{"resume.DOCX", FormatDOCX},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectFormat(tt.path))
		})
	}
}

func TestExtractDocumentText_Text(t *testing.T) {
	text, err := ExtractDocumentText(FormatText, []byte("raw text"))
	require.NoError(t, err)
	assert.Equal(t, "raw text", text)
}

func TestExtractDocumentText_Unsupported(t *testing.T) {
	_, err := ExtractDocumentText(Format("rtf"), []byte("x"))
	require.Error(t, err)
}

func TestExtractDocumentText_InvalidDocx(t *testing.T) {
	_, err := ExtractDocumentText(FormatDOCX, []byte("not a zip"))
	require.Error(t, err)
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Requirements</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>&amp; SQL</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	assert.Equal(t, "Requirements\nGo & SQL\n", docxXMLToText(xml))
}
