package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMainText_ContentSelector(t *testing.T) {
	html := `<html><body>
<header>Site header</header>
<div class="sidebar">Related jobs</div>
<main><h1>Data Engineer</h1><p>Spark and Kafka pipelines.</p></main>
<script>var x = 1;</script>
</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer\nSpark and Kafka pipelines.", text)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><p>Only body</p></body></html>`, []string{".missing"})
	require.NoError(t, err)
	assert.Equal(t, "Only body", text)
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `<html><body><article><p>Keep</p><p class="apply">Apply now</p></article></body></html>`

	text, err := ExtractMainText(html, []string{"article"}, ".apply")
	require.NoError(t, err)
	assert.Equal(t, "Keep", text)
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a\nb", cleanWhitespace("  a  \n\n\t\n b "))
	assert.Equal(t, "", cleanWhitespace("   \n  "))
}
