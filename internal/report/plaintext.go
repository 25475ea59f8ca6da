package report

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/jonathan/placement-prep/internal/types"
)

//go:embed plaintext.tmpl
var plainTextSource string

var plainTextTemplate = template.Must(
	template.New("plaintext").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(plainTextSource),
)

// PlainText renders the downloadable strategy summary of an analysis.
func PlainText(a *types.AnalysisResult) (string, error) {
	var b strings.Builder
	if err := plainTextTemplate.Execute(&b, a); err != nil {
		return "", &RenderError{Message: "failed to render plain text report", Cause: err}
	}
	return b.String(), nil
}

// ExportFileName returns the download file name for an analysis export.
func ExportFileName(company string) string {
	name := strings.ToLower(strings.TrimSpace(company))
	if name == "" {
		name = "analysis"
	}
	return fmt.Sprintf("readiness_%s.txt", strings.ReplaceAll(name, " ", "_"))
}
