// Package observability provides formatted output utilities for the human-readable CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintAnalysis outputs the readiness summary of an analysis.
func (p *Printer) PrintAnalysis(a *types.AnalysisResult) {
	if a == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "ID:         %s\n", a.ID)
	fmt.Fprintf(&sb, "Company:    %s\n", orDash(a.Company))
	fmt.Fprintf(&sb, "Role:       %s\n", orDash(a.Role))
	fmt.Fprintf(&sb, "Readiness:  %d/100 (base %d)\n", a.FinalScore, a.BaseScore)
	if a.RoleReport != nil {
		o := a.RoleReport.Overview
		fmt.Fprintf(&sb, "Profile:    %s %s, %s\n", o.Seniority, o.Category, o.Location)
	}
	sb.WriteString("\n")

	categories := make([]string, 0, len(a.ExtractedSkills))
	for category := range a.ExtractedSkills {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	sb.WriteString("Skills:\n")
	for _, category := range categories {
		marked := make([]string, 0, len(a.ExtractedSkills[category]))
		for _, skill := range a.ExtractedSkills[category] {
			mark := "○"
			if a.SkillConfidenceMap[skill] == types.ConfidenceKnow {
				mark = "✓"
			}
			marked = append(marked, mark+skill)
		}
		fmt.Fprintf(&sb, "  %s: %s\n", category, strings.Join(marked, " "))
	}

	if len(a.RoundMapping) > 0 {
		sb.WriteString("\nRounds:\n")
		for _, r := range a.RoundMapping {
			fmt.Fprintf(&sb, "  • %s\n", r.RoundTitle)
		}
	}

	p.printBox("PLACEMENT READINESS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs one line per stored analysis.
func (p *Printer) PrintHistory(list []*types.AnalysisResult) {
	if len(list) == 0 {
		p.printBox("ANALYSIS HISTORY", "No analyses yet")
		return
	}

	var sb strings.Builder
	for i, a := range list {
		fmt.Fprintf(&sb, "%3d  %s  %s / %s\n", a.FinalScore, a.CreatedAt.Format("2006-01-02"), orDash(a.Company), orDash(a.Role))
		fmt.Fprintf(&sb, "     %s", a.ID)
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox(fmt.Sprintf("ANALYSIS HISTORY (%d)", len(list)), sb.String())
}

// PrintATS outputs the ATS score with its report and missing keywords.
func (p *Printer) PrintATS(result *types.ATSResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %d/100\n", result.Score)

	if len(result.Report) > 0 {
		sb.WriteString("\n")
		for _, item := range result.Report {
			fmt.Fprintf(&sb, "%s %s\n", severityMark(item.Type), item.Text)
		}
	}

	if len(result.MissingKeywords) > 0 {
		fmt.Fprintf(&sb, "\nMissing keywords: %s\n", strings.Join(result.MissingKeywords, ", "))
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

func severityMark(s types.ReportSeverity) string {
	switch s {
	case types.SeverityCritical:
		return "✗"
	case types.SeverityWarning:
		return "⚠"
	default:
		return "•"
	}
}

// PrintJobs outputs the top scored jobs.
func (p *Printer) PrintJobs(title string, jobs []types.ScoredJob) {
	if len(jobs) == 0 {
		p.printBox(title, "No matching jobs")
		return
	}

	var sb strings.Builder
	count := min(len(jobs), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		j := jobs[i]
		fmt.Fprintf(&sb, "%3d%%  %s @ %s\n", j.MatchScore, j.Title, j.Company)
		fmt.Fprintf(&sb, "      %s · %s · %dd ago", j.Location, j.Mode, j.PostedDaysAgo)
		if j.Status != "" && j.Status != types.StatusNotApplied {
			fmt.Fprintf(&sb, " · %s", j.Status)
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(jobs) > count {
		fmt.Fprintf(&sb, "\n... and %d more jobs", len(jobs)-count)
	}

	p.printBox(title, sb.String())
}

// PrintTestResult outputs a graded mock test with its per-skill breakdown.
func (p *Printer) PrintTestResult(result *types.TestResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	verdict := "NOT PASSED"
	if result.Passed {
		verdict = "PASSED"
	}
	fmt.Fprintf(&sb, "Score: %d%% (%d/%d) %s\n", result.Score, result.Correct, result.Total, verdict)

	skills := make([]string, 0, len(result.Breakdown))
	for skill := range result.Breakdown {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	if len(skills) > 0 {
		sb.WriteString("\n")
	}
	for _, skill := range skills {
		b := result.Breakdown[skill]
		fmt.Fprintf(&sb, "  %-20s %d/%d\n", skill, b.Correct, b.Total)
	}

	p.printBox("MOCK TEST RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
