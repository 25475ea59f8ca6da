package report

import (
	"github.com/jonathan/placement-prep/internal/classify"
	"github.com/jonathan/placement-prep/internal/types"
)

var enterpriseRounds = []types.Round{
	{RoundTitle: "Online Test", FocusAreas: []string{"DSA", "Aptitude"}, WhyItMatters: "Filters candidates based on core fundamentals and speed."},
	{RoundTitle: "Technical Interview 1", FocusAreas: []string{"DSA", "OS/DBMS"}, WhyItMatters: "Verifies technical depth and foundational CS knowledge."},
	{RoundTitle: "Technical Interview 2", FocusAreas: []string{"Projects", "Design"}, WhyItMatters: "Assesses how you apply skills to practical problems."},
	{RoundTitle: "Managerial / HR", FocusAreas: []string{"Behavioral", "Culture"}, WhyItMatters: "Ensures alignment with company values and team fit."},
}

var startupRounds = []types.Round{
	{RoundTitle: "Practical Coding", FocusAreas: []string{"Project Build", "Logic"}, WhyItMatters: "Focuses on your ability to deliver functional code quickly."},
	{RoundTitle: "System Discussion", FocusAreas: []string{"Architecture", "Stack"}, WhyItMatters: "Checks if you understand the end-to-end flow of applications."},
	{RoundTitle: "Culture Fit", FocusAreas: []string{"Communication", "Ownership"}, WhyItMatters: "Startups value fast learners and proactive owners."},
}

// checklistExtras are appended to every round's checklist.
var checklistExtras = []string{
	"Practice common interview questions",
	"Be ready with project examples",
}

// RoundMapping returns the 4-round enterprise template when company is a known
// enterprise, otherwise the 3-round startup template. The result is a deep copy.
func RoundMapping(company string) []types.Round {
	template := startupRounds
	if classify.IsEnterprise(company) {
		template = enterpriseRounds
	}

	rounds := make([]types.Round, len(template))
	for i, r := range template {
		r.FocusAreas = append([]string(nil), r.FocusAreas...)
		rounds[i] = r
	}
	return rounds
}

// Checklist derives one checklist entry per round.
func Checklist(rounds []types.Round) []types.ChecklistItem {
	checklist := make([]types.ChecklistItem, 0, len(rounds))
	for _, r := range rounds {
		items := make([]string, 0, len(r.FocusAreas)+len(checklistExtras))
		for _, f := range r.FocusAreas {
			items = append(items, "Revise concepts of "+f)
		}
		items = append(items, checklistExtras...)
		checklist = append(checklist, types.ChecklistItem{RoundTitle: r.RoundTitle, Items: items})
	}
	return checklist
}
