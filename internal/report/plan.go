package report

import (
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// Plan7Days returns the fixed five-entry preparation schedule. The Day 3-4
// entry names the top three detected skills.
func Plan7Days(detected []string) []types.PlanDay {
	return []types.PlanDay{
		{Day: "Day 1-2", Focus: "CS Fundamentals", Tasks: []string{"Revise OOP/DBMS basics", "Practice basic strings and arrays"}},
		{Day: "Day 3-4", Focus: "Core Proficiency", Tasks: []string{"Deep dive into " + strings.Join(topSkills(detected), ", "), "Solve medium level DSA problems"}},
		{Day: "Day 5", Focus: "Project Review", Tasks: []string{"Analyze your major projects", "Prepare architecture diagrams"}},
		{Day: "Day 6", Focus: "Soft Skills", Tasks: []string{"Practice HR questions", "Mock technical interview with a friend"}},
		{Day: "Day 7", Focus: "Revision", Tasks: []string{"Review weak areas", "Final look at previous interview experiences"}},
	}
}
