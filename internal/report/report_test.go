package report

import (
	"testing"

	"github.com/jonathan/placement-prep/internal/classify"
	"github.com/jonathan/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleReport_SeniorityVariants(t *testing.T) {
	tests := []struct {
		seniority    string
		years        string
		compensation string
		pathway      string
		technical    float64
	}{
		{classify.SenioritySenior, "5-8 years", "₹25L - ₹45L", "Principal Engineer / CTO Office", 8.5},
		{classify.SeniorityMid, "3-5 years", "15L - 25L", "Senior Developer / Tech Lead", 6.5},
		{classify.SeniorityEntry, "0-2 years", "08L - 15L", "Senior Developer / Tech Lead", 6.5},
	}

	for _, tt := range tests {
		t.Run(tt.seniority, func(t *testing.T) {
			profile := classify.Profile{Seniority: tt.seniority, Category: classify.CategoryEngineering, Location: classify.LocationRemote}

			r := RoleReport("Acme", "Backend", profile)

			assert.Equal(t, tt.years, r.Experience.Years)
			assert.Equal(t, tt.compensation, r.Compensation.Range)
			assert.Equal(t, tt.pathway, r.Growth.Pathway)
			assert.InDelta(t, tt.technical, r.Complexity.Technical, 0.001)
			assert.Equal(t, tt.seniority, r.Overview.Seniority)
			assert.Len(t, r.Responsibilities, 4)
		})
	}
}

func TestRoleReport_Placeholders(t *testing.T) {
	profile := classify.Classify("")

	r := RoleReport("", "", profile)

	assert.Equal(t, "This is a Mid-Level Engineering role at the target company focusing on core technical contributions. It requires a blend of practical execution and strategic understanding.", r.Overview.Summary)
	assert.Equal(t, "The company operates in a competitive tech environment requiring high agility.", r.Context.Intel)
	assert.Equal(t, classify.LocationOnSite, r.Overview.Location)
}

func TestRoleReport_Deterministic(t *testing.T) {
	profile := classify.Classify("Senior product lead, remote")
	assert.Equal(t, RoleReport("Acme", "PM", profile), RoleReport("Acme", "PM", profile))
}

func TestRoleReport_ResponsibilitiesNotShared(t *testing.T) {
	r := RoleReport("", "", classify.Profile{})
	r.Responsibilities[0] = "changed"

	assert.NotEqual(t, "changed", RoleReport("", "", classify.Profile{}).Responsibilities[0])
}

func TestRoundMapping(t *testing.T) {
	tests := []struct {
		company    string
		enterprise bool
	}{
		{"Amazon", true},
		{"  GOOGLE India ", true},
		{"Tata Consultancy", true},
		{"Metaverse Labs", true},
		{"Razorpay", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.company, func(t *testing.T) {
			rounds := RoundMapping(tt.company)
			assert.Equal(t, tt.enterprise, classify.IsEnterprise(tt.company))
			if tt.enterprise {
				require.Len(t, rounds, 4)
				assert.Equal(t, "Online Test", rounds[0].RoundTitle)
			} else {
				require.Len(t, rounds, 3)
				assert.Equal(t, "Practical Coding", rounds[0].RoundTitle)
			}
		})
	}
}

func TestRoundMapping_ReturnsCopy(t *testing.T) {
	rounds := RoundMapping("Amazon")
	rounds[0].FocusAreas[0] = "changed"

	assert.Equal(t, "DSA", RoundMapping("Amazon")[0].FocusAreas[0])
}

func TestChecklist(t *testing.T) {
	rounds := RoundMapping("Startup")

	checklist := Checklist(rounds)

	require.Len(t, checklist, len(rounds))
	assert.Equal(t, types.ChecklistItem{
		RoundTitle: "Practical Coding",
		Items: []string{
			"Revise concepts of Project Build",
			"Revise concepts of Logic",
			"Practice common interview questions",
			"Be ready with project examples",
		},
	}, checklist[0])
	for i, item := range checklist {
		assert.Equal(t, rounds[i].RoundTitle, item.RoundTitle)
	}
}

func TestPlan7Days(t *testing.T) {
	plan := Plan7Days([]string{"Java", "React", "SQL", "AWS"})

	require.Len(t, plan, 5)
	assert.Equal(t, "Day 3-4", plan[1].Day)
	assert.Equal(t, "Deep dive into Java, React, SQL", plan[1].Tasks[0])

	short := Plan7Days([]string{"Communication", "Problem solving"})
	assert.Equal(t, "Deep dive into Communication, Problem solving", short[1].Tasks[0])
}

func TestRoadmap(t *testing.T) {
	r := Roadmap("Acme", "SDE", []string{"Go", "SQL", "AWS", "Docker"})

	assert.Equal(t, "Strategic SDE position at Acme, demanding a high-degree of ownership over technical delivery and architectural quality.", r.GapAnalysis.PositionSummary)
	assert.Equal(t, "Transitioning from broad technical knowledge to Go depth.", r.GapAnalysis.CriticalGaps[0])
	require.Len(t, r.LearningPathways, 3)
	assert.Equal(t, "Solidifying Go & SQL & AWS", r.LearningPathways[0].Focus)
	assert.Equal(t, "Build a production-ready micro-service focusing on Go.", r.LearningPathways[0].Projects)
	assert.Len(t, r.ActionSteps, 2)
	assert.Len(t, r.Timeline, 3)
}

func TestRoadmap_NoSkills(t *testing.T) {
	r := Roadmap("", "", nil)

	assert.Equal(t, "Solidifying Fundamentals", r.LearningPathways[0].Focus)
	assert.Equal(t, "Transitioning from broad technical knowledge to core engineering depth.", r.GapAnalysis.CriticalGaps[0])
	assert.Contains(t, r.GapAnalysis.PositionSummary, "the target firm")
}

func TestQuestions(t *testing.T) {
	generic := Questions([]string{"React"})
	require.Len(t, generic, 10)
	assert.Equal(t, "Explain how you handle state in your applications.", generic[2])
	assert.Equal(t, "How do you optimize your development workflow?", generic[3])

	specific := Questions([]string{"DSA", "SQL"})
	require.Len(t, specific, 10)
	assert.Equal(t, "Explain indexing and ACID properties.", specific[2])
	assert.Equal(t, "What is the complexity of your most used algorithm?", specific[3])
}

func TestPlainText(t *testing.T) {
	a := &types.AnalysisResult{
		Company:    "Acme",
		Role:       "SDE",
		FinalScore: 64,
		Plan7Days: []types.PlanDay{
			{Day: "Day 1-2", Focus: "Basics", Tasks: []string{"a", "b"}},
			{Day: "Day 3-4", Focus: "Core", Tasks: []string{"c"}},
		},
		RoundMapping: []types.Round{
			{RoundTitle: "Coding", FocusAreas: []string{"Logic", "Build"}, WhyItMatters: "Speed."},
			{RoundTitle: "Culture", FocusAreas: []string{"Ownership"}, WhyItMatters: "Fit."},
		},
	}

	text, err := PlainText(a)
	require.NoError(t, err)

	want := "Placement Readiness Analysis: Acme - SDE\n" +
		"Score: 64/100\n\n" +
		"--- 7-DAY PLAN ---\n" +
		"Day 1-2: Basics\nTasks: a, b\n\n" +
		"Day 3-4: Core\nTasks: c\n\n" +
		"--- ROUND MAPPING ---\n" +
		"Coding (Logic, Build): Speed.\n" +
		"Culture (Ownership): Fit.\n"
	assert.Equal(t, want, text)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "readiness_acme.txt", ExportFileName("Acme"))
	assert.Equal(t, "readiness_big_co.txt", ExportFileName(" Big Co "))
	assert.Equal(t, "readiness_analysis.txt", ExportFileName(""))
}
