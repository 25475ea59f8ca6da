package matching

import (
	"testing"

	"github.com/jonathan/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardJobs() []types.Job {
	return []types.Job{
		{ID: "j1", Title: "SDE Intern", Company: "Flipkart", Location: "Bangalore", Mode: "Onsite", Experience: "Fresher", Source: "Naukri", PostedDaysAgo: 5},
		{ID: "j2", Title: "Backend Engineer", Company: "Zerodha", Location: "Bangalore", Mode: "Hybrid", Experience: "1-3", Source: "LinkedIn", PostedDaysAgo: 1, Skills: []string{"Go"}},
		{ID: "j3", Title: "Data Analyst", Company: "Swiggy", Location: "Pune", Mode: "Remote", Experience: "Fresher", Source: "Indeed", PostedDaysAgo: 0},
		{ID: "j4", Title: "Backend Intern", Company: "CRED", Location: "Pune", Mode: "Hybrid", Experience: "Fresher", Source: "LinkedIn", PostedDaysAgo: 3},
	}
}

func ids(jobs []types.ScoredJob) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestScoreJobs_DefaultsStatus(t *testing.T) {
	statuses := map[string]types.ApplicationStatus{"j2": types.StatusApplied}

	scored := ScoreJobs(dashboardJobs(), &types.JobPreferences{RoleKeywords: "backend"}, statuses)

	require.Len(t, scored, 4)
	assert.Equal(t, types.StatusNotApplied, scored[0].Status)
	assert.Equal(t, types.StatusApplied, scored[1].Status)
	assert.Equal(t, 35, scored[1].MatchScore) // title 25 + fresh 5 + LinkedIn 5
	assert.Equal(t, 5, scored[2].MatchScore)
}

func TestFilter(t *testing.T) {
	prefs := &types.JobPreferences{RoleKeywords: "backend", PreferredLocations: []string{"Bangalore"}, MinMatchScore: 40}
	scored := ScoreJobs(dashboardJobs(), prefs, nil)
	// j1: 15, j2: 25+15+5+5 = 50, j3: 5, j4: 25+5 = 30

	tests := []struct {
		name   string
		filter types.JobFilter
		prefs  *types.JobPreferences
		want   []string
	}{
		{"no filters sorts by score", types.JobFilter{}, prefs, []string{"j2", "j4", "j1", "j3"}},
		{"All disables select filters", types.JobFilter{Location: "All", Mode: "All", Experience: "All"}, prefs, []string{"j2", "j4", "j1", "j3"}},
		{"search matches company", types.JobFilter{Search: "zero"}, prefs, []string{"j2"}},
		{"search matches title case-insensitively", types.JobFilter{Search: "INTERN"}, prefs, []string{"j4", "j1"}},
		{"only matches uses threshold", types.JobFilter{OnlyMatches: true}, prefs, []string{"j2"}},
		{"only matches without prefs hides everything", types.JobFilter{OnlyMatches: true}, nil, []string{}},
		{"location", types.JobFilter{Location: "Pune"}, prefs, []string{"j4", "j3"}},
		{"mode and experience", types.JobFilter{Mode: "Hybrid", Experience: "Fresher"}, prefs, []string{"j4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(scored, tt.filter, tt.prefs)))
		})
	}
}

func TestFilter_StableForEqualScores(t *testing.T) {
	scored := ScoreJobs(dashboardJobs(), &types.JobPreferences{}, nil)
	// Only freshness and source fire: j1 0, j2 10, j3 5, j4 5.

	assert.Equal(t, []string{"j2", "j3", "j4", "j1"}, ids(Filter(scored, types.JobFilter{}, nil)))
}
