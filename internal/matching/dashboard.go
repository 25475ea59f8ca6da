package matching

import (
	"sort"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// filterAll is the dashboard select value that disables a filter.
const filterAll = "All"

// ScoreJobs annotates every job with its match score and tracked status.
// Jobs missing from statuses are reported as Not Applied.
func ScoreJobs(jobs []types.Job, prefs *types.JobPreferences, statuses map[string]types.ApplicationStatus) []types.ScoredJob {
	scored := make([]types.ScoredJob, len(jobs))
	for i, job := range jobs {
		status, ok := statuses[job.ID]
		if !ok || status == "" {
			status = types.StatusNotApplied
		}
		scored[i] = types.ScoredJob{
			Job:        job,
			MatchScore: MatchScore(job, prefs),
			Status:     status,
		}
	}
	return scored
}

// Filter applies the dashboard filter controls to scored jobs and returns the
// survivors sorted by match score, highest first. Ties keep their input order.
//
// With OnlyMatches set, a job survives only when prefs exist and its score
// reaches prefs.MinMatchScore.
func Filter(jobs []types.ScoredJob, f types.JobFilter, prefs *types.JobPreferences) []types.ScoredJob {
	search := strings.ToLower(f.Search)

	out := make([]types.ScoredJob, 0, len(jobs))
	for _, job := range jobs {
		if search != "" &&
			!strings.Contains(strings.ToLower(job.Company), search) &&
			!strings.Contains(strings.ToLower(job.Title), search) {
			continue
		}
		if f.OnlyMatches && (prefs == nil || job.MatchScore < prefs.MinMatchScore) {
			continue
		}
		if !selectMatches(f.Location, job.Location) ||
			!selectMatches(f.Mode, job.Mode) ||
			!selectMatches(f.Experience, job.Experience) {
			continue
		}
		out = append(out, job)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

func selectMatches(selected, value string) bool {
	return selected == "" || selected == filterAll || selected == value
}
