package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// DigestSize is the number of jobs in a daily digest.
const DigestSize = 10

// Digest returns the top jobs for the day: highest match score first, fresher
// postings first among equal scores. Without preferences there is no digest and
// Digest returns nil.
func Digest(jobs []types.Job, prefs *types.JobPreferences) []types.ScoredJob {
	if prefs == nil {
		return nil
	}

	scored := ScoreJobs(jobs, prefs, nil)
	for i := range scored {
		scored[i].Status = ""
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		return scored[i].PostedDaysAgo < scored[j].PostedDaysAgo
	})

	if len(scored) > DigestSize {
		scored = scored[:DigestSize]
	}
	return scored
}

// DigestText renders a digest as the plain-text summary shared by copy and email.
func DigestText(date string, digest []types.ScoredJob) string {
	var b strings.Builder
	fmt.Fprintf(&b, "9AM Job Digest - %s\n\n", date)
	for i, job := range digest {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s @ %s [%d%% Match]", i+1, job.Title, job.Company, job.MatchScore)
	}
	return b.String()
}

// DigestEmailBody renders a digest as an email body with one apply link per job.
func DigestEmailBody(digest []types.ScoredJob) string {
	entries := make([]string, len(digest))
	for i, job := range digest {
		entries[i] = fmt.Sprintf("%s at %s\nScore: %d%%\nApply: %s", job.Title, job.Company, job.MatchScore, job.ApplyURL)
	}
	return strings.Join(entries, "\n\n")
}
