// Package matching scores job listings against a user's stated preferences and
// builds the filtered dashboard and daily digest views from those scores.
package matching

import (
	"slices"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// Match score weights
const (
	titleKeywordPoints = 25
	descKeywordPoints  = 15
	locationPoints     = 15
	modePoints         = 10
	experiencePoints   = 10
	skillPoints        = 15
	freshPoints        = 5
	sourcePoints       = 5
	freshMaxDays       = 2
	preferredSource    = "LinkedIn"
	maxMatchScore      = 100
)

// MatchScore returns the 0-100 compatibility of job with prefs.
// Every rule is evaluated independently. A nil prefs scores 0.
func MatchScore(job types.Job, prefs *types.JobPreferences) int {
	if prefs == nil {
		return 0
	}

	score := 0
	keywords := splitList(prefs.RoleKeywords)
	if containsAny(strings.ToLower(job.Title), keywords) {
		score += titleKeywordPoints
	}
	if containsAny(strings.ToLower(job.Description), keywords) {
		score += descKeywordPoints
	}

	if slices.Contains(prefs.PreferredLocations, job.Location) {
		score += locationPoints
	}
	if slices.Contains(prefs.PreferredMode, job.Mode) {
		score += modePoints
	}
	if prefs.ExperienceLevel == job.Experience {
		score += experiencePoints
	}

	userSkills := splitList(prefs.Skills)
	for _, s := range job.Skills {
		if slices.Contains(userSkills, strings.ToLower(s)) {
			score += skillPoints
			break
		}
	}

	if job.PostedDaysAgo <= freshMaxDays {
		score += freshPoints
	}
	if job.Source == preferredSource {
		score += sourcePoints
	}

	return min(score, maxMatchScore)
}

// splitList splits a comma-separated preference into trimmed, lower-cased, non-empty entries.
func splitList(s string) []string {
	parts := strings.Split(strings.ToLower(s), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
