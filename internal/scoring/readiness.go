// Package scoring computes bounded 0-100 readiness and ATS scores from fixed weighted rules.
// All functions are pure; identical inputs always produce identical scores.
package scoring

import (
	"strings"
	"unicode/utf8"
)

// Readiness score weights
const (
	readinessBase     = 35
	pointsPerCategory = 5
	maxCategoryPoints = 30
	companyPoints     = 10
	rolePoints        = 10
	longJDPoints      = 10
	longJDThreshold   = 800 // Characters
	maxScore          = 100
	confidenceStep    = 2
)

// ReadinessScore returns the JD readiness base score for an analysis.
// categoryCount is the number of dictionary categories with at least one detected skill.
func ReadinessScore(company, role, jdText string, categoryCount int) int {
	score := readinessBase
	score += min(categoryCount*pointsPerCategory, maxCategoryPoints)
	if strings.TrimSpace(company) != "" {
		score += companyPoints
	}
	if strings.TrimSpace(role) != "" {
		score += rolePoints
	}
	if utf8.RuneCountInString(jdText) > longJDThreshold {
		score += longJDPoints
	}
	return clamp(score)
}

// clamp bounds score to [0, 100].
func clamp(score int) int {
	return max(0, min(score, maxScore))
}
