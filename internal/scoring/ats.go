package scoring

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/placement-prep/internal/types"
)

// ATS check weights
const (
	contactPoints     = 10
	summaryPoints     = 10
	experiencePoints  = 10
	metricPoints      = 15
	verbPoints        = 15
	skillsPoints      = 10
	keywordMaxPoints  = 30
	noJDPoints        = 15
	summaryMinLength  = 100 // Summary must be strictly longer
	minTechnicalSkill = 8
	maxMissingKeyword = 5
)

// ATS report messages
const (
	msgMissingContact = "Missing contact fundamentals (Name, Email, Phone)"
	msgShortSummary   = "Professional summary is too short or missing"
	msgNoExperience   = "No professional experience listed"
	msgNoMetrics      = "Quantify your achievements with numbers/metrics"
	msgNoActionVerbs  = "Start bullet points with strong action verbs"
	msgFewSkills      = "List at least 8 key technical keywords"
)

// metricPattern detects quantified impact such as "40%", "10 hours", "$500" or "3x".
var metricPattern = regexp.MustCompile(`\d+%|\d+\s?hours|\$\d+|[0-9]+x`)

// jdKeywordPattern extracts the fixed tech/process vocabulary from a lower-cased JD.
var jdKeywordPattern = regexp.MustCompile(`\b(react|node|aws|docker|kubernetes|javascript|typescript|python|java|sql|nosql|agile|scrum|system design|microservices|rest|graphql|ci/cd|git|testing|unit test|integration test)\b`)

// actionVerbs are matched case-insensitively anywhere in an experience description.
var actionVerbs = []string{
	"achieved", "surpassed", "exceeded", "delivered", "generated", "increased",
	"engineered", "architected", "developed", "implemented", "automated", "optimized",
	"directed", "orchestrated", "spearheaded", "championed", "mentored", "guided",
	"analyzed", "evaluated", "assessed", "diagnosed", "identified", "researched",
}

// CalculateATS scores a resume on structure, content quality and JD keyword coverage.
// Every failed structural or content check adds one report entry; the keyword
// component only contributes missing keywords.
func CalculateATS(data *types.ResumeData) *types.ATSResult {
	result := &types.ATSResult{
		Report:          []types.ReportItem{},
		MissingKeywords: []string{},
	}
	score := 0

	fail := func(text string, severity types.ReportSeverity) {
		result.Report = append(result.Report, types.ReportItem{Text: text, Type: severity})
	}

	// Structure
	p := data.Personal
	if p.Name != "" && p.Email != "" && p.Phone != "" {
		score += contactPoints
	} else {
		fail(msgMissingContact, types.SeverityCritical)
	}

	if utf8.RuneCountInString(data.Summary) > summaryMinLength {
		score += summaryPoints
	} else {
		fail(msgShortSummary, types.SeverityWarning)
	}

	if len(data.Experience) > 0 {
		score += experiencePoints
	} else {
		fail(msgNoExperience, types.SeverityCritical)
	}

	// Content quality
	if hasMetrics(data.Experience) {
		score += metricPoints
	} else {
		fail(msgNoMetrics, types.SeverityImprovement)
	}

	if hasActionVerbs(data.Experience) {
		score += verbPoints
	} else {
		fail(msgNoActionVerbs, types.SeverityImprovement)
	}

	if len(data.Skills.Technical) >= minTechnicalSkill {
		score += skillsPoints
	} else {
		fail(msgFewSkills, types.SeverityImprovement)
	}

	// Keyword coverage
	if data.JDText != "" {
		points, missing := keywordCoverage(data)
		score += points
		result.MissingKeywords = missing
	} else {
		score += noJDPoints
	}

	result.Score = clamp(score)
	return result
}

// ExtractJDKeywords returns the unique vocabulary terms found in jdText, in order of first appearance.
func ExtractJDKeywords(jdText string) []string {
	matches := jdKeywordPattern.FindAllString(strings.ToLower(jdText), -1)
	seen := make(map[string]bool, len(matches))
	keywords := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			keywords = append(keywords, m)
		}
	}
	return keywords
}

func hasMetrics(experience []types.Experience) bool {
	for _, exp := range experience {
		if metricPattern.MatchString(exp.Desc) {
			return true
		}
	}
	return false
}

func hasActionVerbs(experience []types.Experience) bool {
	for _, exp := range experience {
		desc := strings.ToLower(exp.Desc)
		for _, verb := range actionVerbs {
			if strings.Contains(desc, verb) {
				return true
			}
		}
	}
	return false
}

// keywordCoverage scores JD keywords found in the serialized resume. The JD
// itself is left out of the serialization so it cannot match its own keywords;
// serializing it too would put every keyword in the text and always award the
// full 30 points. Matching is by substring, so "git" is found in "github".
func keywordCoverage(data *types.ResumeData) (int, []string) {
	keywords := ExtractJDKeywords(data.JDText)
	if len(keywords) == 0 {
		return 0, []string{}
	}

	resumeText := serializeResume(data)
	matched := 0
	missing := make([]string, 0, maxMissingKeyword)
	for _, k := range keywords {
		if strings.Contains(resumeText, k) {
			matched++
		} else if len(missing) < maxMissingKeyword {
			missing = append(missing, k)
		}
	}

	points := int(math.Round(float64(matched) / float64(len(keywords)) * keywordMaxPoints))
	return points, missing
}

// serializeResume renders the resume content as lower-cased JSON without the target JD.
func serializeResume(data *types.ResumeData) string {
	content := *data
	content.JDText = ""

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(content); err != nil {
		// ResumeData holds only strings and slices; encoding cannot fail.
		return ""
	}
	return strings.ToLower(buf.String())
}
