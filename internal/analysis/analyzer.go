// Package analysis composes skill matching, classification, scoring and report
// synthesis into a single job description analysis.
package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/placement-prep/internal/classify"
	"github.com/jonathan/placement-prep/internal/report"
	"github.com/jonathan/placement-prep/internal/scoring"
	"github.com/jonathan/placement-prep/internal/skills"
	"github.com/jonathan/placement-prep/internal/types"
)

// IDGenerator returns a collision-resistant unique identifier.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// Analyzer turns a job description into an AnalysisResult. The zero value is
// not usable; construct one with New.
type Analyzer struct {
	matcher *skills.Matcher
	newID   IDGenerator
	now     Clock
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(a *Analyzer) { a.newID = gen }
}

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(a *Analyzer) { a.now = clock }
}

// WithDictionary replaces the built-in skill dictionary.
func WithDictionary(dict skills.Dictionary) Option {
	return func(a *Analyzer) { a.matcher = skills.NewMatcher(dict) }
}

// New returns an Analyzer using the default dictionary, uuid.NewString and time.Now.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		matcher: skills.NewMatcher(skills.DefaultDictionary()),
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the full analysis. Callers are expected to reject a blank
// jdText first (see types.AnalyzeRequest.Validate); if they don't, the result
// carries the fallback skills and a base score with no category points.
//
// Every detected skill starts as "practice", so FinalScore already reflects
// the confidence map when the result is returned.
func (a *Analyzer) Analyze(company, role, jdText string) *types.AnalysisResult {
	match := a.matcher.Match(jdText)
	profile := classify.Classify(jdText)

	rounds := report.RoundMapping(company)
	base := scoring.ReadinessScore(company, role, jdText, match.CategoryCount)

	confidence := make(map[string]types.Confidence, len(match.Detected))
	for _, s := range match.Detected {
		confidence[s] = types.ConfidencePractice
	}

	now := a.now().UTC()
	return &types.AnalysisResult{
		ID:                 a.newID(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Company:            company,
		Role:               role,
		JDText:             jdText,
		ExtractedSkills:    match.Skills,
		RoundMapping:       rounds,
		Checklist:          report.Checklist(rounds),
		Plan7Days:          report.Plan7Days(match.Detected),
		Resources:          skills.Resources(match.Detected),
		RoleReport:         report.RoleReport(company, role, profile),
		Roadmap:            report.Roadmap(company, role, match.Detected),
		Questions:          report.Questions(match.Detected),
		BaseScore:          base,
		SkillConfidenceMap: confidence,
		FinalScore:         scoring.FinalScore(base, confidence),
	}
}

// AnalyzeRequest validates req and analyzes it.
func (a *Analyzer) AnalyzeRequest(req *types.AnalyzeRequest) (*types.AnalysisResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return a.Analyze(req.Company, req.Role, req.JDText), nil
}

// DetectedSkills returns the flat skill list of an analysis in category order.
func DetectedSkills(a *types.AnalysisResult, dict skills.Dictionary) []string {
	var out []string
	for _, name := range append(dict.Names(), skills.FallbackCategory) {
		out = append(out, a.ExtractedSkills[name]...)
	}
	return out
}
