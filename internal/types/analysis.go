// Package types provides type definitions for structured data used throughout the placement-prep system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"
)

// Confidence is the self-assessed state of a detected skill.
type Confidence string

const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// ExtractedSkills maps a skill category to the skills detected in it.
// Skill order within a category follows dictionary order, not text order.
type ExtractedSkills map[string][]string

// AnalysisResult is the full output of a job description analysis.
type AnalysisResult struct {
	ID                 string                `json:"id"`
	IsDraft            bool                  `json:"isDraft"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	Company            string                `json:"company"`
	Role               string                `json:"role"`
	JDText             string                `json:"jdText"`
	ExtractedSkills    ExtractedSkills       `json:"extractedSkills"`
	RoundMapping       []Round               `json:"roundMapping"`
	Checklist          []ChecklistItem       `json:"checklist"`
	Plan7Days          []PlanDay             `json:"plan7Days"`
	Resources          []Resource            `json:"resources"`
	RoleReport         *RoleReport           `json:"roleReport"`
	Roadmap            *Roadmap              `json:"roadmap"`
	Questions          []string              `json:"questions"`
	BaseScore          int                   `json:"baseScore"`
	SkillConfidenceMap map[string]Confidence `json:"skillConfidenceMap"`
	FinalScore         int                   `json:"finalScore"`
}

// Round is one interview round in the round mapping.
type Round struct {
	RoundTitle   string   `json:"roundTitle"`
	FocusAreas   []string `json:"focusAreas"`
	WhyItMatters string   `json:"whyItMatters"`
}

// ChecklistItem groups preparation items for a single round.
type ChecklistItem struct {
	RoundTitle string   `json:"roundTitle"`
	Items      []string `json:"items"`
}

// PlanDay is one entry of the 7-day preparation plan.
type PlanDay struct {
	Day   string   `json:"day"`
	Focus string   `json:"focus"`
	Tasks []string `json:"tasks"`
}

// Resource is a study link attributed to a detected skill.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
	Skill string `json:"skill"`
}

// RoleReport is the structured role breakdown derived from the classifier output.
type RoleReport struct {
	Overview         RoleOverview     `json:"overview"`
	Responsibilities []string         `json:"responsibilities"`
	Skills           RoleSkills       `json:"skills"`
	Experience       RoleExperience   `json:"experience"`
	Context          CompanyContext   `json:"context"`
	Compensation     Compensation     `json:"compensation"`
	Growth           Growth           `json:"growth"`
	Complexity       Complexity       `json:"complexity"`
	Insights         CandidateInsight `json:"insights"`
	Market           Market           `json:"market"`
}

// RoleOverview summarizes the classified role.
type RoleOverview struct {
	Summary   string `json:"summary"`
	Seniority string `json:"seniority"` // Senior, Mid-Level, Entry
	Category  string `json:"category"`  // Engineering, Product, Design
	Location  string `json:"location"`  // Remote, Hybrid, On-site
}

// RoleSkills lists the hard and soft competencies for a role.
type RoleSkills struct {
	Hard     []string `json:"hard"`
	Soft     []string `json:"soft"`
	MustHave string   `json:"mustHave"`
}

// RoleExperience describes the experience expected for a role.
type RoleExperience struct {
	Years     string `json:"years"`
	Education string `json:"education"`
	Industry  string `json:"industry"`
}

// CompanyContext describes the hiring company.
type CompanyContext struct {
	Sector      string `json:"sector"`
	Size        string `json:"size"`
	Environment string `json:"environment"`
	Intel       string `json:"intel"`
}

// Compensation holds compensation indicators bucketed by seniority.
type Compensation struct {
	Range     string   `json:"range"`
	MarketFit string   `json:"marketFit"`
	Perks     []string `json:"perks"`
}

// Growth describes the career trajectory of a role.
type Growth struct {
	Pathway     string `json:"pathway"`
	Mentorship  string `json:"mentorship"`
	Scalability string `json:"scalability"`
}

// Complexity holds 0-10 ratings of role complexity.
type Complexity struct {
	Technical         float64 `json:"technical"`
	Responsibility    float64 `json:"responsibility"`
	Experience        float64 `json:"experience"`
	Diversity         float64 `json:"diversity"`
	PerformanceMetric string  `json:"performanceMetric"`
}

// CandidateInsight describes the ideal candidate.
type CandidateInsight struct {
	IdealCandidate string `json:"idealCandidate"`
	Challenges     string `json:"challenges"`
	RedFlags       string `json:"redFlags"`
}

// Market describes the competitiveness of a role.
type Market struct {
	Attractiveness  string `json:"attractiveness"`
	Competitiveness string `json:"competitiveness"`
	Demand          string `json:"demand"`
}

// Roadmap is the long-form preparation roadmap.
type Roadmap struct {
	GapAnalysis      GapAnalysis         `json:"gapAnalysis"`
	LearningPathways []LearningPhase     `json:"learningPathways"`
	ActionSteps      []ActionStep        `json:"actionSteps"`
	Portfolio        Portfolio           `json:"portfolio"`
	Readiness        ApplicationReady    `json:"readiness"`
	Timeline         []TimelineMilestone `json:"timeline"`
}

// GapAnalysis summarizes the gaps between the candidate and the role.
type GapAnalysis struct {
	PositionSummary string         `json:"positionSummary"`
	CriticalGaps    []string       `json:"criticalGaps"`
	Qualifications  Qualifications `json:"qualifications"`
}

// Qualifications splits qualifications into must-have and nice-to-have.
type Qualifications struct {
	MustHave   []string `json:"mustHave"`
	NiceToHave []string `json:"niceToHave"`
}

// LearningPhase is one phase of the learning pathway.
type LearningPhase struct {
	Phase    string   `json:"phase"`
	Focus    string   `json:"focus"`
	Topics   []string `json:"topics"`
	Projects string   `json:"projects"`
}

// ActionStep is a practical preparation area with time investment.
type ActionStep struct {
	Area           string   `json:"area"`
	Resources      []string `json:"resources"`
	TimeInvestment string   `json:"timeInvestment"`
}

// Portfolio lists proof-of-work suggestions.
type Portfolio struct {
	SuggestedProjects []string `json:"suggestedProjects"`
	Demonstrators     []string `json:"demonstrators"`
}

// ApplicationReady holds application readiness tips.
type ApplicationReady struct {
	ResumeTips     []string `json:"resumeTips"`
	InterviewFocus []string `json:"interviewFocus"`
	QuestionsToAsk []string `json:"questionsToAsk"`
}

// TimelineMilestone is a milestone on the preparation timeline.
type TimelineMilestone struct {
	Period    string `json:"period"`
	Milestone string `json:"milestone"`
}

// AnalyzeRequest is the input for a job description analysis.
type AnalyzeRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText" validate:"required"`
}

// Validate validates the AnalyzeRequest using the validator.
// A job description made only of whitespace is rejected as well.
func (r *AnalyzeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.JDText) == "" {
		return &ValidationError{Field: "jdText", Message: "job description is required"}
	}
	return nil
}

// ToggleSkillRequest flips the confidence of one detected skill.
type ToggleSkillRequest struct {
	Skill string `json:"skill" validate:"required"`
}

// Validate validates the ToggleSkillRequest using the validator.
func (r *ToggleSkillRequest) Validate() error {
	return validate.Struct(r)
}
