package mcptools

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonathan/placement-prep/internal/analysis"
	"github.com/jonathan/placement-prep/internal/matching"
	"github.com/jonathan/placement-prep/internal/scoring"
	"github.com/jonathan/placement-prep/internal/types"
)

// AnalyzeJDInput is the input of the analyze_jd tool.
type AnalyzeJDInput struct {
	Company string `json:"company,omitempty" jsonschema:"hiring company name, used for the round template and company context"`
	Role    string `json:"role,omitempty" jsonschema:"target role title"`
	JDText  string `json:"jd_text" jsonschema:"full job description text"`
}

// AnalyzeJDOutput is the readiness summary returned by analyze_jd.
type AnalyzeJDOutput struct {
	Company         string                      `json:"company"`
	Role            string                      `json:"role"`
	ExtractedSkills map[string][]string         `json:"extracted_skills"`
	BaseScore       int                         `json:"base_score"`
	FinalScore      int                         `json:"final_score"`
	Seniority       string                      `json:"seniority,omitempty"`
	Rounds          []types.Round               `json:"rounds"`
	Checklist       []types.ChecklistItem       `json:"checklist"`
	Plan            []types.PlanDay             `json:"plan"`
	Questions       []string                    `json:"questions"`
	Confidence      map[string]types.Confidence `json:"confidence"`
}

// ATSScoreInput is the input of the ats_score tool.
type ATSScoreInput struct {
	Resume types.ResumeData `json:"resume" jsonschema:"resume document; set jdText to score keyword coverage against a job description"`
}

// JobMatchInput is the input of the job_match_score tool.
type JobMatchInput struct {
	Job         types.Job             `json:"job" jsonschema:"job listing to score"`
	Preferences *types.JobPreferences `json:"preferences,omitempty" jsonschema:"candidate preferences; without them the score is 0"`
}

// JobMatchOutput is the result of job_match_score.
type JobMatchOutput struct {
	JobID      string `json:"job_id"`
	MatchScore int    `json:"match_score"`
	Band       string `json:"band"`
}

// JobDigestInput is the input of the job_digest tool.
type JobDigestInput struct {
	Jobs        []types.Job           `json:"jobs" jsonschema:"job listings to rank"`
	Preferences *types.JobPreferences `json:"preferences" jsonschema:"candidate preferences"`
	Date        string                `json:"date,omitempty" jsonschema:"digest date as YYYY-MM-DD, defaults to today"`
}

// JobDigestOutput is the result of job_digest.
type JobDigestOutput struct {
	Date string            `json:"date"`
	Jobs []types.ScoredJob `json:"jobs"`
	Text string            `json:"text"`
}

func registerAnalyzeJD(server *mcp.Server, analyzer *analysis.Analyzer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_jd",
		Description: "Analyze a job description for placement readiness. Detects skills by category, classifies seniority and work mode, maps interview rounds and returns a 0-100 readiness score with a 7-day plan. Nothing is saved.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input AnalyzeJDInput) (*mcp.CallToolResult, *AnalyzeJDOutput, error) {
		return analyzeJD(analyzer, input)
	})
}

func analyzeJD(analyzer *analysis.Analyzer, input AnalyzeJDInput) (*mcp.CallToolResult, *AnalyzeJDOutput, error) {
	if strings.TrimSpace(input.JDText) == "" {
		return nil, nil, errors.New("jd_text is required")
	}
	a := analyzer.Analyze(input.Company, input.Role, input.JDText)

	out := &AnalyzeJDOutput{
		Company:         a.Company,
		Role:            a.Role,
		ExtractedSkills: a.ExtractedSkills,
		BaseScore:       a.BaseScore,
		FinalScore:      a.FinalScore,
		Rounds:          a.RoundMapping,
		Checklist:       a.Checklist,
		Plan:            a.Plan7Days,
		Questions:       a.Questions,
		Confidence:      a.SkillConfidenceMap,
	}
	if a.RoleReport != nil {
		out.Seniority = a.RoleReport.Overview.Seniority
	}
	return nil, out, nil
}

func registerATSScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ats_score",
		Description: "Score a resume for ATS friendliness (0-100) with an actionable report. When the resume carries a target job description, missing keywords are listed.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input ATSScoreInput) (*mcp.CallToolResult, *types.ATSResult, error) {
		return atsScore(input)
	})
}

func atsScore(input ATSScoreInput) (*mcp.CallToolResult, *types.ATSResult, error) {
	if err := input.Resume.Validate(); err != nil {
		return nil, nil, err
	}
	return nil, scoring.CalculateATS(&input.Resume), nil
}

func registerJobMatchScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_match_score",
		Description: "Score how well a job listing matches candidate preferences (0-100): role keywords, location, work mode, experience, skills, freshness and source.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input JobMatchInput) (*mcp.CallToolResult, *JobMatchOutput, error) {
		return jobMatchScore(input)
	})
}

func jobMatchScore(input JobMatchInput) (*mcp.CallToolResult, *JobMatchOutput, error) {
	if input.Job.ID == "" && input.Job.Title == "" {
		return nil, nil, errors.New("job is required")
	}
	score := matching.MatchScore(input.Job, input.Preferences)
	return nil, &JobMatchOutput{
		JobID:      input.Job.ID,
		MatchScore: score,
		Band:       string(matching.BandFor(score)),
	}, nil
}

func registerJobDigest(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_digest",
		Description: "Rank job listings against candidate preferences and return the top 10 as a daily digest with a plain-text summary.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input JobDigestInput) (*mcp.CallToolResult, *JobDigestOutput, error) {
		return jobDigest(input, time.Now())
	})
}

func jobDigest(input JobDigestInput, now time.Time) (*mcp.CallToolResult, *JobDigestOutput, error) {
	if input.Preferences == nil {
		return nil, nil, errors.New("preferences are required for a digest")
	}
	date := input.Date
	if date == "" {
		date = now.Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, nil, errors.New("date must be YYYY-MM-DD")
	}

	digest := matching.Digest(input.Jobs, input.Preferences)
	if digest == nil {
		digest = []types.ScoredJob{}
	}
	return nil, &JobDigestOutput{
		Date: date,
		Jobs: digest,
		Text: matching.DigestText(date, digest),
	}, nil
}
