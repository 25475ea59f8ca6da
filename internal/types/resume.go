//nolint:revive // types is a standard Go package name pattern
package types

// ReportSeverity classifies an ATS finding.
type ReportSeverity string

const (
	SeverityCritical    ReportSeverity = "critical"
	SeverityWarning     ReportSeverity = "warning"
	SeverityImprovement ReportSeverity = "improvement"
)

// ResumeData is the resume builder document scored by the ATS scorer.
type ResumeData struct {
	Personal      PersonalInfo `json:"personal"`
	Summary       string       `json:"summary"`
	Education     []Education  `json:"education"`
	Experience    []Experience `json:"experience"`
	Projects      []Project    `json:"projects"`
	Skills        SkillGroups  `json:"skills"`
	TargetRole    string       `json:"targetRole"`
	TargetCompany string       `json:"targetCompany"`
	JDText        string       `json:"jdText"` // Optional target job description for keyword matching
}

// PersonalInfo holds the contact block of a resume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"max=254"` // Scored on presence; partial addresses are accepted
	Phone    string `json:"phone"`
	Location string `json:"location"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// Education is one education entry.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

// Experience is one professional experience entry.
type Experience struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Duration string `json:"duration"`
	Desc     string `json:"desc"`
}

// Project is one portfolio project.
type Project struct {
	Title     string   `json:"title"`
	Desc      string   `json:"desc"`
	TechStack []string `json:"techStack"`
	LiveURL   string   `json:"liveUrl"`
	GitHubURL string   `json:"githubUrl"`
}

// SkillGroups splits resume skills by kind.
type SkillGroups struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// BuilderConfig holds resume rendering preferences.
type BuilderConfig struct {
	Template string `json:"template"`
	Color    string `json:"color"`
}

// ReportItem is a single actionable ATS finding.
type ReportItem struct {
	Text string         `json:"text"`
	Type ReportSeverity `json:"type"`
}

// ATSResult is the ATS score of a resume. It is recomputed on every read and never stored.
type ATSResult struct {
	Score           int          `json:"score"`
	Report          []ReportItem `json:"report"`
	MissingKeywords []string     `json:"missingKeywords"`
}

// Validate validates the ResumeData using the validator.
func (r *ResumeData) Validate() error {
	return validate.Struct(r)
}

// NewResumeData returns an empty resume with non-nil collections.
func NewResumeData() *ResumeData {
	return &ResumeData{
		Education:  []Education{},
		Experience: []Experience{},
		Projects:   []Project{},
		Skills: SkillGroups{
			Technical: []string{},
			Soft:      []string{},
			Tools:     []string{},
		},
	}
}

// DefaultBuilderConfig returns the ATS-friendly default rendering config.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Template: "Classic",
		Color:    "hsl(0, 0%, 15%)",
	}
}
