//nolint:revive // types is a standard Go package name pattern
package types

// ApplicationStatus is the tracking state of a job application.
type ApplicationStatus string

const (
	StatusNotApplied ApplicationStatus = "Not Applied"
	StatusApplied    ApplicationStatus = "Applied"
	StatusRejected   ApplicationStatus = "Rejected"
	StatusSelected   ApplicationStatus = "Selected"
)

// IsValid reports whether s is a known application status.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusNotApplied, StatusApplied, StatusRejected, StatusSelected:
		return true
	default:
		return false
	}
}

// Job is a job listing from the static job dataset.
type Job struct {
	ID            string   `json:"id" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Mode          string   `json:"mode"`       // Remote, Hybrid, Onsite
	Experience    string   `json:"experience"` // Fresher, 0-1, 1-3, 3-5
	Salary        string   `json:"salaryRange,omitempty"`
	Description   string   `json:"description"`
	Skills        []string `json:"skills"`
	Source        string   `json:"source"` // LinkedIn, Naukri, Indeed
	PostedDaysAgo int      `json:"postedDaysAgo" validate:"gte=0"`
	ApplyURL      string   `json:"applyUrl,omitempty"`
}

// JobPreferences are the user's stated matching preferences. The matcher only reads them.
type JobPreferences struct {
	RoleKeywords       string   `json:"roleKeywords"` // Comma-separated
	PreferredLocations []string `json:"preferredLocations"`
	PreferredMode      []string `json:"preferredMode"`
	ExperienceLevel    string   `json:"experienceLevel"`
	Skills             string   `json:"skills"` // Comma-separated
	MinMatchScore      int      `json:"minMatchScore" validate:"gte=0,lte=100"`
}

// Validate validates the JobPreferences using the validator.
func (p *JobPreferences) Validate() error {
	return validate.Struct(p)
}

// Validate validates the Job using the validator.
func (j *Job) Validate() error {
	return validate.Struct(j)
}

// ScoredJob is a job annotated with its match score and tracking status.
type ScoredJob struct {
	Job
	MatchScore int               `json:"matchScore"`
	Status     ApplicationStatus `json:"status,omitempty"`
}

// JobFilter holds the dashboard filter controls. Empty or "All" fields do not filter.
type JobFilter struct {
	Search      string `json:"search,omitempty"`
	OnlyMatches bool   `json:"onlyMatches,omitempty"`
	Location    string `json:"location,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Experience  string `json:"experience,omitempty"`
}

// MatchRequest scores one job against preferences.
type MatchRequest struct {
	Job         Job             `json:"job" validate:"required"`
	Preferences *JobPreferences `json:"preferences"`
}

// DigestRequest builds a digest or filtered dashboard from a job list.
type DigestRequest struct {
	Jobs        []Job           `json:"jobs" validate:"required,dive"`
	Preferences *JobPreferences `json:"preferences"`
	Filter      *JobFilter      `json:"filter,omitempty"`
}

// Validate validates the DigestRequest using the validator.
func (r *DigestRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}
