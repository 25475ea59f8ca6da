//nolint:revive // types is a standard Go package name pattern
package types

// SkillSelection is the set of skills offered for a mock assessment.
type SkillSelection struct {
	Role                      string          `json:"role"`
	Company                   string          `json:"company"`
	TotalSkillsIdentified     int             `json:"total_skills_identified"`
	SkillCategories           []SkillCategory `json:"skill_categories"`
	RecommendedTestDuration   string          `json:"recommended_test_duration"`
	RecommendedTotalQuestions int             `json:"recommended_total_questions"`
}

// SkillCategory groups selectable skills by dictionary category.
type SkillCategory struct {
	Category string          `json:"category"`
	Skills   []SelectedSkill `json:"skills"`
}

// SelectedSkill is a single selectable skill.
type SelectedSkill struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Proficiency            string `json:"proficiency"`
	IsMandatory            bool   `json:"is_mandatory"`
	SuggestedQuestionCount int    `json:"suggested_question_count"`
}

// Question is a mock assessment question from the question bank.
type Question struct {
	ID          string   `json:"id"`
	QuestionID  string   `json:"question_id,omitempty"`
	Skill       string   `json:"skill,omitempty"`
	Type        string   `json:"type"`       // MCQ, Scenario
	Difficulty  string   `json:"difficulty"` // Easy, Medium, Hard
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Points      int      `json:"points,omitempty"`
}

// TestConfig configures mock test generation.
type TestConfig struct {
	Difficulty string `json:"difficulty,omitempty"`
	Duration   string `json:"duration,omitempty"`
	Count      int    `json:"count,omitempty"`
}

// MockTest is a generated mock assessment.
type MockTest struct {
	TestID         string     `json:"test_id"`
	SkillsCovered  []string   `json:"skills_covered"`
	TotalQuestions int        `json:"total_questions"`
	TotalDuration  string     `json:"total_duration"`
	PassingScore   int        `json:"passing_score"`
	Questions      []Question `json:"questions"`
}

// SkillBreakdown counts correct answers for one skill.
type SkillBreakdown struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// TestResult is the graded outcome of a mock test.
type TestResult struct {
	Score     int                       `json:"score"` // Percentage 0-100
	Total     int                       `json:"total"`
	Correct   int                       `json:"correct"`
	Passed    bool                      `json:"passed"`
	Breakdown map[string]SkillBreakdown `json:"breakdown"`
}

// AssessmentRequest asks for a mock test over the given skills.
type AssessmentRequest struct {
	Skills []string   `json:"skills" validate:"required,min=1"`
	Config TestConfig `json:"config"`
}

// Validate validates the AssessmentRequest using the validator.
func (r *AssessmentRequest) Validate() error {
	return validate.Struct(r)
}

// GradeRequest submits answers, keyed by question_id, for a generated test.
type GradeRequest struct {
	Test    *MockTest         `json:"test" validate:"required"`
	Answers map[string]string `json:"answers"`
}

// Validate validates the GradeRequest using the validator.
func (r *GradeRequest) Validate() error {
	return validate.Struct(r)
}
