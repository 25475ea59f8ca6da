package assessment

import (
	"testing"
	"time"

	"github.com/jonathan/placement-prep/internal/classify"
	"github.com/jonathan/placement-prep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.UnixMilli(1700000000000)

func TestSkillSelection(t *testing.T) {
	a := &types.AnalysisResult{
		Company: "Acme",
		Role:    "SDE",
		ExtractedSkills: types.ExtractedSkills{
			"data":      {"SQL"},
			"languages": {"Java", "Go"},
		},
		RoleReport: &types.RoleReport{Overview: types.RoleOverview{Seniority: classify.SenioritySenior}},
	}

	sel := SkillSelection(a)

	require.NotNil(t, sel)
	assert.Equal(t, "Acme", sel.Company)
	assert.Equal(t, 3, sel.TotalSkillsIdentified)
	assert.Equal(t, "45 minutes", sel.RecommendedTestDuration)
	assert.Equal(t, 20, sel.RecommendedTotalQuestions)
	require.Len(t, sel.SkillCategories, 2)
	assert.Equal(t, "languages", sel.SkillCategories[0].Category)
	assert.Equal(t, "data", sel.SkillCategories[1].Category)

	java := sel.SkillCategories[0].Skills[0]
	assert.Equal(t, "skill_1", java.ID)
	assert.Equal(t, "Java", java.Name)
	assert.Equal(t, "Advanced", java.Proficiency)
	assert.True(t, java.IsMandatory)
	assert.Equal(t, 5, java.SuggestedQuestionCount)
	assert.Equal(t, "skill_3", sel.SkillCategories[1].Skills[0].ID)
}

func TestSkillSelection_DefaultsAndFallback(t *testing.T) {
	a := &types.AnalysisResult{
		ExtractedSkills: types.ExtractedSkills{"other": {"Communication", "Problem solving"}},
	}

	sel := SkillSelection(a)

	require.Len(t, sel.SkillCategories, 1)
	assert.Equal(t, "other", sel.SkillCategories[0].Category)
	assert.Equal(t, "Intermediate", sel.SkillCategories[0].Skills[0].Proficiency)
}

func TestSkillSelection_Nil(t *testing.T) {
	assert.Nil(t, SkillSelection(nil))
	assert.Nil(t, SkillSelection(&types.AnalysisResult{}))
}

func TestGenerateMockTest(t *testing.T) {
	test := GenerateMockTest([]string{"Python", "Go", "System Design"}, types.TestConfig{}, testTime)

	assert.Equal(t, "test_1700000000000", test.TestID)
	assert.Equal(t, "30 min", test.TotalDuration)
	assert.Equal(t, 70, test.PassingScore)
	assert.Equal(t, []string{"Python", "Go", "System Design"}, test.SkillsCovered)
	require.Equal(t, 4, test.TotalQuestions)
	require.Len(t, test.Questions, 4)

	tests := []struct {
		questionID string
		id         string
		skill      string
		points     int
	}{
		{"Q1", "py_001", "Python", 5},
		{"Q2", "js_001", "Go", 5},
		{"Q3", "js_002", "Go", 10},
		{"Q4", "sd_001", "System Design", 10},
	}
	for i, tt := range tests {
		q := test.Questions[i]
		assert.Equal(t, tt.questionID, q.QuestionID)
		assert.Equal(t, tt.id, q.ID)
		assert.Equal(t, tt.skill, q.Skill)
		assert.Equal(t, tt.points, q.Points)
	}
}

func TestGenerateMockTest_ConfigOptions(t *testing.T) {
	hard := GenerateMockTest([]string{"JavaScript", "Python"}, types.TestConfig{Difficulty: "Hard", Duration: "15 min"}, testTime)

	assert.Equal(t, "15 min", hard.TotalDuration)
	require.Len(t, hard.Questions, 2)
	assert.Equal(t, "js_002", hard.Questions[0].ID)
	assert.Equal(t, "py_001", hard.Questions[1].ID) // No hard Python question; the pool is kept

	capped := GenerateMockTest([]string{"JavaScript", "React", "Python"}, types.TestConfig{Count: 2}, testTime)
	assert.Equal(t, 2, capped.TotalQuestions)
}

func TestGenerateMockTest_DoesNotShareBank(t *testing.T) {
	test := GenerateMockTest([]string{"Python"}, types.TestConfig{}, testTime)
	test.Questions[0].Options[0] = "changed"
	test.Questions[0].Answer = "changed"

	again := GenerateMockTest([]string{"Python"}, types.TestConfig{}, testTime)
	assert.Equal(t, "List", again.Questions[0].Options[0])
	assert.Equal(t, "List", again.Questions[0].Answer)
	assert.Empty(t, questionBank["Python"][0].Skill)
}

func TestGrade(t *testing.T) {
	test := GenerateMockTest([]string{"JavaScript", "Python"}, types.TestConfig{}, testTime)

	tests := []struct {
		name    string
		answers map[string]string
		score   int
		passed  bool
		js      types.SkillBreakdown
	}{
		{"all correct", map[string]string{"Q1": "object", "Q2": "true", "Q3": "List"}, 100, true, types.SkillBreakdown{Correct: 2, Total: 2}},
		{"two of three", map[string]string{"Q1": "object", "Q2": "false", "Q3": "List"}, 67, false, types.SkillBreakdown{Correct: 1, Total: 2}},
		{"unanswered", map[string]string{}, 0, false, types.SkillBreakdown{Correct: 0, Total: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Grade(test, tt.answers)
			assert.Equal(t, 3, result.Total)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.passed, result.Passed)
			assert.Equal(t, tt.js, result.Breakdown["JavaScript"])
			assert.Equal(t, 1, result.Breakdown["Python"].Total)
		})
	}
}

func TestGrade_EmptyTest(t *testing.T) {
	result := Grade(&types.MockTest{PassingScore: 70}, nil)

	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
	assert.Empty(t, result.Breakdown)
}
